package sketch

import (
	"math"
	"testing"
)

func TestIsIdentity(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want bool
	}{
		{"identity", Identity(), true},
		{"scale 1,1", Scale(1, 1), true},
		{"translation", Translate(1, 0), false},
		{"scale", Scale(2, 2), false},
		{"rotation", Rotate(math.Pi / 2), false},
		{"zero matrix", Matrix{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.IsIdentity(); got != tt.want {
				t.Errorf("Matrix%+v.IsIdentity() = %v, want %v", tt.m, got, tt.want)
			}
		})
	}
}

func TestTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		p    Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(10, 20), Pt(3, 4), Pt(13, 24)},
		{"scale", Scale(2, 3), Pt(3, 4), Pt(6, 12)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformPoint(tt.p); got != tt.want {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestInvertRoundTrip(t *testing.T) {
	const epsilon = 1e-9
	m := Translate(5, -3).Multiply(Scale(2, 4))
	inv := m.Invert()
	p := Pt(7, 11)
	got := inv.TransformPoint(m.TransformPoint(p))
	if math.Abs(got.X-p.X) > epsilon || math.Abs(got.Y-p.Y) > epsilon {
		t.Errorf("invert round trip moved %v to %v", p, got)
	}
}

func TestInvertSingular(t *testing.T) {
	if got := Scale(0, 0).Invert(); !got.IsIdentity() {
		t.Errorf("singular Invert() = %+v, want identity", got)
	}
}

func TestRectUnionOffset(t *testing.T) {
	a := RectXYWH(0, 0, 10, 10)
	b := RectXYWH(5, -5, 10, 10)
	u := a.Union(b)
	want := Rect{Min: Pt(0, -5), Max: Pt(15, 10)}
	if u != want {
		t.Errorf("Union = %+v, want %+v", u, want)
	}
	moved := a.Offset(Pt(1, 2))
	if moved != (Rect{Min: Pt(1, 2), Max: Pt(11, 12)}) {
		t.Errorf("Offset = %+v", moved)
	}
}
