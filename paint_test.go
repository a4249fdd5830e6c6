package sketch

import "testing"

func TestPaintKinds(t *testing.T) {
	tests := []struct {
		name string
		p    PaintSpec
		want PaintKind
	}{
		{"stroke", Stroke(RGB(1, 0, 0), 2), PaintStroke},
		{"fill", Fill(RGB(0, 1, 0)), PaintFill},
		{"tint", Tint(RGB(0, 0, 1), 0.5), PaintTint},
		{"theme", Theme("coral"), PaintTheme},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Kind(); got != tt.want {
				t.Errorf("Kind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPaintKindString(t *testing.T) {
	tests := []struct {
		kind PaintKind
		want string
	}{
		{PaintStroke, "Stroke"},
		{PaintFill, "Fill"},
		{PaintTint, "Tint"},
		{PaintTheme, "Theme"},
		{PaintKind(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("PaintKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestTintStrengthClamped(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-1, 0},
		{0, 0},
		{0.25, 0.25},
		{1, 1},
		{3, 1},
	}
	for _, tt := range tests {
		if got := Tint(RGB(1, 1, 1), tt.in).Strength; got != tt.want {
			t.Errorf("Tint strength %v clamped to %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestThemeResolve(t *testing.T) {
	// Known SVG 1.1 keyword.
	c := Theme("red").Resolve()
	if c.R != 1 || c.G != 0 || c.B != 0 || c.A != 1 {
		t.Errorf("Theme(red).Resolve() = %+v, want opaque red", c)
	}

	// Unknown names resolve to opaque black.
	c = Theme("no-such-color").Resolve()
	if c != RGB(0, 0, 0) {
		t.Errorf("Theme(unknown).Resolve() = %+v, want opaque black", c)
	}
}
