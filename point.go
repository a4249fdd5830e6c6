package sketch

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect is an axis-aligned rectangle defined by its min and max corners.
type Rect struct {
	Min, Max Point
}

// RectXYWH creates a Rect from an origin and a size.
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{Min: Point{X: x, Y: y}, Max: Point{X: x + w, Y: y + h}}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Offset returns the rectangle translated by p.
func (r Rect) Offset(p Point) Rect {
	return Rect{Min: r.Min.Add(p), Max: r.Max.Add(p)}
}

// Union returns the smallest rectangle containing both r and s.
func (r Rect) Union(s Rect) Rect {
	u := r
	if s.Min.X < u.Min.X {
		u.Min.X = s.Min.X
	}
	if s.Min.Y < u.Min.Y {
		u.Min.Y = s.Min.Y
	}
	if s.Max.X > u.Max.X {
		u.Max.X = s.Max.X
	}
	if s.Max.Y > u.Max.Y {
		u.Max.Y = s.Max.Y
	}
	return u
}
