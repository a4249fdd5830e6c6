package sketch

import "golang.org/x/image/colornames"

// PaintKind identifies the variant of a PaintSpec.
type PaintKind int

const (
	// PaintStroke is an outline paint with a color and a line width.
	PaintStroke PaintKind = iota
	// PaintFill is a solid interior paint.
	PaintFill
	// PaintTint is a color overlay applied at a given strength.
	PaintTint
	// PaintTheme is a named color resolved from the SVG 1.1 palette.
	PaintTheme
)

// String returns a human-readable name for the paint kind.
func (k PaintKind) String() string {
	switch k {
	case PaintStroke:
		return "Stroke"
	case PaintFill:
		return "Fill"
	case PaintTint:
		return "Tint"
	case PaintTheme:
		return "Theme"
	default:
		return "Unknown"
	}
}

// PaintSpec describes the paintable attributes of an item.
// This is a sealed interface - only types in this package implement it.
//
// The closed set of variants lets recolor operations and undo actions
// work uniformly across item kinds without runtime type inspection:
//
//	old := item.Paint()
//	item.SetPaint(sketch.Fill(sketch.RGB(1, 0, 0)))
//	// old and new are stored symmetrically in the undo delta.
type PaintSpec interface {
	// paintMarker is an unexported method that seals this interface.
	// Only types in this package can implement PaintSpec.
	paintMarker()

	// Kind identifies the variant without type assertions.
	Kind() PaintKind
}

// StrokePaint paints an outline with a solid color and line width.
type StrokePaint struct {
	Color RGBA
	Width float64
}

func (StrokePaint) paintMarker() {}

// Kind implements PaintSpec.
func (StrokePaint) Kind() PaintKind { return PaintStroke }

// FillPaint paints a solid interior color.
type FillPaint struct {
	Color RGBA
}

func (FillPaint) paintMarker() {}

// Kind implements PaintSpec.
func (FillPaint) Kind() PaintKind { return PaintFill }

// TintPaint overlays a color at a given strength.
// Strength 0 leaves the item unchanged, 1 replaces its color entirely.
type TintPaint struct {
	Color    RGBA
	Strength float64
}

func (TintPaint) paintMarker() {}

// Kind implements PaintSpec.
func (TintPaint) Kind() PaintKind { return PaintTint }

// ThemePaint refers to a color by name, resolved at apply time.
// Names follow the SVG 1.1 color keywords ("steelblue", "coral", ...).
type ThemePaint struct {
	Name string
}

func (ThemePaint) paintMarker() {}

// Kind implements PaintSpec.
func (ThemePaint) Kind() PaintKind { return PaintTheme }

// Resolve looks up the named color. Unknown names resolve to opaque black.
func (p ThemePaint) Resolve() RGBA {
	if c, ok := colornames.Map[p.Name]; ok {
		return FromColor(c)
	}
	return RGB(0, 0, 0)
}

// Stroke creates a StrokePaint.
func Stroke(c RGBA, width float64) StrokePaint {
	return StrokePaint{Color: c, Width: width}
}

// Fill creates a FillPaint.
func Fill(c RGBA) FillPaint {
	return FillPaint{Color: c}
}

// Tint creates a TintPaint with the strength clamped to [0, 1].
func Tint(c RGBA, strength float64) TintPaint {
	return TintPaint{Color: c, Strength: clamp01(strength)}
}

// Theme creates a ThemePaint.
func Theme(name string) ThemePaint {
	return ThemePaint{Name: name}
}
