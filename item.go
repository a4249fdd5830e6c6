package sketch

// ItemKind identifies the kind of a drawable item.
type ItemKind int

const (
	// KindStroke is a freehand polyline.
	KindStroke ItemKind = iota
	// KindShape is a geometric primitive (rectangle, ellipse, line).
	KindShape
	// KindText is a positioned text run.
	KindText
	// KindImage is a placed raster image reference.
	KindImage
)

// String returns a human-readable name for the item kind.
func (k ItemKind) String() string {
	switch k {
	case KindStroke:
		return "Stroke"
	case KindShape:
		return "Shape"
	case KindText:
		return "Text"
	case KindImage:
		return "Image"
	default:
		return "Unknown"
	}
}

// Item is a drawable entity managed by the scene.
// Implementations have pointer receivers; the pointer is the item's
// identity for registration and reverse lookup. The rendering surface
// reads the position, transform, paint and render flags; it never keeps
// its own long-lived reference to an Item.
type Item interface {
	// Kind identifies the concrete item type.
	Kind() ItemKind

	// Bounds returns the item's axis-aligned bounding box in scene
	// coordinates, before the transform is applied.
	Bounds() Rect

	// Position returns the item's origin in scene coordinates.
	Position() Point
	// SetPosition moves the item's origin.
	SetPosition(Point)

	// Transform returns the item's local affine transform.
	Transform() Matrix
	// SetTransform replaces the item's local affine transform.
	SetTransform(Matrix)

	// Paint returns the item's current paint attributes.
	Paint() PaintSpec
	// SetPaint replaces the item's paint attributes.
	SetPaint(PaintSpec)

	// Render flags, maintained by the layer the item belongs to.

	// Visible reports whether the item should be painted.
	Visible() bool
	// SetVisible sets the paint flag.
	SetVisible(bool)
	// Opacity returns the item's effective opacity in [0, 1].
	Opacity() float64
	// SetOpacity sets the effective opacity, clamped to [0, 1].
	SetOpacity(float64)
	// ZOrder returns the item's paint ordering key (lower paints first).
	ZOrder() int
	// SetZOrder sets the paint ordering key.
	SetZOrder(int)
}

// itemBase carries the state shared by every item kind.
type itemBase struct {
	pos       Point
	transform Matrix
	paint     PaintSpec
	visible   bool
	opacity   float64
	zorder    int
}

func newItemBase() itemBase {
	return itemBase{
		transform: Identity(),
		paint:     Fill(RGB(0, 0, 0)),
		visible:   true,
		opacity:   1.0,
	}
}

func (b *itemBase) Position() Point       { return b.pos }
func (b *itemBase) SetPosition(p Point)   { b.pos = p }
func (b *itemBase) Transform() Matrix     { return b.transform }
func (b *itemBase) SetTransform(m Matrix) { b.transform = m }
func (b *itemBase) Paint() PaintSpec      { return b.paint }
func (b *itemBase) SetPaint(p PaintSpec)  { b.paint = p }
func (b *itemBase) Visible() bool         { return b.visible }
func (b *itemBase) SetVisible(v bool)     { b.visible = v }
func (b *itemBase) Opacity() float64      { return b.opacity }
func (b *itemBase) SetOpacity(o float64)  { b.opacity = clamp01(o) }
func (b *itemBase) ZOrder() int           { return b.zorder }
func (b *itemBase) SetZOrder(z int)       { b.zorder = z }
