package sketch

// ShapeKind identifies the geometric primitive of a ShapeItem.
type ShapeKind int

const (
	// ShapeRectangle is an axis-aligned rectangle.
	ShapeRectangle ShapeKind = iota
	// ShapeEllipse is an ellipse inscribed in its rectangle.
	ShapeEllipse
	// ShapeLine is a line from the rectangle's min to its max corner.
	ShapeLine
)

// String returns a human-readable name for the shape kind.
func (k ShapeKind) String() string {
	switch k {
	case ShapeRectangle:
		return "Rectangle"
	case ShapeEllipse:
		return "Ellipse"
	case ShapeLine:
		return "Line"
	default:
		return "Unknown"
	}
}

// StrokeItem is a freehand polyline captured from pen input.
// Points are stored relative to the item's position.
type StrokeItem struct {
	itemBase
	Points []Point
}

// NewStroke creates a StrokeItem from a point slice.
// The slice is used directly, not copied.
func NewStroke(points []Point) *StrokeItem {
	return &StrokeItem{itemBase: newItemBase(), Points: points}
}

// Kind implements Item.
func (s *StrokeItem) Kind() ItemKind { return KindStroke }

// Bounds implements Item. An empty stroke has a zero rectangle at the
// item's position.
func (s *StrokeItem) Bounds() Rect {
	if len(s.Points) == 0 {
		return Rect{Min: s.pos, Max: s.pos}
	}
	r := Rect{Min: s.Points[0], Max: s.Points[0]}
	for _, p := range s.Points[1:] {
		r = r.Union(Rect{Min: p, Max: p})
	}
	return r.Offset(s.pos)
}

// ShapeItem is a geometric primitive.
// Geom is stored relative to the item's position.
type ShapeItem struct {
	itemBase
	Shape ShapeKind
	Geom  Rect
}

// NewShape creates a ShapeItem.
func NewShape(shape ShapeKind, geom Rect) *ShapeItem {
	return &ShapeItem{itemBase: newItemBase(), Shape: shape, Geom: geom}
}

// Kind implements Item.
func (s *ShapeItem) Kind() ItemKind { return KindShape }

// Bounds implements Item.
func (s *ShapeItem) Bounds() Rect { return s.Geom.Offset(s.pos) }

// TextItem is a single text run anchored at the item's position.
type TextItem struct {
	itemBase
	Text string
	Size float64
}

// NewText creates a TextItem with the given origin and font size.
func NewText(text string, origin Point, size float64) *TextItem {
	t := &TextItem{itemBase: newItemBase(), Text: text, Size: size}
	t.pos = origin
	return t
}

// Kind implements Item.
func (t *TextItem) Kind() ItemKind { return KindText }

// Bounds implements Item. The extent is an estimate based on the font
// size; exact metrics belong to the text renderer, not the scene model.
func (t *TextItem) Bounds() Rect {
	w := t.Size * 0.6 * float64(len([]rune(t.Text)))
	return RectXYWH(t.pos.X, t.pos.Y, w, t.Size)
}

// ImageItem is a placed raster image, referenced by source name.
// The scene model never decodes pixels; Source is resolved by the
// rendering surface.
type ImageItem struct {
	itemBase
	Source string
	Geom   Rect
}

// NewImage creates an ImageItem covering geom.
func NewImage(source string, geom Rect) *ImageItem {
	return &ImageItem{itemBase: newItemBase(), Source: source, Geom: geom}
}

// Kind implements Item.
func (i *ImageItem) Kind() ItemKind { return KindImage }

// Bounds implements Item.
func (i *ImageItem) Bounds() Rect { return i.Geom.Offset(i.pos) }
