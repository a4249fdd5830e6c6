// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package project

import (
	"fmt"

	"github.com/gogpu/sketch"
)

func encodeItem(item sketch.Item) ItemRecord {
	rec := ItemRecord{
		Position:  encodePoint(item.Position()),
		Transform: encodeMatrix(item.Transform()),
		Paint:     encodePaint(item.Paint()),
	}
	switch v := item.(type) {
	case *sketch.StrokeItem:
		rec.Kind = "stroke"
		for _, p := range v.Points {
			rec.Points = append(rec.Points, encodePoint(p))
		}
	case *sketch.ShapeItem:
		rec.Kind = "shape"
		rec.Shape = shapeKindName(v.Shape)
		rec.Geom = encodeRect(v.Geom)
	case *sketch.TextItem:
		rec.Kind = "text"
		rec.Text = v.Text
		rec.Size = v.Size
	case *sketch.ImageItem:
		rec.Kind = "image"
		rec.Source = v.Source
		rec.Geom = encodeRect(v.Geom)
	default:
		rec.Kind = "unknown"
	}
	return rec
}

func decodeItem(rec ItemRecord) (sketch.Item, error) {
	var item sketch.Item
	switch rec.Kind {
	case "stroke":
		points := make([]sketch.Point, len(rec.Points))
		for i, p := range rec.Points {
			points[i] = decodePoint(p)
		}
		item = sketch.NewStroke(points)
	case "shape":
		shape, err := shapeKind(rec.Shape)
		if err != nil {
			return nil, err
		}
		item = sketch.NewShape(shape, decodeRect(rec.Geom))
	case "text":
		item = sketch.NewText(rec.Text, sketch.Point{}, rec.Size)
	case "image":
		item = sketch.NewImage(rec.Source, decodeRect(rec.Geom))
	default:
		return nil, fmt.Errorf("project: unknown item kind %q", rec.Kind)
	}
	item.SetPosition(decodePoint(rec.Position))
	item.SetTransform(decodeMatrix(rec.Transform))
	paint, err := decodePaint(rec.Paint)
	if err != nil {
		return nil, err
	}
	item.SetPaint(paint)
	return item, nil
}

func encodePaint(p sketch.PaintSpec) PaintRecord {
	switch v := p.(type) {
	case sketch.StrokePaint:
		return PaintRecord{Kind: "stroke", Color: encodeColor(v.Color), Width: v.Width}
	case sketch.FillPaint:
		return PaintRecord{Kind: "fill", Color: encodeColor(v.Color)}
	case sketch.TintPaint:
		return PaintRecord{Kind: "tint", Color: encodeColor(v.Color), Strength: v.Strength}
	case sketch.ThemePaint:
		return PaintRecord{Kind: "theme", Name: v.Name}
	default:
		return PaintRecord{Kind: "fill"}
	}
}

func decodePaint(rec PaintRecord) (sketch.PaintSpec, error) {
	switch rec.Kind {
	case "stroke":
		return sketch.Stroke(decodeColor(rec.Color), rec.Width), nil
	case "fill":
		return sketch.Fill(decodeColor(rec.Color)), nil
	case "tint":
		return sketch.Tint(decodeColor(rec.Color), rec.Strength), nil
	case "theme":
		return sketch.Theme(rec.Name), nil
	default:
		return nil, fmt.Errorf("project: unknown paint kind %q", rec.Kind)
	}
}

func encodePoint(p sketch.Point) [2]float64 {
	return [2]float64{p.X, p.Y}
}

func decodePoint(v [2]float64) sketch.Point {
	return sketch.Point{X: v[0], Y: v[1]}
}

func encodeMatrix(m sketch.Matrix) [6]float64 {
	return [6]float64{m.A, m.B, m.C, m.D, m.E, m.F}
}

func decodeMatrix(v [6]float64) sketch.Matrix {
	return sketch.Matrix{A: v[0], B: v[1], C: v[2], D: v[3], E: v[4], F: v[5]}
}

func encodeColor(c sketch.RGBA) [4]float64 {
	return [4]float64{c.R, c.G, c.B, c.A}
}

func decodeColor(v [4]float64) sketch.RGBA {
	return sketch.RGBA{R: v[0], G: v[1], B: v[2], A: v[3]}
}

func encodeRect(r sketch.Rect) *[4]float64 {
	return &[4]float64{r.Min.X, r.Min.Y, r.Width(), r.Height()}
}

func decodeRect(v *[4]float64) sketch.Rect {
	if v == nil {
		return sketch.Rect{}
	}
	return sketch.RectXYWH(v[0], v[1], v[2], v[3])
}

func shapeKindName(k sketch.ShapeKind) string {
	switch k {
	case sketch.ShapeEllipse:
		return "ellipse"
	case sketch.ShapeLine:
		return "line"
	default:
		return "rectangle"
	}
}

func shapeKind(name string) (sketch.ShapeKind, error) {
	switch name {
	case "rectangle", "":
		return sketch.ShapeRectangle, nil
	case "ellipse":
		return sketch.ShapeEllipse, nil
	case "line":
		return sketch.ShapeLine, nil
	default:
		return 0, fmt.Errorf("project: unknown shape kind %q", name)
	}
}
