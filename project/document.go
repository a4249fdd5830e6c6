// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package project serializes a scene to a JSON project document and back.
//
// Item IDs are deliberately not persisted: a load mints fresh IDs through
// the normal registration path. What round-trips exactly is layer order,
// per-layer properties, and per-item geometry, transform and paint.
package project

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/editor"
	"github.com/gogpu/sketch/layer"
)

// Version is the current project document version.
const Version = 1

// Document is the on-disk form of a whole project.
type Document struct {
	Version int           `json:"version"`
	Layers  []LayerRecord `json:"layers"`
}

// LayerRecord is the on-disk form of one layer, bottom to top.
type LayerRecord struct {
	Name    string       `json:"name"`
	Kind    string       `json:"kind"`
	Visible bool         `json:"visible"`
	Locked  bool         `json:"locked"`
	Opacity float64      `json:"opacity"`
	Items   []ItemRecord `json:"items"`
}

// ItemRecord is the on-disk form of one item. Kind selects which of the
// optional fields are meaningful.
type ItemRecord struct {
	Kind      string      `json:"kind"`
	Position  [2]float64  `json:"position"`
	Transform [6]float64  `json:"transform"`
	Paint     PaintRecord `json:"paint"`

	Points [][2]float64 `json:"points,omitempty"` // stroke
	Shape  string       `json:"shape,omitempty"`  // shape
	Geom   *[4]float64  `json:"geom,omitempty"`   // shape, image: x, y, w, h
	Text   string       `json:"text,omitempty"`   // text
	Size   float64      `json:"size,omitempty"`   // text
	Source string       `json:"source,omitempty"` // image
}

// PaintRecord is the tagged on-disk form of the paint union.
type PaintRecord struct {
	Kind     string     `json:"kind"`
	Color    [4]float64 `json:"color"`
	Width    float64    `json:"width,omitempty"`
	Strength float64    `json:"strength,omitempty"`
	Name     string     `json:"name,omitempty"`
}

// Snapshot captures the controller's scene as a Document: layers in paint
// order, each with its live members in layer order.
func Snapshot(c *editor.Controller) *Document {
	doc := &Document{Version: Version}
	mgr := c.Layers()
	for i := 0; i < mgr.LayerCount(); i++ {
		l := mgr.LayerAt(i)
		rec := LayerRecord{
			Name:    l.Name(),
			Kind:    layerKindName(l.Kind()),
			Visible: l.Visible(),
			Locked:  l.Locked(),
			Opacity: l.Opacity(),
		}
		for _, id := range l.ItemIDs() {
			item := c.Store().Resolve(id)
			if item == nil {
				continue
			}
			rec.Items = append(rec.Items, encodeItem(item))
		}
		doc.Layers = append(doc.Layers, rec)
	}
	return doc
}

// Apply replaces the controller's scene with the document's contents.
// The existing scene is cleared and flushed first; afterwards the history
// is empty and the bottom layer is active. Fresh IDs are minted for every
// item.
func (d *Document) Apply(c *editor.Controller) error {
	if d.Version > Version {
		return fmt.Errorf("project: unsupported document version %d", d.Version)
	}
	c.ClearAll()
	for _, rec := range d.Layers {
		kind, err := layerKind(rec.Kind)
		if err != nil {
			return err
		}
		l := c.Layers().CreateLayer(rec.Name, kind)
		l.SetLocked(rec.Locked)
		for _, ir := range rec.Items {
			item, err := decodeItem(ir)
			if err != nil {
				return err
			}
			c.AddItem(item, l)
		}
		// Flags cascade to the members just added.
		l.SetVisible(rec.Visible)
		l.SetOpacity(rec.Opacity)
	}
	if len(d.Layers) > 0 {
		// Drop the placeholder layer ClearAll installed at the bottom.
		c.Layers().DeleteLayer(0)
		c.Layers().SetActiveIndex(0)
	}
	c.History().Clear()
	c.FlushPending()
	sketch.Logger().Info("project: document applied", "layers", len(d.Layers))
	return nil
}

// Save writes the document as indented JSON.
func Save(w io.Writer, d *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("project: encode: %w", err)
	}
	return nil
}

// Load reads a document from JSON.
func Load(r io.Reader) (*Document, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("project: decode: %w", err)
	}
	if d.Version > Version {
		return nil, fmt.Errorf("project: unsupported document version %d", d.Version)
	}
	return &d, nil
}

func layerKindName(k layer.Kind) string {
	switch k {
	case layer.KindRaster:
		return "raster"
	case layer.KindMixed:
		return "mixed"
	default:
		return "vector"
	}
}

func layerKind(name string) (layer.Kind, error) {
	switch name {
	case "vector", "":
		return layer.KindVector, nil
	case "raster":
		return layer.KindRaster, nil
	case "mixed":
		return layer.KindMixed, nil
	default:
		return 0, fmt.Errorf("project: unknown layer kind %q", name)
	}
}
