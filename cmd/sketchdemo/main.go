// Command sketchdemo exercises the sketch scene model end to end:
// it builds a small two-layer drawing, edits it with undo/redo, and saves
// the result as a JSON project file.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/editor"
	"github.com/gogpu/sketch/layer"
	"github.com/gogpu/sketch/project"
)

func main() {
	var (
		output  = flag.String("output", "demo.sketch.json", "output project file")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		sketch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	c := editor.NewController()

	// Background shapes on the default layer.
	bg, _ := c.AddItem(sketch.NewShape(sketch.ShapeRectangle, sketch.RectXYWH(0, 0, 800, 600)), nil)
	c.RecolorItem(bg, sketch.Theme("lavender"))

	// Ink goes on its own layer above.
	ink := c.Layers().CreateLayer("Ink", layer.KindVector)
	stroke, _ := c.AddItem(sketch.NewStroke([]sketch.Point{
		sketch.Pt(0, 0), sketch.Pt(40, 25), sketch.Pt(90, 10), sketch.Pt(140, 60),
	}), ink)
	c.RecolorItem(stroke, sketch.Stroke(sketch.RGB(0.1, 0.1, 0.4), 3))

	label, _ := c.AddItem(sketch.NewText("hello, sketch", sketch.Pt(120, 80), 18), ink)

	// Nudge the stroke around, then change our mind about the last nudge.
	c.MoveItem(stroke, sketch.Pt(10, 10))
	c.MoveItem(stroke, sketch.Pt(20, 20))
	c.Undo()

	// Remove the label and bring it back.
	c.RemoveItem(label, true)
	c.Undo()

	// Host safe point: drain any pending deletions.
	if n := c.FlushPending(); n > 0 {
		log.Printf("flushed %d items", n)
	}

	doc := project.Snapshot(c)
	if err := project.SaveFile(*output, doc); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo project saved to %s (%d layers, %d live items)",
		*output, c.Layers().LayerCount(), c.Store().LiveCount())
}
