package render

import (
	"image/color"
	"testing"

	"kryon/pkg/layout"
	"kryon/pkg/table"
)

func coloredLeaf(w, h float64, c color.RGBA) *layout.Node {
	n := layout.NewNode(layout.KindLeaf)
	n.Width = layout.Px(w)
	n.Height = layout.Px(h)
	n.Visual = &layout.Visual{Background: c}
	return n
}

func pixel(t *testing.T, r *Renderer, x, y int) color.RGBA {
	t.Helper()
	cr, cg, cb, ca := r.Image().At(x, y).RGBA()
	return color.RGBA{R: uint8(cr >> 8), G: uint8(cg >> 8), B: uint8(cb >> 8), A: uint8(ca >> 8)}
}

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

func TestRenderBackground(t *testing.T) {
	root := layout.NewNode(layout.KindColumn)
	root.AppendChild(coloredLeaf(20, 20, red))

	if err := layout.NewEngine(40, 40).LayoutTree(root); err != nil {
		t.Fatalf("LayoutTree: %v", err)
	}
	r := NewRenderer(40, 40)
	if err := r.Render(root); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := pixel(t, r, 5, 5); got != red {
		t.Errorf("pixel inside the leaf = %v, want red", got)
	}
	if got := pixel(t, r, 30, 30); got.R != 255 || got.G != 255 || got.B != 255 {
		t.Errorf("pixel outside the leaf = %v, want the white clear color", got)
	}
}

func TestRenderZOrder(t *testing.T) {
	root := layout.NewNode(layout.KindBox)
	top := coloredLeaf(20, 20, blue)
	top.Position = layout.PositionAbsolute
	top.ZIndex = 2
	bottom := coloredLeaf(20, 20, red)
	bottom.Position = layout.PositionAbsolute
	root.AppendChild(top)
	root.AppendChild(bottom)

	if err := layout.NewEngine(40, 40).LayoutTree(root); err != nil {
		t.Fatalf("LayoutTree: %v", err)
	}
	r := NewRenderer(40, 40)
	if err := r.Render(root); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := pixel(t, r, 10, 10); got != blue {
		t.Errorf("overlap pixel = %v, want the higher z-index blue", got)
	}
}

func TestRenderStaleAborts(t *testing.T) {
	root := layout.NewNode(layout.KindBox)
	if err := NewRenderer(10, 10).Render(root); err == nil {
		t.Fatal("rendering an unplaced tree should fail")
	}
}

func TestDragOverlayShiftsPaintOnly(t *testing.T) {
	root := layout.NewNode(layout.KindBox)
	dragged := coloredLeaf(10, 10, red)
	dragged.Position = layout.PositionAbsolute
	root.AppendChild(dragged)

	if err := layout.NewEngine(40, 40).LayoutTree(root); err != nil {
		t.Fatalf("LayoutTree: %v", err)
	}
	r := NewRenderer(40, 40)
	r.SetDragOverlay(dragged, 20, 20)
	if err := r.Render(root); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := pixel(t, r, 25, 25); got != red {
		t.Errorf("shifted pixel = %v, want red painted at the drag offset", got)
	}
	if got := pixel(t, r, 5, 5); got == red {
		t.Error("original position should not be painted while dragging")
	}

	// Geometry is untouched: the node still hit-tests at its layout rect.
	if hit := layout.FindNodeAt(root, 5, 5); hit != dragged {
		t.Error("drag overlay must not move the node's computed geometry")
	}

	r.ClearDragOverlay()
	if err := r.Render(root); err != nil {
		t.Fatalf("Render after clear: %v", err)
	}
	if got := pixel(t, r, 5, 5); got != red {
		t.Errorf("pixel after clearing overlay = %v, want red at the layout rect", got)
	}
}

func TestDragOverlayResolvesRelativeBase(t *testing.T) {
	cell1 := layout.NewNode(layout.KindLeaf)
	cell1.Width = layout.Px(10)
	cell1.Height = layout.Px(10)
	cell2 := coloredLeaf(10, 10, red)
	row1 := layout.NewNode(layout.KindRow)
	row1.AppendChild(cell1)
	row2 := layout.NewNode(layout.KindRow)
	row2.AppendChild(cell2)
	tbl := layout.NewNode(layout.KindTable)
	tbl.AppendChild(row1)
	tbl.AppendChild(row2)

	root := layout.NewNode(layout.KindColumn)
	root.Padding = layout.Uniform(5)
	root.AppendChild(tbl)

	eng := layout.NewEngine(40, 40)
	eng.SetTableLayout(&table.Engine{})
	if err := eng.LayoutTree(root); err != nil {
		t.Fatalf("LayoutTree: %v", err)
	}

	// The second row sits at (5, 15) in surface coordinates, written as
	// relative (0, 10) by the table delegate. Dragging it by (20, 0) must
	// paint at (25, 15), not at the raw relative coordinates.
	r := NewRenderer(40, 40)
	r.SetDragOverlay(row2, 20, 0)
	if err := r.Render(root); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := pixel(t, r, 32, 22); got != red {
		t.Errorf("dragged row pixel = %v, want red at the ancestor-resolved offset", got)
	}
	if got := pixel(t, r, 21, 11); got == red {
		t.Error("nothing should paint where unresolved relative coordinates would land")
	}
}
