// Package render paints a laid-out node tree onto a raster surface. It is
// a pure consumer of the layout contracts: computed geometry, sibling
// paint order, relative-coordinate subtrees, and the drag overlay that
// repaints one node last without touching geometry.
package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"kryon/pkg/layout"
)

// Painter is the optional paint capability of leaf content. Paint receives
// the node's content rect in surface coordinates.
type Painter interface {
	Paint(dc *gg.Context, r layout.Rect)
}

// Renderer paints node trees onto one gg context.
type Renderer struct {
	context *gg.Context

	dragNode   *layout.Node
	dragX      float64
	dragY      float64
	background color.RGBA
}

// NewRenderer creates a renderer with a white surface of the given size.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		context:    gg.NewContext(width, height),
		background: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// SetBackground changes the clear color used at the start of each Render.
func (r *Renderer) SetBackground(c color.RGBA) { r.background = c }

// SetDragOverlay makes the given node (and its subtree) paint after
// everything else, shifted by (dx, dy). Geometry and hit testing are
// unaffected; this is the cursor-follow affordance for drags.
func (r *Renderer) SetDragOverlay(n *layout.Node, dx, dy float64) {
	r.dragNode = n
	r.dragX = dx
	r.dragY = dy
}

// ClearDragOverlay removes the overlay set by SetDragOverlay.
func (r *Renderer) ClearDragOverlay() {
	r.dragNode = nil
	r.dragX = 0
	r.dragY = 0
}

// Image returns the painted surface.
func (r *Renderer) Image() image.Image { return r.context.Image() }

// SavePNG writes the painted surface to a PNG file.
func (r *Renderer) SavePNG(path string) error { return r.context.SavePNG(path) }

// Render clears the surface and paints the tree. A stale layout read
// anywhere in the tree aborts the paint with that error; callers run a
// layout pass first.
func (r *Renderer) Render(root *layout.Node) error {
	r.context.SetRGBA255(int(r.background.R), int(r.background.G), int(r.background.B), int(r.background.A))
	r.context.Clear()

	if err := r.drawNode(root, 0, 0, 0, 0, true); err != nil {
		return err
	}
	if r.dragNode != nil {
		// The overlay entry point skips the normal walk, so the dragged
		// node's relative coordinates need their ancestor base resolved
		// here.
		baseX, baseY := 0.0, 0.0
		if p := r.dragNode.Parent(); p != nil {
			baseX, baseY = absoluteOrigin(p)
		}
		return r.drawNode(r.dragNode, baseX, baseY, r.dragX, r.dragY, false)
	}
	return nil
}

// absoluteOrigin resolves a node's origin in surface coordinates, unwinding
// any chain of relative-tagged ancestors. Stale nodes resolve to zero; the
// following paint aborts on them anyway.
func absoluteOrigin(n *layout.Node) (float64, float64) {
	c, err := n.Layout()
	if err != nil {
		return 0, 0
	}
	if !c.Relative || n.Parent() == nil {
		return c.X, c.Y
	}
	px, py := absoluteOrigin(n.Parent())
	return c.X + px, c.Y + py
}

// drawNode paints one node and recurses in sibling paint order. baseX and
// baseY resolve relative-tagged coordinates; shiftX and shiftY carry the
// drag-overlay displacement.
func (r *Renderer) drawNode(n *layout.Node, baseX, baseY, shiftX, shiftY float64, skipDrag bool) error {
	if skipDrag && n == r.dragNode {
		return nil
	}
	c, err := n.Layout()
	if err != nil {
		return err
	}

	x, y := c.X, c.Y
	if c.Relative {
		x += baseX
		y += baseY
	}
	rect := layout.Rect{X: x + shiftX, Y: y + shiftY, Width: c.Width, Height: c.Height}

	r.drawVisual(n.Visual, rect)
	if painter, ok := n.Content.(Painter); ok {
		painter.Paint(r.context, contentRect(n, rect))
	}

	for _, child := range layout.PaintOrder(n.Children()) {
		if err := r.drawNode(child, x, y, shiftX, shiftY, skipDrag); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) drawVisual(v *layout.Visual, rect layout.Rect) {
	if v == nil || rect.Width <= 0 || rect.Height <= 0 {
		return
	}
	if v.Background.A > 0 {
		r.context.SetRGBA255(int(v.Background.R), int(v.Background.G), int(v.Background.B), int(v.Background.A))
		r.context.DrawRectangle(rect.X, rect.Y, rect.Width, rect.Height)
		r.context.Fill()
	}
	if v.Border.A > 0 && v.BorderWidth > 0 {
		r.context.SetRGBA255(int(v.Border.R), int(v.Border.G), int(v.Border.B), int(v.Border.A))
		r.context.SetLineWidth(v.BorderWidth)
		r.context.DrawRectangle(rect.X, rect.Y, rect.Width, rect.Height)
		r.context.Stroke()
	}
}

// contentRect insets a node rect by its padding, clamping at zero.
func contentRect(n *layout.Node, rect layout.Rect) layout.Rect {
	out := layout.Rect{
		X:      rect.X + pos(n.Padding.Left),
		Y:      rect.Y + pos(n.Padding.Top),
		Width:  rect.Width - n.Padding.Horizontal(),
		Height: rect.Height - n.Padding.Vertical(),
	}
	if out.Width < 0 {
		out.Width = 0
	}
	if out.Height < 0 {
		out.Height = 0
	}
	return out
}

func pos(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
