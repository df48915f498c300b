package text

import (
	"github.com/fogleman/gg"

	"kryon/pkg/layout"
)

// Paint draws the wrapped label into its content rect in black. When the
// font file cannot be loaded nothing is drawn; the node still occupies its
// measured space.
func (l Label) Paint(dc *gg.Context, r layout.Rect) {
	size := l.size()
	if err := dc.LoadFontFace(l.fontPath(), size); err != nil {
		return
	}
	dc.SetRGB(0, 0, 0)
	lineHeight := l.lineHeight()
	y := r.Y + size
	for _, line := range l.Lines(r.Width) {
		if y-size > r.Y+r.Height {
			break
		}
		dc.DrawString(line, r.X, y)
		y += lineHeight
	}
}

// Paint draws button chrome and the label inside it.
func (b Button) Paint(dc *gg.Context, r layout.Rect) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	dc.SetRGB255(235, 235, 235)
	dc.DrawRoundedRectangle(r.X, r.Y, r.Width, r.Height, 4)
	dc.Fill()
	dc.SetRGB255(120, 120, 120)
	dc.SetLineWidth(1)
	dc.DrawRoundedRectangle(r.X, r.Y, r.Width, r.Height, 4)
	dc.Stroke()

	inner := layout.Rect{
		X:      r.X + buttonPadX,
		Y:      r.Y + buttonPadY,
		Width:  r.Width - 2*buttonPadX,
		Height: r.Height - 2*buttonPadY,
	}
	if inner.Width < 0 {
		inner.Width = 0
	}
	if inner.Height < 0 {
		inner.Height = 0
	}
	b.Label.Paint(dc, inner)
}
