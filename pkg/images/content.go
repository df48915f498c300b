package images

import (
	"image"

	"github.com/fogleman/gg"

	"kryon/pkg/layout"
)

// Image is picture content for leaf layout nodes. It reports the picture's
// natural size, scaled down proportionally when a wrap constraint is
// narrower than the picture; it never scales up.
type Image struct {
	Source string
	Width  float64
	Height float64

	img image.Image
}

// FromFile decodes the image at source (a path or data: URI) and returns
// content sized to its natural bounds.
func FromFile(source string) (*Image, error) {
	img, err := LoadImage(source)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	return &Image{
		Source: source,
		Width:  float64(b.Dx()),
		Height: float64(b.Dy()),
		img:    img,
	}, nil
}

// Decoded returns the decoded pixels, or nil for an Image constructed
// directly from dimensions.
func (im *Image) Decoded() image.Image { return im.img }

// Measure reports the display size under the wrap constraint, keeping the
// aspect ratio.
func (im *Image) Measure(maxWidth float64) (width, height float64) {
	w, h := im.Width, im.Height
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if maxWidth >= 0 && w > maxWidth {
		if w > 0 {
			h = h * maxWidth / w
		}
		w = maxWidth
	}
	return w, h
}

// NoStretch keeps the aspect-corrected size under align-stretch.
func (im *Image) NoStretch() bool { return true }

// Paint draws the decoded pixels scaled into the content rect.
func (im *Image) Paint(dc *gg.Context, r layout.Rect) {
	if im.img == nil || r.Width <= 0 || r.Height <= 0 {
		return
	}
	b := im.img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	dc.Push()
	dc.Translate(r.X, r.Y)
	dc.Scale(r.Width/float64(b.Dx()), r.Height/float64(b.Dy()))
	dc.DrawImage(im.img, 0, 0)
	dc.Pop()
}
