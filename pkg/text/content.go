package text

// Label is wrappable text content for leaf layout nodes. Zero values pick
// usable defaults: DefaultFontConfig fonts, 16px size, 1.2x line height.
type Label struct {
	Text   string
	Size   float64
	Bold   bool
	Italic bool
	Mono   bool

	// Fonts overrides DefaultFontConfig when non-zero.
	Fonts FontConfig

	// LineHeight overrides the default Size * 1.2 when positive.
	LineHeight float64
}

// DefaultFontSize is used when a Label does not set one.
const DefaultFontSize = 16

func (l Label) size() float64 {
	if l.Size > 0 {
		return l.Size
	}
	return DefaultFontSize
}

func (l Label) fontPath() string {
	fonts := l.Fonts
	if fonts == (FontConfig{}) {
		fonts = DefaultFontConfig()
	}
	return fonts.FontPath(l.Bold, l.Italic, l.Mono)
}

func (l Label) lineHeight() float64 {
	if l.LineHeight > 0 {
		return l.LineHeight
	}
	return l.size() * lineHeightFactor
}

// Lines returns the label's text wrapped at maxWidth; maxWidth < 0 means
// no wrapping.
func (l Label) Lines(maxWidth float64) []string {
	return BreakTextIntoLines(l.Text, l.size(), l.fontPath(), maxWidth)
}

// Measure reports the wrapped text extent: width of the widest line
// (capped at maxWidth when one is given) and line count times line height.
func (l Label) Measure(maxWidth float64) (width, height float64) {
	size := l.size()
	m := newFaceMeasurer(l.fontPath(), size)

	var widest float64
	lines := l.Lines(maxWidth)
	for _, line := range lines {
		if w := m.width(line); w > widest {
			widest = w
		}
	}
	if maxWidth >= 0 && widest > maxWidth {
		widest = maxWidth
	}
	return widest, float64(len(lines)) * l.lineHeight()
}

// NoStretch keeps wrapped text at its measured width under align-stretch;
// restretching would invalidate the line breaks.
func (l Label) NoStretch() bool { return true }

// Button chrome padding, per side.
const (
	buttonPadX = 16
	buttonPadY = 8
)

// Button is label content with fixed button chrome added around the text.
type Button struct {
	Label Label
}

// Measure reports the label extent plus chrome padding. The wrap
// constraint handed to the label is reduced by the horizontal chrome.
func (b Button) Measure(maxWidth float64) (width, height float64) {
	inner := maxWidth
	if inner >= 0 {
		if inner -= 2 * buttonPadX; inner < 0 {
			inner = 0
		}
	}
	w, h := b.Label.Measure(inner)
	return w + 2*buttonPadX, h + 2*buttonPadY
}

// NoStretch mirrors the wrapped label inside.
func (b Button) NoStretch() bool { return true }
