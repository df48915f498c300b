package text

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/fogleman/gg"
)

// FontConfig holds paths to font files used for text measurement and rendering.
type FontConfig struct {
	Regular    string
	Bold       string
	Italic     string
	BoldItalic string
	Monospace  string
}

// defaultFontsDir returns the fonts directory relative to this source file.
func defaultFontsDir() string {
	// Try relative to executable first
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Join(filepath.Dir(exe), "..", "fonts")
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	// Fall back to compile-time source location
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "fonts")
}

// DefaultFontConfig returns a FontConfig using the bundled Atkinson Hyperlegible fonts.
func DefaultFontConfig() FontConfig {
	dir := defaultFontsDir()
	return FontConfig{
		Regular:    filepath.Join(dir, "AtkinsonHyperlegible-Regular.ttf"),
		Bold:       filepath.Join(dir, "AtkinsonHyperlegible-Bold.ttf"),
		Italic:     filepath.Join(dir, "AtkinsonHyperlegible-Italic.ttf"),
		BoldItalic: filepath.Join(dir, "AtkinsonHyperlegible-BoldItalic.ttf"),
		Monospace:  filepath.Join(dir, "AtkinsonHyperlegibleMono-Regular.otf"),
	}
}

// FontPath returns the font path for the given style combination.
func (fc FontConfig) FontPath(bold, italic, mono bool) string {
	if mono && fc.Monospace != "" {
		return fc.Monospace
	}
	if bold && italic && fc.BoldItalic != "" {
		return fc.BoldItalic
	}
	if bold {
		return fc.Bold
	}
	if italic && fc.Italic != "" {
		return fc.Italic
	}
	return fc.Regular
}

// faceMeasurer measures string widths for one font face and size. When the
// font file cannot be loaded it degrades to a per-rune estimate of half the
// font size, so measurement stays deterministic on headless machines.
type faceMeasurer struct {
	width func(s string) float64
}

func newFaceMeasurer(fontPath string, fontSize float64) faceMeasurer {
	dc := gg.NewContext(1, 1)
	if err := dc.LoadFontFace(fontPath, fontSize); err != nil {
		return faceMeasurer{width: func(s string) float64 {
			return float64(len([]rune(s))) * fontSize * 0.5
		}}
	}
	return faceMeasurer{width: func(s string) float64 {
		w, _ := dc.MeasureString(s)
		return w
	}}
}

// MeasureText measures the width and height of a single line of text.
func MeasureText(text string, fontSize float64, fontPath string) (width, height float64) {
	m := newFaceMeasurer(fontPath, fontSize)
	return m.width(text), fontSize * lineHeightFactor
}

// lineHeightFactor converts a font size into a default line height.
const lineHeightFactor = 1.2

// BreakTextIntoLines word-wraps text so every line fits within maxWidth.
// Explicit newlines always break; maxWidth < 0 disables wrapping. A single
// word wider than maxWidth gets its own overflowing line rather than being
// split mid-word.
func BreakTextIntoLines(text string, fontSize float64, fontPath string, maxWidth float64) []string {
	m := newFaceMeasurer(fontPath, fontSize)
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		lines = append(lines, wrapLine(para, m, maxWidth)...)
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

func wrapLine(para string, m faceMeasurer, maxWidth float64) []string {
	if maxWidth < 0 || m.width(para) <= maxWidth {
		return []string{para}
	}
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{para}
	}

	var lines []string
	current := ""
	for _, word := range words {
		test := word
		if current != "" {
			test = current + " " + word
		}
		if m.width(test) <= maxWidth || current == "" {
			current = test
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
