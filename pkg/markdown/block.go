// Package markdown provides markdown document content for leaf layout
// nodes: a parsed document contributes a height estimate from its block
// structure, using the same text measurement the plain labels use.
package markdown

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"

	"kryon/pkg/text"
)

// Block is measurable markdown content. Headings, paragraphs, lists, code
// blocks, and thematic breaks contribute height; inline formatting only
// affects which font file measures a run.
type Block struct {
	Source string

	// Fonts overrides text.DefaultFontConfig when non-zero.
	Fonts text.FontConfig

	// BaseSize is the paragraph font size; 0 means text.DefaultFontSize.
	BaseSize float64
}

const (
	blockGap      = 8
	listIndent    = 24
	codePadding   = 8
	breakHeight   = 17
	codeLineScale = 1.3
)

func (b Block) baseSize() float64 {
	if b.BaseSize > 0 {
		return b.BaseSize
	}
	return text.DefaultFontSize
}

func (b Block) headingSize(level int) float64 {
	base := b.baseSize()
	switch level {
	case 1:
		return base * 2
	case 2:
		return base * 1.5
	case 3:
		return base * 1.25
	default:
		return base
	}
}

// Measure parses the source and sums per-block heights at the wrap
// constraint. Width is the constraint itself when one is given, otherwise
// the widest measured run.
func (b Block) Measure(maxWidth float64) (width, height float64) {
	src := []byte(b.Source)
	doc := goldmark.New().Parser().Parse(gmtext.NewReader(src))

	var widest, total float64
	blocks := 0
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		w, h := b.measureBlock(n, src, maxWidth)
		if h <= 0 {
			continue
		}
		if w > widest {
			widest = w
		}
		total += h
		blocks++
	}
	if blocks > 1 {
		total += blockGap * float64(blocks-1)
	}

	// A document flows to fill the column it was given; the widest run
	// only matters when no constraint exists.
	if maxWidth >= 0 {
		widest = maxWidth
	}
	return widest, total
}

func (b Block) measureBlock(n ast.Node, src []byte, maxWidth float64) (float64, float64) {
	switch v := n.(type) {
	case *ast.Heading:
		return b.label(string(v.Text(src)), b.headingSize(v.Level), true, false).Measure(maxWidth)

	case *ast.Paragraph, *ast.TextBlock:
		return b.label(string(n.Text(src)), b.baseSize(), false, false).Measure(maxWidth)

	case *ast.List:
		var widest, total float64
		inner := maxWidth
		if inner >= 0 {
			if inner -= listIndent; inner < 0 {
				inner = 0
			}
		}
		for item := v.FirstChild(); item != nil; item = item.NextSibling() {
			w, h := b.label(string(item.Text(src)), b.baseSize(), false, false).Measure(inner)
			if w+listIndent > widest {
				widest = w + listIndent
			}
			total += h
		}
		return widest, total

	case *ast.FencedCodeBlock:
		return b.measureCode(v.Lines(), src)

	case *ast.CodeBlock:
		return b.measureCode(v.Lines(), src)

	case *ast.Blockquote:
		var widest, total float64
		inner := maxWidth
		if inner >= 0 {
			if inner -= listIndent; inner < 0 {
				inner = 0
			}
		}
		for child := v.FirstChild(); child != nil; child = child.NextSibling() {
			w, h := b.measureBlock(child, src, inner)
			if w+listIndent > widest {
				widest = w + listIndent
			}
			total += h
		}
		return widest, total

	case *ast.ThematicBreak:
		return 0, breakHeight
	}
	return 0, 0
}

func (b Block) measureCode(lines *gmtext.Segments, src []byte) (float64, float64) {
	size := b.baseSize()
	label := b.label("", size, false, true)
	var widest float64
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		label.Text = string(seg.Value(src))
		if w, _ := label.Measure(-1); w > widest {
			widest = w
		}
	}
	height := float64(lines.Len())*size*codeLineScale + 2*codePadding
	return widest + 2*codePadding, height
}

func (b Block) label(s string, size float64, bold, mono bool) text.Label {
	return text.Label{Text: s, Size: size, Bold: bold, Mono: mono, Fonts: b.Fonts}
}

// NoStretch keeps the wrapped document at its measured size.
func (b Block) NoStretch() bool { return true }
