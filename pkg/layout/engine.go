package layout

import (
	"fmt"
	"io"
)

// SubLayout lays out the subtree of a delegated node. The node's own rect
// is already computed when Layout is called; the delegate owns everything
// below it and must write parent-relative geometry for each subtree node
// through SetRelativeBounds. contentWidth and contentHeight are the
// delegated node's content box.
type SubLayout interface {
	Layout(n *Node, contentWidth, contentHeight float64) error
}

// Engine runs layout passes against a viewport.
type Engine struct {
	viewport struct {
		width  float64
		height float64
	}
	trace  io.Writer
	tables SubLayout
}

// NewEngine creates a layout engine for the given viewport size.
func NewEngine(width, height float64) *Engine {
	e := &Engine{}
	e.SetViewport(width, height)
	return e
}

// SetViewport updates the viewport used by LayoutTree.
func (e *Engine) SetViewport(width, height float64) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	e.viewport.width = width
	e.viewport.height = height
}

// Viewport returns the current viewport size.
func (e *Engine) Viewport() (width, height float64) {
	return e.viewport.width, e.viewport.height
}

// SetTrace directs per-node placement tracing to w. Pass nil to disable.
func (e *Engine) SetTrace(w io.Writer) { e.trace = w }

// SetTableLayout registers the delegate invoked for KindTable nodes.
func (e *Engine) SetTableLayout(s SubLayout) { e.tables = s }

func (e *Engine) tracef(format string, args ...interface{}) {
	if e.trace != nil {
		fmt.Fprintf(e.trace, format+"\n", args...)
	}
}
