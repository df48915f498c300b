package layout

import "fmt"

// Node is one element of the layout tree. Style fields are plain exported
// data set before a pass; the computed slot is engine-owned and read through
// Layout.
type Node struct {
	Kind NodeKind

	// ID is an optional author-assigned identifier, surfaced in trace
	// output and stale-read errors.
	ID string

	Width  Dimension
	Height Dimension

	// Min/max constraints; Auto means unconstrained.
	MinWidth  Dimension
	MinHeight Dimension
	MaxWidth  Dimension
	MaxHeight Dimension

	Padding Spacing
	Margin  Spacing

	Justify Alignment
	Align   Alignment
	Gap     float64

	FlexGrow   float64
	FlexShrink float64

	Position PositionMode
	Left     float64
	Top      float64
	ZIndex   int

	// Content measures leaf nodes. Ignored on containers.
	Content Content

	// Visual is paint data for the render collaborator; layout never reads it.
	Visual *Visual

	parent   *Node
	children []*Node
	computed ComputedLayout
}

// NewNode returns a node of the given kind with all-Auto dimensions.
func NewNode(kind NodeKind) *Node {
	return &Node{Kind: kind}
}

// NewLeaf returns a leaf node measured through the given content.
func NewLeaf(content Content) *Node {
	return &Node{Kind: KindLeaf, Content: content}
}

// AppendChild adds child as the last child of n and sets its parent
// back-reference. A child already attached elsewhere is detached first;
// the tree stays a tree. Any structural mutation invalidates the whole
// tree: pre-mutation geometry must never survive to be read.
func (n *Node) AppendChild(child *Node) *Node {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
	n.invalidateTree()
	return n
}

// RemoveChild detaches child from n, invalidating both the detached
// subtree and the tree it left; their geometry was computed against a
// structure that no longer exists. It is a no-op when child is not a
// direct child of n.
func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			child.invalidate()
			n.invalidateTree()
			return
		}
	}
}

// Children returns the child slice in declaration order. Callers must not
// mutate it.
func (n *Node) Children() []*Node { return n.children }

// Parent returns the node's parent, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Layout returns the node's computed geometry. It fails with a
// *StaleLayoutError when no placement pass has visited this node since the
// last invalidation.
func (n *Node) Layout() (ComputedLayout, error) {
	if !n.computed.Valid {
		return ComputedLayout{}, &StaleLayoutError{Node: n}
	}
	return n.computed, nil
}

// MustLayout is like Layout but panics on a stale read. Use it where the
// caller has just run a pass and staleness would be a programming error.
func (n *Node) MustLayout() ComputedLayout {
	c, err := n.Layout()
	if err != nil {
		panic(err)
	}
	return c
}

// SetRelativeBounds stores parent-relative geometry for n and marks it
// valid. Sub-layout delegates call this for every node of the subtree they
// own; the driver never overwrites delegate-written bounds within a pass.
func (n *Node) SetRelativeBounds(x, y, width, height float64) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	n.computed = ComputedLayout{X: x, Y: y, Width: width, Height: height, Relative: true, Valid: true}
}

// setBounds stores absolute geometry, used by the placement driver.
func (n *Node) setBounds(x, y, width, height float64) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	n.computed = ComputedLayout{X: x, Y: y, Width: width, Height: height, Valid: true}
}

// invalidate clears the computed slots of n and its whole subtree.
func (n *Node) invalidate() {
	n.computed = ComputedLayout{}
	for _, c := range n.children {
		c.invalidate()
	}
}

// root walks parent references to the tree root.
func (n *Node) root() *Node {
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// invalidateTree conservatively invalidates every node of the tree
// containing n. There is no incremental relayout; the next pass recomputes
// everything.
func (n *Node) invalidateTree() { n.root().invalidate() }

// NearestAncestor walks parent references from n (exclusive) toward the
// root and returns the first ancestor of the given kind, or nil.
func NearestAncestor(n *Node, kind NodeKind) *Node {
	for p := n.parent; p != nil; p = p.parent {
		if p.Kind == kind {
			return p
		}
	}
	return nil
}

// describe renders a short identity for errors and traces.
func (n *Node) describe() string {
	if n.ID != "" {
		return fmt.Sprintf("%s %q", n.Kind, n.ID)
	}
	return fmt.Sprintf("%s %p", n.Kind, n)
}

// constraintValue resolves a min/max constraint against the available
// size. Auto and flex constraints do not bind; neither does a percent
// constraint under an unresolved ancestor.
func constraintValue(d Dimension, available float64) (float64, bool) {
	switch d.Kind {
	case DimPixels:
		return d.Value, true
	case DimPercent:
		if available < 0 {
			return 0, false
		}
		return available * d.Value / 100, true
	}
	return 0, false
}

// clampAxis applies min and max constraints to a size. Min wins when they
// conflict; the result is never negative.
func clampAxis(v float64, min, max Dimension, available float64) float64 {
	if mx, ok := constraintValue(max, available); ok && v > mx {
		v = mx
	}
	if mn, ok := constraintValue(min, available); ok && v < mn {
		v = mn
	}
	if v < 0 {
		v = 0
	}
	return v
}
