package layout

// LayoutTree runs a full pass over the tree rooted at root, fitting it to
// the engine's viewport at origin (0, 0). The whole tree is invalidated
// first; on error, every node the pass did not reach reports stale.
func (e *Engine) LayoutTree(root *Node) error {
	return e.LayoutTreeIn(root, Rect{Width: e.viewport.width, Height: e.viewport.height})
}

// LayoutTreeIn is LayoutTree against explicit bounds. An Auto root axis
// fills the bounds rather than shrinking to content, so a default tree
// occupies the window it was given.
func (e *Engine) LayoutTreeIn(root *Node, bounds Rect) error {
	if root == nil {
		return ErrNilRoot
	}
	root.invalidate()

	w, known := root.Width.resolve(bounds.Width)
	if !known || root.Width.Kind == DimFlex {
		w = bounds.Width
	}
	h, known := root.Height.resolve(bounds.Height)
	if !known || root.Height.Kind == DimFlex {
		h = bounds.Height
	}
	w = clampAxis(w, root.MinWidth, root.MaxWidth, bounds.Width)
	h = clampAxis(h, root.MinHeight, root.MaxHeight, bounds.Height)

	root.setBounds(bounds.X, bounds.Y, w, h)
	return e.place(root)
}

// place positions the children of n inside n's already-computed rect and
// recurses. Delegated subtrees are handed off whole.
func (e *Engine) place(n *Node) error {
	c := n.computed
	e.tracef("place %s at (%.1f, %.1f) %.1fx%.1f", n.describe(), c.X, c.Y, c.Width, c.Height)

	contentX := c.X + clampEdge(n.Padding.Left)
	contentY := c.Y + clampEdge(n.Padding.Top)
	contentW := c.Width - n.Padding.Horizontal()
	contentH := c.Height - n.Padding.Vertical()
	if contentW < 0 {
		contentW = 0
	}
	if contentH < 0 {
		contentH = 0
	}

	switch n.Kind {
	case KindLeaf:
		return nil

	case KindTable:
		if e.tables == nil {
			return &MissingSubLayoutError{Node: n}
		}
		if err := e.tables.Layout(n, contentW, contentH); err != nil {
			return &SubLayoutError{Node: n, Err: err}
		}
		return nil

	case KindCenter:
		return e.placeCenter(n, contentX, contentY, contentW, contentH)

	default:
		return e.placeFlow(n, contentX, contentY, contentW, contentH)
	}
}

// placeFlow lays out a row/column/box container: in-flow children go
// through grow/shrink distribution and justify/align placement; absolute
// children are positioned from their own offsets afterwards.
func (e *Engine) placeFlow(n *Node, contentX, contentY, contentW, contentH float64) error {
	var flow []*Node
	for _, child := range n.children {
		if child.Position == PositionAbsolute {
			continue
		}
		flow = append(flow, child)
	}

	horizontal := n.Kind.horizontal()
	if len(flow) > 0 {
		contentMain, contentCross := contentH, contentW
		if horizontal {
			contentMain, contentCross = contentW, contentH
		}
		for _, p := range distribute(n, flow, contentMain, contentCross, horizontal) {
			child := p.node
			var x, y, w, h float64
			if horizontal {
				x = contentX + p.mainOffset + clampEdge(child.Margin.Left)
				y = contentY + p.crossOffset + clampEdge(child.Margin.Top)
				w, h = p.mainSize, p.crossSize
			} else {
				x = contentX + p.crossOffset + clampEdge(child.Margin.Left)
				y = contentY + p.mainOffset + clampEdge(child.Margin.Top)
				w, h = p.crossSize, p.mainSize
			}
			child.setBounds(x, y, w, h)
			if err := e.place(child); err != nil {
				return err
			}
		}
	}

	for _, child := range n.children {
		if child.Position != PositionAbsolute {
			continue
		}
		if err := e.placeAbsolute(child, contentX, contentY, contentW, contentH); err != nil {
			return err
		}
	}
	return nil
}

// placeCenter centers each in-flow child on both axes of the content box,
// ignoring the container's justify and align settings. A child larger than
// the content box falls back to the content origin instead of going
// negative.
func (e *Engine) placeCenter(n *Node, contentX, contentY, contentW, contentH float64) error {
	for _, child := range n.children {
		if child.Position == PositionAbsolute {
			if err := e.placeAbsolute(child, contentX, contentY, contentW, contentH); err != nil {
				return err
			}
			continue
		}
		cw, ch := Measure(child, contentW, contentH)
		dx := (contentW - cw - child.Margin.Horizontal()) / 2
		dy := (contentH - ch - child.Margin.Vertical()) / 2
		if dx < 0 {
			dx = 0
		}
		if dy < 0 {
			dy = 0
		}
		child.setBounds(
			contentX+dx+clampEdge(child.Margin.Left),
			contentY+dy+clampEdge(child.Margin.Top),
			cw, ch)
		if err := e.place(child); err != nil {
			return err
		}
	}
	return nil
}

// placeAbsolute positions an out-of-flow child from its Left/Top offsets,
// relative to the parent's content origin. Absolute children never affect
// sibling layout or the parent's size.
func (e *Engine) placeAbsolute(child *Node, contentX, contentY, contentW, contentH float64) error {
	cw, ch := Measure(child, contentW, contentH)
	child.setBounds(contentX+child.Left, contentY+child.Top, cw, ch)
	return e.place(child)
}
