package layout

// FindNodeAt returns the topmost node whose computed rect contains the
// point (x, y), or nil. Topmost means last in paint order: siblings are
// searched in descending z-index, later declaration winning ties. Nodes
// with relative geometry (delegated subtrees) are tested with their
// ancestors' origins applied. Unvisited nodes are skipped rather than
// erroring; a partial tree simply offers fewer targets.
func FindNodeAt(root *Node, x, y float64) *Node {
	if root == nil {
		return nil
	}
	return findAt(root, x, y, 0, 0)
}

func findAt(n *Node, x, y, offX, offY float64) *Node {
	c := n.computed
	if !c.Valid {
		return nil
	}
	rx, ry := c.X, c.Y
	if c.Relative {
		rx += offX
		ry += offY
	}
	if !(Rect{X: rx, Y: ry, Width: c.Width, Height: c.Height}).Contains(x, y) {
		return nil
	}
	order := PaintOrder(n.children)
	for i := len(order) - 1; i >= 0; i-- {
		child := order[i]
		childOffX, childOffY := offX, offY
		if child.computed.Relative {
			childOffX, childOffY = rx, ry
		}
		if hit := findAt(child, x, y, childOffX, childOffY); hit != nil {
			return hit
		}
	}
	return n
}
