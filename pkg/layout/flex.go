package layout

// placedChild is one in-flow child's resolved geometry within its parent's
// content box. Offsets locate the child's margin box; the node rect starts
// after the leading margins.
type placedChild struct {
	node        *Node
	mainSize    float64
	crossSize   float64
	mainOffset  float64
	crossOffset float64
}

// growFactor returns the weight a child carries in grow distribution: an
// explicit FlexGrow wins, otherwise a Flex main-axis dimension supplies its
// unit count. This is what gives flex-unit children their size.
func growFactor(c *Node, horizontal bool) float64 {
	if c.FlexGrow > 0 {
		return c.FlexGrow
	}
	dim := c.Height
	if horizontal {
		dim = c.Width
	}
	if dim.Kind == DimFlex {
		return dim.Value
	}
	return 0
}

// distribute runs the distribution and alignment pass for one container's
// in-flow children: measures each child, applies grow/shrink along the main
// axis, then resolves main offsets from the justify policy and cross
// offsets from the align policy. The returned offsets are relative to the
// container's content origin.
func distribute(n *Node, kids []*Node, contentMain, contentCross float64, horizontal bool) []placedChild {
	placed := make([]placedChild, 0, len(kids))
	for _, c := range kids {
		var cw, ch float64
		if horizontal {
			cw, ch = Measure(c, contentMain, contentCross)
			placed = append(placed, placedChild{node: c, mainSize: cw, crossSize: ch})
		} else {
			cw, ch = Measure(c, contentCross, contentMain)
			placed = append(placed, placedChild{node: c, mainSize: ch, crossSize: cw})
		}
	}

	gap := n.Gap
	if gap < 0 {
		gap = 0
	}
	total := totalMain(placed, gap, horizontal)

	if contentMain >= 0 {
		if total < contentMain {
			growChildren(placed, contentMain-total, contentMain, horizontal)
		} else if total > contentMain {
			shrinkChildren(placed, total-contentMain, contentMain, horizontal)
		}
		total = totalMain(placed, gap, horizontal)
	}

	lead := 0.0
	switch n.Justify {
	case AlignCenter:
		if free := contentMain - total; free > 0 {
			lead = free / 2
		}
	case AlignEnd:
		if free := contentMain - total; free > 0 {
			lead = free
		}
	case AlignSpaceBetween, AlignSpaceAround, AlignSpaceEvenly:
		if contentMain >= 0 {
			// Distribution replaces the configured gap entirely; extra
			// space is what remains after the child sizes alone.
			extra := contentMain - totalMain(placed, 0, horizontal)
			if extra < 0 {
				extra = 0
			}
			count := float64(len(placed))
			switch n.Justify {
			case AlignSpaceBetween:
				if len(placed) > 1 {
					gap = extra / (count - 1)
				}
			case AlignSpaceAround:
				if len(placed) > 0 {
					gap = extra / count
					lead = gap / 2
				}
			case AlignSpaceEvenly:
				gap = extra / (count + 1)
				lead = gap
			}
		}
	}

	pos := lead
	for i := range placed {
		placed[i].mainOffset = pos
		pos += outerMain(&placed[i], horizontal) + gap
	}

	for i := range placed {
		alignCross(n, &placed[i], contentCross, horizontal)
	}
	return placed
}

// totalMain sums outer main sizes plus gaps between consecutive children.
func totalMain(placed []placedChild, gap float64, horizontal bool) float64 {
	var total float64
	for i := range placed {
		total += outerMain(&placed[i], horizontal)
	}
	if len(placed) > 1 {
		total += gap * float64(len(placed)-1)
	}
	return total
}

func outerMain(p *placedChild, horizontal bool) float64 {
	if horizontal {
		return p.mainSize + p.node.Margin.Horizontal()
	}
	return p.mainSize + p.node.Margin.Vertical()
}

// growChildren hands out remaining space proportionally to grow factors.
// A share clamped by a child's max constraint is forfeited, not
// redistributed to its siblings.
func growChildren(placed []placedChild, remaining, contentMain float64, horizontal bool) {
	var sum float64
	for i := range placed {
		sum += growFactor(placed[i].node, horizontal)
	}
	if sum <= 0 {
		return
	}
	for i := range placed {
		g := growFactor(placed[i].node, horizontal)
		if g <= 0 {
			continue
		}
		c := placed[i].node
		grown := placed[i].mainSize + remaining*g/sum
		max := c.MaxHeight
		if horizontal {
			max = c.MaxWidth
		}
		if mx, ok := constraintValue(max, contentMain); ok && grown > mx {
			grown = mx
		}
		if grown > placed[i].mainSize {
			placed[i].mainSize = grown
		}
	}
}

// shrinkChildren takes back overflow proportionally to FlexShrink weights,
// clamping each child at its min constraint and never below zero.
func shrinkChildren(placed []placedChild, deficit, contentMain float64, horizontal bool) {
	var sum float64
	for i := range placed {
		sum += shrinkWeight(placed[i].node)
	}
	if sum <= 0 {
		return
	}
	for i := range placed {
		w := shrinkWeight(placed[i].node)
		if w <= 0 {
			continue
		}
		c := placed[i].node
		shrunk := placed[i].mainSize - deficit*w/sum
		min := c.MinHeight
		if horizontal {
			min = c.MinWidth
		}
		if mn, ok := constraintValue(min, contentMain); ok && shrunk < mn {
			shrunk = mn
		}
		if shrunk < 0 {
			shrunk = 0
		}
		if shrunk < placed[i].mainSize {
			placed[i].mainSize = shrunk
		}
	}
}

func shrinkWeight(c *Node) float64 {
	if c.FlexShrink > 0 {
		return c.FlexShrink
	}
	return 0
}

// alignCross resolves one child's cross-axis offset and, under stretch,
// its cross size.
func alignCross(n *Node, p *placedChild, contentCross float64, horizontal bool) {
	marginCross := p.node.Margin.Vertical()
	if !horizontal {
		marginCross = p.node.Margin.Horizontal()
	}
	outer := p.crossSize + marginCross

	switch n.Align {
	case AlignCenter:
		if off := (contentCross - outer) / 2; off > 0 {
			p.crossOffset = off
		}
	case AlignEnd:
		if off := contentCross - outer; off > 0 {
			p.crossOffset = off
		}
	case AlignStretch:
		if contentCross >= 0 && stretchable(p.node, horizontal) {
			stretched := contentCross - marginCross
			c := p.node
			min, max := c.MinHeight, c.MaxHeight
			if !horizontal {
				min, max = c.MinWidth, c.MaxWidth
			}
			p.crossSize = clampAxis(stretched, min, max, contentCross)
		}
	}
}

// stretchable reports whether align-stretch may resize the child's cross
// axis: only auto-sized children, and never content that opts out.
func stretchable(c *Node, horizontal bool) bool {
	dim := c.Height
	if !horizontal {
		dim = c.Width
	}
	if !dim.IsAuto() {
		return false
	}
	if ns, ok := c.Content.(NoStretch); ok && ns.NoStretch() {
		return false
	}
	return true
}
