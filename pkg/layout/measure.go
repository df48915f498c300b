package layout

// Measure computes the intrinsic size of n given the available space on
// each axis. Pass Unresolved for an axis whose size is not known; Percent
// dimensions resolve to 0 against it and wrapping content measures
// unconstrained. The result is clamped to the node's min/max constraints.
//
// Measurement is bottom-up and side-effect free: it never touches the
// computed layout cache, so it is safe to call outside a pass (the table
// delegate measures cells this way).
func Measure(n *Node, availWidth, availHeight float64) (width, height float64) {
	w, wKnown := n.Width.resolve(availWidth)
	h, hKnown := n.Height.resolve(availHeight)
	if !wKnown || !hKnown {
		iw, ih := intrinsicSize(n, availWidth, availHeight, w, wKnown, h, hKnown)
		if !wKnown {
			w = iw
		}
		if !hKnown {
			h = ih
		}
	}
	w = clampAxis(w, n.MinWidth, n.MaxWidth, availWidth)
	h = clampAxis(h, n.MinHeight, n.MaxHeight, availHeight)
	return w, h
}

// intrinsicSize aggregates children (or leaf content) into a content-driven
// size, including the node's own padding. Absolutely positioned children do
// not contribute.
func intrinsicSize(n *Node, availWidth, availHeight, knownW float64, wKnown bool, knownH float64, hKnown bool) (float64, float64) {
	padW := n.Padding.Horizontal()
	padH := n.Padding.Vertical()
	innerW := innerAvail(wKnown, knownW, availWidth, padW)
	innerH := innerAvail(hKnown, knownH, availHeight, padH)

	switch n.Kind {
	case KindLeaf:
		if n.Content == nil {
			return padW, padH
		}
		cw, ch := n.Content.Measure(innerW)
		if cw < 0 {
			cw = 0
		}
		if ch < 0 {
			ch = 0
		}
		return cw + padW, ch + padH

	case KindRow:
		var sumW, maxH float64
		count := 0
		for _, c := range n.children {
			if c.Position == PositionAbsolute {
				continue
			}
			cw, ch := Measure(c, innerW, innerH)
			sumW += cw + c.Margin.Horizontal()
			if oh := ch + c.Margin.Vertical(); oh > maxH {
				maxH = oh
			}
			count++
		}
		if count > 1 {
			sumW += n.Gap * float64(count-1)
		}
		// A container that centers or stretches children needs the full
		// cross space to distribute, not just the tallest child.
		if n.Align != AlignStart && innerH >= 0 && innerH > maxH {
			maxH = innerH
		}
		return sumW + padW, maxH + padH

	case KindCenter:
		var maxW, maxH float64
		for _, c := range n.children {
			if c.Position == PositionAbsolute {
				continue
			}
			cw, ch := Measure(c, innerW, innerH)
			if ow := cw + c.Margin.Horizontal(); ow > maxW {
				maxW = ow
			}
			if oh := ch + c.Margin.Vertical(); oh > maxH {
				maxH = oh
			}
		}
		return maxW + padW, maxH + padH

	default: // KindBox, KindColumn, KindTable stack vertically
		var maxW, sumH float64
		count := 0
		for _, c := range n.children {
			if c.Position == PositionAbsolute {
				continue
			}
			cw, ch := Measure(c, innerW, innerH)
			if ow := cw + c.Margin.Horizontal(); ow > maxW {
				maxW = ow
			}
			sumH += ch + c.Margin.Vertical()
			count++
		}
		if count > 1 {
			sumH += n.Gap * float64(count-1)
		}
		if n.Align != AlignStart && innerW >= 0 && innerW > maxW {
			maxW = innerW
		}
		return maxW + padW, sumH + padH
	}
}

// innerAvail derives the available size passed to children on one axis:
// the node's own resolved size when known, otherwise the inherited
// availability, minus padding. Unresolved propagates.
func innerAvail(known bool, size, avail, pad float64) float64 {
	base := Unresolved
	if known {
		base = size
	} else if avail >= 0 {
		base = avail
	}
	if base < 0 {
		return Unresolved
	}
	if base -= pad; base < 0 {
		return 0
	}
	return base
}
