package layout

import "sort"

// PaintOrder returns the nodes sorted for painting: ascending z-index,
// with declaration order preserved among equals. The input slice is left
// untouched and no geometry is recomputed; stacking is a paint concern
// only.
func PaintOrder(nodes []*Node) []*Node {
	out := make([]*Node, len(nodes))
	copy(out, nodes)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ZIndex < out[j].ZIndex
	})
	return out
}
