// Package table is a sub-layout delegate for table nodes: rows of cells
// with column widths shared across rows. It demonstrates the delegation
// contract of the core engine, writing parent-relative bounds for every
// node it owns.
package table

import (
	"fmt"

	"kryon/pkg/layout"
)

// Engine lays out the subtree of a table node. Direct children are rows;
// row children are cells. Column widths are distributed proportionally to
// each column's widest intrinsic cell, scaled to the table's content width.
type Engine struct {
	// CellPadding is added inside every cell on all four sides.
	CellPadding float64

	// RowGap separates consecutive rows.
	RowGap float64
}

// New returns a table engine with default spacing.
func New() *Engine {
	return &Engine{CellPadding: 4}
}

// Layout implements layout.SubLayout. All geometry it writes is relative:
// rows to the table's content origin, cells to their row.
func (e *Engine) Layout(n *layout.Node, contentWidth, contentHeight float64) error {
	var rows []*layout.Node
	for i, child := range n.Children() {
		if child.Position == layout.PositionAbsolute {
			continue
		}
		if child.Kind != layout.KindRow {
			return fmt.Errorf("table: child %d is a %s, want a row", i, child.Kind)
		}
		rows = append(rows, child)
	}
	if len(rows) == 0 {
		return nil
	}

	columns := 0
	for _, row := range rows {
		if c := len(row.Children()); c > columns {
			columns = c
		}
	}
	if columns == 0 {
		return fmt.Errorf("table: rows carry no cells")
	}

	// Column intrinsic widths from the widest unconstrained cell.
	intrinsic := make([]float64, columns)
	for _, row := range rows {
		for j, cell := range row.Children() {
			w, _ := layout.Measure(cell, layout.Unresolved, layout.Unresolved)
			if w += 2 * e.CellPadding; w > intrinsic[j] {
				intrinsic[j] = w
			}
		}
	}

	widths := e.columnWidths(intrinsic, contentWidth)

	y := 0.0
	for _, row := range rows {
		rowHeight := 0.0
		cellHeights := make([]float64, len(row.Children()))
		for j, cell := range row.Children() {
			inner := widths[j] - 2*e.CellPadding
			if inner < 0 {
				inner = 0
			}
			_, h := layout.Measure(cell, inner, layout.Unresolved)
			cellHeights[j] = h
			if h += 2 * e.CellPadding; h > rowHeight {
				rowHeight = h
			}
		}

		x := 0.0
		for j, cell := range row.Children() {
			cw := widths[j] - 2*e.CellPadding
			if cw < 0 {
				cw = 0
			}
			slot := layout.Rect{
				X:      x + e.CellPadding,
				Y:      e.CellPadding,
				Width:  cw,
				Height: cellHeights[j],
			}
			if err := e.layoutCell(cell, slot); err != nil {
				return err
			}
			x += widths[j]
		}
		row.SetRelativeBounds(0, y, x, rowHeight)
		y += rowHeight + e.RowGap
	}
	return nil
}

// layoutCell places one cell and everything below it. The cell subtree goes
// through the core driver at its column slot, then the resulting geometry is
// rewritten as parent-relative, which is what the delegation contract owes
// every node of the subtree. Nested tables recurse through this engine.
func (e *Engine) layoutCell(cell *layout.Node, slot layout.Rect) error {
	eng := layout.NewEngine(slot.Width, slot.Height)
	eng.SetTableLayout(e)
	if err := eng.LayoutTreeIn(cell, slot); err != nil {
		return err
	}
	return relativize(cell, 0, 0)
}

// relativize converts a freshly placed subtree from absolute to
// parent-relative coordinates, depth-first so children read their parent's
// absolute origin before it is rewritten. Subtrees a nested delegate already
// tagged relative are left untouched.
func relativize(n *layout.Node, parentX, parentY float64) error {
	c, err := n.Layout()
	if err != nil {
		return err
	}
	if c.Relative {
		return nil
	}
	for _, child := range n.Children() {
		if err := relativize(child, c.X, c.Y); err != nil {
			return err
		}
	}
	n.SetRelativeBounds(c.X-parentX, c.Y-parentY, c.Width, c.Height)
	return nil
}

// columnWidths scales intrinsic column widths proportionally to fill the
// content width. An unresolved content width keeps intrinsic sizes.
func (e *Engine) columnWidths(intrinsic []float64, contentWidth float64) []float64 {
	widths := make([]float64, len(intrinsic))
	copy(widths, intrinsic)
	if contentWidth < 0 {
		return widths
	}

	var sum float64
	for _, w := range intrinsic {
		sum += w
	}
	if sum <= 0 {
		// Degenerate all-empty table: split the width evenly.
		even := contentWidth / float64(len(widths))
		for j := range widths {
			widths[j] = even
		}
		return widths
	}
	for j := range widths {
		widths[j] = contentWidth * intrinsic[j] / sum
	}
	return widths
}
