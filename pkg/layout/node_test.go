package layout

import "testing"

func TestAppendChildReparents(t *testing.T) {
	a := NewNode(KindRow)
	b := NewNode(KindRow)
	child := fixedLeaf(1, 1)

	a.AppendChild(child)
	if child.Parent() != a || len(a.Children()) != 1 {
		t.Fatal("child should be attached to a")
	}
	b.AppendChild(child)
	if child.Parent() != b {
		t.Error("child parent should be b after reattach")
	}
	if len(a.Children()) != 0 {
		t.Error("child should be detached from a")
	}
}

func TestNearestAncestor(t *testing.T) {
	table := NewNode(KindTable)
	row := NewNode(KindRow)
	cell := fixedLeaf(1, 1)
	table.AppendChild(row)
	row.AppendChild(cell)

	if got := NearestAncestor(cell, KindTable); got != table {
		t.Errorf("NearestAncestor(cell, table) = %v, want the table", got)
	}
	if got := NearestAncestor(cell, KindCenter); got != nil {
		t.Errorf("NearestAncestor(cell, center) = %v, want nil", got)
	}
	if got := NearestAncestor(table, KindTable); got != nil {
		t.Error("NearestAncestor must exclude the node itself")
	}
}

func TestMustLayoutPanicsOnStale(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustLayout on a stale node should panic")
		}
	}()
	NewNode(KindBox).MustLayout()
}

func TestSetRelativeBoundsClampsNegativeSize(t *testing.T) {
	n := NewNode(KindBox)
	n.SetRelativeBounds(5, 5, -10, -10)
	c, err := n.Layout()
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if c.Width != 0 || c.Height != 0 {
		t.Errorf("size = %vx%v, want 0x0", c.Width, c.Height)
	}
	if !c.Relative {
		t.Error("SetRelativeBounds must tag the layout relative")
	}
}

func TestDimensionConstructorsClampNegative(t *testing.T) {
	tests := []struct {
		name string
		dim  Dimension
		kind DimensionKind
	}{
		{"px", Px(-5), DimPixels},
		{"percent", Percent(-5), DimPercent},
		{"flex", Flex(-5), DimFlex},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.dim.Kind != tt.kind || tt.dim.Value != 0 {
				t.Errorf("got %+v, want kind %v value 0", tt.dim, tt.kind)
			}
		})
	}
}

func TestKindStrings(t *testing.T) {
	if KindRow.String() != "row" || KindTable.String() != "table" {
		t.Error("kind String() mismatch")
	}
	if AlignSpaceBetween.String() != "space-between" {
		t.Error("alignment String() mismatch")
	}
}
