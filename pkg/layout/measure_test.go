package layout

import "testing"

func TestMeasureLeafContent(t *testing.T) {
	n := NewLeaf(fixedContent{w: 40, h: 15})
	n.Padding = Uniform(5)
	w, h := Measure(n, Unresolved, Unresolved)
	if w != 50 || h != 25 {
		t.Errorf("Measure = %vx%v, want 50x25 (content plus padding)", w, h)
	}
}

func TestMeasureRowAggregation(t *testing.T) {
	row := NewNode(KindRow)
	row.Gap = 10
	row.Padding = Uniform(4)
	row.AppendChild(fixedLeaf(50, 20))
	row.AppendChild(fixedLeaf(30, 35))

	abs := fixedLeaf(500, 500)
	abs.Position = PositionAbsolute
	row.AppendChild(abs)

	w, h := Measure(row, Unresolved, Unresolved)
	if w != 98 {
		t.Errorf("row width = %v, want 98 (50+30 plus gap 10 plus padding 8)", w)
	}
	if h != 43 {
		t.Errorf("row height = %v, want 43 (max child 35 plus padding 8)", h)
	}
}

func TestMeasureColumnAggregation(t *testing.T) {
	col := NewNode(KindColumn)
	col.Gap = 6
	col.AppendChild(fixedLeaf(50, 20))
	col.AppendChild(fixedLeaf(70, 30))
	w, h := Measure(col, Unresolved, Unresolved)
	if w != 70 || h != 56 {
		t.Errorf("column = %vx%v, want 70x56", w, h)
	}
}

func TestMeasureMarginContributesToParent(t *testing.T) {
	row := NewNode(KindRow)
	child := fixedLeaf(50, 20)
	child.Margin = Uniform(5)
	row.AppendChild(child)
	w, h := Measure(row, Unresolved, Unresolved)
	if w != 60 || h != 30 {
		t.Errorf("row = %vx%v, want 60x30 (child plus margins)", w, h)
	}
}

func TestMeasurePercent(t *testing.T) {
	tests := []struct {
		name  string
		avail float64
		want  float64
	}{
		{"resolved parent", 200, 100},
		{"unresolved parent collapses to zero", Unresolved, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNode(KindBox)
			n.Width = Percent(50)
			w, _ := Measure(n, tt.avail, Unresolved)
			if w != tt.want {
				t.Errorf("Measure width = %v, want %v", w, tt.want)
			}
		})
	}
}

func TestMeasureMinMaxClamp(t *testing.T) {
	n := fixedLeaf(500, 5)
	n.MaxWidth = Px(100)
	n.MinHeight = Px(20)
	w, h := Measure(n, Unresolved, Unresolved)
	if w != 100 || h != 20 {
		t.Errorf("clamped = %vx%v, want 100x20", w, h)
	}
}

func TestMeasureMinWinsOverMax(t *testing.T) {
	n := fixedLeaf(50, 50)
	n.MinWidth = Px(120)
	n.MaxWidth = Px(100)
	w, _ := Measure(n, Unresolved, Unresolved)
	if w != 120 {
		t.Errorf("width = %v, want 120 (min wins over max)", w)
	}
}

func TestMeasurePercentConstraint(t *testing.T) {
	n := fixedLeaf(500, 10)
	n.MaxWidth = Percent(50)
	w, _ := Measure(n, 200, Unresolved)
	if w != 100 {
		t.Errorf("width = %v, want 100 (percent max against availability)", w)
	}
	// The same constraint does not bind under an unresolved ancestor.
	w, _ = Measure(n, Unresolved, Unresolved)
	if w != 500 {
		t.Errorf("width = %v, want 500 (unbound constraint)", w)
	}
}

func TestMeasureCrossFillsWhenAligning(t *testing.T) {
	row := NewNode(KindRow)
	row.Align = AlignCenter
	row.AppendChild(fixedLeaf(50, 20))
	_, h := Measure(row, Unresolved, 120)
	if h != 120 {
		t.Errorf("height = %v, want 120 (centering needs the full cross space)", h)
	}

	row.Align = AlignStart
	_, h = Measure(row, Unresolved, 120)
	if h != 20 {
		t.Errorf("height = %v, want 20 (start alignment keeps content size)", h)
	}
}

func TestMeasureWrapConstraintFlowsThroughPadding(t *testing.T) {
	box := NewNode(KindBox)
	box.Padding = Uniform(10)
	box.AppendChild(NewLeaf(wrapContent{area: 1000, naturalW: 500}))
	w, h := Measure(box, 120, Unresolved)
	if w != 120 {
		t.Errorf("box width = %v, want 120 (wrapped at inner constraint plus padding)", w)
	}
	if h != 30 {
		t.Errorf("box height = %v, want 30 (1000/100 plus padding)", h)
	}
}

func TestMeasureFlexContributesZero(t *testing.T) {
	n := NewNode(KindBox)
	n.Width = Flex(2)
	n.AppendChild(fixedLeaf(80, 10))
	w, _ := Measure(n, 300, Unresolved)
	if w != 0 {
		t.Errorf("flex-dimension width = %v, want 0 before distribution", w)
	}
}
