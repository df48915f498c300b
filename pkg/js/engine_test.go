package js

import (
	"strings"
	"testing"

	"kryon/pkg/layout"
)

func buildScene(t *testing.T, src string) *layout.Node {
	t.Helper()
	root, err := New().BuildScene(src)
	if err != nil {
		t.Fatalf("BuildScene: %v", err)
	}
	return root
}

func TestBuildSceneTree(t *testing.T) {
	root := buildScene(t, `
		ui.column({width: 300, height: 200, gap: 10},
			ui.text("hello"),
			ui.row({justify: "space-between"},
				ui.text("a"),
				ui.text("b")))
	`)
	if root.Kind != layout.KindColumn {
		t.Fatalf("root kind = %s, want column", root.Kind)
	}
	if root.Width != layout.Px(300) || root.Gap != 10 {
		t.Errorf("root props not applied: %+v", root)
	}
	kids := root.Children()
	if len(kids) != 2 {
		t.Fatalf("root children = %d, want 2", len(kids))
	}
	if kids[1].Kind != layout.KindRow || kids[1].Justify != layout.AlignSpaceBetween {
		t.Errorf("row child = kind %s justify %s", kids[1].Kind, kids[1].Justify)
	}
	if len(kids[1].Children()) != 2 {
		t.Errorf("row children = %d, want 2", len(kids[1].Children()))
	}
}

func TestDimensionStrings(t *testing.T) {
	root := buildScene(t, `ui.box({width: "50%", height: "2fr", minWidth: 10})`)
	if root.Width != layout.Percent(50) {
		t.Errorf("width = %+v, want 50%%", root.Width)
	}
	if root.Height != layout.Flex(2) {
		t.Errorf("height = %+v, want 2fr", root.Height)
	}
	if root.MinWidth != layout.Px(10) {
		t.Errorf("minWidth = %+v, want 10px", root.MinWidth)
	}
}

func TestPositioningProps(t *testing.T) {
	root := buildScene(t, `
		ui.box(
			ui.box({position: "absolute", left: 20, top: 30, z: 5, id: "badge"}))
	`)
	child := root.Children()[0]
	if child.Position != layout.PositionAbsolute || child.Left != 20 || child.Top != 30 {
		t.Errorf("absolute props not applied: %+v", child)
	}
	if child.ZIndex != 5 || child.ID != "badge" {
		t.Errorf("z/id not applied: z=%d id=%q", child.ZIndex, child.ID)
	}
}

func TestVisualProps(t *testing.T) {
	root := buildScene(t, `ui.box({background: "#ff0000", border: "#00ff0080"})`)
	v := root.Visual
	if v == nil {
		t.Fatal("visual props should allocate a Visual")
	}
	if v.Background.R != 255 || v.Background.A != 255 {
		t.Errorf("background = %+v", v.Background)
	}
	if v.Border.G != 255 || v.Border.A != 128 {
		t.Errorf("border = %+v", v.Border)
	}
	if v.BorderWidth != 1 {
		t.Errorf("border width = %v, want the default 1", v.BorderWidth)
	}
}

func TestTextProps(t *testing.T) {
	root := buildScene(t, `ui.text("title", {size: 24, bold: true, width: 100})`)
	if root.Kind != layout.KindLeaf || root.Content == nil {
		t.Fatal("text should build a leaf with content")
	}
	if root.Width != layout.Px(100) {
		t.Errorf("node width = %+v, want 100px", root.Width)
	}
	w, h := root.Content.Measure(-1)
	if w <= 0 || h <= 0 {
		t.Errorf("label measure = %vx%v, want positive", w, h)
	}
}

func TestBuildSceneScriptError(t *testing.T) {
	_, err := New().BuildScene(`ui.box({width: "nonsense"})`)
	if err == nil {
		t.Fatal("a bad dimension should fail the scene")
	}
	if !strings.Contains(err.Error(), "nonsense") {
		t.Errorf("error should name the bad value, got %v", err)
	}
}

func TestBuildSceneNonNodeResult(t *testing.T) {
	if _, err := New().BuildScene(`1 + 1`); err == nil {
		t.Fatal("a scene without a node result should fail")
	}
}

func TestUnknownPropFails(t *testing.T) {
	if _, err := New().BuildScene(`ui.box({wdith: 10})`); err == nil {
		t.Fatal("a misspelled prop should fail loudly")
	}
}

func TestConsoleOutputIsInjectable(t *testing.T) {
	eng := New()
	var out, errOut strings.Builder
	eng.SetConsoleOutput(&out, &errOut)

	_, err := eng.BuildScene(`
		console.log("hello", 42);
		console.warn("careful");
		console.error("broken");
		ui.box()
	`)
	if err != nil {
		t.Fatalf("BuildScene: %v", err)
	}
	if out.String() != "hello 42\n" {
		t.Errorf("log sink = %q, want %q", out.String(), "hello 42\n")
	}
	if !strings.Contains(errOut.String(), "WARN: careful") {
		t.Errorf("warn should reach the error sink, got %q", errOut.String())
	}
	if !strings.Contains(errOut.String(), "ERROR: broken") {
		t.Errorf("error should reach the error sink, got %q", errOut.String())
	}
}

func TestSceneLaysOut(t *testing.T) {
	root := buildScene(t, `
		ui.row({width: 300, height: 100},
			ui.box({width: 100, height: 50, id: "a"}),
			ui.box({width: "1fr", height: 50, id: "b"}))
	`)
	if err := layout.NewEngine(300, 100).LayoutTree(root); err != nil {
		t.Fatalf("LayoutTree: %v", err)
	}
	b := root.Children()[1]
	r := b.MustLayout()
	if r.X != 100 || r.Width != 200 {
		t.Errorf("flex child = X %v width %v, want X 100 width 200", r.X, r.Width)
	}
}
