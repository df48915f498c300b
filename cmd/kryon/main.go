package main

import (
	"flag"
	"fmt"
	"os"

	"kryon/pkg/js"
	"kryon/pkg/layout"
	"kryon/pkg/render"
	"kryon/pkg/table"
)

// demoScene exercises the main node kinds when no scene file is given.
const demoScene = `
ui.column({width: "100%", height: "100%", padding: 16, gap: 12, background: "#f4f4f4"},
	ui.text("kryon demo", {size: 28, bold: true}),
	ui.row({gap: 8, justify: "space-between", height: 60},
		ui.button("One"),
		ui.button("Two"),
		ui.button("Three")),
	ui.row({gap: 12, grow: 1},
		ui.box({width: "1fr", background: "#dce6f2", border: "#7a8ca3", padding: 8},
			ui.markdown("# Panel\n\nFlexible left panel with some wrapped markdown text inside.")),
		ui.center({width: "2fr", background: "#ffffff", border: "#7a8ca3"},
			ui.text("centered", {size: 20}))),
	ui.table({height: 120},
		ui.row(ui.text("name"), ui.text("size")),
		ui.row(ui.text("alpha"), ui.text("120")),
		ui.row(ui.text("beta"), ui.text("64"))))
`

func main() {
	width := flag.Int("width", 800, "viewport width in pixels")
	height := flag.Int("height", 600, "viewport height in pixels")
	output := flag.String("o", "out.png", "output PNG path")
	trace := flag.Bool("trace", false, "write placement trace to stderr")
	flag.Parse()

	src := demoScene
	name := "builtin demo"
	if flag.NArg() > 0 {
		name = flag.Arg(0)
		data, err := os.ReadFile(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading scene: %v\n", err)
			os.Exit(1)
		}
		src = string(data)
	}

	root, err := js.New().BuildScene(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building scene: %v\n", err)
		os.Exit(1)
	}

	engine := layout.NewEngine(float64(*width), float64(*height))
	engine.SetTableLayout(table.New())
	if *trace {
		engine.SetTrace(os.Stderr)
	}
	if err := engine.LayoutTree(root); err != nil {
		fmt.Fprintf(os.Stderr, "Error laying out scene: %v\n", err)
		os.Exit(1)
	}

	renderer := render.NewRenderer(*width, *height)
	if err := renderer.Render(root); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering: %v\n", err)
		os.Exit(1)
	}
	if err := renderer.SavePNG(*output); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving PNG: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Rendered %s to %s\n", name, *output)
}
