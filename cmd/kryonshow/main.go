package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"kryon/pkg/js"
	"kryon/pkg/layout"
	"kryon/pkg/render"
	"kryon/pkg/table"
)

const (
	surfaceWidth  = 1024
	surfaceHeight = 700
)

func renderScene(path string) (*render.Renderer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	root, err := js.New().BuildScene(string(data))
	if err != nil {
		return nil, err
	}

	engine := layout.NewEngine(surfaceWidth, surfaceHeight)
	engine.SetTableLayout(table.New())
	if err := engine.LayoutTree(root); err != nil {
		return nil, err
	}

	renderer := render.NewRenderer(surfaceWidth, surfaceHeight)
	if err := renderer.Render(root); err != nil {
		return nil, err
	}
	return renderer, nil
}

func main() {
	a := app.New()
	w := a.NewWindow("kryon viewer")
	w.Resize(fyne.NewSize(surfaceWidth, surfaceHeight+68))

	canvasImg := canvas.NewImageFromImage(render.NewRenderer(surfaceWidth, surfaceHeight).Image())
	canvasImg.FillMode = canvas.ImageFillOriginal

	status := widget.NewLabel("Enter a scene path and press Enter")

	pathEntry := widget.NewEntry()
	pathEntry.SetPlaceHolder("scene.js")
	pathEntry.OnSubmitted = func(path string) {
		status.SetText("Rendering " + path + "...")
		go func() {
			renderer, err := renderScene(path)
			if err != nil {
				status.SetText("Error: " + err.Error())
				return
			}
			canvasImg.Image = renderer.Image()
			canvasImg.Refresh()
			status.SetText(path)
			w.SetTitle(fmt.Sprintf("kryon: %s", path))
		}()
	}

	// Scene path on top, status at bottom, surface fills the center.
	topBar := container.NewBorder(nil, nil, nil, nil, pathEntry)
	content := container.NewBorder(topBar, status, nil, nil, canvasImg)
	w.SetContent(content)

	w.Canvas().Focus(pathEntry)

	if len(os.Args) > 1 {
		pathEntry.SetText(os.Args[1])
		pathEntry.OnSubmitted(os.Args[1])
	}

	w.ShowAndRun()
}
