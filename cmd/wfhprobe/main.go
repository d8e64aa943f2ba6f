// wfhprobe is a minimal environment check: it renders one sample survey
// chart through the full chartspec/render pipeline, shows it in a fyne
// window and exits after a few seconds. Useful to verify the GUI and raster
// stack on a new machine without needing an aggregates file.
package main

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"

	"github.com/sharedplanet/wfh-lse/src/chartspec"
	"github.com/sharedplanet/wfh-lse/src/render"
)

func sampleSpec() chartspec.Spec {
	return chartspec.Spec{
		Title:      "Sample: 11_Response by 7_Response_Bucket",
		XAxisTitle: "Percentage of responses",
		Bars: []chartspec.Bar{
			{Category: "Micro (1–9)", Segments: []chartspec.Segment{
				{Stack: "Yes", Percent: 55, Count: 11, Label: "55.0% (11)"},
				{Stack: "No", Percent: 45, Count: 9, Label: "45.0% (9)"},
			}},
			{Category: "Small (10–49)", Segments: []chartspec.Segment{
				{Stack: "Yes", Percent: 70, Count: 21, Label: "70.0% (21)"},
				{Stack: "No", Percent: 30, Count: 9, Label: "30.0% (9)"},
			}},
			{Category: "Large (250+)", Segments: []chartspec.Segment{
				{Stack: "Yes", Percent: 82, Count: 41, Label: "82.0% (41)"},
				{Stack: "No", Percent: 18, Count: 9, Label: "18.0% (9)"},
			}},
		},
		Legend: []string{"Yes", "No"},
	}
}

func main() {
	fmt.Println("[wfhprobe] rendering sample chart")
	start := time.Now()
	img, err := render.Image(sampleSpec(), 900)
	if err != nil {
		fmt.Printf("[wfhprobe] render failed: %v\n", err)
		img = render.Placeholder(900)
	}
	fmt.Printf("[wfhprobe] rendered in %v\n", time.Since(start))

	a := app.New()
	w := a.NewWindow("WFH Probe")
	ci := canvas.NewImageFromImage(img)
	ci.FillMode = canvas.ImageFillContain
	ci.SetMinSize(fyne.NewSize(900, 420))
	w.SetContent(ci)
	go func() {
		time.Sleep(5 * time.Second)
		fmt.Println("[wfhprobe] closing window via fyne.Do")
		fyne.Do(func() { w.Close() })
	}()
	w.ShowAndRun()
	fmt.Println("[wfhprobe] exited cleanly")
}
