// wfhviewer is the desktop rendition of the survey dashboard: the same four
// controls as the web page, drawn as fyne widgets, with the chart rendered to
// an image canvas on every change.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/sharedplanet/wfh-lse/cmd/wfhviewer/uihelpers"
	"github.com/sharedplanet/wfh-lse/src/aggregates"
	"github.com/sharedplanet/wfh-lse/src/catalog"
	"github.com/sharedplanet/wfh-lse/src/chartspec"
	"github.com/sharedplanet/wfh-lse/src/logging"
	"github.com/sharedplanet/wfh-lse/src/render"
	"github.com/sharedplanet/wfh-lse/src/selection"
)

type uiState struct {
	log      *zap.Logger
	resolver *selection.Resolver
	builder  chartspec.Builder

	window fyne.Window

	// current is the raw control state; every change passes through the
	// resolver before anything is drawn.
	current selection.State

	// option lists as last resolved, for mapping widget labels back to
	// identifiers.
	questions []catalog.Option
	choices   []catalog.Option
	disaggs   []catalog.Option

	// syncing suppresses widget callbacks while apply() pushes resolved
	// values back into the controls.
	syncing bool

	filterRadio  *widget.RadioGroup
	fieldSelect  *widget.Select
	choiceSelect *widget.Select
	choiceBox    *fyne.Container
	disaggSelect *widget.Select
	chartCanvas  *canvas.Image
}

func main() {
	fileFlag := flag.String("file", "aggregates.json", "Path to the aggregates JSON file")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	logger, err := logging.New(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wfhviewer: %v\n", err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	store, err := aggregates.Load(*fileFlag)
	if err != nil {
		logger.Fatal("load aggregates", zap.String("path", *fileFlag), zap.Error(err))
	}
	logger.Info("aggregates loaded", zap.String("path", *fileFlag), zap.Int("keys", store.Len()))

	a := app.NewWithID("com.sharedplanet.wfhviewer")
	w := a.NewWindow("Remote/Hybrid Work Survey Dashboard")
	w.Resize(fyne.NewSize(1100, 800))

	cat := catalog.Default()
	state := &uiState{
		log:      logger.Named("viewer"),
		resolver: selection.NewResolver(cat, catalog.BuildTaxonomy(cat, store)),
		builder:  chartspec.Builder{Store: store},
		window:   w,
	}

	// Create widgets without callbacks first; they are wired below once every
	// control exists.
	state.filterRadio = widget.NewRadioGroup(nil, nil)
	state.filterRadio.Horizontal = true
	state.fieldSelect = widget.NewSelect(nil, nil)
	state.choiceSelect = widget.NewSelect(nil, nil)
	state.disaggSelect = widget.NewSelect(nil, nil)
	state.choiceBox = container.NewVBox(
		widget.NewLabelWithStyle("Select option within multi-select question:", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		state.choiceSelect,
	)
	state.chartCanvas = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 100, 60)))
	state.chartCanvas.FillMode = canvas.ImageFillContain
	state.chartCanvas.SetMinSize(fyne.NewSize(900, 420))

	state.filterRadio.OnChanged = func(label string) {
		if state.syncing || label == "" {
			return
		}
		state.current.Filter = label
		state.refresh()
	}
	state.fieldSelect.OnChanged = func(label string) {
		if state.syncing || label == "" {
			return
		}
		state.current.Field = uihelpers.ValueForLabel(state.questions, label)
		state.refresh()
	}
	state.choiceSelect.OnChanged = func(label string) {
		if state.syncing || label == "" {
			return
		}
		state.current.Choice = uihelpers.ValueForLabel(state.choices, label)
		state.refresh()
	}
	state.disaggSelect.OnChanged = func(label string) {
		if state.syncing || label == "" {
			return
		}
		state.current.Disagg = uihelpers.ValueForLabel(state.disaggs, label)
		state.refresh()
	}

	controls := container.NewVBox(
		widget.NewLabelWithStyle("Filter by Q8 Response:", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		state.filterRadio,
		widget.NewLabelWithStyle("Select question to analyze:", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		state.fieldSelect,
		state.choiceBox,
		widget.NewLabelWithStyle("Disaggregate by:", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		state.disaggSelect,
		widget.NewSeparator(),
	)
	w.SetContent(container.NewBorder(controls, nil, nil, nil, container.NewVScroll(state.chartCanvas)))

	// Redraw on window resize so the chart raster tracks the width.
	done := make(chan struct{})
	w.SetOnClosed(func() { close(done) })
	go func() {
		t := time.NewTicker(300 * time.Millisecond)
		defer t.Stop()
		prevW := 0
		for {
			select {
			case <-done:
				return
			case <-t.C:
				c := w.Canvas()
				if c == nil {
					continue
				}
				if cur := int(c.Size().Width); cur != prevW {
					prevW = cur
					fyne.Do(func() { state.refresh() })
				}
			}
		}
	}()

	state.refresh()
	w.ShowAndRun()
}

// refresh resolves the current control state and pushes the result back into
// the widgets and the chart.
func (s *uiState) refresh() {
	res := s.resolver.Resolve(s.current)
	s.current = res.State()
	s.apply(res)
}

func (s *uiState) apply(res selection.Resolved) {
	s.syncing = true

	s.filterRadio.Options = uihelpers.OptionLabels(res.Filters)
	s.filterRadio.SetSelected(res.Filter)

	s.questions = res.Questions
	s.fieldSelect.Options = uihelpers.OptionLabels(res.Questions)
	s.fieldSelect.SetSelected(uihelpers.LabelForValue(res.Questions, res.Field))

	s.choices = res.Choices
	if res.ChoiceVisible {
		s.choiceSelect.Options = uihelpers.OptionLabels(res.Choices)
		s.choiceSelect.SetSelected(uihelpers.LabelForValue(res.Choices, res.Choice))
		s.choiceBox.Show()
	} else {
		s.choiceSelect.Options = nil
		s.choiceSelect.ClearSelected()
		s.choiceBox.Hide()
	}

	s.disaggs = res.Disaggs
	s.disaggSelect.Options = uihelpers.OptionLabels(res.Disaggs)
	s.disaggSelect.SetSelected(uihelpers.LabelForValue(res.Disaggs, res.Disagg))

	s.syncing = false

	s.redraw(res)
}

func (s *uiState) redraw(res selection.Resolved) {
	width := uihelpers.ChartWidth(s.windowWidth())
	img, err := render.Image(s.builder.Build(res), width)
	if err != nil {
		s.log.Error("chart render failed", zap.String("key", res.Key().String()), zap.Error(err))
		img = render.Placeholder(width)
	}
	s.chartCanvas.Image = img
	cw, ch := render.Dimensions(width)
	s.chartCanvas.SetMinSize(fyne.NewSize(float32(cw), float32(ch)))
	s.chartCanvas.Refresh()
}

func (s *uiState) windowWidth() int {
	if s.window == nil || s.window.Canvas() == nil {
		return 0
	}
	return int(s.window.Canvas().Size().Width)
}
