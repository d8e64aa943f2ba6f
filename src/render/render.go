// Package render rasterizes chart specs into images. go-chart draws the
// stacked bars and the title; the legend strip, the axis caption and the
// no-data placeholder are composed on top with x/image primitives, which
// go-chart's stacked bar type does not provide.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/sharedplanet/wfh-lse/src/chartspec"
)

// Layout constants. The top padding band holds the title and the legend
// strip; the bottom band holds the axis caption.
const (
	titleBand       = 30
	legendRowHeight = 18
	legendSwatch    = 10
	padLeft         = 16
	padRight        = 16
	padBottom       = 40
	barGap          = 10
)

// background matches the original dashboard theme.
var background = drawing.ColorFromHex("f8f9fc")

// palette assigns stack colors by legend position. Stable across renders so
// an answer level keeps its color when the selection changes.
var palette = []drawing.Color{
	{R: 0x63, G: 0x6E, B: 0xFA, A: 0xFF},
	{R: 0xEF, G: 0x55, B: 0x3B, A: 0xFF},
	{R: 0x00, G: 0xCC, B: 0x96, A: 0xFF},
	{R: 0xAB, G: 0x63, B: 0xFA, A: 0xFF},
	{R: 0xFF, G: 0xA1, B: 0x5A, A: 0xFF},
	{R: 0x19, G: 0xD3, B: 0xF3, A: 0xFF},
	{R: 0xFF, G: 0x66, B: 0x92, A: 0xFF},
	{R: 0xB6, G: 0xE8, B: 0x80, A: 0xFF},
	{R: 0xFF, G: 0x97, B: 0xFF, A: 0xFF},
	{R: 0xFE, G: 0xCB, B: 0x52, A: 0xFF},
}

// Dimensions applies the width/height clamp rules used for charts. Input is
// the desired raw width (canvas or query parameter); the height follows from
// the width.
func Dimensions(rawW int) (int, int) {
	w := rawW
	if w < 640 {
		w = 640
	}
	if w > 1920 {
		w = 1920
	}
	h := int(float32(w) * 0.45)
	if h < 320 {
		h = 320
	}
	if h > 600 {
		h = 600
	}
	return w, h
}

// Image renders a chart spec at the requested width. No-data specs yield a
// placeholder image and never fail.
func Image(spec chartspec.Spec, width int) (image.Image, error) {
	w, h := Dimensions(width)
	if spec.NoData {
		return placeholder(w, h, spec.Title), nil
	}
	if len(spec.Bars) == 0 {
		// A key can exist with an empty row list; go-chart refuses to draw
		// zero bars, so treat it like missing data.
		return placeholder(w, h, chartspec.NoDataTitle), nil
	}

	items, legendHeight := legendLayout(spec.Legend, w)
	padTop := titleBand + 6
	if legendHeight > 0 {
		padTop = titleBand + legendHeight + 8
	}
	colors := stackColors(spec.Legend)

	thickness := barThickness(h-padTop-padBottom, len(spec.Bars))
	bars := make([]chart.StackedBar, 0, len(spec.Bars))
	for _, b := range spec.Bars {
		values := make([]chart.Value, 0, len(b.Segments)+1)
		total := 0.0
		for _, s := range b.Segments {
			total += s.Percent
			values = append(values, chart.Value{
				Value: s.Percent,
				Label: s.Label,
				Style: chart.Style{
					FillColor:   segmentColor(colors, s.Stack),
					StrokeColor: chart.ColorWhite,
					StrokeWidth: 1,
					FontColor:   chart.ColorWhite,
					FontSize:    10,
				},
			})
		}
		if spec.PinXAxis && total < 100 {
			// Invisible filler so the visible segment occupies exactly its
			// percentage of the [0,100] axis despite per-bar normalization.
			values = append(values, chart.Value{
				Value: 100 - total,
				Style: chart.Style{
					FillColor:   chart.ColorTransparent,
					StrokeColor: chart.ColorTransparent,
				},
			})
		}
		bars = append(bars, chart.StackedBar{Name: b.Category, Width: thickness, Values: values})
	}

	ch := chart.StackedBarChart{
		Title:        spec.Title,
		TitleStyle:   chart.Style{FontSize: 13},
		Width:        w,
		Height:       h,
		IsHorizontal: true,
		BarSpacing:   barGap,
		Background: chart.Style{
			FillColor: background,
			Padding:   chart.Box{Top: padTop, Left: padLeft, Right: padRight, Bottom: padBottom},
		},
		Canvas: chart.Style{FillColor: background},
		Bars:   bars,
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode rendered chart: %w", err)
	}

	rgba := toRGBA(img)
	drawLegend(rgba, items, colors)
	drawBottomCenter(rgba, spec.XAxisTitle)
	return rgba, nil
}

// PNG renders a chart spec and encodes it as PNG bytes, ready to serve.
func PNG(spec chartspec.Spec, width int) ([]byte, error) {
	img, err := Image(spec, width)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Placeholder is the fallback image callers show when rendering fails.
func Placeholder(width int) image.Image {
	w, h := Dimensions(width)
	return placeholder(w, h, chartspec.NoDataTitle)
}

func stackColors(legend []string) map[string]drawing.Color {
	out := make(map[string]drawing.Color, len(legend))
	for i, name := range legend {
		out[name] = palette[i%len(palette)]
	}
	return out
}

func segmentColor(colors map[string]drawing.Color, stack string) drawing.Color {
	if c, ok := colors[stack]; ok {
		return c
	}
	return palette[0]
}

// barThickness spreads the bars over the available canvas height.
func barThickness(avail, bars int) int {
	if bars == 0 {
		return 0
	}
	t := avail/bars - barGap
	if t < 14 {
		t = 14
	}
	if t > 64 {
		t = 64
	}
	return t
}
