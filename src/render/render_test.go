package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/sharedplanet/wfh-lse/src/chartspec"
)

func TestDimensions(t *testing.T) {
	cases := []struct {
		in    int
		wantW int
	}{
		{0, 640},
		{100, 640},
		{640, 640},
		{1200, 1200},
		{4000, 1920},
	}
	for _, c := range cases {
		w, h := Dimensions(c.in)
		if w != c.wantW {
			t.Fatalf("input %d => width %d want %d", c.in, w, c.wantW)
		}
		if h < 320 || h > 600 {
			t.Fatalf("height clamp violated for input %d => h=%d", c.in, h)
		}
	}
}

func stackedSpec() chartspec.Spec {
	return chartspec.Spec{
		Title:      "11_Response by 3_Response (Q8=Yes (currently or at some point in time))",
		XAxisTitle: "Percentage of responses",
		Bars: []chartspec.Bar{
			{Category: "Finance", Segments: []chartspec.Segment{
				{Stack: "Yes", Percent: 60, Count: 12, Label: "60.0% (12)"},
				{Stack: "No", Percent: 40, Count: 8, Label: "40.0% (8)"},
			}},
			{Category: "Retail", Segments: []chartspec.Segment{
				{Stack: "Yes", Percent: 25, Count: 5, Label: "25.0% (5)"},
				{Stack: "No", Percent: 75, Count: 15, Label: "75.0% (15)"},
			}},
		},
		Legend: []string{"Yes", "No"},
	}
}

func TestPNGEncodesAtClampedSize(t *testing.T) {
	data, err := PNG(stackedSpec(), 900)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	wantW, wantH := Dimensions(900)
	if got := img.Bounds(); got.Dx() != wantW || got.Dy() != wantH {
		t.Fatalf("bounds %dx%d want %dx%d", got.Dx(), got.Dy(), wantW, wantH)
	}
}

func TestPinnedAxisChartRenders(t *testing.T) {
	spec := chartspec.Spec{
		Title:      "Senior manager by 7_Response_Bucket",
		XAxisTitle: "Percentage of respondents",
		PinXAxis:   true,
		Bars: []chartspec.Bar{
			{Category: "Micro (1–9)", Segments: []chartspec.Segment{{Percent: 35, Count: 7, Label: "35.0% (7)"}}},
			{Category: "Large (250+)", Segments: []chartspec.Segment{{Percent: 100, Count: 40, Label: "100.0% (40)"}}},
		},
	}
	if _, err := Image(spec, 800); err != nil {
		t.Fatalf("render: %v", err)
	}
}

func TestNoDataSpecYieldsPlaceholder(t *testing.T) {
	img, err := Image(chartspec.Spec{NoData: true, Title: chartspec.NoDataTitle}, 800)
	if err != nil {
		t.Fatalf("placeholder must never fail: %v", err)
	}
	wantW, wantH := Dimensions(800)
	if got := img.Bounds(); got.Dx() != wantW || got.Dy() != wantH {
		t.Fatalf("bounds %dx%d want %dx%d", got.Dx(), got.Dy(), wantW, wantH)
	}
}

func TestEmptyBarsRenderAsPlaceholder(t *testing.T) {
	// A stored key with an empty row list yields a spec with a title but no
	// bars; rendering must not fail on it.
	spec := chartspec.Spec{
		Title:      "11_Response by 3_Response (Q8=No, never)",
		XAxisTitle: "Percentage of responses",
	}
	img, err := Image(spec, 800)
	if err != nil {
		t.Fatalf("zero bars must fall back to the placeholder: %v", err)
	}
	if img == nil {
		t.Fatalf("nil image")
	}
}

func TestPlaceholderFallback(t *testing.T) {
	img := Placeholder(640)
	if img == nil {
		t.Fatalf("nil fallback image")
	}
	if got := img.Bounds().Dx(); got != 640 {
		t.Fatalf("width = %d", got)
	}
}

func TestLegendLayoutWraps(t *testing.T) {
	entries := []string{
		"Yes, significantly more remote working",
		"Yes, somewhat more remote working",
		"No change",
		"Less remote working",
	}
	items, height := legendLayout(entries, 400)
	if len(items) != len(entries) {
		t.Fatalf("placed %d of %d entries", len(items), len(entries))
	}
	if height <= legendRowHeight {
		t.Fatalf("long entries at narrow width must wrap, height=%d", height)
	}
	if items[0].x != padLeft || items[0].row != 0 {
		t.Fatalf("first item must anchor the first row: %+v", items[0])
	}
	seen := map[int]bool{}
	for _, it := range items {
		if !seen[it.row] {
			seen[it.row] = true
			if it.x != padLeft {
				t.Fatalf("row %d must start at the left margin: %+v", it.row, it)
			}
		}
	}

	// A wide canvas keeps everything on one row.
	_, oneRow := legendLayout([]string{"Yes", "No"}, 1600)
	if oneRow != legendRowHeight {
		t.Fatalf("short legend should occupy one row, height=%d", oneRow)
	}

	items, height = legendLayout(nil, 800)
	if items != nil || height != 0 {
		t.Fatalf("empty legend must lay out to nothing: %v, %d", items, height)
	}
}
