package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ink is the overlay text color, dark enough to read on the light theme.
var ink = color.RGBA{R: 40, G: 40, B: 40, A: 255}

type legendItem struct {
	text string
	x    int
	row  int
}

// legendLayout places legend entries left to right, wrapping to a new row
// when an entry would run past the right margin. Returns the placed items and
// the total strip height in pixels; both are zero for an empty legend.
func legendLayout(entries []string, width int) ([]legendItem, int) {
	if len(entries) == 0 {
		return nil, 0
	}
	face := basicfont.Face7x13
	maxX := width - padRight
	x, row := padLeft, 0
	items := make([]legendItem, 0, len(entries))
	for _, e := range entries {
		w := legendSwatch + 4 + font.MeasureString(face, e).Ceil() + 16
		if x+w > maxX && x > padLeft {
			x = padLeft
			row++
		}
		items = append(items, legendItem{text: e, x: x, row: row})
		x += w
	}
	return items, (row + 1) * legendRowHeight
}

// drawLegend composes the legend strip into the top padding band, below the
// chart title: a color swatch followed by the stack name per entry.
func drawLegend(rgba *image.RGBA, items []legendItem, colors map[string]drawing.Color) {
	face := basicfont.Face7x13
	for _, it := range items {
		y := titleBand + it.row*legendRowHeight
		c := colors[it.text]
		swatch := image.Rect(it.x, y, it.x+legendSwatch, y+legendSwatch)
		draw.Draw(rgba, swatch, image.NewUniform(color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}), image.Point{}, draw.Over)
		d := &font.Drawer{
			Dst:  rgba,
			Src:  image.NewUniform(ink),
			Face: face,
			Dot:  fixed.Point26_6{X: fixed.I(it.x + legendSwatch + 4), Y: fixed.I(y + legendSwatch)},
		}
		d.DrawString(it.text)
	}
}

// drawBottomCenter writes the axis caption centered in the bottom padding.
func drawBottomCenter(rgba *image.RGBA, text string) {
	if text == "" {
		return
	}
	face := basicfont.Face7x13
	b := rgba.Bounds()
	tw := font.MeasureString(face, text).Ceil()
	d := &font.Drawer{
		Dst:  rgba,
		Src:  image.NewUniform(ink),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(b.Min.X + (b.Dx()-tw)/2), Y: fixed.I(b.Max.Y - 10)},
	}
	d.DrawString(text)
}

// placeholder draws a neutral image with a single centered message.
func placeholder(w, h int, text string) image.Image {
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), image.NewUniform(color.RGBA{R: background.R, G: background.G, B: background.B, A: background.A}), image.Point{}, draw.Src)
	face := basicfont.Face7x13
	tw := font.MeasureString(face, text).Ceil()
	d := &font.Drawer{
		Dst:  rgba,
		Src:  image.NewUniform(ink),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I((w - tw) / 2), Y: fixed.I(h / 2)},
	}
	d.DrawString(text)
	return rgba
}

// toRGBA copies a decoded image into a mutable RGBA for overlay drawing.
func toRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	return rgba
}
