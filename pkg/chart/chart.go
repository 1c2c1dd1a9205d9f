// Package chart draws the language proficiency bar chart.
package chart

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/nivandosoares/portfolio/pkg/portfolio"
)

// Geometry in pixels.
const (
	Width         = 500
	MinHeight     = 300
	barHeight     = 30
	barGap        = 15
	topOffset     = 20
	labelRight    = 100
	barLeft       = 110
	valueGap      = 10
	reservedRight = 150
	cornerRadius  = 4
)

var (
	labelColor    = color.RGBA{R: 0x64, G: 0x74, B: 0x8b, A: 0xff}
	gradientStart = color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}
	gradientEnd   = color.RGBA{R: 0x93, G: 0xc5, B: 0xfd, A: 0xff}
)

// Bar is one row of the chart.
type Bar struct {
	Label string
	Value float64
	Rect  image.Rectangle
}

// Height is the canvas height needed for n bars.
func Height(n int) int {
	return max(MinHeight, n*(barHeight+barGap)+topOffset)
}

// Bars computes the bar rectangles. Widths are proportional to the largest
// value, which spans the full bar area.
func Bars(data []portfolio.SkillDatum) (bars []Bar) {
	var top float64
	for _, d := range data {
		top = max(top, d.Value)
	}

	span := float64(Width - reservedRight)
	for i, d := range data {
		w := 0
		if top > 0 {
			w = int(d.Value / top * span)
		}
		y := i*(barHeight+barGap) + topOffset
		bars = append(bars, Bar{
			Label: d.Name,
			Value: d.Value,
			Rect:  image.Rect(barLeft, y, barLeft+w, y+barHeight),
		})
	}
	return bars
}

// Draw renders the chart on a transparent canvas.
func Draw(data []portfolio.SkillDatum) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height(len(data))))
	face := basicfont.Face7x13

	for _, b := range Bars(data) {
		fillGradient(img, b.Rect)

		baseline := b.Rect.Min.Y + barHeight/2 + face.Ascent/2
		label := font.MeasureString(face, b.Label).Ceil()
		drawString(img, face, labelRight-label, baseline, b.Label)
		drawString(img, face, b.Rect.Max.X+valueGap, baseline, formatValue(b.Value))
	}
	return img
}

// Render encodes the chart as PNG.
func Render(w io.Writer, data []portfolio.SkillDatum) (err error) {
	err = png.Encode(w, Draw(data))
	if err != nil {
		err = errors.Wrap(err, "failed to encode chart")
		return err
	}
	return err
}

func drawString(img draw.Image, face font.Face, x, y int, s string) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelColor),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// fillGradient paints r left to right, leaving the rounded corners clear.
func fillGradient(img *image.RGBA, r image.Rectangle) {
	w := r.Dx()
	for x := r.Min.X; x < r.Max.X; x++ {
		c := lerp(gradientStart, gradientEnd, float64(x-r.Min.X)/float64(max(w-1, 1)))
		for y := r.Min.Y; y < r.Max.Y; y++ {
			if outsideCorner(r, x, y) {
				continue
			}
			img.SetRGBA(x, y, c)
		}
	}
}

func outsideCorner(r image.Rectangle, x, y int) bool {
	rad := min(cornerRadius, r.Dx()/2, r.Dy()/2)
	if rad <= 0 {
		return false
	}
	cx, cy := x, y
	switch {
	case x < r.Min.X+rad:
		cx = r.Min.X + rad
	case x >= r.Max.X-rad:
		cx = r.Max.X - rad - 1
	}
	switch {
	case y < r.Min.Y+rad:
		cy = r.Min.Y + rad
	case y >= r.Max.Y-rad:
		cy = r.Max.Y - rad - 1
	}
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy > rad*rad
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(p, q uint8) uint8 {
		return uint8(float64(p) + (float64(q)-float64(p))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 0xff}
}

func formatValue(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return fmt.Sprintf("%.1f", v)
}
