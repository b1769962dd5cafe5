package picker

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/jmylchreest/polarpick/internal/colour"
)

const (
	// wedgeSpread is how far (in degrees) each 1° hue wedge extends on either
	// side. Neighbouring wedges overlap so anti-aliased edges leave no gaps.
	wedgeSpread  = 2
	wedgeSteps   = 4
	circleSteps  = 180
	borderWidth  = 2
	markerRadius = 6
)

// DefaultBorder is the neutral stroke drawn around the wheel.
var DefaultBorder color.Color = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}

// PaintWheel clears dst and paints the hue/saturation wheel for g:
// hue wedges, a white-to-transparent radial overlay, then the border stroke.
func PaintWheel(dst *image.RGBA, g Geometry, border color.Color) {
	b := dst.Bounds()
	draw.Draw(dst, b, image.Transparent, image.Point{}, draw.Src)

	radius := g.Radius()
	if radius <= 0 {
		return
	}
	if border == nil {
		border = DefaultBorder
	}

	c := g.Center()
	z := vector.NewRasterizer(b.Dx(), b.Dy())

	for angle := 0; angle < 360; angle++ {
		z.Reset(b.Dx(), b.Dy())
		wedge(z, c, radius, float64(angle-wedgeSpread), float64(angle+wedgeSpread))
		hue := colour.HSVToRGB(float64(angle)/360, 1, 1)
		z.Draw(dst, b, image.NewUniform(hue), image.Point{})
	}

	z.Reset(b.Dx(), b.Dy())
	circle(z, c, radius, false)
	z.Draw(dst, b, radialFade{center: c, radius: radius}, image.Point{})

	z.Reset(b.Dx(), b.Dy())
	ring(z, c, radius, borderWidth)
	z.Draw(dst, b, image.NewUniform(border), image.Point{})
}

// PaintIndicator draws the selection marker: a swatch of fill outlined in
// black or white, whichever contrasts more with fill.
func PaintIndicator(dst *image.RGBA, at Point, fill colour.RGB) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())

	circle(z, at, markerRadius, false)
	z.Draw(dst, b, image.NewUniform(fill), image.Point{})

	z.Reset(b.Dx(), b.Dy())
	ring(z, at, markerRadius, borderWidth)
	z.Draw(dst, b, image.NewUniform(colour.MarkerColour(fill)), image.Point{})
}

// wedge adds a pie slice from c out to r, between two angles in degrees.
func wedge(z *vector.Rasterizer, c Point, r, fromDeg, toDeg float64) {
	z.MoveTo(float32(c.X), float32(c.Y))
	for i := 0; i <= wedgeSteps; i++ {
		a := (fromDeg + (toDeg-fromDeg)*float64(i)/wedgeSteps) * math.Pi / 180
		z.LineTo(float32(c.X+r*math.Cos(a)), float32(c.Y+r*math.Sin(a)))
	}
	z.ClosePath()
}

// circle adds a closed polygon approximating a circle. Reversed circles wind
// the other way, so they cut holes in the coverage accumulated so far.
func circle(z *vector.Rasterizer, c Point, r float64, reversed bool) {
	step := 2 * math.Pi / circleSteps
	if reversed {
		step = -step
	}
	z.MoveTo(float32(c.X+r), float32(c.Y))
	for i := 1; i < circleSteps; i++ {
		a := float64(i) * step
		z.LineTo(float32(c.X+r*math.Cos(a)), float32(c.Y+r*math.Sin(a)))
	}
	z.ClosePath()
}

// ring adds an annulus of the given width centred on radius r.
func ring(z *vector.Rasterizer, c Point, r, width float64) {
	circle(z, c, r+width/2, false)
	circle(z, c, math.Max(0, r-width/2), true)
}

// radialFade is opaque white at center, fading linearly to transparent at radius.
type radialFade struct {
	center Point
	radius float64
}

func (f radialFade) ColorModel() color.Model {
	return color.NRGBAModel
}

func (f radialFade) Bounds() image.Rectangle {
	return image.Rectangle{Min: image.Point{X: -1e9, Y: -1e9}, Max: image.Point{X: 1e9, Y: 1e9}}
}

func (f radialFade) At(x, y int) color.Color {
	d := math.Hypot(float64(x)+0.5-f.center.X, float64(y)+0.5-f.center.Y)
	alpha := 1 - math.Min(1, d/f.radius)
	return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: uint8(math.Round(alpha * 0xff))}
}
