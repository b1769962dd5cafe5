// Package colour provides colour-model conversions between hex, RGB, HSL, HSV and CMYK.
//
// Every function in this package is pure. Malformed input never panics: parsing
// functions report failure through a boolean and numeric conversions round or
// clamp to the nearest representable value.
package colour

import (
	"fmt"
	"image/color"
)

// RGB represents a colour in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the canonical lowercase "#rrggbb" form.
func (rgb RGB) Hex() string {
	return RGBToHex(int(rgb.R), int(rgb.G), int(rgb.B))
}

// RGBA implements color.Color so an RGB can be drawn directly.
func (rgb RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 0xff}.RGBA()
}

// ToRGB converts a color.Color to RGB, dropping alpha.
func ToRGB(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255]
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// HSV is the normalised hue/saturation/value form used for wheel geometry.
// H is a fraction of a full turn in [0, 1); S and V are in [0, 1].
type HSV struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

// RGB converts the HSV triple to RGB.
func (hsv HSV) RGB() RGB {
	return HSVToRGB(hsv.H, hsv.S, hsv.V)
}

// HSVDisplay is the integer-rounded HSV form shown to users:
// hue in degrees [0, 360), saturation and value in percent.
type HSVDisplay struct {
	H int `json:"h"`
	S int `json:"s"`
	V int `json:"v"`
}

// String returns the colour as "hsv(h, s%, v%)".
func (hsv HSVDisplay) String() string {
	return fmt.Sprintf("hsv(%d, %d%%, %d%%)", hsv.H, hsv.S, hsv.V)
}

// Normalized returns the 0-1 fractional form of the display triple.
func (hsv HSVDisplay) Normalized() HSV {
	return HSV{
		H: float64(hsv.H) / 360,
		S: float64(hsv.S) / 100,
		V: float64(hsv.V) / 100,
	}
}

// HSL holds hue in degrees [0, 360) with saturation and lightness in percent.
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// String returns the colour as "hsl(h, s%, l%)".
func (hsl HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", hsl.H, hsl.S, hsl.L)
}

// CMYK holds subtractive ink percentages in [0, 100].
type CMYK struct {
	C int `json:"c"`
	M int `json:"m"`
	Y int `json:"y"`
	K int `json:"k"`
}

// String returns the colour as "cmyk(c%, m%, y%, k%)".
func (c CMYK) String() string {
	return fmt.Sprintf("cmyk(%d%%, %d%%, %d%%, %d%%)", c.C, c.M, c.Y, c.K)
}
