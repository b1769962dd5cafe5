package colour

import (
	"image/color"
	"math"
)

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(c color.Color) float64 {
	rgb := ToRGB(c)
	return 0.2126*gammaCorrect(unit(rgb.R)) +
		0.7152*gammaCorrect(unit(rgb.G)) +
		0.0722*gammaCorrect(unit(rgb.B))
}

// gammaCorrect linearises an sRGB component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21.
func ContrastRatio(c1, c2 color.Color) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

var (
	black = RGB{R: 0, G: 0, B: 0}
	white = RGB{R: 255, G: 255, B: 255}
)

// MarkerColour picks black or white, whichever contrasts more with bg.
// Ties go to black.
func MarkerColour(bg color.Color) RGB {
	if ContrastRatio(white, bg) > ContrastRatio(black, bg) {
		return white
	}
	return black
}
