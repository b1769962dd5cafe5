package colour

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// HexToRGB parses "#rgb" or "#rrggbb" (the leading '#' is optional, case-insensitive).
// Shorthand input duplicates each nibble, so "f" becomes "ff".
// The boolean is false for anything that matches neither pattern.
func HexToRGB(hex string) (RGB, bool) {
	s := strings.TrimPrefix(hex, "#")
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return RGB{}, false
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, false
	}

	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, true
}

// RGBToHex packs the channels into a lowercase "#rrggbb" string.
// Each channel keeps only its lowest 8 bits.
func RGBToHex(r, g, b int) string {
	packed := (r&0xff)<<16 | (g&0xff)<<8 | b&0xff
	return fmt.Sprintf("#%06x", packed)
}

// RGBToHSL converts RGB to integer-rounded HSL.
// Achromatic input (r == g == b) yields hue 0 and saturation 0.
func RGBToHSL(r, g, b uint8) HSL {
	rf, gf, bf := unit(r), unit(g), unit(b)

	maxVal := math.Max(rf, math.Max(gf, bf))
	minVal := math.Min(rf, math.Min(gf, bf))
	delta := maxVal - minVal

	// Lightness.
	l := (maxVal + minVal) / 2

	// Saturation.
	var s float64
	if delta != 0 {
		if l < 0.5 {
			s = delta / (maxVal + minVal)
		} else {
			s = delta / (2.0 - maxVal - minVal)
		}
	}

	return HSL{
		H: degrees(hueFraction(rf, gf, bf, maxVal, delta)),
		S: percent(s),
		L: percent(l),
	}
}

// HSLToRGB converts HSL (hue in degrees, saturation and lightness in percent) to RGB.
// Out-of-range saturation and lightness are clamped; hue wraps.
func HSLToRGB(h, s, l int) RGB {
	hf := math.Mod(float64(h), 360)
	if hf < 0 {
		hf += 360
	}
	sf := clamp01(float64(s) / 100)
	lf := clamp01(float64(l) / 100)

	if sf == 0 {
		// Achromatic (grey).
		v := channel(lf)
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if lf < 0.5 {
		q = lf * (1 + sf)
	} else {
		q = lf + sf - lf*sf
	}
	p := 2*lf - q

	return RGB{
		R: channel(hueToRGB(p, q, hf+120)),
		G: channel(hueToRGB(p, q, hf)),
		B: channel(hueToRGB(p, q, hf-120)),
	}
}

// hueToRGB is a helper for HSL to RGB conversion. t is in degrees.
func hueToRGB(p, q, t float64) float64 {
	for t < 0 {
		t += 360
	}
	for t >= 360 {
		t -= 360
	}

	if t < 60 {
		return p + (q-p)*t/60
	}
	if t < 180 {
		return q
	}
	if t < 240 {
		return p + (q-p)*(240-t)/60
	}
	return p
}

// RGBToHSV converts RGB to the integer-rounded display form of HSV.
func RGBToHSV(r, g, b uint8) HSVDisplay {
	hsv := RGBToNormalizedHSV(r, g, b)
	return HSVDisplay{
		H: degrees(hsv.H),
		S: percent(hsv.S),
		V: percent(hsv.V),
	}
}

// RGBToNormalizedHSV converts RGB to HSV with every component in [0, 1].
// No rounding is applied, so HSVToRGB reproduces the input exactly.
func RGBToNormalizedHSV(r, g, b uint8) HSV {
	rf, gf, bf := unit(r), unit(g), unit(b)

	maxVal := math.Max(rf, math.Max(gf, bf))
	minVal := math.Min(rf, math.Min(gf, bf))
	delta := maxVal - minVal

	var s float64
	if maxVal > 0 {
		s = delta / maxVal
	}

	return HSV{
		H: hueFraction(rf, gf, bf, maxVal, delta),
		S: s,
		V: maxVal,
	}
}

// HSVToRGB converts a normalised HSV triple to RGB.
// h is a fraction of a turn and wraps; s and v are clamped to [0, 1].
func HSVToRGB(h, s, v float64) RGB {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		h = 0
	}
	h -= math.Floor(h)
	s = clamp01(s)
	v = clamp01(v)

	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}

	return RGB{R: channel(r), G: channel(g), B: channel(b)}
}

// RGBToCMYK converts RGB to the subtractive CMYK model.
// Pure black yields c = m = y = 0 and k = 100.
func RGBToCMYK(r, g, b uint8) CMYK {
	rf, gf, bf := unit(r), unit(g), unit(b)
	k := 1 - math.Max(rf, math.Max(gf, bf))

	return CMYK{
		C: percent(ratio(1-rf-k, 1-k)),
		M: percent(ratio(1-gf-k, 1-k)),
		Y: percent(ratio(1-bf-k, 1-k)),
		K: percent(k),
	}
}

// CMYKToRGB converts CMYK percentages back to RGB. Inputs are clamped to [0, 100].
func CMYKToRGB(c, m, y, k int) RGB {
	kf := 1 - clamp01(float64(k)/100)
	return RGB{
		R: channel((1 - clamp01(float64(c)/100)) * kf),
		G: channel((1 - clamp01(float64(m)/100)) * kf),
		B: channel((1 - clamp01(float64(y)/100)) * kf),
	}
}

// hueFraction returns the hue in [0, 1) for unit RGB components.
func hueFraction(r, g, b, maxVal, delta float64) float64 {
	if delta == 0 {
		return 0
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	return h / 6
}

// ratio divides a by b, treating 0/0 (and any zero denominator) as 0.
func ratio(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

func unit(c uint8) float64 {
	return float64(c) / 255
}

func channel(x float64) uint8 {
	return uint8(math.Round(clamp01(x) * 255))
}

func percent(x float64) int {
	return int(math.Round(x * 100))
}

// degrees rounds a turn fraction to whole degrees in [0, 360).
func degrees(turn float64) int {
	return int(math.Round(turn*360)) % 360
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
