package colour

import (
	"encoding/json"
	"strings"

	"golang.org/x/image/colornames"
)

// Parsed holds every view of a single colour. All fields derive from RGB.
type Parsed struct {
	Hex  string     `json:"hex"`
	RGB  RGB        `json:"rgb"`
	HSL  HSL        `json:"hsl"`
	HSV  HSVDisplay `json:"hsv"`
	CMYK CMYK       `json:"cmyk"`
}

// ParseColour parses a hex colour string and derives all other representations.
// It reports false exactly when HexToRGB does.
func ParseColour(s string) (Parsed, bool) {
	rgb, ok := HexToRGB(s)
	if !ok {
		return Parsed{}, false
	}
	return FromRGB(rgb), true
}

// FromRGB derives every representation from an RGB value.
func FromRGB(rgb RGB) Parsed {
	return Parsed{
		Hex:  rgb.Hex(),
		RGB:  rgb,
		HSL:  RGBToHSL(rgb.R, rgb.G, rgb.B),
		HSV:  RGBToHSV(rgb.R, rgb.G, rgb.B),
		CMYK: RGBToCMYK(rgb.R, rgb.G, rgb.B),
	}
}

// ToJSON converts the parsed colour to indented JSON.
func (p Parsed) ToJSON() ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// LookupName resolves an SVG 1.1 colour keyword such as "steelblue". Case is ignored.
func LookupName(name string) (RGB, bool) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return RGB{}, false
	}
	return RGB{R: c.R, G: c.G, B: c.B}, true
}

// Resolve accepts either a hex string or a colour keyword. Hex is tried first.
func Resolve(s string) (Parsed, bool) {
	if p, ok := ParseColour(strings.TrimSpace(s)); ok {
		return p, true
	}
	if rgb, ok := LookupName(s); ok {
		return FromRGB(rgb), true
	}
	return Parsed{}, false
}
