package picker

import (
	"math"
	"testing"

	"github.com/jmylchreest/polarpick/internal/colour"
)

func TestGeometry(t *testing.T) {
	g := Geometry{Size: 200}

	if c := g.Center(); c != (Point{X: 100, Y: 100}) {
		t.Errorf("Center() = %+v, want (100, 100)", c)
	}
	if r := g.Radius(); r != 90 {
		t.Errorf("Radius() = %v, want 90", r)
	}
	if r := g.OuterRadius(); r != 100 {
		t.Errorf("OuterRadius() = %v, want 100", r)
	}
}

func TestSample(t *testing.T) {
	got := Sample(Point{X: 150, Y: 80}, Point{X: 40, Y: 30})
	if got != (Point{X: 110, Y: 50}) {
		t.Errorf("Sample() = %+v, want (110, 50)", got)
	}
}

func TestPolar(t *testing.T) {
	g := Geometry{Size: 200}

	tests := []struct {
		name         string
		p            Point
		wantAngle    float64
		wantDistance float64
	}{
		{"east", Point{X: 200, Y: 100}, 0, 100},
		{"south is clockwise", Point{X: 100, Y: 150}, math.Pi / 2, 50},
		{"west", Point{X: 0, Y: 100}, math.Pi, 100},
		{"north is negative", Point{X: 100, Y: 80}, -math.Pi / 2, 20},
		{"centre", Point{X: 100, Y: 100}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			angle, distance := g.Polar(tt.p)
			if math.Abs(angle-tt.wantAngle) > 1e-9 {
				t.Errorf("angle = %v, want %v", angle, tt.wantAngle)
			}
			if math.Abs(distance-tt.wantDistance) > 1e-9 {
				t.Errorf("distance = %v, want %v", distance, tt.wantDistance)
			}
		})
	}
}

func TestColourFromPosition(t *testing.T) {
	g := Geometry{Size: 200}

	tests := []struct {
		name     string
		angle    float64
		distance float64
		want     string
	}{
		{"east at full saturation is red", 0, 100, "#ff0000"},
		{"west at full saturation is cyan", math.Pi, 100, "#00ffff"},
		{"negative angle normalises", -math.Pi / 3, 100, "#ff00ff"},
		{"clockwise sixth of a turn", math.Pi / 3, 100, "#ffff00"},
		{"centre is white", 1.234, 0, "#ffffff"},
		{"centre is white at any angle", -2.5, 0, "#ffffff"},
		{"beyond the edge clamps", 0, 150, "#ff0000"},
		{"drawn edge is not fully saturated", 0, 90, colour.HSVToRGB(0, 0.9, 1).Hex()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.ColourFromPosition(tt.angle, tt.distance); got != tt.want {
				t.Errorf("ColourFromPosition(%v, %v) = %s, want %s", tt.angle, tt.distance, got, tt.want)
			}
		})
	}
}

func TestHSVAtValueIsFixed(t *testing.T) {
	g := Geometry{Size: 120}
	for _, d := range []float64{0, 10, 30, 60} {
		if hsv := g.HSVAt(1, d); hsv.V != 1 {
			t.Errorf("HSVAt(1, %v).V = %v, want 1", d, hsv.V)
		}
	}
}

func TestContains(t *testing.T) {
	g := Geometry{Size: 200}
	if !g.Contains(100) {
		t.Error("distance equal to size/2 should be inside")
	}
	if g.Contains(101) {
		t.Error("distance size/2 + 1 should be outside")
	}
}

func TestPositionForColourInvertsMapping(t *testing.T) {
	g := Geometry{Size: 200}

	for _, hex := range []string{"#ff0000", "#00ffff", "#80ff80", "#ffffff", "#3366ff"} {
		rgb, _ := colour.HexToRGB(hex)
		pos := g.PositionForColour(colour.RGBToNormalizedHSV(rgb.R, rgb.G, rgb.B))

		angle, distance := g.Polar(pos)
		if got := g.ColourFromPosition(angle, distance); got != hex {
			t.Errorf("%s placed at %+v maps back to %s", hex, pos, got)
		}
	}
}
