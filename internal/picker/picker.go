// Package picker implements a polar hue/saturation colour picker: wheel
// geometry, raster rendering and the pointer interaction state machine.
//
// A Picker is single-threaded. All methods must be called from the goroutine
// that delivers input events; emissions happen synchronously and in order.
package picker

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/polarpick/internal/colour"
)

// State is the interaction state of a Picker.
type State int

const (
	// Idle means no drag is in progress.
	Idle State = iota
	// Dragging means an accepted press is held and moves emit colours.
	Dragging
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Options configures a Picker.
type Options struct {
	// Value is the externally driven current colour ("#rrggbb" or "#rgb").
	Value string

	// OnChange receives every colour selected by a press or drag.
	OnChange func(hex string)

	// Size is the wheel diameter in pixels. Defaults to DefaultSize.
	Size int

	// Border is the stroke colour around the wheel. Defaults to DefaultBorder.
	Border color.Color

	// Logger receives state transitions at trace level. Defaults to a null logger.
	Logger hclog.Logger
}

// Picker owns one raster surface and one interaction state.
type Picker struct {
	geometry Geometry
	border   color.Color
	onChange func(string)
	logger   hclog.Logger

	// surface is nil until Mount.
	surface *image.RGBA
	paints  int

	state        State
	selected     colour.RGB
	hasSelection bool
	indicator    Point
}

// New creates an unmounted picker. Until Mount is called there is no surface,
// and pointer input is ignored.
func New(opts Options) *Picker {
	size := opts.Size
	if size <= 0 {
		size = DefaultSize
	}
	border := opts.Border
	if border == nil {
		border = DefaultBorder
	}
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	p := &Picker{
		geometry: Geometry{Size: size},
		border:   border,
		onChange: opts.OnChange,
		logger:   logger,
	}
	p.SetValue(opts.Value)
	return p
}

// Mount allocates the surface and paints the wheel.
func (p *Picker) Mount() {
	if p.surface != nil {
		return
	}
	p.repaint()
}

// Unmount releases the surface and returns to Idle.
func (p *Picker) Unmount() {
	p.surface = nil
	p.setState(Idle)
}

// Mounted reports whether the picker currently has a surface.
func (p *Picker) Mounted() bool {
	return p.surface != nil
}

// Geometry returns the current wheel geometry.
func (p *Picker) Geometry() Geometry {
	return p.geometry
}

// SetSize changes the diameter. The wheel is repainted only when the size
// actually changes and the picker is mounted.
func (p *Picker) SetSize(size int) {
	if size <= 0 {
		size = DefaultSize
	}
	if size == p.geometry.Size {
		return
	}

	p.geometry = Geometry{Size: size}
	if p.hasSelection {
		p.indicator = p.geometry.PositionForColour(colour.RGBToNormalizedHSV(p.selected.R, p.selected.G, p.selected.B))
	}
	if p.surface != nil {
		p.repaint()
	}
}

// SetValue resynchronises the indicator with an externally supplied colour.
// Invalid input leaves the indicator untouched and reports false. The wheel
// itself is not repainted.
func (p *Picker) SetValue(hex string) bool {
	rgb, ok := colour.HexToRGB(hex)
	if !ok {
		if hex != "" {
			p.logger.Debug("ignoring invalid colour value", "value", hex)
		}
		return false
	}

	p.selected = rgb
	p.hasSelection = true
	p.indicator = p.geometry.PositionForColour(colour.RGBToNormalizedHSV(rgb.R, rgb.G, rgb.B))
	return true
}

// Value returns the current selection as "#rrggbb", or "" when undefined.
func (p *Picker) Value() string {
	if !p.hasSelection {
		return ""
	}
	return p.selected.Hex()
}

// State returns the interaction state.
func (p *Picker) State() State {
	return p.state
}

// Indicator returns where the selection marker is drawn.
func (p *Picker) Indicator() (Point, bool) {
	return p.indicator, p.hasSelection
}

// Paints returns how many times the full wheel has been painted.
func (p *Picker) Paints() int {
	return p.paints
}

// Wheel returns the painted surface, or nil when unmounted.
// The returned image is owned by the picker and must not be modified.
func (p *Picker) Wheel() *image.RGBA {
	return p.surface
}

// Frame returns a copy of the wheel with the indicator composited on top.
// Only the indicator is drawn; the wheel is reused as painted.
func (p *Picker) Frame() *image.RGBA {
	if p.surface == nil {
		return nil
	}

	out := image.NewRGBA(p.surface.Bounds())
	draw.Draw(out, out.Bounds(), p.surface, image.Point{}, draw.Src)
	if p.hasSelection {
		PaintIndicator(out, p.indicator, p.selected)
	}
	return out
}

// Press handles a pointer press at a surface point. A press within the
// outer bound emits its colour and starts a drag; anything else is ignored.
func (p *Picker) Press(pt Point) bool {
	if p.surface == nil {
		return false
	}
	if !p.pick(pt) {
		return false
	}
	p.setState(Dragging)
	return true
}

// Move handles pointer motion. While dragging, in-bound points emit; points
// outside the wheel are ignored and the last colour stays selected.
func (p *Picker) Move(pt Point) bool {
	if p.surface == nil || p.state != Dragging {
		return false
	}
	return p.pick(pt)
}

// Release ends any drag.
func (p *Picker) Release() {
	p.setState(Idle)
}

// Leave handles the pointer leaving the surface; it ends any drag.
func (p *Picker) Leave() {
	p.setState(Idle)
}

// TouchStart presses at the first active touch. The result reports whether
// the platform's default scroll and zoom gestures should be suppressed.
func (p *Picker) TouchStart(touches []Point) bool {
	if len(touches) == 0 {
		return false
	}
	p.Press(touches[0])
	return true
}

// TouchMove moves to the first active touch, with the same result as TouchStart.
func (p *Picker) TouchMove(touches []Point) bool {
	if len(touches) == 0 {
		return false
	}
	p.Move(touches[0])
	return true
}

// TouchEnd ends any drag.
func (p *Picker) TouchEnd() {
	p.Release()
}

// pick maps pt to a colour and emits it if pt is within the outer bound.
func (p *Picker) pick(pt Point) bool {
	angle, distance := p.geometry.Polar(pt)
	if !p.geometry.Contains(distance) {
		p.logger.Trace("pointer outside wheel", "x", pt.X, "y", pt.Y, "distance", distance)
		return false
	}

	hsv := p.geometry.HSVAt(angle, distance)
	p.emit(pt, hsv.RGB())
	return true
}

// emit updates the local selection and notifies the owner in one step.
func (p *Picker) emit(at Point, rgb colour.RGB) {
	p.selected = rgb
	p.hasSelection = true
	p.indicator = at

	hex := rgb.Hex()
	p.logger.Trace("colour selected", "hex", hex, "x", at.X, "y", at.Y)
	if p.onChange != nil {
		p.onChange(hex)
	}
}

func (p *Picker) setState(s State) {
	if p.state == s {
		return
	}
	p.logger.Trace("state change", "from", p.state.String(), "to", s.String())
	p.state = s
}

func (p *Picker) repaint() {
	size := p.geometry.Size
	if p.surface == nil || p.surface.Bounds().Dx() != size {
		p.surface = image.NewRGBA(image.Rect(0, 0, size, size))
	}
	PaintWheel(p.surface, p.geometry, p.border)
	p.paints++
	p.logger.Debug("wheel painted", "size", size, "paints", p.paints)
}
