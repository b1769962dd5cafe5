// Package wheel provides a Fyne widget for the polar colour picker.
package wheel

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/polarpick/internal/picker"
)

// Options configures a Wheel.
type Options struct {
	Size   int
	Border color.Color
	Logger hclog.Logger
}

// Wheel is a colour wheel widget. Pressing or dragging on the wheel selects
// a colour and reports it through the change callback.
type Wheel struct {
	widget.BaseWidget

	picker   *picker.Picker
	onChange func(hex string)
	image    *canvas.Image
}

var (
	_ fyne.Widget       = (*Wheel)(nil)
	_ fyne.Draggable    = (*Wheel)(nil)
	_ desktop.Mouseable = (*Wheel)(nil)
	_ desktop.Hoverable = (*Wheel)(nil)
	_ mobile.Touchable  = (*Wheel)(nil)
)

// New creates a wheel showing value. onChange is called for every selected colour.
func New(value string, onChange func(hex string), opts Options) *Wheel {
	w := &Wheel{onChange: onChange}
	w.picker = picker.New(picker.Options{
		Value:    value,
		Size:     opts.Size,
		Border:   opts.Border,
		Logger:   opts.Logger,
		OnChange: w.changed,
	})

	w.image = canvas.NewImageFromImage(nil)
	w.image.FillMode = canvas.ImageFillOriginal
	w.image.ScaleMode = canvas.ImageScalePixels

	w.ExtendBaseWidget(w)
	return w
}

func (w *Wheel) changed(hex string) {
	if w.onChange != nil {
		w.onChange(hex)
	}
}

// Value returns the selected colour as "#rrggbb".
func (w *Wheel) Value() string {
	return w.picker.Value()
}

// SetValue moves the indicator to an externally supplied colour.
// Invalid values are ignored and reported as false.
func (w *Wheel) SetValue(hex string) bool {
	if !w.picker.SetValue(hex) {
		return false
	}
	w.refreshFrame()
	return true
}

// SetSize changes the wheel diameter.
func (w *Wheel) SetSize(size int) {
	w.picker.SetSize(size)
	w.Refresh()
}

// Picker exposes the underlying picker state.
func (w *Wheel) Picker() *picker.Picker {
	return w.picker
}

// CreateRenderer mounts the picker and returns the widget renderer.
func (w *Wheel) CreateRenderer() fyne.WidgetRenderer {
	w.picker.Mount()
	w.image.Image = w.picker.Frame()
	return &wheelRenderer{wheel: w}
}

// MouseDown starts a selection.
func (w *Wheel) MouseDown(ev *desktop.MouseEvent) {
	if w.picker.Press(point(ev.Position)) {
		w.refreshFrame()
	}
}

// MouseUp ends a selection.
func (w *Wheel) MouseUp(*desktop.MouseEvent) {
	w.picker.Release()
}

// Dragged continues a selection. Implementing fyne.Draggable also keeps
// drags on the wheel from scrolling enclosing containers.
func (w *Wheel) Dragged(ev *fyne.DragEvent) {
	if w.picker.Move(point(ev.Position)) {
		w.refreshFrame()
	}
}

// DragEnd ends a selection.
func (w *Wheel) DragEnd() {
	w.picker.Release()
}

// MouseIn is a no-op.
func (w *Wheel) MouseIn(*desktop.MouseEvent) {}

// MouseMoved is a no-op: moves only select while dragging, and drags arrive via Dragged.
func (w *Wheel) MouseMoved(*desktop.MouseEvent) {}

// MouseOut ends any selection when the pointer leaves the wheel.
func (w *Wheel) MouseOut() {
	w.picker.Leave()
}

// TouchDown starts a selection at the touch point.
func (w *Wheel) TouchDown(ev *mobile.TouchEvent) {
	w.picker.TouchStart([]picker.Point{point(ev.Position)})
	w.refreshFrame()
}

// TouchUp ends a selection.
func (w *Wheel) TouchUp(*mobile.TouchEvent) {
	w.picker.TouchEnd()
}

// TouchCancel ends a selection.
func (w *Wheel) TouchCancel(*mobile.TouchEvent) {
	w.picker.TouchEnd()
}

// refreshFrame recomposites the indicator over the painted wheel.
func (w *Wheel) refreshFrame() {
	if !w.picker.Mounted() {
		return
	}
	w.image.Image = w.picker.Frame()
	w.image.Refresh()
}

func point(p fyne.Position) picker.Point {
	return picker.Point{X: float64(p.X), Y: float64(p.Y)}
}

type wheelRenderer struct {
	wheel *Wheel
}

func (r *wheelRenderer) Layout(fyne.Size) {
	s := r.MinSize()
	r.wheel.image.Move(fyne.NewPos(0, 0))
	r.wheel.image.Resize(s)
}

func (r *wheelRenderer) MinSize() fyne.Size {
	size := float32(r.wheel.picker.Geometry().Size)
	return fyne.NewSize(size, size)
}

func (r *wheelRenderer) Refresh() {
	r.wheel.picker.Mount()
	r.wheel.image.Image = r.wheel.picker.Frame()
	r.Layout(r.wheel.Size())
	r.wheel.image.Refresh()
}

func (r *wheelRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.wheel.image}
}

func (r *wheelRenderer) Destroy() {
	r.wheel.picker.Unmount()
}
