package session

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/polarpick/internal/picker"
)

// Emission is one colour selected during a replay.
type Emission struct {
	// Event is the index of the event that produced the colour.
	Event int    `json:"event"`
	Hex   string `json:"hex"`
}

// EmitFunc receives emissions as they happen. Returning an error stops the replay.
type EmitFunc func(Emission) error

// Options tunes a replay.
type Options struct {
	Logger hclog.Logger
}

// Run mounts a fresh picker for the script and feeds it every event in order.
// It returns all emissions, in order, including those produced before an error.
// emit may be nil.
func Run(ctx context.Context, s *Script, emit EmitFunc, opts Options) ([]Emission, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	var (
		emissions []Emission
		current   int
		emitErr   error
	)

	p := picker.New(picker.Options{
		Value:  s.Value,
		Size:   s.Size,
		Logger: logger.Named("picker"),
		OnChange: func(hex string) {
			e := Emission{Event: current, Hex: hex}
			emissions = append(emissions, e)
			if emit != nil && emitErr == nil {
				emitErr = emit(e)
			}
		},
	})
	p.Mount()
	defer p.Unmount()

	for i, ev := range s.Events {
		if err := ctx.Err(); err != nil {
			return emissions, fmt.Errorf("replay stopped at event %d: %w", i, err)
		}

		current = i
		suppressed := apply(p, ev, s.Origin)
		logger.Trace("event replayed", "index", i, "type", string(ev.Type), "state", p.State().String(), "suppress", suppressed)

		if emitErr != nil {
			return emissions, fmt.Errorf("event %d: failed to emit colour: %w", i, emitErr)
		}
	}

	logger.Debug("session replayed", "events", len(s.Events), "emissions", len(emissions))
	return emissions, nil
}

// apply dispatches ev to p and reports whether default gestures were suppressed.
func apply(p *picker.Picker, ev Event, origin picker.Point) bool {
	switch ev.Type {
	case EventPress:
		p.Press(picker.Sample(picker.Point{X: ev.X, Y: ev.Y}, origin))
	case EventMove:
		p.Move(picker.Sample(picker.Point{X: ev.X, Y: ev.Y}, origin))
	case EventRelease:
		p.Release()
	case EventLeave:
		p.Leave()
	case EventTouchStart:
		return p.TouchStart(samples(ev.Touches, origin))
	case EventTouchMove:
		return p.TouchMove(samples(ev.Touches, origin))
	case EventTouchEnd:
		p.TouchEnd()
	}
	return false
}

func samples(raw []picker.Point, origin picker.Point) []picker.Point {
	out := make([]picker.Point, len(raw))
	for i, pt := range raw {
		out[i] = picker.Sample(pt, origin)
	}
	return out
}
