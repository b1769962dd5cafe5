// Package session replays scripted pointer sessions against a picker.
package session

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/polarpick/internal/colour"
	"github.com/jmylchreest/polarpick/internal/picker"
)

// ErrUnknownEvent is returned when a script contains an unsupported event type.
var ErrUnknownEvent = errors.New("unknown event type")

// EventType names a pointer or touch event.
type EventType string

const (
	EventPress      EventType = "press"
	EventMove       EventType = "move"
	EventRelease    EventType = "release"
	EventLeave      EventType = "leave"
	EventTouchStart EventType = "touchstart"
	EventTouchMove  EventType = "touchmove"
	EventTouchEnd   EventType = "touchend"
)

// Event is one recorded input event. Coordinates are raw (page) coordinates;
// the script origin is subtracted before they reach the picker.
type Event struct {
	Type    EventType      `yaml:"type"`
	X       float64        `yaml:"x,omitempty"`
	Y       float64        `yaml:"y,omitempty"`
	Touches []picker.Point `yaml:"touches,omitempty"`
}

// Script is a complete recorded session.
type Script struct {
	// Size is the wheel diameter. Zero means picker.DefaultSize.
	Size int `yaml:"size,omitempty"`

	// Value is the initial externally supplied colour.
	Value string `yaml:"value"`

	// Origin is the surface's top-left corner in raw coordinates.
	Origin picker.Point `yaml:"origin,omitempty"`

	Events []Event `yaml:"events"`
}

// Parse decodes and validates a YAML script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse session script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads a script from path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read session script: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks the script for unsupported events and invalid settings.
func (s *Script) Validate() error {
	if s.Size < 0 {
		return fmt.Errorf("size must be positive, got %d", s.Size)
	}
	if s.Value != "" {
		if _, ok := colour.HexToRGB(s.Value); !ok {
			return fmt.Errorf("invalid initial value %q", s.Value)
		}
	}

	for i, ev := range s.Events {
		switch ev.Type {
		case EventPress, EventMove, EventRelease, EventLeave, EventTouchEnd:
		case EventTouchStart, EventTouchMove:
			if len(ev.Touches) == 0 {
				return fmt.Errorf("event %d: %s requires at least one touch", i, ev.Type)
			}
		default:
			return fmt.Errorf("event %d: %w %q", i, ErrUnknownEvent, ev.Type)
		}
	}
	return nil
}
