package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const dragScript = `
size: 200
value: "#ffffff"
origin: {x: 50, y: 20}
events:
  - {type: move, x: 250, y: 120}
  - {type: press, x: 250, y: 120}
  - {type: move, x: 150, y: 120}
  - {type: move, x: 0, y: 0}
  - {type: move, x: 150, y: 220}
  - {type: release}
  - {type: move, x: 250, y: 120}
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(dragScript))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if s.Size != 200 || s.Value != "#ffffff" {
		t.Errorf("Parse() = size %d value %q", s.Size, s.Value)
	}
	if s.Origin.X != 50 || s.Origin.Y != 20 {
		t.Errorf("Origin = %+v", s.Origin)
	}
	if len(s.Events) != 7 || s.Events[1].Type != EventPress {
		t.Errorf("Events = %+v", s.Events)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		wantErr bool
		unknown bool
	}{
		{name: "valid", script: dragScript},
		{name: "empty events", script: "value: \"#000\"\nevents: []\n"},
		{name: "negative size", script: "size: -1\nevents: []\n", wantErr: true},
		{name: "bad value", script: "value: nope\nevents: []\n", wantErr: true},
		{name: "unknown event", script: "events:\n  - {type: wheel}\n", wantErr: true, unknown: true},
		{name: "touch without points", script: "events:\n  - {type: touchstart}\n", wantErr: true},
		{name: "malformed yaml", script: "events: [", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.script))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.unknown && !errors.Is(err, ErrUnknownEvent) {
				t.Errorf("Parse() error = %v, want ErrUnknownEvent", err)
			}
		})
	}
}

func TestRunDragSession(t *testing.T) {
	s, err := Parse([]byte(dragScript))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	var streamed []Emission
	got, err := Run(context.Background(), s, func(e Emission) error {
		streamed = append(streamed, e)
		return nil
	}, Options{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// Surface points: (200,100) red at the rim, (100,100) white at the
	// centre, (-50,-20) outside and ignored, (100,200) at the bottom rim.
	want := []Emission{
		{Event: 1, Hex: "#ff0000"},
		{Event: 2, Hex: "#ffffff"},
		{Event: 4, Hex: "#80ff00"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Run() = %+v, want %+v", got, want)
	}
	if !reflect.DeepEqual(streamed, got) {
		t.Errorf("streamed = %+v, want %+v", streamed, got)
	}
}

func TestRunTouchSession(t *testing.T) {
	script := `
value: "#000000"
events:
  - type: touchstart
    touches: [{x: 100, y: 100}, {x: 200, y: 100}]
  - type: touchmove
    touches: [{x: 200, y: 100}]
  - {type: touchend}
  - type: touchmove
    touches: [{x: 100, y: 100}]
`
	s, err := Parse([]byte(script))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	got, err := Run(context.Background(), s, nil, Options{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := []Emission{
		{Event: 0, Hex: "#ffffff"},
		{Event: 1, Hex: "#ff0000"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Run() = %+v, want %+v", got, want)
	}
}

func TestRunStopsOnEmitError(t *testing.T) {
	s, err := Parse([]byte(dragScript))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	boom := errors.New("sink closed")
	got, err := Run(context.Background(), s, func(Emission) error { return boom }, Options{})
	if !errors.Is(err, boom) {
		t.Fatalf("Run() error = %v, want %v", err, boom)
	}
	if len(got) != 1 {
		t.Errorf("Run() emitted %d colours before stopping, want 1", len(got))
	}
}

func TestRunCancelled(t *testing.T) {
	s, err := Parse([]byte(dragScript))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := Run(ctx, s, nil, Options{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, want context.Canceled", err)
	}
	if len(got) != 0 {
		t.Errorf("Run() = %+v, want no emissions", got)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	if err := os.WriteFile(path, []byte(dragScript), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(s.Events) != 7 {
		t.Errorf("Load() events = %d, want 7", len(s.Events))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}
