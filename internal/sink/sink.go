// Package sink delivers selected colours to their consumers: writers,
// external plugins, or several of those at once.
package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jmylchreest/polarpick/internal/colour"
	"github.com/jmylchreest/polarpick/internal/session"
)

// Sink receives each emitted colour in order.
type Sink interface {
	Send(ctx context.Context, e session.Emission) error
	Close(ctx context.Context) error
}

// Format selects how a WriterSink renders emissions.
type Format string

const (
	FormatHex     Format = "hex"
	FormatJSON    Format = "json"
	FormatPreview Format = "preview"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatHex, FormatJSON, FormatPreview:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want hex, json or preview)", s)
	}
}

// previewWidth is the swatch width used by FormatPreview.
const previewWidth = 4

// WriterSink writes one line per emission.
type WriterSink struct {
	w      io.Writer
	format Format
}

// NewWriterSink returns a sink writing format lines to w.
func NewWriterSink(w io.Writer, format Format) *WriterSink {
	return &WriterSink{w: w, format: format}
}

type jsonLine struct {
	Event int        `json:"event"`
	Hex   string     `json:"hex"`
	RGB   colour.RGB `json:"rgb"`
}

// Send writes e.
func (s *WriterSink) Send(_ context.Context, e session.Emission) error {
	var line string
	switch s.format {
	case FormatJSON:
		rgb, _ := colour.HexToRGB(e.Hex)
		data, err := json.Marshal(jsonLine{Event: e.Event, Hex: e.Hex, RGB: rgb})
		if err != nil {
			return fmt.Errorf("failed to encode emission: %w", err)
		}
		line = string(data)
	case FormatPreview:
		rgb, _ := colour.HexToRGB(e.Hex)
		line = colour.Preview(rgb, previewWidth) + " " + e.Hex
	default:
		line = e.Hex
	}

	if _, err := fmt.Fprintln(s.w, line); err != nil {
		return fmt.Errorf("failed to write colour: %w", err)
	}
	return nil
}

// Close is a no-op; the writer belongs to the caller.
func (s *WriterSink) Close(context.Context) error {
	return nil
}

// Fanout forwards every emission to each sink in order, stopping at the first error.
type Fanout []Sink

// Send forwards e.
func (f Fanout) Send(ctx context.Context, e session.Emission) error {
	for _, s := range f {
		if err := s.Send(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every sink and returns the first error.
func (f Fanout) Close(ctx context.Context) error {
	var first error
	for _, s := range f {
		if err := s.Close(ctx); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Emitter adapts s into a session.EmitFunc bound to ctx.
func Emitter(ctx context.Context, s Sink) session.EmitFunc {
	return func(e session.Emission) error {
		return s.Send(ctx, e)
	}
}
