// gpl - Polarpick sink plugin that saves picked colours as a GIMP palette
//
// Every colour selected during a session is collected and, when the session
// ends, written as a .gpl palette that GIMP, Inkscape and Krita can import.
// Repeated selections of the same colour are stored once.
//
// Build:
//   go build -o polarpick-gpl ./contrib/plugins/sink/gpl
//
// Usage:
//   POLARPICK_GPL_FILE=picked.gpl polarpick replay --plugin ./polarpick-gpl session.yaml
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	sinkplugin "github.com/jmylchreest/polarpick/pkg/plugin"
)

const (
	envFile     = "POLARPICK_GPL_FILE"
	envName     = "POLARPICK_GPL_NAME"
	defaultFile = "polarpick.gpl"
	defaultName = "Polarpick"
)

// GPLSink collects selections and writes them as a GIMP palette on Flush.
type GPLSink struct {
	path    string
	name    string
	colours []sinkplugin.Selection
	seen    map[string]bool
}

// NewGPLSink returns a sink writing to path with the given palette name.
func NewGPLSink(path, name string) *GPLSink {
	return &GPLSink{path: path, name: name, seen: make(map[string]bool)}
}

// Receive records a selection.
func (s *GPLSink) Receive(_ context.Context, sel sinkplugin.Selection) error {
	if s.seen[sel.Hex] {
		return nil
	}
	s.seen[sel.Hex] = true
	s.colours = append(s.colours, sel)
	return nil
}

// Flush writes the palette file.
func (s *GPLSink) Flush(_ context.Context) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to create palette file: %w", err)
	}
	return s.save(f)
}

// save writes the palette to f and closes it. A close error is reported
// when the write itself succeeded.
func (s *GPLSink) save(f io.WriteCloser) error {
	if err := s.WritePalette(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write palette file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close palette file: %w", err)
	}
	return nil
}

// WritePalette renders the collected colours in GIMP palette format.
func (s *GPLSink) WritePalette(w io.Writer) error {
	var b strings.Builder
	b.WriteString("GIMP Palette\n")
	fmt.Fprintf(&b, "Name: %s\n", s.name)
	b.WriteString("Columns: 8\n#\n")
	for _, c := range s.colours {
		fmt.Fprintf(&b, "%3d %3d %3d\t%s\n", c.RGB.R, c.RGB.G, c.RGB.B, c.Hex)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// GetMetadata returns plugin metadata.
func (s *GPLSink) GetMetadata() sinkplugin.PluginInfo {
	return sinkplugin.PluginInfo{
		Name:            "gpl",
		Version:         "0.1.0",
		ProtocolVersion: sinkplugin.ProtocolVersion,
		Description:     "Save picked colours as a GIMP palette",
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	sink := NewGPLSink(envOr(envFile, defaultFile), envOr(envName, defaultName))

	// --plugin-info prints metadata for discovery without starting the RPC server.
	if len(os.Args) > 1 && os.Args[1] == "--plugin-info" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(sink.GetMetadata()); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding plugin info: %v\n", err)
			os.Exit(1)
		}
		return
	}

	sinkplugin.Serve(sink)
}
