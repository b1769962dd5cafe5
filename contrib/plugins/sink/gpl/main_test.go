package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	sinkplugin "github.com/jmylchreest/polarpick/pkg/plugin"
)

func TestGPLSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "picked.gpl")
	sink := NewGPLSink(path, "Test")
	ctx := context.Background()

	for _, sel := range []sinkplugin.Selection{
		{Sequence: 0, Hex: "#ff0000", RGB: sinkplugin.RGBColour{R: 255}},
		{Sequence: 1, Hex: "#ffffff", RGB: sinkplugin.RGBColour{R: 255, G: 255, B: 255}},
		{Sequence: 2, Hex: "#ff0000", RGB: sinkplugin.RGBColour{R: 255}},
	} {
		if err := sink.Receive(ctx, sel); err != nil {
			t.Fatalf("Receive() error = %v", err)
		}
	}
	if err := sink.Flush(ctx); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"GIMP Palette",
		"Name: Test",
		"Columns: 8",
		"#",
		"255   0   0\t#ff0000",
		"255 255 255\t#ffffff",
		"",
	}, "\n")
	if string(data) != want {
		t.Errorf("palette file =\n%s\nwant:\n%s", data, want)
	}
}

func TestGPLSinkMetadata(t *testing.T) {
	info := NewGPLSink("", "").GetMetadata()
	if ok, err := sinkplugin.IsCompatible(info.ProtocolVersion); !ok {
		t.Errorf("plugin protocol %q is not compatible: %v", info.ProtocolVersion, err)
	}
}

func TestGPLSinkFlushError(t *testing.T) {
	sink := NewGPLSink(filepath.Join(t.TempDir(), "missing", "dir", "p.gpl"), "x")
	if err := sink.Flush(context.Background()); err == nil {
		t.Error("Flush() into a missing directory should fail")
	}
}

type closeFailer struct {
	bytes.Buffer
	closeErr error
	closed   bool
}

func (c *closeFailer) Close() error {
	c.closed = true
	return c.closeErr
}

type writeFailer struct {
	*closeFailer
}

func (w *writeFailer) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestGPLSinkSaveReportsCloseError(t *testing.T) {
	errClose := errors.New("close failed")
	tests := []struct {
		name    string
		file    *closeFailer
		failing bool
		wantErr string
	}{
		{name: "close error after a good write", file: &closeFailer{closeErr: errClose}, wantErr: "failed to close palette file: close failed"},
		{name: "write error wins over close error", file: &closeFailer{closeErr: errClose}, failing: true, wantErr: "failed to write palette file: disk full"},
		{name: "clean close", file: &closeFailer{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := NewGPLSink("", "Test")
			if err := sink.Receive(context.Background(), sinkplugin.Selection{Hex: "#000000"}); err != nil {
				t.Fatal(err)
			}

			var f io.WriteCloser = tt.file
			if tt.failing {
				f = &writeFailer{tt.file}
			}
			err := sink.save(f)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("save() error = %v", err)
				}
			} else if err == nil || err.Error() != tt.wantErr {
				t.Fatalf("save() error = %v, want %q", err, tt.wantErr)
			}
			if !tt.file.closed {
				t.Error("save() should always close the file")
			}
		})
	}
}
