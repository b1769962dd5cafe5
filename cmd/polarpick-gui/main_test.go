package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jmylchreest/polarpick/internal/colour"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{name: "default", verbose: false, wantDebug: false},
		{name: "verbose", verbose: true, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.verbose)
			if logger.IsDebug() != tt.wantDebug {
				t.Errorf("IsDebug() = %v, want %v", logger.IsDebug(), tt.wantDebug)
			}
			if logger.IsTrace() {
				t.Error("picker trace output should stay off")
			}
			if !logger.IsWarn() {
				t.Error("warnings should always be logged")
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	p, _ := colour.ParseColour("#ff0000")
	got := describe(p)
	want := "rgb(255, 0, 0)\nhsl(0, 100%, 50%)\nhsv(0, 100%, 100%)\ncmyk(0%, 100%, 100%, 0%)"
	if got != want {
		t.Errorf("describe() = %q, want %q", got, want)
	}
	if strings.Count(got, "\n") != 3 {
		t.Errorf("describe() should have one line per model")
	}
}
