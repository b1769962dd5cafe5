package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmylchreest/polarpick/internal/colour"
)

// isolate points the user config dir at an empty temp dir and clears overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv(EnvSize, "")
	t.Setenv(EnvValue, "")
	t.Setenv(EnvBorder, "")
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want %+v", cfg, Default())
	}
}

func TestLoadPrecedence(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "polarpick", "config.yaml"), "size: 300\nvalue: \"#123456\"\n")

	t.Run("file over defaults", func(t *testing.T) {
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Size != 300 || cfg.Value != "#123456" || cfg.Border != "#cccccc" {
			t.Errorf("Load() = %+v", cfg)
		}
	})

	t.Run("env over file", func(t *testing.T) {
		t.Setenv(EnvSize, "120")
		t.Setenv(EnvBorder, "#000")
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Size != 120 || cfg.Value != "#123456" || cfg.Border != "#000" {
			t.Errorf("Load() = %+v", cfg)
		}
	})
}

func TestLoadExplicitPath(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "border: \"#ff0000\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Border != "#ff0000" {
		t.Errorf("Border = %q, want #ff0000", cfg.Border)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing explicit path should fail")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		env      map[string]string
		wantSize bool
	}{
		{name: "malformed yaml", file: "size: [\n"},
		{name: "size too small", file: "size: 10\n", wantSize: true},
		{name: "size env not a number", env: map[string]string{EnvSize: "big"}, wantSize: true},
		{name: "bad value", env: map[string]string{EnvValue: "teal"}},
		{name: "bad border", file: "border: nope\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			path := filepath.Join(dir, "config.yaml")
			writeFile(t, path, tt.file)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if got := errors.Is(err, ErrInvalidSize); got != tt.wantSize {
				t.Errorf("errors.Is(err, ErrInvalidSize) = %v, want %v (err = %v)", got, tt.wantSize, err)
			}
		})
	}
}

func TestBorderRGB(t *testing.T) {
	cfg := Default()
	if got := cfg.BorderRGB(); got != (colour.RGB{R: 0xcc, G: 0xcc, B: 0xcc}) {
		t.Errorf("BorderRGB() = %v", got)
	}

	cfg.Border = "#f00"
	if got := cfg.BorderRGB(); got != (colour.RGB{R: 0xff}) {
		t.Errorf("BorderRGB() = %v, want red", got)
	}
}
