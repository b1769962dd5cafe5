// Polarpick GUI - a desktop window hosting the polar colour wheel.
package main

import (
	"fmt"
	"io"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/polarpick/internal/colour"
	"github.com/jmylchreest/polarpick/internal/config"
	"github.com/jmylchreest/polarpick/internal/version"
	"github.com/jmylchreest/polarpick/ui/wheel"
)

const appTitle = "Polarpick"

func main() {
	configPath := pflag.String("config", "", "config file (default: $XDG_CONFIG_HOME/polarpick/config.yaml)")
	size := pflag.IntP("size", "s", 0, "wheel diameter in pixels")
	value := pflag.String("value", "", "initial colour (hex or name)")
	verbose := pflag.BoolP("verbose", "v", false, "enable verbose output")
	showVersion := pflag.Bool("version", false, "print version information and exit")
	pflag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	logger := newLogger(os.Stderr, *verbose)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if pflag.CommandLine.Changed("size") {
		cfg.Size = *size
	}
	if *value != "" {
		parsed, ok := colour.Resolve(*value)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: invalid colour %q\n", *value)
			os.Exit(1)
		}
		cfg.Value = parsed.Hex
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	run(cfg, logger)
}

func run(cfg config.Config, logger hclog.Logger) {
	a := app.New()
	w := a.NewWindow(appTitle)

	initial, _ := colour.ParseColour(cfg.Value)
	swatch := canvas.NewRectangle(initial.RGB)
	swatch.SetMinSize(fyne.NewSize(48, 48))
	details := widget.NewLabel(describe(initial))
	entry := widget.NewEntry()
	entry.SetText(initial.Hex)

	show := func(p colour.Parsed) {
		swatch.FillColor = p.RGB
		swatch.Refresh()
		details.SetText(describe(p))
	}

	picker := wheel.New(cfg.Value, func(hex string) {
		p, _ := colour.ParseColour(hex)
		entry.SetText(p.Hex)
		show(p)
	}, wheel.Options{
		Size:   cfg.Size,
		Border: cfg.BorderRGB(),
		Logger: logger.Named("picker"),
	})

	entry.OnSubmitted = func(s string) {
		p, ok := colour.Resolve(s)
		if !ok {
			logger.Warn("ignoring invalid colour", "input", s)
			return
		}
		picker.SetValue(p.Hex)
		show(p)
	}

	side := container.NewVBox(swatch, entry, details)
	w.SetContent(container.NewBorder(nil, nil, nil, side, container.NewCenter(picker)))
	w.ShowAndRun()
}

// newLogger logs warnings by default and debug output with --verbose,
// matching the CLI.
func newLogger(w io.Writer, verbose bool) hclog.Logger {
	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "polarpick-gui",
		Output: w,
		Level:  level,
	})
}

// describe lists every representation of p, one per line.
func describe(p colour.Parsed) string {
	return fmt.Sprintf("%s\n%s\n%s\n%s", p.RGB, p.HSL, p.HSV, p.CMYK)
}
