package cli

import (
	"fmt"
	"image/png"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/polarpick/internal/picker"
)

type renderOptions struct {
	size   int
	value  string
	border string
	output string
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the colour wheel to a PNG file",
		Long: `Paint the colour wheel with the selection indicator and write it as PNG.

Size, value and border default to the configuration file and POLARPICK_*
environment variables.

Examples:
  # Render the default wheel
  polarpick render -o wheel.png

  # A larger wheel with teal selected, written to stdout
  polarpick render --size 400 --value "#008080" -o - > wheel.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, root, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.size, "size", "s", picker.DefaultSize, "wheel diameter in pixels")
	cmd.Flags().StringVar(&opts.value, "value", "", "selected colour (hex)")
	cmd.Flags().StringVar(&opts.border, "border", "", "border colour (hex)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "wheel.png", "output file, - for stdout")

	return cmd
}

func runRender(cmd *cobra.Command, root *rootOptions, opts *renderOptions) error {
	cfg := root.cfg
	if cmd.Flags().Changed("size") {
		cfg.Size = opts.size
	}
	if cmd.Flags().Changed("value") {
		cfg.Value = opts.value
	}
	if cmd.Flags().Changed("border") {
		cfg.Border = opts.border
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid render settings: %w", err)
	}

	p := picker.New(picker.Options{
		Value:  cfg.Value,
		Size:   cfg.Size,
		Border: cfg.BorderRGB(),
		Logger: root.logger.Named("picker"),
	})
	p.Mount()
	frame := p.Frame()

	var w io.Writer = cmd.OutOrStdout()
	if opts.output != "-" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := png.Encode(w, frame); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}

	if root.verbose && opts.output != "-" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %dx%d wheel to %s\n", cfg.Size, cfg.Size, opts.output)
	}
	return nil
}
