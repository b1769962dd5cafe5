package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/polarpick/internal/colour"
)

// convertOptions holds flags for the convert command.
type convertOptions struct {
	format  string
	preview string
}

func newConvertCmd(root *rootOptions) *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert <colour>",
		Short: "Show a colour in every supported model",
		Long: `Convert a colour to hex, RGB, HSL, HSV and CMYK.

The colour may be a hex string (#rgb or #rrggbb, the # is optional) or a
CSS/SVG colour name.

Examples:
  # Print a table of every representation
  polarpick convert "#4080c0"

  # Named colours work too
  polarpick convert steelblue

  # Machine-readable output
  polarpick convert --format json f80`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "table", "output format (table, json)")
	cmd.Flags().StringVar(&opts.preview, "preview", "auto", "show a colour swatch (auto, always, never)")

	return cmd
}

func runConvert(cmd *cobra.Command, root *rootOptions, opts *convertOptions, input string) error {
	parsed, ok := colour.Resolve(input)
	if !ok {
		return fmt.Errorf("invalid colour %q", input)
	}
	root.logger.Debug("colour resolved", "input", input, "hex", parsed.Hex)

	out := cmd.OutOrStdout()
	switch opts.format {
	case "json":
		data, err := parsed.ToJSON()
		if err != nil {
			return fmt.Errorf("failed to encode colour: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err

	case "table":
		showPreview, err := wantPreview(opts.preview, out)
		if err != nil {
			return err
		}
		if showPreview {
			fmt.Fprintln(out, colour.PreviewWithText(parsed.RGB, parsed.Hex, 16))
			fmt.Fprintln(out)
		}
		fmt.Fprint(out, colourTable(parsed).Render())
		return nil

	default:
		return fmt.Errorf("unknown output format %q (want table or json)", opts.format)
	}
}

// colourTable lays out every representation of p.
func colourTable(p colour.Parsed) *Table {
	t := NewTable([]string{"Model", "Value"})
	t.AddRow([]string{"Hex", p.Hex})
	t.AddRow([]string{"RGB", p.RGB.String()})
	t.AddRow([]string{"HSL", p.HSL.String()})
	t.AddRow([]string{"HSV", p.HSV.String()})
	t.AddRow([]string{"CMYK", p.CMYK.String()})
	return t
}

// wantPreview resolves the --preview mode. "auto" previews only when out is a terminal.
func wantPreview(mode string, out io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		f, ok := out.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	default:
		return false, fmt.Errorf("unknown preview mode %q (want auto, always or never)", mode)
	}
}
