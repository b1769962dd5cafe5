package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/polarpick/internal/session"
	"github.com/jmylchreest/polarpick/internal/sink"
)

type replayOptions struct {
	format  string
	plugins []string
}

func newReplayCmd(root *rootOptions) *cobra.Command {
	opts := &replayOptions{}

	cmd := &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Replay a recorded pointer session",
		Long: `Replay a YAML session script against a fresh picker and print every
selected colour in order.

A script lists pointer and touch events with raw coordinates; the optional
origin is subtracted before events reach the wheel. Script size and value
fall back to the configuration.

Example script:
  size: 200
  value: "#ffffff"
  origin: {x: 10, y: 10}
  events:
    - {type: press, x: 210, y: 110}
    - {type: move, x: 110, y: 110}
    - {type: release}

Examples:
  # Print selected colours as hex
  polarpick replay session.yaml

  # Stream JSON lines and forward every colour to a sink plugin
  polarpick replay --format json --plugin ./my-sink session.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "hex", "output format (hex, json, preview)")
	cmd.Flags().StringSliceVar(&opts.plugins, "plugin", nil, "sink plugin binary to forward colours to (repeatable)")

	return cmd
}

func runReplay(cmd *cobra.Command, root *rootOptions, opts *replayOptions, path string) error {
	format, err := sink.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	script, err := session.Load(path)
	if err != nil {
		return err
	}
	if script.Size == 0 {
		script.Size = root.cfg.Size
	}
	if script.Value == "" {
		script.Value = root.cfg.Value
	}

	var sinks sink.Fanout
	if !root.quiet {
		sinks = append(sinks, sink.NewWriterSink(cmd.OutOrStdout(), format))
	}
	for _, p := range opts.plugins {
		sinks = append(sinks, sink.NewPluginSink(p, sink.PluginOptions{
			Verbose:   root.verbose,
			LogOutput: cmd.ErrOrStderr(),
		}))
	}

	ctx := cmd.Context()
	emissions, runErr := session.Run(ctx, script, sink.Emitter(ctx, sinks), session.Options{
		Logger: root.logger.Named("session"),
	})
	closeErr := sinks.Close(ctx)
	if runErr != nil {
		return runErr
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close sinks: %w", closeErr)
	}

	if root.verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "Replayed %d events, %d colours selected\n", len(script.Events), len(emissions))
	}
	return nil
}
