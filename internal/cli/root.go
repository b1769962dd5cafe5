// Package cli provides the command-line interface for polarpick.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/polarpick/internal/config"
	"github.com/jmylchreest/polarpick/internal/version"
)

// rootOptions carries global flags and the resolved configuration to subcommands.
type rootOptions struct {
	verbose    bool
	quiet      bool
	configPath string

	cfg    config.Config
	logger hclog.Logger
}

// NewRootCmd builds the polarpick command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{cfg: config.Default()}

	rootCmd := &cobra.Command{
		Use:   "polarpick",
		Short: "A polar hue/saturation colour picker",
		Long: `Polarpick maps points on a hue/saturation wheel to colours, converts
colours between hex, RGB, HSL, HSV and CMYK, renders the wheel to PNG and
replays recorded pointer sessions against the picker.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.verbose, opts.quiet)
			opts.logger.Debug("configuration loaded", "size", cfg.Size, "value", cfg.Value, "border", cfg.Border)
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/polarpick/config.yaml)")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConvertCmd(opts))
	rootCmd.AddCommand(newPickCmd(opts))
	rootCmd.AddCommand(newRenderCmd(opts))
	rootCmd.AddCommand(newReplayCmd(opts))

	return rootCmd
}

// Execute runs the root command and exits non-zero on error.
// This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger configures the application logger based on the global flags.
func newLogger(w io.Writer, verbose, quiet bool) hclog.Logger {
	switch {
	case quiet:
		return hclog.New(&hclog.LoggerOptions{
			Name:   "polarpick",
			Output: io.Discard,
			Level:  hclog.Off,
		})
	case verbose:
		return hclog.New(&hclog.LoggerOptions{
			Name:   "polarpick",
			Output: w,
			Level:  hclog.Debug,
		})
	default:
		return hclog.New(&hclog.LoggerOptions{
			Name:   "polarpick",
			Output: w,
			Level:  hclog.Warn,
		})
	}
}

// newVersionCmd represents the version command
func newVersionCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, Go version and the sink plugin protocol.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !asJSON {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), version.String())
				return err
			}
			data, err := version.GetInfo().JSON()
			if err != nil {
				return fmt.Errorf("failed to encode version info: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print version information as JSON")
	return cmd
}
