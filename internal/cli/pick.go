package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/polarpick/internal/config"
	"github.com/jmylchreest/polarpick/internal/picker"
)

// errOutsideWheel is returned by pick for points beyond the outer bound.
var errOutsideWheel = errors.New("point is outside the wheel")

type pickOptions struct {
	size int
	x, y float64
}

func newPickCmd(root *rootOptions) *cobra.Command {
	opts := &pickOptions{}

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Map a point on the wheel to a colour",
		Long: `Map a surface point to the colour the picker would select there.

Coordinates are relative to the wheel's top-left corner. Points further than
size/2 from the centre are outside the wheel and select nothing.

Examples:
  # The rightmost point of a 200px wheel is pure red
  polarpick pick --x 200 --y 100

  # Centre of a 300px wheel
  polarpick pick --size 300 --x 150 --y 150`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			size := root.cfg.Size
			if cmd.Flags().Changed("size") {
				size = opts.size
			}
			if size < config.MinSize {
				return fmt.Errorf("%w: %d (minimum %d)", config.ErrInvalidSize, size, config.MinSize)
			}

			g := picker.Geometry{Size: size}
			pt := picker.Point{X: opts.x, Y: opts.y}
			angle, distance := g.Polar(pt)
			root.logger.Debug("point mapped", "angle", angle, "distance", distance, "outer", g.OuterRadius())
			if !g.Contains(distance) {
				return fmt.Errorf("%w: (%g, %g) is %.1fpx from the centre, radius %.1fpx",
					errOutsideWheel, opts.x, opts.y, distance, g.OuterRadius())
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), g.ColourFromPosition(angle, distance))
			return err
		},
	}

	cmd.Flags().IntVarP(&opts.size, "size", "s", picker.DefaultSize, "wheel diameter in pixels")
	cmd.Flags().Float64Var(&opts.x, "x", 0, "x coordinate on the surface")
	cmd.Flags().Float64Var(&opts.y, "y", 0, "y coordinate on the surface")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("y")

	return cmd
}
