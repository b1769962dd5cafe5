// Polarpick - a polar hue/saturation colour picker
//
// Polarpick converts colours between models, maps points on a colour wheel
// to colours, renders the wheel and replays recorded picker sessions.
package main

import (
	"os"

	"github.com/jmylchreest/polarpick/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
