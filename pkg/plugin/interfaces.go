package plugin

import (
	"context"
)

// ColourSink is the interface that sink plugins must implement for go-plugin RPC.
type ColourSink interface {
	// Receive is called once per selected colour, in selection order.
	Receive(ctx context.Context, sel Selection) error

	// Flush is called after the last selection of a session.
	Flush(ctx context.Context) error

	// GetMetadata returns plugin metadata.
	GetMetadata() PluginInfo
}
