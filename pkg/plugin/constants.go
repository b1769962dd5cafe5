// Package plugin provides the public API for polarpick colour sink plugins.
// External plugins should import this package instead of internal packages.
package plugin

import (
	"github.com/hashicorp/go-plugin"
)

const (
	// ProtocolVersion defines the current plugin API version.
	// Format: MAJOR.MINOR.PATCH.
	// - Increment MAJOR for breaking changes (incompatible API changes).
	// - Increment MINOR for backward-compatible additions.
	// - Increment PATCH for backward-compatible bug fixes.
	ProtocolVersion = "0.1.0"

	// MinCompatibleVersion is the oldest protocol version this polarpick version can work with.
	MinCompatibleVersion = "0.1.0"

	// SinkPluginName is the name the sink is dispensed under.
	SinkPluginName = "sink"
)

// Handshake is the handshake configuration for go-plugin protocol.
// go-plugin compares only the major version; the full version is checked
// against PluginInfo.ProtocolVersion with IsCompatible once connected.
var Handshake = plugin.HandshakeConfig{
	ProtocolVersion:  uint(CurrentVersion().Major),
	MagicCookieKey:   "POLARPICK_PLUGIN",
	MagicCookieValue: "polarpick_colour_sink",
}

// PluginMap returns the plugin set served by, and dispensed from, a sink plugin.
func PluginMap(impl ColourSink) map[string]plugin.Plugin {
	return map[string]plugin.Plugin{
		SinkPluginName: &SinkPluginRPC{Impl: impl},
	}
}

// Serve runs impl as a go-plugin server. It blocks until the host disconnects
// and must be called from the plugin binary's main.
func Serve(impl ColourSink) {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: Handshake,
		Plugins:         PluginMap(impl),
	})
}
