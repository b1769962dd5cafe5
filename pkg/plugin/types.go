package plugin

// PluginInfo contains metadata about a plugin.
type PluginInfo struct {
	Name            string `json:"name"`
	Version         string `json:"version"`
	ProtocolVersion string `json:"protocol_version"`
	Description     string `json:"description"`
}

// Selection is one colour chosen on the wheel, as sent to sink plugins.
type Selection struct {
	// Sequence is the position of this selection within the session.
	Sequence int       `json:"sequence"`
	Hex      string    `json:"hex"`
	RGB      RGBColour `json:"rgb"`
}

// RGBColour represents an RGB color.
type RGBColour struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}
