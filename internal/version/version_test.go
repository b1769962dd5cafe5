package version

import (
	"encoding/json"
	"strings"
	"testing"

	sinkplugin "github.com/jmylchreest/polarpick/pkg/plugin"
)

func TestString(t *testing.T) {
	tests := []struct {
		name    string
		commit  string
		date    string
		want    string
		notWant string
	}{
		{name: "dev build", commit: "unknown", date: "unknown", want: "polarpick version ", notWant: "commit"},
		{name: "release build", commit: "0123456789abcdef", date: "2025-01-02T03:04:05Z", want: "commit: 01234567, built: 2025-01-02T03:04:05Z,"},
		{name: "short commit", commit: "abc", date: "2025-01-02T03:04:05Z", want: "commit: abc,"},
		{name: "commit without date", commit: "abc", date: "unknown", notWant: "commit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldCommit, oldDate := Commit, Date
			t.Cleanup(func() { Commit, Date = oldCommit, oldDate })
			Commit, Date = tt.commit, tt.date

			got := String()
			if !strings.Contains(got, tt.want) {
				t.Errorf("String() = %q, want it to contain %q", got, tt.want)
			}
			if tt.notWant != "" && strings.Contains(got, tt.notWant) {
				t.Errorf("String() = %q, should not contain %q", got, tt.notWant)
			}
			if !strings.HasSuffix(got, "plugin protocol "+sinkplugin.ProtocolVersion+")") {
				t.Errorf("String() = %q, want the plugin protocol last", got)
			}
		})
	}
}

func TestShortPrefersLdflags(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })

	Version = "1.2.3"
	if got := Short(); got != "1.2.3" {
		t.Errorf("Short() = %q, want 1.2.3", got)
	}
}

func TestGetInfo(t *testing.T) {
	info := GetInfo()
	if info.Version != Short() {
		t.Errorf("GetInfo().Version = %q, want %q", info.Version, Short())
	}
	if !strings.Contains(info.Platform, "/") {
		t.Errorf("GetInfo().Platform = %q, want os/arch", info.Platform)
	}
	if info.PluginProtocol != sinkplugin.ProtocolVersion {
		t.Errorf("GetInfo().PluginProtocol = %q, want %q", info.PluginProtocol, sinkplugin.ProtocolVersion)
	}

	data, err := info.JSON()
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	var decoded map[string]string
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("JSON() is not valid JSON: %v", err)
	}
	if decoded["plugin_protocol"] != sinkplugin.ProtocolVersion || decoded["go_version"] == "" {
		t.Errorf("JSON() = %s", data)
	}
}
