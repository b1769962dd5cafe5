// Package version reports how a polarpick binary was built and which sink
// plugin protocol it speaks. Build details are set with ldflags.
package version

import (
	"encoding/json"
	"fmt"
	"runtime"
	"runtime/debug"

	sinkplugin "github.com/jmylchreest/polarpick/pkg/plugin"
)

// Set via -ldflags "-X github.com/jmylchreest/polarpick/internal/version.Version=x.y.z"
// (and .Commit, .Date) by the release build.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Info describes a build.
type Info struct {
	Version        string `json:"version"`
	Commit         string `json:"commit"`
	Date           string `json:"date"`
	GoVersion      string `json:"go_version"`
	Platform       string `json:"platform"`
	PluginProtocol string `json:"plugin_protocol"`
}

// GetInfo collects the build details of the running binary.
func GetInfo() Info {
	return Info{
		Version:        Short(),
		Commit:         Commit,
		Date:           Date,
		GoVersion:      runtime.Version(),
		Platform:       runtime.GOOS + "/" + runtime.GOARCH,
		PluginProtocol: sinkplugin.ProtocolVersion,
	}
}

// JSON renders Info as indented JSON.
func (i Info) JSON() ([]byte, error) {
	return json.MarshalIndent(i, "", "  ")
}

// String returns the one-line form printed by `polarpick version`.
func String() string {
	info := GetInfo()
	build := fmt.Sprintf("%s, %s", info.GoVersion, info.Platform)
	if info.Commit != "unknown" && info.Date != "unknown" {
		build = fmt.Sprintf("commit: %s, built: %s, %s", shortCommit(info.Commit), info.Date, build)
	}
	return fmt.Sprintf("polarpick version %s (%s, plugin protocol %s)", info.Version, build, info.PluginProtocol)
}

// Short returns the bare version. Binaries installed with `go install`
// carry no ldflags, so their module version is used instead of "dev".
func Short() string {
	if Version != "dev" {
		return Version
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		if v := bi.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return Version
}

func shortCommit(c string) string {
	if len(c) > 8 {
		return c[:8]
	}
	return c
}
