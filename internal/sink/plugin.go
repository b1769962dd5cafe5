package sink

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	"github.com/jmylchreest/polarpick/internal/colour"
	"github.com/jmylchreest/polarpick/internal/session"
	sinkplugin "github.com/jmylchreest/polarpick/pkg/plugin"
)

// PluginOptions configures a PluginSink.
type PluginOptions struct {
	// Verbose forwards plugin logs to LogOutput at debug level.
	Verbose bool

	// LogOutput receives plugin logs when Verbose is set. Defaults to stderr.
	LogOutput io.Writer
}

// dialFunc starts or connects to a plugin and returns its protocol client
// together with a function that tears it down.
type dialFunc func() (plugin.ClientProtocol, func(), error)

// PluginSink forwards emissions to an external go-plugin binary.
// The plugin process is started lazily on the first Send.
type PluginSink struct {
	path string
	dial dialFunc

	remote   *sinkplugin.SinkPluginRPCClient
	shutdown func()
	info     sinkplugin.PluginInfo
}

// NewPluginSink returns a sink backed by the plugin binary at path.
func NewPluginSink(path string, opts PluginOptions) *PluginSink {
	s := &PluginSink{path: path}
	s.dial = func() (plugin.ClientProtocol, func(), error) {
		client := plugin.NewClient(&plugin.ClientConfig{
			HandshakeConfig: sinkplugin.Handshake,
			Plugins: map[string]plugin.Plugin{
				sinkplugin.SinkPluginName: &sinkplugin.SinkPluginRPC{},
			},
			Cmd:              exec.Command(path),
			AllowedProtocols: []plugin.Protocol{plugin.ProtocolNetRPC},
			Logger:           pluginLogger(opts),
		})

		rpcClient, err := client.Client()
		if err != nil {
			client.Kill()
			return nil, nil, fmt.Errorf("failed to get RPC client: %w", err)
		}
		return rpcClient, client.Kill, nil
	}
	return s
}

// pluginLogger configures the go-plugin logger based on the verbose flag.
func pluginLogger(opts PluginOptions) hclog.Logger {
	if !opts.Verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "plugin",
			Output: io.Discard,
			Level:  hclog.Off,
		})
	}

	out := opts.LogOutput
	if out == nil {
		out = os.Stderr
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "plugin",
		Output: out,
		Level:  hclog.Debug,
	})
}

func (s *PluginSink) connect() (*sinkplugin.SinkPluginRPCClient, error) {
	if s.remote != nil {
		return s.remote, nil
	}

	proto, shutdown, err := s.dial()
	if err != nil {
		return nil, fmt.Errorf("plugin %s: %w", s.path, err)
	}

	raw, err := proto.Dispense(sinkplugin.SinkPluginName)
	if err != nil {
		shutdown()
		return nil, fmt.Errorf("plugin %s: failed to dispense plugin: %w", s.path, err)
	}
	remote, ok := raw.(*sinkplugin.SinkPluginRPCClient)
	if !ok {
		shutdown()
		return nil, fmt.Errorf("plugin %s: unexpected client type %T", s.path, raw)
	}

	info, err := remote.GetMetadata()
	if err != nil {
		shutdown()
		return nil, fmt.Errorf("plugin %s: failed to get metadata: %w", s.path, err)
	}
	if _, err := sinkplugin.IsCompatible(info.ProtocolVersion); err != nil {
		shutdown()
		return nil, fmt.Errorf("plugin %s: %w", s.path, err)
	}

	s.remote = remote
	s.shutdown = shutdown
	s.info = info
	return remote, nil
}

// Info returns the connected plugin's metadata. It is empty before the first Send.
func (s *PluginSink) Info() sinkplugin.PluginInfo {
	return s.info
}

// Send delivers e to the plugin.
func (s *PluginSink) Send(ctx context.Context, e session.Emission) error {
	remote, err := s.connect()
	if err != nil {
		return err
	}

	rgb, _ := colour.HexToRGB(e.Hex)
	sel := sinkplugin.Selection{
		Sequence: e.Event,
		Hex:      e.Hex,
		RGB:      sinkplugin.RGBColour{R: rgb.R, G: rgb.G, B: rgb.B},
	}
	if err := remote.Receive(ctx, sel); err != nil {
		return fmt.Errorf("plugin %s: %w", s.info.Name, err)
	}
	return nil
}

// Close flushes the plugin and stops its process. Closing a sink that never
// connected does nothing.
func (s *PluginSink) Close(ctx context.Context) error {
	if s.remote == nil {
		return nil
	}
	defer func() {
		s.shutdown()
		s.remote = nil
		s.shutdown = nil
	}()

	if err := s.remote.Flush(ctx); err != nil {
		return fmt.Errorf("plugin %s: flush failed: %w", s.info.Name, err)
	}
	return nil
}
