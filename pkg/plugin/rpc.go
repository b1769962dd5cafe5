package plugin

import (
	"context"
	"net/rpc"

	"github.com/hashicorp/go-plugin"
)

// SinkPluginRPC implements the go-plugin Plugin interface for colour sinks.
type SinkPluginRPC struct {
	plugin.Plugin
	Impl ColourSink
}

// Server returns an RPC server for this plugin.
func (p *SinkPluginRPC) Server(*plugin.MuxBroker) (any, error) {
	return &SinkPluginRPCServer{Impl: p.Impl}, nil
}

// Client returns an RPC client for this plugin.
func (p *SinkPluginRPC) Client(_ *plugin.MuxBroker, c *rpc.Client) (any, error) {
	return &SinkPluginRPCClient{client: c}, nil
}

// SinkPluginRPCServer is the RPC server implementation for colour sinks.
type SinkPluginRPCServer struct {
	Impl ColourSink
}

// Receive implements the RPC method for delivering one selection.
// Plugin errors travel back as a message so they survive gob encoding.
func (s *SinkPluginRPCServer) Receive(sel Selection, resp *string) error {
	if err := s.Impl.Receive(context.Background(), sel); err != nil {
		*resp = err.Error()
	}
	return nil
}

// Flush implements the RPC method for the end-of-session hook.
func (s *SinkPluginRPCServer) Flush(_ any, resp *string) error {
	if err := s.Impl.Flush(context.Background()); err != nil {
		*resp = err.Error()
	}
	return nil
}

// GetMetadata implements the RPC method for fetching plugin metadata.
func (s *SinkPluginRPCServer) GetMetadata(_ any, resp *PluginInfo) error {
	*resp = s.Impl.GetMetadata()
	return nil
}

// SinkPluginRPCClient is the RPC client implementation for colour sinks.
type SinkPluginRPCClient struct {
	client *rpc.Client
}

// Receive calls the remote Receive method.
func (c *SinkPluginRPCClient) Receive(ctx context.Context, sel Selection) error {
	var errMsg string
	if err := c.call(ctx, "Plugin.Receive", sel, &errMsg); err != nil {
		return err
	}
	if errMsg != "" {
		return &RPCError{Message: errMsg}
	}
	return nil
}

// Flush calls the remote Flush method.
func (c *SinkPluginRPCClient) Flush(ctx context.Context) error {
	var errMsg string
	if err := c.call(ctx, "Plugin.Flush", new(any), &errMsg); err != nil {
		return err
	}
	if errMsg != "" {
		return &RPCError{Message: errMsg}
	}
	return nil
}

// GetMetadata calls the remote GetMetadata method.
func (c *SinkPluginRPCClient) GetMetadata() (PluginInfo, error) {
	var info PluginInfo
	err := c.client.Call("Plugin.GetMetadata", new(any), &info)
	return info, err
}

// call issues an RPC that gives up when ctx is done. The remote call itself
// keeps running; its reply is discarded.
func (c *SinkPluginRPCClient) call(ctx context.Context, method string, args, reply any) error {
	pending := c.client.Go(method, args, reply, make(chan *rpc.Call, 1))
	select {
	case <-ctx.Done():
		return ctx.Err()
	case done := <-pending.Done:
		return done.Error
	}
}

// RPCError represents an error returned from an RPC call.
type RPCError struct {
	Message string
}

// Error implements the error interface.
func (e *RPCError) Error() string {
	return e.Message
}
