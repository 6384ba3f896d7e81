package combolock

import (
	"io"

	"github.com/MrEthical07/combolock/internal/audit"
)

type (
	// AuditEvent is a single lock transition or rejected operation. Events
	// never carry credentials.
	AuditEvent = audit.Event
	// AuditSink receives audit events.
	AuditSink = audit.Sink
	// NoOpSink drops audit events.
	NoOpSink = audit.NoOpSink
	// ChannelSink buffers audit events in a channel.
	ChannelSink = audit.ChannelSink
	// JSONWriterSink writes audit events as JSON lines.
	JSONWriterSink = audit.JSONWriterSink
	// AuditConfig controls AuditDispatcher buffering.
	AuditConfig = audit.Config
	// AuditDispatcher forwards audit events to a sink on its own goroutine.
	AuditDispatcher = audit.Dispatcher
)

// NewChannelSink returns a sink backed by a channel of the given capacity.
func NewChannelSink(buffer int) *ChannelSink {
	return audit.NewChannelSink(buffer)
}

// NewJSONWriterSink returns a sink writing one JSON object per line to w.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return audit.NewJSONWriterSink(w)
}

// NewAuditDispatcher starts an asynchronous dispatcher in front of sink.
// It returns nil when cfg.Enabled is false; a nil dispatcher discards events.
// Callers must Close the dispatcher to flush buffered events.
func NewAuditDispatcher(cfg AuditConfig, sink AuditSink) *AuditDispatcher {
	return audit.NewDispatcher(cfg, sink)
}
