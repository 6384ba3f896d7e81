// Package audit delivers lock audit events to pluggable sinks.
//
// # Components
//
//   - [Sink]: interface for event consumers (channel, JSON writer, no-op).
//   - [Dispatcher]: buffered async relay with drop-if-full / block-if-full semantics.
//   - [Event]: structured record with timestamp, type, lock ID, outcome, metadata.
//
// # Architecture boundaries
//
// This package owns event buffering and sink delivery. It does NOT decide which
// events to emit; lock operations in the root package do.
//
// # What this package must NOT do
//
//   - Filter or suppress events based on lock state.
//   - Import combolock or any sibling internal package.
package audit
