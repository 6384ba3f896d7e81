// Package prometheus renders combolock metrics in Prometheus text exposition
// format.
//
// Counters are named combolock_*_total; the single histogram is
// combolock_unlock_latency_seconds. [Exporter.Handler] can be mounted on any
// mux.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry; callers mount the Handler.
//   - Mutate lock state.
package prometheus
