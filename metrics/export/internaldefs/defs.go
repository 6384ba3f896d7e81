package internaldefs

import (
	"github.com/MrEthical07/combolock"
)

// CounterDef names one exported counter.
type CounterDef struct {
	ID   combolock.MetricID
	Name string
	Help string
}

// HistogramDef names one exported histogram.
type HistogramDef struct {
	ID   combolock.MetricID
	Name string
	Help string
}

// CounterDefs lists every exported counter in render order.
var CounterDefs = []CounterDef{
	{ID: combolock.MetricLockCreated, Name: "combolock_created_total", Help: "Constructed locks."},
	{ID: combolock.MetricLock, Name: "combolock_lock_total", Help: "Lock calls on keyed locks."},
	{ID: combolock.MetricLockIgnored, Name: "combolock_lock_ignored_total", Help: "Lock calls ignored because no credential was set."},
	{ID: combolock.MetricUnlockSuccess, Name: "combolock_unlock_success_total", Help: "Unlock calls with a matching combination."},
	{ID: combolock.MetricUnlockFailure, Name: "combolock_unlock_failure_total", Help: "Unlock calls that left the lock unchanged."},
	{ID: combolock.MetricPasswordSet, Name: "combolock_password_set_total", Help: "Accepted SetPassword calls."},
	{ID: combolock.MetricPasswordSetIgnored, Name: "combolock_password_set_ignored_total", Help: "SetPassword calls ignored while locked."},
}

// HistogramDefs lists every exported histogram.
var HistogramDefs = []HistogramDef{
	{ID: combolock.MetricUnlockLatency, Name: "combolock_unlock_latency_seconds", Help: "Validator comparison latency."},
}

// HistogramBounds are the Prometheus "le" labels matching the core buckets.
var HistogramBounds = [8]string{
	"0.000001",
	"0.00001",
	"0.0001",
	"0.001",
	"0.01",
	"0.1",
	"1",
	"+Inf",
}

// HistogramBoundSuffix are instrument-name-safe forms of HistogramBounds.
var HistogramBoundSuffix = [8]string{
	"1us",
	"10us",
	"100us",
	"1ms",
	"10ms",
	"100ms",
	"1s",
	"inf",
}

// NormalizeBuckets copies raw into a fixed-size array, zero-filling.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets converts per-bucket counts into cumulative counts.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
