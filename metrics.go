package combolock

import (
	"sync/atomic"
	"time"
)

// MetricID identifies a counter or histogram in [Metrics].
type MetricID uint16

const (
	// MetricLockCreated counts constructed locks.
	MetricLockCreated MetricID = iota
	// MetricLock counts Lock calls that closed (or kept closed) a keyed lock.
	MetricLock
	// MetricLockIgnored counts Lock calls on unset locks.
	MetricLockIgnored
	// MetricUnlockSuccess counts Unlock calls with a matching candidate.
	MetricUnlockSuccess
	// MetricUnlockFailure counts Unlock calls that left the lock unchanged.
	MetricUnlockFailure
	// MetricPasswordSet counts accepted SetPassword calls.
	MetricPasswordSet
	// MetricPasswordSetIgnored counts SetPassword calls dropped while locked.
	MetricPasswordSetIgnored
	// MetricUnlockLatency is the validator comparison latency histogram.
	MetricUnlockLatency
	metricIDCount
)

const (
	histBucketCount = 8
	cacheLineSize   = 64
)

type metricHistogram struct {
	buckets [histBucketCount]uint64
}

type paddedCounter struct {
	value uint64
	_     [cacheLineSize - 8]byte
}

// MetricsConfig toggles metric collection.
type MetricsConfig struct {
	Enabled                 bool `yaml:"enabled"`
	EnableLatencyHistograms bool `yaml:"enable_latency_histograms"`
}

// Metrics holds lock-free counters shared by any number of locks.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	enabled       bool
	enableLatency bool
	counters      [metricIDCount]paddedCounter
	histograms    [metricIDCount]metricHistogram
}

// MetricsSnapshot is a point-in-time copy of all metric values.
type MetricsSnapshot struct {
	Counters   map[MetricID]uint64
	Histograms map[MetricID][]uint64
}

// NewMetrics returns a registry configured by cfg.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return &Metrics{
		enabled:       cfg.Enabled,
		enableLatency: cfg.Enabled && cfg.EnableLatencyHistograms,
	}
}

// Enabled reports whether counters are recorded.
func (m *Metrics) Enabled() bool {
	return m != nil && m.enabled
}

// LatencyEnabled reports whether the unlock latency histogram is recorded.
func (m *Metrics) LatencyEnabled() bool {
	return m != nil && m.enableLatency
}

// Inc increments counter id.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= metricIDCount {
		return
	}
	atomic.AddUint64(&m.counters[id].value, 1)
}

// Observe records d in histogram id. Only MetricUnlockLatency is a histogram.
func (m *Metrics) Observe(id MetricID, d time.Duration) {
	if m == nil || !m.enabled || !m.enableLatency || id >= metricIDCount {
		return
	}
	if id != MetricUnlockLatency {
		return
	}

	b := bucketIndex(d)
	atomic.AddUint64(&m.histograms[id].buckets[b], 1)
}

// Value returns the current value of counter id.
func (m *Metrics) Value(id MetricID) uint64 {
	if m == nil || id >= metricIDCount {
		return 0
	}
	return atomic.LoadUint64(&m.counters[id].value)
}

// Snapshot copies all counters and, when enabled, the latency histogram.
func (m *Metrics) Snapshot() MetricsSnapshot {
	if m == nil || !m.enabled {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}

	s := MetricsSnapshot{
		Counters:   make(map[MetricID]uint64, int(metricIDCount)),
		Histograms: make(map[MetricID][]uint64, 1),
	}

	for id := MetricID(0); id < metricIDCount; id++ {
		if id == MetricUnlockLatency {
			continue
		}
		s.Counters[id] = atomic.LoadUint64(&m.counters[id].value)
	}

	if m.enableLatency {
		buckets := make([]uint64, histBucketCount)
		for i := 0; i < histBucketCount; i++ {
			buckets[i] = atomic.LoadUint64(&m.histograms[MetricUnlockLatency].buckets[i])
		}
		s.Histograms[MetricUnlockLatency] = buckets
	}

	return s
}

// Bucket upper bounds match the exporters' HistogramBounds: plain and SHA-1
// comparisons land in the first bucket, Argon2 verification in the last few.
func bucketIndex(d time.Duration) int {
	switch {
	case d <= time.Microsecond:
		return 0
	case d <= 10*time.Microsecond:
		return 1
	case d <= 100*time.Microsecond:
		return 2
	case d <= time.Millisecond:
		return 3
	case d <= 10*time.Millisecond:
		return 4
	case d <= 100*time.Millisecond:
		return 5
	case d <= time.Second:
		return 6
	default:
		return 7
	}
}
