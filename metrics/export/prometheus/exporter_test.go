package prometheus

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MrEthical07/combolock"
)

type fakeSource struct {
	snapshot combolock.MetricsSnapshot
	dropped  uint64
}

func (f fakeSource) MetricsSnapshot() combolock.MetricsSnapshot { return f.snapshot }
func (f fakeSource) AuditDropped() uint64                       { return f.dropped }

func TestRenderEmptyWhenMetricsDisabled(t *testing.T) {
	exp := NewExporterFromSource(fakeSource{
		snapshot: combolock.MetricsSnapshot{
			Counters:   map[combolock.MetricID]uint64{},
			Histograms: map[combolock.MetricID][]uint64{},
		},
	})

	if got := exp.Render(); got != "" {
		t.Fatalf("expected empty output for disabled metrics, got:\n%s", got)
	}
}

func TestRenderIncludesCounterAndHistogram(t *testing.T) {
	exp := NewExporterFromSource(fakeSource{
		snapshot: combolock.MetricsSnapshot{
			Counters: map[combolock.MetricID]uint64{
				combolock.MetricUnlockFailure: 7,
			},
			Histograms: map[combolock.MetricID][]uint64{
				combolock.MetricUnlockLatency: {1, 2, 3, 4, 5, 6, 7, 8},
			},
		},
		dropped: 2,
	})

	out := exp.Render()
	for _, want := range []string{
		"combolock_unlock_failure_total 7",
		"combolock_unlock_success_total 0",
		"combolock_unlock_latency_seconds_bucket{le=\"0.000001\"} 1",
		"combolock_unlock_latency_seconds_bucket{le=\"+Inf\"} 36",
		"combolock_unlock_latency_seconds_count 36",
		"combolock_audit_dropped_total 2",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output, got:\n%s", want, out)
		}
	}
}

func TestRenderFromLocksmith(t *testing.T) {
	cfg := combolock.DefaultConfig()
	cfg.Metrics.Enabled = true
	smith, err := combolock.NewBuilder().WithConfig(cfg).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer smith.Close()

	lock, err := smith.NewLock("1337")
	if err != nil {
		t.Fatalf("NewLock failed: %v", err)
	}
	lock.Unlock("1336")
	lock.Unlock("1337")

	out := NewExporter(smith).Render()
	for _, want := range []string{
		"combolock_created_total 1",
		"combolock_unlock_failure_total 1",
		"combolock_unlock_success_total 1",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output, got:\n%s", want, out)
		}
	}
}

func TestHandlerWritesPrometheusContentType(t *testing.T) {
	exp := NewExporterFromSource(fakeSource{
		snapshot: combolock.MetricsSnapshot{
			Counters:   map[combolock.MetricID]uint64{combolock.MetricLock: 1},
			Histograms: map[combolock.MetricID][]uint64{},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	exp.Handler().ServeHTTP(rec, req)

	if got := rec.Header().Get("Content-Type"); !strings.Contains(got, "text/plain") {
		t.Fatalf("expected prometheus content type, got %q", got)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "combolock_lock_total 1") {
		t.Fatalf("expected lock counter in body, got:\n%s", rec.Body.String())
	}
}
