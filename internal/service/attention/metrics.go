package attention

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/heartmarshall/attention-backend/internal/domain"
)

const (
	statusOK      = "ok"
	statusPartial = "partial"
	statusAborted = "aborted"
	statusError   = "error"
)

// Metrics holds the Prometheus collectors of the synchronizer.
//
//   - attention_sync_runs_total{domain,status}
//   - attention_sync_pins_total{domain,outcome}
//   - attention_sync_duration_seconds{domain}
//   - attention_sync_target_size{domain}
type Metrics struct {
	Runs       *prometheus.CounterVec
	Pins       *prometheus.CounterVec
	Duration   *prometheus.HistogramVec
	TargetSize *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "attention_sync_runs_total",
			Help: "Sync passes by domain and final status",
		}, []string{"domain", "status"}),

		Pins: f.NewCounterVec(prometheus.CounterOpts{
			Name: "attention_sync_pins_total",
			Help: "Per-entity sync outcomes by domain",
		}, []string{"domain", "outcome"}),

		Duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "attention_sync_duration_seconds",
			Help:    "Sync pass duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}, []string{"domain"}),

		TargetSize: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "attention_sync_target_size",
			Help: "Entities satisfying the urgency predicate at the last pass",
		}, []string{"domain"}),
	}
}

func (m *Metrics) observeRun(d domain.EntityType, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Runs.WithLabelValues(d.String(), status).Inc()
	m.Duration.WithLabelValues(d.String()).Observe(elapsed.Seconds())
}

func (m *Metrics) observeResult(r *SyncResult, status string) {
	if m == nil {
		return
	}
	m.observeRun(r.Domain, status, r.Duration)

	d := r.Domain.String()
	m.TargetSize.WithLabelValues(d).Set(float64(r.Target))
	for outcome, n := range map[string]int{
		"created":   r.Created,
		"updated":   r.Updated,
		"unchanged": r.Unchanged,
		"dismissed": r.SkippedDismissed,
		"removed":   r.Removed,
		"failed":    r.Failed,
	} {
		m.Pins.WithLabelValues(d, outcome).Add(float64(n))
	}
}
