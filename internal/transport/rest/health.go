package rest

import (
	"context"
	"net/http"
	"time"
)

const pingTimeout = 3 * time.Second

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// syncReporter reports the outcome of the last scheduled sync pass. A zero
// time means no pass has finished yet.
type syncReporter interface {
	LastSync() (finishedAt time.Time, err error)
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db      dbPinger
	sync    syncReporter
	version string
}

// NewHealthHandler creates a HealthHandler. sync may be nil when the
// in-process scheduler is disabled.
func NewHealthHandler(db dbPinger, sync syncReporter, version string) *HealthHandler {
	return &HealthHandler{db: db, sync: sync, version: version}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status    string     `json:"status"`
	Latency   string     `json:"latency,omitempty"`
	LastRun   *time.Time `json:"lastRun,omitempty"`
	LastError string     `json:"lastError,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now().UTC()})
}

// Ready is the readiness probe. Pings DB: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if db := h.pingDB(r.Context()); db.Status != "ok" {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: time.Now().UTC()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now().UTC()})
}

// Health is the full health check: database latency, the last sync pass and
// the build version. A failed sync pass degrades the status but keeps 200;
// only an unreachable database yields 503.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := map[string]CompStatus{"database": h.pingDB(r.Context())}
	overall := components["database"].Status

	if h.sync != nil {
		comp := syncStatus(h.sync)
		components["sync"] = comp
		if overall == "ok" && comp.Status == "degraded" {
			overall = "degraded"
		}
	}

	status := http.StatusOK
	if overall == "down" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now().UTC(),
	})
}

func (h *HealthHandler) pingDB(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}

func syncStatus(s syncReporter) CompStatus {
	at, err := s.LastSync()
	switch {
	case at.IsZero():
		return CompStatus{Status: "pending"}
	case err != nil:
		return CompStatus{Status: "degraded", LastRun: &at, LastError: err.Error()}
	default:
		return CompStatus{Status: "ok", LastRun: &at}
	}
}
