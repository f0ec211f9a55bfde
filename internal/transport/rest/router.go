package rest

import (
	"net/http"

	"github.com/heartmarshall/attention-backend/internal/transport/middleware"
)

// Routes groups the handlers and per-route middleware of the API.
type Routes struct {
	Health    *HealthHandler
	Pins      *PinHandler
	Attention *AttentionHandler
	Metrics   http.Handler

	// SyncLimit wraps the manual sync triggers.
	SyncLimit middleware.Middleware
}

// NewRouter registers every endpoint on a new ServeMux.
func NewRouter(rt Routes) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", rt.Health.Live)
	mux.HandleFunc("GET /ready", rt.Health.Ready)
	mux.HandleFunc("GET /health", rt.Health.Health)
	if rt.Metrics != nil {
		mux.Handle("GET /metrics", rt.Metrics)
	}

	mux.HandleFunc("POST /pins/toggle", rt.Pins.Toggle)
	mux.HandleFunc("POST /pins/undo-dismiss", rt.Pins.UndoDismiss)
	mux.HandleFunc("PUT /pins/notes", rt.Pins.UpsertNote)
	mux.HandleFunc("DELETE /pins/notes", rt.Pins.DeleteNote)
	mux.HandleFunc("GET /pins/{type}", rt.Pins.ListByType)
	mux.HandleFunc("GET /pins/{type}/ids", rt.Pins.PinnedIDs)
	mux.HandleFunc("GET /dashboard/pinned", rt.Pins.Dashboard)

	mux.HandleFunc("GET /buildinglink/needs-attention", rt.Attention.NeedsAttention)

	limit := rt.SyncLimit
	if limit == nil {
		limit = middleware.Chain()
	}
	mux.Handle("POST /sync", limit(http.HandlerFunc(rt.Attention.SyncAll)))
	mux.Handle("POST /sync/{domain}", limit(http.HandlerFunc(rt.Attention.SyncDomain)))

	return mux
}
