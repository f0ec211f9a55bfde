package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/attention-backend/internal/domain"
	"github.com/heartmarshall/attention-backend/internal/service/attention"
	"github.com/heartmarshall/attention-backend/pkg/ctxutil"
)

// attentionService defines the minimal interface needed by AttentionHandler.
type attentionService interface {
	RunSync(ctx context.Context, entityType domain.EntityType) (*attention.SyncResult, error)
	RunAll(ctx context.Context) ([]attention.SyncResult, error)
	GetBuildingLinkNeedsAttention(ctx context.Context) (*domain.BuildingLinkAttention, error)
}

// AttentionHandler serves the needs-attention view and manual sync triggers.
type AttentionHandler struct {
	svc attentionService
	log *slog.Logger
}

// NewAttentionHandler creates an AttentionHandler.
func NewAttentionHandler(svc attentionService, logger *slog.Logger) *AttentionHandler {
	return &AttentionHandler{svc: svc, log: logger.With("handler", "attention")}
}

// NeedsAttention handles GET /buildinglink/needs-attention.
func (h *AttentionHandler) NeedsAttention(w http.ResponseWriter, r *http.Request) {
	if !h.requireUser(w, r) {
		return
	}

	view, err := h.svc.GetBuildingLinkNeedsAttention(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toNeedsAttentionResponse(view))
}

// SyncDomain handles POST /sync/{domain}. A pass with per-entity failures is
// reported with complete=false and status 200; the next run retries them.
func (h *AttentionHandler) SyncDomain(w http.ResponseWriter, r *http.Request) {
	if !h.requireUser(w, r) {
		return
	}

	result, err := h.svc.RunSync(r.Context(), domain.EntityType(r.PathValue("domain")))
	if err != nil && (result == nil || !errors.Is(err, attention.ErrIncompleteSync)) {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSyncResultDTO(*result))
}

// SyncAll handles POST /sync. Domains run independently; the response lists
// those that finished.
func (h *AttentionHandler) SyncAll(w http.ResponseWriter, r *http.Request) {
	if !h.requireUser(w, r) {
		return
	}

	results, err := h.svc.RunAll(r.Context())
	if err != nil {
		h.log.WarnContext(r.Context(), "manual sync finished with errors", slog.String("error", err.Error()))
	}

	out := make([]syncResultDTO, len(results))
	for i, res := range results {
		out[i] = toSyncResultDTO(res)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"results":  out,
		"complete": err == nil,
	})
}

func (h *AttentionHandler) requireUser(w http.ResponseWriter, r *http.Request) bool {
	if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
		handleError(h.log, w, r, domain.ErrUnauthorized)
		return false
	}
	return true
}
