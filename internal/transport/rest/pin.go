package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/attention-backend/internal/domain"
	"github.com/heartmarshall/attention-backend/internal/service/pin"
)

// pinService defines the minimal interface needed by PinHandler.
type pinService interface {
	TogglePin(ctx context.Context, input pin.TogglePinInput) (*pin.ToggleResult, error)
	UndoDismiss(ctx context.Context, input pin.UndoDismissInput) (bool, error)
	GetPinnedIDs(ctx context.Context, entityType domain.EntityType) ([]uuid.UUID, error)
	GetSmartAndUserPins(ctx context.Context, entityType domain.EntityType) (*pin.PinsByOwner, error)
	UpsertNote(ctx context.Context, input pin.UpsertNoteInput) (*domain.PinNote, error)
	DeleteNote(ctx context.Context, input pin.DeleteNoteInput) error
	GetDashboardPinnedItems(ctx context.Context) (*domain.PinnedDashboard, error)
}

// PinHandler serves pin ledger and dashboard endpoints.
type PinHandler struct {
	svc pinService
	log *slog.Logger
}

// NewPinHandler creates a PinHandler.
func NewPinHandler(svc pinService, logger *slog.Logger) *PinHandler {
	return &PinHandler{svc: svc, log: logger.With("handler", "pin")}
}

// Toggle handles POST /pins/toggle.
func (h *PinHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	var req entityRefRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	ref, err := req.toRef()
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.TogglePin(r.Context(), pin.TogglePinInput{EntityRef: ref})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := toggleResponse{Pinned: result.Pinned, Action: string(result.Action)}
	if result.Pin != nil {
		p := toPinDTO(*result.Pin)
		resp.Pin = &p
	}
	writeJSON(w, http.StatusOK, resp)
}

// UndoDismiss handles POST /pins/undo-dismiss.
func (h *PinHandler) UndoDismiss(w http.ResponseWriter, r *http.Request) {
	var req entityRefRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	ref, err := req.toRef()
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	restored, err := h.svc.UndoDismiss(r.Context(), pin.UndoDismissInput{EntityRef: ref})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"restored": restored})
}

// ListByType handles GET /pins/{type}: active pins split by owner.
func (h *PinHandler) ListByType(w http.ResponseWriter, r *http.Request) {
	pins, err := h.svc.GetSmartAndUserPins(r.Context(), domain.EntityType(r.PathValue("type")))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pinsResponse{Smart: toPinDTOs(pins.Smart), User: toPinDTOs(pins.User)})
}

// PinnedIDs handles GET /pins/{type}/ids.
func (h *PinHandler) PinnedIDs(w http.ResponseWriter, r *http.Request) {
	ids, err := h.svc.GetPinnedIDs(r.Context(), domain.EntityType(r.PathValue("type")))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	writeJSON(w, http.StatusOK, pinnedIDsResponse{IDs: out})
}

// UpsertNote handles PUT /pins/notes.
func (h *PinHandler) UpsertNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	input, err := req.toInput()
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	note, err := h.svc.UpsertNote(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toNoteDTO(note))
}

// DeleteNote handles DELETE /pins/notes.
func (h *PinHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	var req entityRefRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	ref, err := req.toRef()
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteNote(r.Context(), pin.DeleteNoteInput{EntityRef: ref}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Dashboard handles GET /dashboard/pinned.
func (h *PinHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dash, err := h.svc.GetDashboardPinnedItems(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDashboardResponse(dash))
}
