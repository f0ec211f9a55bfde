// Package attention implements the smart pin synchronizer and the
// BuildingLink needs-attention view.
package attention

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/attention-backend/internal/config"
	"github.com/heartmarshall/attention-backend/internal/correlate"
	"github.com/heartmarshall/attention-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type pinLedger interface {
	ListSystemPinIDs(ctx context.Context, entityType domain.EntityType) ([]uuid.UUID, error)
	ListPins(ctx context.Context, f domain.PinFilter) ([]domain.Pin, error)
	UpsertSmartPin(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, metadata map[string]any, now time.Time) (domain.UpsertOutcome, error)
	RemoveSmartPin(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) (bool, error)
}

type billLister interface {
	ListUnsettled(ctx context.Context) ([]domain.Bill, error)
}

type ticketLister interface {
	ListOpen(ctx context.Context) ([]domain.Ticket, error)
}

type messageLister interface {
	ListRecent(ctx context.Context, source string, limit int) ([]domain.Message, error)
}

type messageClassifier interface {
	ClassifyAll(msgs []domain.Message) []domain.ClassifiedMessage
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service reconciles rule-driven pins with the current state of bills,
// tickets and messages.
type Service struct {
	pins       pinLedger
	bills      billLister
	tickets    ticketLister
	messages   messageLister
	classifier messageClassifier
	correlator *correlate.Correlator
	metrics    *Metrics
	log        *slog.Logger

	cfg config.SyncConfig
	now func() time.Time
}

// NewService creates a new attention service. metrics may be nil.
func NewService(
	log *slog.Logger,
	pins pinLedger,
	bills billLister,
	tickets ticketLister,
	messages messageLister,
	classifier messageClassifier,
	metrics *Metrics,
	cfg config.SyncConfig,
) *Service {
	return &Service{
		pins:       pins,
		bills:      bills,
		tickets:    tickets,
		messages:   messages,
		classifier: classifier,
		correlator: correlate.New(
			correlate.WithPackageWindow(cfg.PackageWindow()),
			correlate.WithOutageWindow(cfg.MessageWindow()),
		),
		metrics: metrics,
		log:     log.With("service", "attention"),
		cfg:     cfg,
		now:     func() time.Time { return time.Now().UTC() },
	}
}
