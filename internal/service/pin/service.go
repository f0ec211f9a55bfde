// Package pin implements the user-facing pin ledger operations and the
// pinned dashboard.
package pin

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/attention-backend/internal/config"
	"github.com/heartmarshall/attention-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type pinRepo interface {
	GetForUpdate(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) (*domain.Pin, error)
	ListPins(ctx context.Context, f domain.PinFilter) ([]domain.Pin, error)
	ListPinnedIDs(ctx context.Context, entityType domain.EntityType) ([]uuid.UUID, error)
	CreateUserPin(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, actor domain.Actor, metadata map[string]any, now time.Time) (*domain.Pin, error)
	Dismiss(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, actor domain.Actor, now time.Time) error
	DeleteUserPin(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) error
	ReclaimForUser(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, actor domain.Actor, now time.Time) (*domain.Pin, error)
	UndoDismiss(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, now time.Time) (bool, error)
}

type noteRepo interface {
	Upsert(ctx context.Context, note domain.PinNote, now time.Time) (*domain.PinNote, error)
	Delete(ctx context.Context, userID uuid.UUID, entityType domain.EntityType, entityID uuid.UUID) error
	ListByEntities(ctx context.Context, userID uuid.UUID, entityIDs []uuid.UUID) ([]domain.PinNote, error)
}

type billReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Bill, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Bill, error)
}

type ticketReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Ticket, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Ticket, error)
}

type messageReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Message, error)
}

type messageClassifier interface {
	ClassifyMessage(m domain.Message) domain.ClassifiedMessage
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service provides pin ledger operations for users and the pinned dashboard.
type Service struct {
	pins       pinRepo
	notes      noteRepo
	bills      billReader
	tickets    ticketReader
	messages   messageReader
	classifier messageClassifier
	tx         txManager
	log        *slog.Logger

	notesCfg     config.NotesConfig
	dashboardCfg config.DashboardConfig
	now          func() time.Time
}

// NewService creates a new Pin service.
func NewService(
	log *slog.Logger,
	pins pinRepo,
	notes noteRepo,
	bills billReader,
	tickets ticketReader,
	messages messageReader,
	classifier messageClassifier,
	tx txManager,
	notesCfg config.NotesConfig,
	dashboardCfg config.DashboardConfig,
) *Service {
	return &Service{
		pins:         pins,
		notes:        notes,
		bills:        bills,
		tickets:      tickets,
		messages:     messages,
		classifier:   classifier,
		tx:           tx,
		log:          log.With("service", "pin"),
		notesCfg:     notesCfg,
		dashboardCfg: dashboardCfg,
		now:          func() time.Time { return time.Now().UTC() },
	}
}
