// Package ticket reads tickets from PostgreSQL.
package ticket

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/attention-backend/internal/adapter/postgres"
	"github.com/heartmarshall/attention-backend/internal/domain"
)

// Repo provides read access to tickets.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new ticket repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var ticketColumns = []string{"id", "title", "priority", "status", "due_date", "created_at", "updated_at"}

var closedStatuses = []string{
	string(domain.TicketStatusResolved),
	string(domain.TicketStatusClosed),
}

// GetByID returns a ticket. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Ticket, error) {
	query, args, err := postgres.Builder().
		Select(ticketColumns...).
		From("tickets").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get ticket query: %w", err)
	}

	var row ticketRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "ticket", id)
	}
	tk := row.toDomain()
	return &tk, nil
}

// GetByIDs returns the tickets that exist among ids.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Ticket, error) {
	if len(ids) == 0 {
		return []domain.Ticket{}, nil
	}
	return r.list(ctx, postgres.Builder().
		Select(ticketColumns...).
		From("tickets").
		Where("id = ANY(?)", ids))
}

// ListOpen returns tickets that are neither resolved nor closed.
func (r *Repo) ListOpen(ctx context.Context) ([]domain.Ticket, error) {
	return r.list(ctx, postgres.Builder().
		Select(ticketColumns...).
		From("tickets").
		Where(squirrel.NotEq{"status": closedStatuses}).
		OrderBy("due_date ASC NULLS LAST", "id"))
}

func (r *Repo) list(ctx context.Context, q squirrel.SelectBuilder) ([]domain.Ticket, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list tickets query: %w", err)
	}

	var rows []ticketRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}

	tickets := make([]domain.Ticket, len(rows))
	for i, row := range rows {
		tickets[i] = row.toDomain()
	}
	return tickets, nil
}

type ticketRow struct {
	ID        uuid.UUID  `db:"id"`
	Title     string     `db:"title"`
	Priority  string     `db:"priority"`
	Status    string     `db:"status"`
	DueDate   *time.Time `db:"due_date"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

func (r ticketRow) toDomain() domain.Ticket {
	return domain.Ticket{
		ID:        r.ID,
		Title:     r.Title,
		Priority:  domain.TicketPriority(r.Priority),
		Status:    domain.TicketStatus(r.Status),
		DueDate:   r.DueDate,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
