// Package bill reads bills from PostgreSQL. Bills are owned by another part
// of the system; this package never writes them.
package bill

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

// Repo provides read access to bills.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new bill repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var billColumns = []string{
	"id", "title", "payee", "amount", "due_date", "status",
	"sent_at", "confirmed_at", "created_at", "updated_at",
}

// unsettled are the statuses a bill can need attention in.
var unsettled = []string{
	string(domain.BillStatusPending),
	string(domain.BillStatusSent),
	string(domain.BillStatusOverdue),
}

// GetByID returns a bill. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Bill, error) {
	query, args, err := postgres.Builder().
		Select(billColumns...).
		From("bills").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get bill query: %w", err)
	}

	var row billRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "bill", id)
	}
	b := row.toDomain()
	return &b, nil
}

// GetByIDs returns the bills that exist among ids, in no particular order.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Bill, error) {
	if len(ids) == 0 {
		return []domain.Bill{}, nil
	}
	return r.list(ctx, postgres.Builder().
		Select(billColumns...).
		From("bills").
		Where("id = ANY(?)", ids))
}

// ListUnsettled returns every bill that is not paid or cancelled, earliest
// due first.
func (r *Repo) ListUnsettled(ctx context.Context) ([]domain.Bill, error) {
	return r.list(ctx, postgres.Builder().
		Select(billColumns...).
		From("bills").
		Where(squirrel.Eq{"status": unsettled}).
		OrderBy("due_date ASC NULLS LAST", "id"))
}

func (r *Repo) list(ctx context.Context, q squirrel.SelectBuilder) ([]domain.Bill, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bills query: %w", err)
	}

	var rows []billRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}

	bills := make([]domain.Bill, len(rows))
	for i, row := range rows {
		bills[i] = row.toDomain()
	}
	return bills, nil
}

type billRow struct {
	ID          uuid.UUID  `db:"id"`
	Title       string     `db:"title"`
	Payee       string     `db:"payee"`
	Amount      float64    `db:"amount"`
	DueDate     *time.Time `db:"due_date"`
	Status      string     `db:"status"`
	SentAt      *time.Time `db:"sent_at"`
	ConfirmedAt *time.Time `db:"confirmed_at"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

func (r billRow) toDomain() domain.Bill {
	return domain.Bill{
		ID:          r.ID,
		Title:       r.Title,
		Payee:       r.Payee,
		Amount:      r.Amount,
		DueDate:     r.DueDate,
		Status:      domain.BillStatus(r.Status),
		SentAt:      r.SentAt,
		ConfirmedAt: r.ConfirmedAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
