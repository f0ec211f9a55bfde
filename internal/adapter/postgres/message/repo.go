// Package message reads raw inbound notification messages from PostgreSQL.
// Classification happens on every read, outside this package.
package message

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

// Repo provides read access to messages.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new message repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var messageColumns = []string{"id", "source", "subject", "body_snippet", "received_at"}

// ListRecent returns up to limit messages from source, newest first.
func (r *Repo) ListRecent(ctx context.Context, source string, limit int) ([]domain.Message, error) {
	if limit <= 0 {
		return []domain.Message{}, nil
	}
	return r.list(ctx, postgres.Builder().
		Select(messageColumns...).
		From("messages").
		Where(squirrel.Eq{"source": source}).
		OrderBy("received_at DESC", "id").
		Limit(uint64(limit)))
}

// GetByIDs returns the messages that exist among ids.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Message, error) {
	if len(ids) == 0 {
		return []domain.Message{}, nil
	}
	return r.list(ctx, postgres.Builder().
		Select(messageColumns...).
		From("messages").
		Where("id = ANY(?)", ids))
}

// GetByID returns a message. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	query, args, err := postgres.Builder().
		Select(messageColumns...).
		From("messages").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get message query: %w", err)
	}

	var row messageRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "message", id)
	}
	m := row.toDomain()
	return &m, nil
}

func (r *Repo) list(ctx context.Context, q squirrel.SelectBuilder) ([]domain.Message, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list messages query: %w", err)
	}

	var rows []messageRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	msgs := make([]domain.Message, len(rows))
	for i, row := range rows {
		msgs[i] = row.toDomain()
	}
	return msgs, nil
}

type messageRow struct {
	ID          uuid.UUID `db:"id"`
	Source      string    `db:"source"`
	Subject     string    `db:"subject"`
	BodySnippet string    `db:"body_snippet"`
	ReceivedAt  time.Time `db:"received_at"`
}

func (r messageRow) toDomain() domain.Message {
	return domain.Message{
		ID:          r.ID,
		Source:      r.Source,
		Subject:     r.Subject,
		BodySnippet: r.BodySnippet,
		ReceivedAt:  r.ReceivedAt,
	}
}
