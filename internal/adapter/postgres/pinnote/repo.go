// Package pinnote implements per-user pin notes using PostgreSQL.
package pinnote

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

// Repo provides pin note persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new pin note repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const noteColumns = `id, entity_type, entity_id, user_id, text, due_date, created_at, updated_at`

const upsertSQL = `
INSERT INTO pin_notes (id, entity_type, entity_id, user_id, text, due_date, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
ON CONFLICT (entity_type, entity_id, user_id) DO UPDATE
    SET text = EXCLUDED.text,
        due_date = EXCLUDED.due_date,
        updated_at = EXCLUDED.updated_at
RETURNING ` + noteColumns

const getSQL = `SELECT ` + noteColumns + `
FROM pin_notes
WHERE entity_type = $1 AND entity_id = $2 AND user_id = $3`

const deleteSQL = `
DELETE FROM pin_notes
WHERE entity_type = $1 AND entity_id = $2 AND user_id = $3`

// Upsert creates the user's note for an entity or replaces its text and due date.
func (r *Repo) Upsert(ctx context.Context, note domain.PinNote, now time.Time) (*domain.PinNote, error) {
	if note.ID == uuid.Nil {
		note.ID = uuid.New()
	}

	var row noteRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, upsertSQL,
		note.ID, string(note.EntityType), note.EntityID, note.UserID, note.Text, note.DueDate, now,
	)
	if err != nil {
		return nil, postgres.MapError(err, "pin_note", note.EntityID)
	}
	n := row.toDomain()
	return &n, nil
}

// Get returns the user's note for an entity. Returns domain.ErrNotFound if
// there is none.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID, entityType domain.EntityType, entityID uuid.UUID) (*domain.PinNote, error) {
	var row noteRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, getSQL, string(entityType), entityID, userID)
	if err != nil {
		return nil, postgres.MapError(err, "pin_note", entityID)
	}
	n := row.toDomain()
	return &n, nil
}

// Delete removes the user's note for an entity. Returns domain.ErrNotFound
// if there is none.
func (r *Repo) Delete(ctx context.Context, userID uuid.UUID, entityType domain.EntityType, entityID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteSQL, string(entityType), entityID, userID)
	if err != nil {
		return postgres.MapError(err, "pin_note", entityID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("pin_note %s: %w", entityID, domain.ErrNotFound)
	}
	return nil
}

// ListByEntities returns the user's notes for the given entity ids, any type.
func (r *Repo) ListByEntities(ctx context.Context, userID uuid.UUID, entityIDs []uuid.UUID) ([]domain.PinNote, error) {
	if len(entityIDs) == 0 {
		return []domain.PinNote{}, nil
	}

	query, args, err := postgres.Builder().
		Select(noteColumns).
		From("pin_notes").
		Where(squirrel.Eq{"user_id": userID}).
		Where("entity_id = ANY(?)", entityIDs).
		OrderBy("updated_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list pin notes query: %w", err)
	}

	var rows []noteRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list pin_notes: %w", err)
	}

	notes := make([]domain.PinNote, len(rows))
	for i, row := range rows {
		notes[i] = row.toDomain()
	}
	return notes, nil
}

type noteRow struct {
	ID         uuid.UUID  `db:"id"`
	EntityType string     `db:"entity_type"`
	EntityID   uuid.UUID  `db:"entity_id"`
	UserID     uuid.UUID  `db:"user_id"`
	Text       string     `db:"text"`
	DueDate    *time.Time `db:"due_date"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
}

func (r noteRow) toDomain() domain.PinNote {
	return domain.PinNote{
		ID:         r.ID,
		EntityType: domain.EntityType(r.EntityType),
		EntityID:   r.EntityID,
		UserID:     r.UserID,
		Text:       r.Text,
		DueDate:    r.DueDate,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}
