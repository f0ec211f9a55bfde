package attention

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/attention-backend/internal/domain"
)

// ErrIncompleteSync is returned when some per-entity ledger writes of a pass
// failed. The pass ran to the end; the failed entities are retried next run.
var ErrIncompleteSync = errors.New("sync incomplete")

// SyncResult summarises one reconciliation pass over a domain.
type SyncResult struct {
	Domain    domain.EntityType
	Target    int
	Current   int
	Created   int
	Updated   int
	Unchanged int
	// SkippedDismissed counts targets whose pin a user dismissed.
	SkippedDismissed int
	Removed          int
	Failed           int
	Duration         time.Duration
}

// Mutations returns the number of ledger rows the pass changed.
func (r SyncResult) Mutations() int {
	return r.Created + r.Updated + r.Removed
}

// RunSync reconciles the smart pins of one domain with its current candidate
// set. Candidates get an idempotent upsert; a dismissed slot is left alone at
// write time. Active system pins no longer in the candidate set are removed.
//
// A storage failure on one entity is logged and counted; the pass goes on and
// returns ErrIncompleteSync at the end. Failing to compute either set aborts
// the pass. Cancellation is honoured between entities.
func (s *Service) RunSync(ctx context.Context, entityType domain.EntityType) (*SyncResult, error) {
	if !slices.Contains(domain.SyncDomains(), entityType) {
		return nil, domain.NewValidationError("domain", fmt.Sprintf("no sync for %q", entityType))
	}

	start := time.Now()
	now := s.now()
	result := &SyncResult{Domain: entityType}

	var (
		candidates []domain.AttentionCandidate
		current    []uuid.UUID
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		candidates, err = s.Candidates(gctx, entityType, now)
		return err
	})
	g.Go(func() error {
		var err error
		current, err = s.pins.ListSystemPinIDs(gctx, entityType)
		if err != nil {
			return fmt.Errorf("list system pins: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.log.ErrorContext(ctx, "sync pass failed",
			slog.String("domain", entityType.String()),
			slog.String("error", err.Error()),
		)
		s.metrics.observeRun(entityType, statusError, time.Since(start))
		return nil, fmt.Errorf("sync %s: %w", entityType, err)
	}

	slices.SortFunc(candidates, func(a, b domain.AttentionCandidate) int {
		return compareUUID(a.EntityID, b.EntityID)
	})
	result.Target = len(candidates)
	result.Current = len(current)

	target := make(map[uuid.UUID]struct{}, len(candidates))
	for _, c := range candidates {
		target[c.EntityID] = struct{}{}

		if err := ctx.Err(); err != nil {
			return s.abort(ctx, result, start, err)
		}

		outcome, err := s.pins.UpsertSmartPin(ctx, entityType, c.EntityID, c.Metadata.ToMap(), now)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return s.abort(ctx, result, start, ctxErr)
			}
			s.entityFailed(ctx, result, c.EntityID, "upsert", err)
			continue
		}

		if outcome.Mutated() {
			s.log.DebugContext(ctx, "smart pin written",
				slog.String("entity_type", entityType.String()),
				slog.String("entity_id", c.EntityID.String()),
				slog.String("outcome", string(outcome)),
			)
		}

		switch outcome {
		case domain.UpsertCreated:
			result.Created++
		case domain.UpsertUpdated:
			result.Updated++
		case domain.UpsertDismissed:
			result.SkippedDismissed++
		default:
			result.Unchanged++
		}
	}

	for _, id := range current {
		if _, ok := target[id]; ok {
			continue
		}

		if err := ctx.Err(); err != nil {
			return s.abort(ctx, result, start, err)
		}

		removed, err := s.pins.RemoveSmartPin(ctx, entityType, id)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return s.abort(ctx, result, start, ctxErr)
			}
			s.entityFailed(ctx, result, id, "remove", err)
			continue
		}
		if removed {
			result.Removed++
		}
	}

	result.Duration = time.Since(start)
	s.log.InfoContext(ctx, "sync pass finished", resultAttrs(result)...)

	if result.Failed > 0 {
		s.metrics.observeResult(result, statusPartial)
		return result, fmt.Errorf("sync %s: %d of %d entities: %w",
			entityType, result.Failed, result.Target+result.Current, ErrIncompleteSync)
	}
	s.metrics.observeResult(result, statusOK)
	return result, nil
}

// RunAll runs every domain's pass concurrently. Domains are independent: a
// failing domain does not stop the others. Errors are joined.
func (s *Service) RunAll(ctx context.Context) ([]SyncResult, error) {
	domains := domain.SyncDomains()
	results := make([]*SyncResult, len(domains))
	errs := make([]error, len(domains))

	var g errgroup.Group
	for i, d := range domains {
		g.Go(func() error {
			results[i], errs[i] = s.RunSync(ctx, d)
			return nil
		})
	}
	_ = g.Wait()

	out := make([]SyncResult, 0, len(domains))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out, errors.Join(errs...)
}

func (s *Service) entityFailed(ctx context.Context, result *SyncResult, id uuid.UUID, op string, err error) {
	result.Failed++
	s.log.WarnContext(ctx, "sync entity failed",
		slog.String("op", op),
		slog.String("entity_type", result.Domain.String()),
		slog.String("entity_id", id.String()),
		slog.String("error", err.Error()),
	)
}

// abort ends a cancelled pass. Work done so far stays; the next run converges.
func (s *Service) abort(ctx context.Context, result *SyncResult, start time.Time, err error) (*SyncResult, error) {
	result.Duration = time.Since(start)
	s.log.WarnContext(ctx, "sync pass aborted", append(resultAttrs(result), slog.String("error", err.Error()))...)
	s.metrics.observeResult(result, statusAborted)
	return result, fmt.Errorf("sync %s: %w", result.Domain, err)
}

func resultAttrs(r *SyncResult) []any {
	return []any{
		slog.String("domain", r.Domain.String()),
		slog.Int("target", r.Target),
		slog.Int("current", r.Current),
		slog.Int("created", r.Created),
		slog.Int("updated", r.Updated),
		slog.Int("unchanged", r.Unchanged),
		slog.Int("skipped", r.SkippedDismissed),
		slog.Int("removed", r.Removed),
		slog.Int("failed", r.Failed),
		slog.Duration("duration", r.Duration),
	}
}

func compareUUID(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}
