// Package correlate pairs related classified messages (package arrival and
// pickup, service outage and restoration) to decide which items are still
// open. All functions are pure over a snapshot of messages and pins.
package correlate

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/attention-backend/internal/domain"
)

const (
	DefaultPackageWindow = 14 * 24 * time.Hour
	DefaultOutageWindow  = 7 * 24 * time.Hour
)

// Correlator holds the attention windows.
type Correlator struct {
	packageWindow time.Duration
	outageWindow  time.Duration
}

// Option configures a Correlator.
type Option func(*Correlator)

// WithPackageWindow sets how far back package arrivals are considered.
func WithPackageWindow(d time.Duration) Option {
	return func(c *Correlator) {
		if d > 0 {
			c.packageWindow = d
		}
	}
}

// WithOutageWindow sets how far back outages and restorations are considered.
func WithOutageWindow(d time.Duration) Option {
	return func(c *Correlator) {
		if d > 0 {
			c.outageWindow = d
		}
	}
}

// New creates a Correlator with the default 14-day package window and
// 7-day outage window.
func New(opts ...Option) *Correlator {
	c := &Correlator{
		packageWindow: DefaultPackageWindow,
		outageWindow:  DefaultOutageWindow,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// PinIndex maps a message id to its ledger record.
type PinIndex map[uuid.UUID]domain.Pin

// IndexPins builds a PinIndex from message pins.
func IndexPins(pins []domain.Pin) PinIndex {
	idx := make(PinIndex, len(pins))
	for _, p := range pins {
		if p.EntityType != domain.EntityTypeMessage {
			continue
		}
		idx[p.EntityID] = p
	}
	return idx
}

func (idx PinIndex) dismissed(id uuid.UUID) bool {
	p, ok := idx[id]
	return ok && p.IsDismissed()
}

func (idx PinIndex) annotate(m domain.ClassifiedMessage) domain.AttentionMessage {
	out := domain.AttentionMessage{ClassifiedMessage: m}
	if p, ok := idx[m.ID]; ok && p.IsActive() {
		out.Pinned = true
		out.Flagged = !p.IsSystemPin
	}
	return out
}

// NeedsAttention assembles the full needs-attention view.
func (c *Correlator) NeedsAttention(msgs []domain.ClassifiedMessage, pins PinIndex, now time.Time) domain.BuildingLinkAttention {
	return domain.BuildingLinkAttention{
		ActiveOutages:       c.ActiveOutages(msgs, pins, now),
		UncollectedPackages: c.UncollectedPackages(msgs, pins, now),
		FlaggedMessages:     FlaggedMessages(msgs, pins),
	}
}

// FlaggedMessages returns messages a user pinned by hand, newest first.
func FlaggedMessages(msgs []domain.ClassifiedMessage, pins PinIndex) []domain.AttentionMessage {
	out := make([]domain.AttentionMessage, 0)
	for _, m := range msgs {
		a := pins.annotate(m)
		if a.Flagged {
			out = append(out, a)
		}
	}
	sortNewestFirst(out, func(a domain.AttentionMessage) time.Time { return a.ReceivedAt })
	return out
}

// withinWindow reports whether t is no older than window. The cutoff is
// inclusive.
func withinWindow(t, now time.Time, window time.Duration) bool {
	return !t.Before(now.Add(-window))
}

func sortNewestFirst[T any](s []T, receivedAt func(T) time.Time) {
	slices.SortStableFunc(s, func(a, b T) int {
		return receivedAt(b).Compare(receivedAt(a))
	})
}
