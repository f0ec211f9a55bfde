package correlate

import (
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/heartmarshall/attention-backend/internal/domain"
)

var (
	outageKeyPhrases = phrasePattern(
		"out of service", "out-of-service", "outage", "shut off", "shut-off", "shutoff",
		"shutdown", "shut down", "not working", "interruption", "emergency", "urgent",
		"scheduled", "unavailable", "down", "service",
	)
	restorationKeyPhrases = phrasePattern(
		"back in service", "returned to service", "back online", "back on", "restored",
		"resumed", "now operational", "is working again", "working again", "has been repaired",
		"repaired", "service",
	)

	nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
)

// phrasePattern compiles a word-bounded alternation, longest phrase first so
// "back in service" is removed before "service".
func phrasePattern(phrases ...string) *regexp.Regexp {
	sorted := slices.Clone(phrases)
	slices.SortStableFunc(sorted, func(a, b string) int { return len(b) - len(a) })
	quoted := make([]string, len(sorted))
	for i, p := range sorted {
		quoted[i] = regexp.QuoteMeta(p)
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

// ActiveOutages returns outages inside the outage window with no later
// restoration for the same service. Restorations are paired by service key
// with substring containment in either direction, so "elevator" pairs with
// "elevator a". Outages whose pin is dismissed are left out.
func (c *Correlator) ActiveOutages(msgs []domain.ClassifiedMessage, pins PinIndex, now time.Time) []domain.OutageAttention {
	type restoration struct {
		key string
		at  time.Time
	}

	var (
		outages      []domain.ClassifiedMessage
		restorations []restoration
	)
	for _, m := range msgs {
		if !withinWindow(m.ReceivedAt, now, c.outageWindow) {
			continue
		}
		switch m.Subcategory {
		case domain.SubcategoryServiceOutage:
			outages = append(outages, m)
		case domain.SubcategoryServiceRestore:
			restorations = append(restorations, restoration{key: RestorationKey(m.Subject), at: m.ReceivedAt})
		}
	}

	out := make([]domain.OutageAttention, 0)
	for _, o := range outages {
		if pins.dismissed(o.ID) {
			continue
		}
		key := OutageKey(o.Subject)

		resolved := false
		for _, r := range restorations {
			if r.at.After(o.ReceivedAt) && KeysMatch(key, r.key) {
				resolved = true
				break
			}
		}
		if resolved {
			continue
		}
		out = append(out, domain.OutageAttention{AttentionMessage: pins.annotate(o), ServiceKey: key})
	}

	sortNewestFirst(out, func(a domain.OutageAttention) time.Time { return a.ReceivedAt })
	return out
}

// OutageKey derives the service key of an outage subject.
func OutageKey(subject string) string {
	return serviceKey(subject, outageKeyPhrases)
}

// RestorationKey derives the service key of a restoration subject.
func RestorationKey(subject string) string {
	return serviceKey(subject, restorationKeyPhrases)
}

// KeysMatch reports whether two service keys refer to the same service.
// An empty key matches nothing.
func KeysMatch(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func serviceKey(subject string, phrases *regexp.Regexp) string {
	s := domain.NormalizeText(subject)
	s = phrases.ReplaceAllString(s, " ")
	s = nonAlnum.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}
