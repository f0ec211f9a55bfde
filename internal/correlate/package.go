package correlate

import (
	"strings"
	"time"

	"github.com/heartmarshall/attention-backend/internal/domain"
)

// UncollectedPackages returns package arrivals inside the package window that
// have no matching pickup. Pickups of any age count. An arrival without a
// tracking token cannot be matched and is treated as uncollected. Arrivals
// whose pin is dismissed are left out.
func (c *Correlator) UncollectedPackages(msgs []domain.ClassifiedMessage, pins PinIndex, now time.Time) []domain.AttentionMessage {
	collected := pickupTokens(msgs)

	out := make([]domain.AttentionMessage, 0)
	for _, m := range msgs {
		if !m.Is(domain.SubcategoryPackageArrival) {
			continue
		}
		if !withinWindow(m.ReceivedAt, now, c.packageWindow) {
			continue
		}
		if pins.dismissed(m.ID) {
			continue
		}
		if m.PackageNumber != nil {
			if _, ok := collected[normalizeToken(*m.PackageNumber)]; ok {
				continue
			}
		}
		out = append(out, pins.annotate(m))
	}

	sortNewestFirst(out, func(a domain.AttentionMessage) time.Time { return a.ReceivedAt })
	return out
}

func pickupTokens(msgs []domain.ClassifiedMessage) map[string]struct{} {
	set := make(map[string]struct{})
	for _, m := range msgs {
		if !m.Is(domain.SubcategoryPackagePickup) || m.PackageNumber == nil {
			continue
		}
		set[normalizeToken(*m.PackageNumber)] = struct{}{}
	}
	return set
}

func normalizeToken(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
