package pin

import (
	"cmp"
	"slices"

	"github.com/heartmarshall/attention-backend/internal/config"
	"github.com/heartmarshall/attention-backend/internal/domain"
)

// urgencyOf assigns the dashboard tier of an item. Settled bills and closed
// tickets are always normal. Otherwise the tier follows the days until the
// due date, raised by overdue bill status, ticket priority or critical messages.
func urgencyOf(item domain.DashboardItem, cfg config.DashboardConfig) domain.UrgencyStatus {
	switch {
	case item.Bill != nil && item.Bill.Status.IsSettled():
		return domain.UrgencyNormal
	case item.Ticket != nil && item.Ticket.Status.IsClosed():
		return domain.UrgencyNormal
	}

	tier := domain.UrgencyNormal
	if item.DaysUntil != nil {
		switch d := *item.DaysUntil; {
		case d < 0:
			tier = domain.UrgencyOverdue
		case d <= cfg.UrgentDays:
			tier = domain.UrgencyUrgent
		case d <= cfg.UpcomingDays:
			tier = domain.UrgencyUpcoming
		}
	}

	switch {
	case item.Bill != nil && item.Bill.Status == domain.BillStatusOverdue:
		tier = raise(tier, domain.UrgencyOverdue)
	case item.Ticket != nil && item.Ticket.Priority == domain.TicketPriorityUrgent:
		tier = raise(tier, domain.UrgencyUrgent)
	case item.Ticket != nil && item.Ticket.Priority == domain.TicketPriorityHigh:
		tier = raise(tier, domain.UrgencyUpcoming)
	case item.Message != nil && item.Message.Category == domain.CategoryCritical:
		tier = raise(tier, domain.UrgencyUrgent)
	}
	return tier
}

// raise returns the more urgent of two tiers.
func raise(current, floor domain.UrgencyStatus) domain.UrgencyStatus {
	if floor.Rank() < current.Rank() {
		return floor
	}
	return current
}

// sortDashboard orders items by tier, then days until due ascending with
// undated items last, then most recently pinned first.
func sortDashboard(items []domain.DashboardItem) {
	slices.SortStableFunc(items, func(a, b domain.DashboardItem) int {
		if c := cmp.Compare(a.Urgency.Rank(), b.Urgency.Rank()); c != 0 {
			return c
		}
		switch {
		case a.DaysUntil != nil && b.DaysUntil == nil:
			return -1
		case a.DaysUntil == nil && b.DaysUntil != nil:
			return 1
		case a.DaysUntil != nil && b.DaysUntil != nil:
			if c := cmp.Compare(*a.DaysUntil, *b.DaysUntil); c != 0 {
				return c
			}
		}
		return b.Pin.PinnedAt.Compare(a.Pin.PinnedAt)
	})
}

// dashboardStats counts items per tier and ownership.
func dashboardStats(items []domain.DashboardItem) domain.DashboardStats {
	stats := domain.DashboardStats{Total: len(items)}
	for _, it := range items {
		switch it.Urgency {
		case domain.UrgencyOverdue:
			stats.Overdue++
		case domain.UrgencyUrgent:
			stats.Urgent++
		case domain.UrgencyUpcoming:
			stats.Upcoming++
		default:
			stats.Normal++
		}
		if it.Pin.IsSystemPin {
			stats.Smart++
		} else {
			stats.User++
		}
		if it.Note != nil {
			stats.WithNotes++
		}
	}
	return stats
}
