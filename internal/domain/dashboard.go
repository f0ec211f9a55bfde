package domain

import "time"

// DashboardItem is one pinned entity with freshly-fetched details.
type DashboardItem struct {
	Pin       Pin
	Title     string
	DueDate   *time.Time
	DaysUntil *int
	Urgency   UrgencyStatus
	Note      *PinNote

	// Exactly one of these is set when the backing record still exists.
	Bill    *Bill
	Ticket  *Ticket
	Message *ClassifiedMessage
}

// DashboardStats summarises the pinned worklist.
type DashboardStats struct {
	Total     int
	Overdue   int
	Urgent    int
	Upcoming  int
	Normal    int
	Smart     int
	User      int
	WithNotes int
}

// PinnedDashboard is the sorted, urgency-annotated pinned worklist.
type PinnedDashboard struct {
	Items []DashboardItem
	Stats DashboardStats
}

// AttentionMessage is a classified message annotated with its pin status.
type AttentionMessage struct {
	ClassifiedMessage
	Pinned  bool
	Flagged bool
}

// OutageAttention is an unresolved service outage.
type OutageAttention struct {
	AttentionMessage
	ServiceKey string
}

// BuildingLinkAttention is the needs-attention view over recent messages.
type BuildingLinkAttention struct {
	ActiveOutages       []OutageAttention
	UncollectedPackages []AttentionMessage
	FlaggedMessages     []AttentionMessage
}
