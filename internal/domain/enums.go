package domain

// EntityType identifies the kind of record a pin or note is attached to.
type EntityType string

const (
	EntityTypeBill    EntityType = "bill"
	EntityTypeTicket  EntityType = "ticket"
	EntityTypeMessage EntityType = "buildinglink_message"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeBill, EntityTypeTicket, EntityTypeMessage:
		return true
	}
	return false
}

// SyncDomains lists the entity types that carry rule-driven pins.
func SyncDomains() []EntityType {
	return []EntityType{EntityTypeBill, EntityTypeTicket, EntityTypeMessage}
}

// BillStatus is the payment state of a bill.
type BillStatus string

const (
	BillStatusPending   BillStatus = "pending"
	BillStatusSent      BillStatus = "sent"
	BillStatusOverdue   BillStatus = "overdue"
	BillStatusPaid      BillStatus = "paid"
	BillStatusCancelled BillStatus = "cancelled"
)

func (s BillStatus) String() string { return string(s) }

func (s BillStatus) IsValid() bool {
	switch s {
	case BillStatusPending, BillStatusSent, BillStatusOverdue, BillStatusPaid, BillStatusCancelled:
		return true
	}
	return false
}

// IsSettled reports whether the bill no longer needs any action.
func (s BillStatus) IsSettled() bool {
	return s == BillStatusPaid || s == BillStatusCancelled
}

// TicketPriority is the triage priority of a ticket.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
	TicketPriorityUrgent TicketPriority = "urgent"
)

func (p TicketPriority) String() string { return string(p) }

func (p TicketPriority) IsValid() bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityUrgent:
		return true
	}
	return false
}

// IsElevated reports whether the priority alone warrants attention.
func (p TicketPriority) IsElevated() bool {
	return p == TicketPriorityHigh || p == TicketPriorityUrgent
}

// TicketStatus is the workflow state of a ticket.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusWaiting    TicketStatus = "waiting"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

func (s TicketStatus) String() string { return string(s) }

func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusWaiting, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

// IsClosed reports whether the ticket is finished.
func (s TicketStatus) IsClosed() bool {
	return s == TicketStatusResolved || s == TicketStatusClosed
}

// MessageCategory is the triage bucket assigned to an inbound notification.
type MessageCategory string

const (
	CategoryCritical    MessageCategory = "critical"
	CategoryImportant   MessageCategory = "important"
	CategoryMaintenance MessageCategory = "maintenance"
	CategorySecurity    MessageCategory = "security"
	CategoryPackage     MessageCategory = "package"
	CategoryRoutine     MessageCategory = "routine"
	CategorySocial      MessageCategory = "social"
	CategoryNoise       MessageCategory = "noise"
)

func (c MessageCategory) String() string { return string(c) }

func (c MessageCategory) IsValid() bool {
	switch c {
	case CategoryCritical, CategoryImportant, CategoryMaintenance, CategorySecurity,
		CategoryPackage, CategoryRoutine, CategorySocial, CategoryNoise:
		return true
	}
	return false
}

// MessageSubcategory refines a category.
type MessageSubcategory string

const (
	SubcategoryServiceOutage  MessageSubcategory = "service_outage"
	SubcategoryWeatherAlert   MessageSubcategory = "weather_alert"
	SubcategoryPackagePickup  MessageSubcategory = "package_pickup"
	SubcategoryPackageArrival MessageSubcategory = "package_arrival"
	SubcategoryExcessPackage  MessageSubcategory = "excess_package"
	SubcategoryKeyOut         MessageSubcategory = "key_out"
	SubcategoryKeyReturned    MessageSubcategory = "key_returned"
	SubcategoryKeyAccess      MessageSubcategory = "key_access"
	SubcategoryResidentPost   MessageSubcategory = "resident_post"
	SubcategoryLostFound      MessageSubcategory = "lost_found"
	SubcategoryStaffNotice    MessageSubcategory = "staff_notice"
	SubcategorySocialEvent    MessageSubcategory = "social_event"
	SubcategoryServiceRestore MessageSubcategory = "service_restored"
	SubcategoryHOAMeeting     MessageSubcategory = "hoa_meeting"
	SubcategoryFinancial      MessageSubcategory = "financial"
	SubcategoryNotice         MessageSubcategory = "notice"
	SubcategoryHVAC           MessageSubcategory = "hvac"
	SubcategoryElevator       MessageSubcategory = "elevator_update"
	SubcategoryMaintenanceReq MessageSubcategory = "maintenance_request"
	SubcategoryConstruction   MessageSubcategory = "construction"
	SubcategoryAmenity        MessageSubcategory = "amenity"
	SubcategoryBuildingUpdate MessageSubcategory = "building_update"
	SubcategoryDryCleaning    MessageSubcategory = "dry_cleaning"
	SubcategoryNotification   MessageSubcategory = "notification"
	SubcategoryOther          MessageSubcategory = "other"
)

func (s MessageSubcategory) String() string { return string(s) }

// Unit is the residence unit a message refers to.
// Besides the configured unit tokens it may be UnitBoth or UnitUnknown.
type Unit string

const (
	UnitBoth    Unit = "both"
	UnitUnknown Unit = "unknown"
)

func (u Unit) String() string { return string(u) }

// UrgencyStatus is the dashboard tier of a pinned item.
type UrgencyStatus string

const (
	UrgencyOverdue  UrgencyStatus = "overdue"
	UrgencyUrgent   UrgencyStatus = "urgent"
	UrgencyUpcoming UrgencyStatus = "upcoming"
	UrgencyNormal   UrgencyStatus = "normal"
)

func (u UrgencyStatus) String() string { return string(u) }

// Rank orders tiers for display: lower ranks sort first.
func (u UrgencyStatus) Rank() int {
	switch u {
	case UrgencyOverdue:
		return 0
	case UrgencyUrgent:
		return 1
	case UrgencyUpcoming:
		return 2
	default:
		return 3
	}
}
