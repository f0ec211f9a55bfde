package classifier

import (
	"regexp"
	"strings"

	"github.com/heartmarshall/attention-backend/internal/domain"
)

// Input is the normalized text a rule predicate inspects.
type Input struct {
	Subject string // lowercased, whitespace-collapsed
	Body    string // lowercased, whitespace-collapsed
}

// Rule is one entry of the ordered rule chain. The first rule whose Match
// returns true decides the classification.
type Rule struct {
	Name        string
	Match       func(in Input) bool
	Category    domain.MessageCategory
	Subcategory domain.MessageSubcategory
}

// ---------------------------------------------------------------------------
// Keyword sets
// ---------------------------------------------------------------------------

var (
	outagePhrases = []string{
		"out of service", "out-of-service", "emergency", "urgent", "water shut",
	}
	pickupPhrases = []string{
		"picked up", "pick up confirmation", "pickup confirmation", "has been collected",
		"was collected", "package released",
	}
	arrivalPhrases = []string{
		"you have a package", "you have a delivery", "new package", "new delivery",
		"package arrival", "package has arrived", "package delivered", "package for you",
		"delivery notification", "delivery for", "parcel",
	}
	excessPackagePhrases = []string{
		"excess package", "package storage", "too many packages", "packages over",
	}
	residentPostPhrases = []string{
		"resident post", "posted by resident", "neighbor post", "bulletin board", "for sale",
	}
	lostFoundPhrases = []string{
		"lost & found", "lost and found", "lost item", "found item",
	}
	staffPhrases = []string{
		"tipping", "gratuity", "staff appreciation", "staff holiday", "new staff", "staff member",
		"welcome our new",
	}
	restoredPhrases = []string{
		"back in service", "returned to service", "restored", "back online", "back on",
		"resumed", "now operational", "is working again", "has been repaired",
	}
	hoaPhrases = []string{
		"hoa", "board meeting", "annual meeting", "owners meeting", "vote", "voting",
		"election", "proxy", "ballot",
	}
	financialPhrases = []string{
		"common charge", "assessment", "budget", "maintenance fee", "payment", "invoice",
		"statement", "arrears", "tax abatement",
	}
	noticePhrases = []string{
		"notice", "reminder", "policy", "schedule", "rules", "important information",
	}
	hvacPhrases = []string{
		"hvac", "heating", "cooling", "air condition", "boiler", "winteriz", "radiator",
		"thermostat", "heat season",
	}
	elevatorPhrases = []string{"elevator"}
	maintenanceRequestPhrases = []string{
		"maintenance request", "work order", "service request", "repair request",
	}
	constructionPhrases = []string{
		"construction", "renovation", "loud work", "noisy work", "drilling", "jackhammer",
		"contractor", "facade", "scaffolding",
	}
	amenityPhrases = []string{
		"pool", "gym", "fitness", "roof deck", "rooftop", "lounge", "amenity", "amenities",
		"sauna", "playroom", "bbq", "grill", "bike room", "storage room",
	}
	buildingUpdatePhrases = []string{
		"building update", "newsletter", "announcement", "update", "community news",
	}
	dryCleaningPhrases = []string{
		"dry clean", "dry-clean", "cleaners", "laundry",
	}
	notificationPackageHints = []string{
		"package", "delivery", "delivered", "marketplace", "amazon", "parcel",
	}
)

// keyPattern matches "key", "keys" and "keylink" as words, so that words
// such as "keyboard" or "turkey" are not security messages.
var keyPattern = regexp.MustCompile(`\bkey(?:s|link)?\b`)

var (
	hazardPattern = wordPattern(
		`weather alerts?`, `severe weather`, `(?:thunder|snow|hail|rain)?storms?`,
		`hurricanes?`, `tornado(?:es)?`, `blizzards?`, `flood\w*`, `heat advisor(?:y|ies)`,
		`gas leaks?`, `fire alarms?`, `evacuat\w*`,
	)
	// stormFixtures are building parts named after storms, not weather.
	stormFixtures = regexp.MustCompile(`\bstorm (?:drains?|doors?|windows?|sewers?|shutters?)\b`)

	socialEventPattern = wordPattern(
		`part(?:y|ies)`, `socials?`, `happy hours?`, `mixers?`, `invitations?`,
		`you're invited`, `you are invited`, `celebrat\w*`, `potlucks?`, `game nights?`,
	)
)

// wordPattern matches any alternative as a whole word. Hyphens count as word
// characters, so "third-party" does not match "party".
func wordPattern(alternatives ...string) *regexp.Regexp {
	return regexp.MustCompile(`(?:^|[^\w-])(?:` + strings.Join(alternatives, "|") + `)(?:[^\w-]|$)`)
}

// ---------------------------------------------------------------------------
// Predicate helpers
// ---------------------------------------------------------------------------

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

func subjectHas(phrases []string) func(Input) bool {
	return func(in Input) bool { return containsAny(in.Subject, phrases) }
}

func subjectOrBodyHas(phrases []string) func(Input) bool {
	return func(in Input) bool {
		return containsAny(in.Subject, phrases) || containsAny(in.Body, phrases)
	}
}

func isBareNotification(in Input) bool {
	return strings.Trim(in.Subject, " .:!") == "notification"
}

func keyMentioned(in Input) bool {
	return keyPattern.MatchString(in.Subject)
}

func hazardMentioned(in Input) bool {
	return hazardPattern.MatchString(stormFixtures.ReplaceAllString(in.Subject, " "))
}

func socialEventMentioned(in Input) bool {
	return socialEventPattern.MatchString(in.Subject)
}

// ---------------------------------------------------------------------------
// Rule chain
// ---------------------------------------------------------------------------

// DefaultRules returns the ordered rule chain. Order is significant:
// several keyword sets overlap and the first match wins.
func DefaultRules() []Rule {
	return []Rule{
		// 1. critical
		{Name: "outage", Match: subjectHas(outagePhrases),
			Category: domain.CategoryCritical, Subcategory: domain.SubcategoryServiceOutage},
		{Name: "hazard", Match: hazardMentioned,
			Category: domain.CategoryCritical, Subcategory: domain.SubcategoryWeatherAlert},

		// 2. package: pickup before arrival
		{Name: "package_pickup", Match: subjectHas(pickupPhrases),
			Category: domain.CategoryPackage, Subcategory: domain.SubcategoryPackagePickup},
		{Name: "package_arrival", Match: func(in Input) bool {
			return containsAny(in.Subject, arrivalPhrases) || strings.HasPrefix(in.Subject, "you have a")
		}, Category: domain.CategoryPackage, Subcategory: domain.SubcategoryPackageArrival},
		{Name: "excess_package", Match: subjectHas(excessPackagePhrases),
			Category: domain.CategoryPackage, Subcategory: domain.SubcategoryExcessPackage},

		// 3. security
		{Name: "key_out", Match: func(in Input) bool {
			return keyMentioned(in) && strings.Contains(in.Subject, "removed")
		}, Category: domain.CategorySecurity, Subcategory: domain.SubcategoryKeyOut},
		{Name: "key_returned", Match: func(in Input) bool {
			return keyMentioned(in) && strings.Contains(in.Subject, "returned")
		}, Category: domain.CategorySecurity, Subcategory: domain.SubcategoryKeyReturned},
		{Name: "key_access", Match: keyMentioned,
			Category: domain.CategorySecurity, Subcategory: domain.SubcategoryKeyAccess},

		// 4. social
		{Name: "resident_post", Match: subjectHas(residentPostPhrases),
			Category: domain.CategorySocial, Subcategory: domain.SubcategoryResidentPost},
		{Name: "lost_found", Match: subjectHas(lostFoundPhrases),
			Category: domain.CategorySocial, Subcategory: domain.SubcategoryLostFound},
		{Name: "staff_notice", Match: subjectHas(staffPhrases),
			Category: domain.CategorySocial, Subcategory: domain.SubcategoryStaffNotice},
		{Name: "social_event", Match: socialEventMentioned,
			Category: domain.CategorySocial, Subcategory: domain.SubcategorySocialEvent},

		// 5. important
		{Name: "service_restored", Match: subjectHas(restoredPhrases),
			Category: domain.CategoryImportant, Subcategory: domain.SubcategoryServiceRestore},
		{Name: "hoa_meeting", Match: subjectHas(hoaPhrases),
			Category: domain.CategoryImportant, Subcategory: domain.SubcategoryHOAMeeting},
		{Name: "financial", Match: subjectHas(financialPhrases),
			Category: domain.CategoryImportant, Subcategory: domain.SubcategoryFinancial},
		{Name: "notice", Match: subjectHas(noticePhrases),
			Category: domain.CategoryImportant, Subcategory: domain.SubcategoryNotice},
		{Name: "hvac", Match: subjectHas(hvacPhrases),
			Category: domain.CategoryImportant, Subcategory: domain.SubcategoryHVAC},
		{Name: "elevator_update", Match: subjectHas(elevatorPhrases),
			Category: domain.CategoryImportant, Subcategory: domain.SubcategoryElevator},

		// 6. maintenance
		{Name: "maintenance_request", Match: subjectOrBodyHas(maintenanceRequestPhrases),
			Category: domain.CategoryMaintenance, Subcategory: domain.SubcategoryMaintenanceReq},
		{Name: "construction", Match: subjectHas(constructionPhrases),
			Category: domain.CategoryMaintenance, Subcategory: domain.SubcategoryConstruction},

		// 7. routine
		{Name: "amenity", Match: subjectHas(amenityPhrases),
			Category: domain.CategoryRoutine, Subcategory: domain.SubcategoryAmenity},
		{Name: "building_update", Match: subjectHas(buildingUpdatePhrases),
			Category: domain.CategoryRoutine, Subcategory: domain.SubcategoryBuildingUpdate},

		// 8. noise
		{Name: "dry_cleaning", Match: subjectHas(dryCleaningPhrases),
			Category: domain.CategoryNoise, Subcategory: domain.SubcategoryDryCleaning},
		{Name: "notification_package", Match: func(in Input) bool {
			return isBareNotification(in) && containsAny(in.Body, notificationPackageHints)
		}, Category: domain.CategoryPackage, Subcategory: domain.SubcategoryPackageArrival},
		{Name: "notification", Match: isBareNotification,
			Category: domain.CategoryNoise, Subcategory: domain.SubcategoryNotification},
	}
}

// fallback is applied when no rule matches.
var fallback = Rule{
	Name:        "fallback",
	Category:    domain.CategoryRoutine,
	Subcategory: domain.SubcategoryOther,
}
