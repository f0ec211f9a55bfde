package config

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Sync.validate(); err != nil {
		return fmt.Errorf("sync: %w", err)
	}

	if c.Redis.Enabled() && c.Sync.LockTTL < c.Sync.Timeout {
		return fmt.Errorf("sync: lock_ttl must be >= timeout when redis is enabled (got %v < %v)", c.Sync.LockTTL, c.Sync.Timeout)
	}

	if err := c.Units.validate(); err != nil {
		return fmt.Errorf("units: %w", err)
	}

	if c.Notes.MaxLength <= 0 {
		return fmt.Errorf("notes: max_length must be > 0 (got %d)", c.Notes.MaxLength)
	}

	if err := c.Dashboard.validate(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}

	if c.Server.SyncTriggerPerMinute <= 0 {
		return fmt.Errorf("server: sync_trigger_per_minute must be > 0 (got %d)", c.Server.SyncTriggerPerMinute)
	}

	return nil
}

// ParseSchedule parses a cron spec in the form accepted by the scheduler:
// five standard fields or a descriptor such as "@every 15m".
func ParseSchedule(spec string) (cron.Schedule, error) {
	return cron.ParseStandard(spec)
}

func (s *SyncConfig) validate() error {
	if _, err := ParseSchedule(s.Schedule); err != nil {
		return fmt.Errorf("schedule %q: %w", s.Schedule, err)
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", s.Timeout)
	}
	if s.ClassificationCacheTTL < 0 {
		return fmt.Errorf("classification_cache_ttl must be >= 0 (got %v)", s.ClassificationCacheTTL)
	}

	positive := []struct {
		name  string
		value int
	}{
		{"bill_due_soon_days", s.BillDueSoonDays},
		{"bill_sent_grace_days", s.BillSentGraceDays},
		{"ticket_due_soon_days", s.TicketDueSoonDays},
		{"message_window_days", s.MessageWindowDays},
		{"package_window_days", s.PackageWindowDays},
		{"message_fetch_limit", s.MessageFetchLimit},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%s must be > 0 (got %d)", p.name, p.value)
		}
	}

	if strings.TrimSpace(s.MessageSource) == "" {
		return fmt.Errorf("message_source is required")
	}
	return nil
}

func (u *UnitsConfig) validate() error {
	primary := strings.TrimSpace(u.Primary)
	secondary := strings.TrimSpace(u.Secondary)
	if primary == "" || secondary == "" {
		return fmt.Errorf("primary and secondary are required")
	}
	if strings.EqualFold(primary, secondary) {
		return fmt.Errorf("primary and secondary must differ (both %q)", primary)
	}
	return nil
}

func (d *DashboardConfig) validate() error {
	if d.UrgentDays < 0 {
		return fmt.Errorf("urgent_days must be >= 0 (got %d)", d.UrgentDays)
	}
	if d.UpcomingDays < d.UrgentDays {
		return fmt.Errorf("upcoming_days must be >= urgent_days (got %d < %d)", d.UpcomingDays, d.UrgentDays)
	}
	return nil
}
