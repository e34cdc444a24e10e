package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Reminder.validate(); err != nil {
		return fmt.Errorf("reminder: %w", err)
	}

	if err := c.Recording.validate(); err != nil {
		return fmt.Errorf("recording: %w", err)
	}

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if err := c.Delivery.validate(); err != nil {
		return fmt.Errorf("delivery: %w", err)
	}

	if err := c.Cleanup.validate(); err != nil {
		return fmt.Errorf("cleanup: %w", err)
	}

	return nil
}

func (r *ReminderConfig) validate() error {
	if r.Cooldown <= 0 {
		return fmt.Errorf("cooldown must be > 0 (got %v)", r.Cooldown)
	}
	if r.StrictCooldown < r.Cooldown {
		return fmt.Errorf("strict_cooldown must be >= cooldown (got %v < %v)", r.StrictCooldown, r.Cooldown)
	}
	if r.MaxPerAssignment < 0 {
		return fmt.Errorf("max_per_assignment must be >= 0 (got %d)", r.MaxPerAssignment)
	}
	if r.DailyCap < 0 {
		return fmt.Errorf("daily_cap must be >= 0 (got %d)", r.DailyCap)
	}

	loc, err := time.LoadLocation(r.DayTimezone)
	if err != nil {
		return fmt.Errorf("day_timezone: %w", err)
	}
	r.Location = loc

	return nil
}

func (r *RecordingConfig) validate() error {
	if r.MaxDurationSeconds <= 0 {
		return fmt.Errorf("max_duration_seconds must be > 0 (got %d)", r.MaxDurationSeconds)
	}
	if r.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be > 0 (got %d)", r.MaxUploadBytes)
	}
	if r.CommitTimeout <= 0 {
		return fmt.Errorf("commit_timeout must be > 0 (got %v)", r.CommitTimeout)
	}

	types := ParseList(r.AllowedContentTypesRaw)
	if len(types) == 0 {
		return fmt.Errorf("allowed_content_types must not be empty")
	}
	for i, t := range types {
		types[i] = strings.ToLower(t)
	}
	r.AllowedContentTypes = types

	return nil
}

func (s *StorageConfig) validate() error {
	switch s.Type {
	case "memory":
	case "filesystem":
		if s.FSRoot == "" {
			return fmt.Errorf("filesystem storage requires fs_root to be set")
		}
	case "s3":
		if s.S3Bucket == "" {
			return fmt.Errorf("s3 storage requires s3_bucket to be set")
		}
	default:
		return fmt.Errorf("unknown storage type: %q", s.Type)
	}
	return nil
}

func (d *DeliveryConfig) validate() error {
	if d.PublicBaseURL == "" {
		return fmt.Errorf("public_base_url is required")
	}
	if err := checkProvider("sms", d.SMSProvider, d.SMSEndpoint); err != nil {
		return err
	}
	if err := checkProvider("email", d.EmailProvider, d.EmailEndpoint); err != nil {
		return err
	}
	if err := checkProvider("push", d.PushProvider, d.PushEndpoint); err != nil {
		return err
	}
	return nil
}

// minReminderLogRetention keeps at least the current calendar day in any
// timezone, so purging never lowers today's reminder count.
const minReminderLogRetention = 48 * time.Hour

func (c *CleanupConfig) validate() error {
	if c.ReadNotificationRetention <= 0 {
		return fmt.Errorf("read_notification_retention must be > 0 (got %v)", c.ReadNotificationRetention)
	}
	if c.ReminderLogRetention < minReminderLogRetention {
		return fmt.Errorf("reminder_log_retention must be >= %v (got %v)", minReminderLogRetention, c.ReminderLogRetention)
	}
	return nil
}

func checkProvider(name, provider, endpoint string) error {
	switch provider {
	case "log":
		return nil
	case "http":
		if endpoint == "" {
			return fmt.Errorf("%s_endpoint is required for http provider", name)
		}
		return nil
	case "expo":
		if name != "push" {
			return fmt.Errorf("%s_provider %q is only valid for push", name, provider)
		}
		if endpoint == "" {
			return fmt.Errorf("push_endpoint is required for expo provider")
		}
		return nil
	default:
		return fmt.Errorf("unknown %s_provider: %q", name, provider)
	}
}

// ParseList splits a comma-separated string into trimmed, non-empty items.
// An empty string returns a nil slice.
func ParseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		items = append(items, p)
	}
	return items
}
