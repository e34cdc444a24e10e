package assignment

import (
	"time"

	"github.com/heartmarshall/memoir-backend/internal/config"
	"github.com/heartmarshall/memoir-backend/internal/domain"
)

// Policy holds the reminder eligibility limits. A zero MaxPerAssignment or
// DailyCap disables that cap.
type Policy struct {
	Cooldown         time.Duration
	MaxPerAssignment int
	DailyCap         int
}

// PolicyFromConfig builds the default and strict-cadence policies.
func PolicyFromConfig(cfg config.ReminderConfig) (basic, strict Policy) {
	basic = Policy{
		Cooldown:         cfg.Cooldown,
		MaxPerAssignment: cfg.MaxPerAssignment,
		DailyCap:         cfg.DailyCap,
	}
	strict = basic
	strict.Cooldown = cfg.StrictCooldown
	return basic, strict
}

// Decision is the outcome of a reminder eligibility check.
type Decision struct {
	Allowed           bool
	Reason            domain.ReminderReason
	CooldownRemaining time.Duration
}

// Err returns nil for an allowed decision and a *domain.ReminderIneligibleError otherwise.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return &domain.ReminderIneligibleError{Reason: d.Reason, CooldownRemaining: d.CooldownRemaining}
}

// CanRemind evaluates whether a reminder may be sent for a at time now, given
// the number of reminders the owner already sent today.
//
// Checks run in a fixed order: answered, not sent, per-assignment cap,
// cooldown, daily cap. The cooldown is measured from the last reminder, or
// from the send time when the assignment was never reminded.
func (p Policy) CanRemind(a *domain.Assignment, now time.Time, dailyCount int) Decision {
	if a.IsAnswered() {
		return Decision{Reason: domain.ReminderReasonAlreadyAnswered}
	}

	// A pending assignment has no invitation to remind about.
	if a.Status == domain.AssignmentStatusPending {
		return Decision{Reason: domain.ReminderReasonNotSent}
	}

	if p.MaxPerAssignment > 0 && a.ReminderCount >= p.MaxPerAssignment {
		return Decision{Reason: domain.ReminderReasonMaxRemindersReached}
	}

	if anchor := a.ReminderAnchor(); anchor != nil {
		if elapsed := now.Sub(*anchor); elapsed < p.Cooldown {
			return Decision{
				Reason:            domain.ReminderReasonCooldownActive,
				CooldownRemaining: p.Cooldown - elapsed,
			}
		}
	}

	if p.DailyCap > 0 && dailyCount >= p.DailyCap {
		return Decision{Reason: domain.ReminderReasonDailyCapReached}
	}

	return Decision{Allowed: true}
}

// DayStart returns the start of the calendar day containing now in loc.
func DayStart(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	y, m, d := local.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
