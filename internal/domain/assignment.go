package domain

import (
	"time"

	"github.com/google/uuid"
)

// Assignment binds one question to one person and carries the link token
// that lets the person answer anonymously.
type Assignment struct {
	ID             uuid.UUID
	QuestionID     uuid.UUID
	PersonID       uuid.UUID
	LinkToken      string
	Status         AssignmentStatus
	SentAt         *time.Time
	ViewedAt       *time.Time
	AnsweredAt     *time.Time
	ReminderCount  int
	LastReminderAt *time.Time
	CreatedAt      time.Time
}

// IsAnswered reports whether the assignment has a recording.
func (a *Assignment) IsAnswered() bool {
	return a.Status == AssignmentStatusAnswered
}

// ReminderAnchor is the instant the reminder cooldown is measured from:
// the last reminder, or the initial send when no reminder was ever sent.
func (a *Assignment) ReminderAnchor() *time.Time {
	if a.LastReminderAt != nil {
		return a.LastReminderAt
	}
	return a.SentAt
}

// AssignmentContext is an assignment joined with the rows needed to
// authorize and deliver it.
type AssignmentContext struct {
	Assignment Assignment
	Question   Question
	Person     Person
	JournalID  uuid.UUID
	OwnerID    uuid.UUID
	OwnerName  string
	OwnerEmail string
}

// ReminderLogEntry records one successfully dispatched reminder; the
// per-owner daily cap is computed from these rows.
type ReminderLogEntry struct {
	ID           uuid.UUID
	AssignmentID uuid.UUID
	OwnerID      uuid.UUID
	Channel      Channel
	SentAt       time.Time
}
