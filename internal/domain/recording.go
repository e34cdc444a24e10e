package domain

import (
	"time"

	"github.com/google/uuid"
)

// Recording is the audio answer to an assignment. An assignment has at most one.
type Recording struct {
	ID              uuid.UUID
	AssignmentID    uuid.UUID
	PersonID        uuid.UUID
	BlobKey         string
	ContentType     string
	SizeBytes       int64
	DurationSeconds *int
	IdempotencyKey  *string
	RecordedAt      time.Time
}

// Notification is an in-app notification addressed to a user.
// DedupeKey together with (RecipientID, Type) makes the record at-most-once.
type Notification struct {
	ID           uuid.UUID
	RecipientID  uuid.UUID
	Type         NotificationType
	AssignmentID *uuid.UUID
	RecordingID  *uuid.UUID
	Title        string
	Body         string
	DedupeKey    string
	ReadAt       *time.Time
	CreatedAt    time.Time
}

// IsRead reports whether the recipient has read the notification.
func (n *Notification) IsRead() bool {
	return n.ReadAt != nil
}
