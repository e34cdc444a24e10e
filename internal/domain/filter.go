package domain

import "github.com/google/uuid"

// NotificationFilter contains filtering/pagination parameters for the
// in-app notification list.
type NotificationFilter struct {
	UnreadOnly bool
	Type       *NotificationType
	Limit      int
	Offset     int
}

// ProgressFilter narrows the assignment tallies of a journal overview.
type ProgressFilter struct {
	// PersonID restricts counts to one person's assignments.
	PersonID *uuid.UUID
}
