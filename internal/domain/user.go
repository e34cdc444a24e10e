package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user (a journal owner).
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DeviceToken is a push token registered by one of the user's devices.
type DeviceToken struct {
	Token     string
	UserID    uuid.UUID
	Platform  DevicePlatform
	CreatedAt time.Time
}

// Person is an owner-scoped contact record that can receive assignments.
// LinkedUserID is set when the person is the owner themself (self journaling).
type Person struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Name         string
	Email        *string
	Phone        *string
	LinkedUserID *uuid.UUID
	CreatedAt    time.Time
}

// ContactFor returns the contact value for the given channel, or "" if absent.
func (p *Person) ContactFor(ch Channel) string {
	switch ch {
	case ChannelSMS:
		if p.Phone != nil {
			return *p.Phone
		}
	case ChannelEmail:
		if p.Email != nil {
			return *p.Email
		}
	}
	return ""
}
