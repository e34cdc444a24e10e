package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/memoir-backend/internal/domain"
	"github.com/heartmarshall/memoir-backend/internal/postcommit"
)

// AnsweredEvent describes a freshly stored answer, addressed to the owner.
type AnsweredEvent struct {
	OwnerID      uuid.UUID
	OwnerEmail   string
	PersonName   string
	QuestionText string
	AssignmentID uuid.UUID
	RecordingID  uuid.UUID
	At           time.Time
}

// ViewedEvent describes the first open of a recording link.
type ViewedEvent struct {
	OwnerID      uuid.UUID
	PersonName   string
	QuestionText string
	AssignmentID uuid.UUID
	At           time.Time
}

// RecordAnswered writes the in-app notification for ev. It must run in the
// same transaction as the answered transition. A replay with the same
// recording is a no-op.
func (d *Dispatcher) RecordAnswered(ctx context.Context, ev AnsweredEvent) error {
	title, body := renderAnswered(ev)
	_, err := d.notifications.Insert(ctx, &domain.Notification{
		ID:           uuid.New(),
		RecipientID:  ev.OwnerID,
		Type:         domain.NotificationTypeAnswered,
		AssignmentID: &ev.AssignmentID,
		RecordingID:  &ev.RecordingID,
		Title:        title,
		Body:         body,
		DedupeKey:    ev.RecordingID.String(),
		CreatedAt:    ev.At,
	})
	if err != nil {
		return fmt.Errorf("insert answered notification: %w", err)
	}
	return nil
}

// RecordViewed writes the in-app notification for a first view. Only one is
// kept per assignment.
func (d *Dispatcher) RecordViewed(ctx context.Context, ev ViewedEvent) error {
	title, body := renderViewed(ev)
	_, err := d.notifications.Insert(ctx, &domain.Notification{
		ID:           uuid.New(),
		RecipientID:  ev.OwnerID,
		Type:         domain.NotificationTypeViewed,
		AssignmentID: &ev.AssignmentID,
		Title:        title,
		Body:         body,
		DedupeKey:    ev.AssignmentID.String(),
		CreatedAt:    ev.At,
	})
	if err != nil {
		return fmt.Errorf("insert viewed notification: %w", err)
	}
	return nil
}

// AnsweredHooks returns the best-effort push and email deliveries for ev.
// They are meant to run after the answering transaction commits.
func (d *Dispatcher) AnsweredHooks(ev AnsweredEvent) []postcommit.Hook {
	return []postcommit.Hook{
		{Name: "answered.push", Run: func(ctx context.Context) error { return d.pushAnswered(ctx, ev) }},
		{Name: "answered.email", Run: func(ctx context.Context) error { return d.emailAnswered(ctx, ev) }},
	}
}

func (d *Dispatcher) emailAnswered(ctx context.Context, ev AnsweredEvent) error {
	if ev.OwnerEmail == "" {
		return nil
	}
	subject, text := renderAnsweredEmail(ev)
	if err := d.email.Send(ctx, domain.Email{To: ev.OwnerEmail, Subject: subject, Text: text}); err != nil {
		return &domain.ProviderError{Channel: domain.ChannelEmail, Err: err}
	}
	return nil
}

// pushAnswered sends to every registered device of the owner. Devices the
// provider reports as unregistered are removed; other failures are returned
// joined after all tokens were tried.
func (d *Dispatcher) pushAnswered(ctx context.Context, ev AnsweredEvent) error {
	tokens, err := d.devices.ListDeviceTokens(ctx, ev.OwnerID)
	if err != nil {
		return fmt.Errorf("list device tokens: %w", err)
	}
	if len(tokens) == 0 {
		return nil
	}

	title, body := renderAnswered(ev)
	data := map[string]string{
		"type":          string(domain.NotificationTypeAnswered),
		"assignment_id": ev.AssignmentID.String(),
		"recording_id":  ev.RecordingID.String(),
	}

	var (
		mu      sync.Mutex
		invalid []string
		errs    []error
	)

	var g errgroup.Group
	g.SetLimit(maxPushFanout)
	for _, t := range tokens {
		g.Go(func() error {
			err := d.push.Send(ctx, domain.Push{Token: t.Token, Title: title, Body: body, Data: data})
			if err == nil {
				return nil
			}
			mu.Lock()
			defer mu.Unlock()
			if errors.Is(err, domain.ErrInvalidDeviceToken) {
				invalid = append(invalid, t.Token)
				return nil
			}
			errs = append(errs, err)
			return nil
		})
	}
	_ = g.Wait()

	if len(invalid) > 0 {
		removed, err := d.devices.DeleteDeviceTokens(ctx, invalid)
		if err != nil {
			errs = append(errs, fmt.Errorf("prune device tokens: %w", err))
		} else {
			d.log.InfoContext(ctx, "pruned invalid device tokens",
				slog.String("user_id", ev.OwnerID.String()),
				slog.Int("count", removed),
			)
		}
	}

	if len(errs) > 0 {
		return &domain.ProviderError{Channel: domain.ChannelPush, Err: errors.Join(errs...)}
	}
	return nil
}
