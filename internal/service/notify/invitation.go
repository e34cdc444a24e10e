package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/memoir-backend/internal/domain"
)

// InvitationKind distinguishes the first send from a reminder.
type InvitationKind int

const (
	InvitationSent InvitationKind = iota
	InvitationReminder
)

func (k InvitationKind) String() string {
	if k == InvitationReminder {
		return "reminder"
	}
	return "sent"
}

// Invitation is the recipient-facing content of a SENT or REMINDED event.
type Invitation struct {
	Kind         InvitationKind
	QuestionText string
	SenderName   string
	LinkToken    string
}

// CheckContact verifies that ch is a recipient channel and the person has a
// contact for it.
func CheckContact(p *domain.Person, ch domain.Channel) error {
	if !ch.IsContactChannel() {
		return domain.NewValidationError("channel", "must be sms or email")
	}
	if p.ContactFor(ch) == "" {
		field := "email"
		if ch == domain.ChannelSMS {
			field = "phone"
		}
		return domain.NewValidationError("channel", fmt.Sprintf("person has no %s on file", field))
	}
	return nil
}

// SendInvitation delivers inv to the person over exactly one channel. It never
// retries; provider failures come back as *domain.ProviderError.
func (d *Dispatcher) SendInvitation(ctx context.Context, ch domain.Channel, p *domain.Person, inv Invitation) error {
	if err := CheckContact(p, ch); err != nil {
		return err
	}

	to := p.ContactFor(ch)
	link := d.RecordLink(inv.LinkToken)

	var err error
	switch ch {
	case domain.ChannelSMS:
		err = d.sms.Send(ctx, domain.SMS{To: to, Body: renderInvitationSMS(inv, link)})
	case domain.ChannelEmail:
		subject, text := renderInvitationEmail(inv, p.Name, link)
		err = d.email.Send(ctx, domain.Email{To: to, Subject: subject, Text: text})
	}
	if err != nil {
		d.log.WarnContext(ctx, "invitation delivery failed",
			slog.String("channel", ch.String()),
			slog.String("kind", inv.Kind.String()),
			slog.String("person_id", p.ID.String()),
			slog.String("error", err.Error()),
		)
		return &domain.ProviderError{Channel: ch, Err: err}
	}

	d.log.InfoContext(ctx, "invitation delivered",
		slog.String("channel", ch.String()),
		slog.String("kind", inv.Kind.String()),
		slog.String("person_id", p.ID.String()),
	)
	return nil
}
