package app

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/memoir-backend/internal/adapter/provider/email"
	"github.com/heartmarshall/memoir-backend/internal/adapter/provider/push"
	"github.com/heartmarshall/memoir-backend/internal/adapter/provider/sms"
	"github.com/heartmarshall/memoir-backend/internal/config"
	"github.com/heartmarshall/memoir-backend/internal/domain"
)

type smsSender interface {
	Send(ctx context.Context, msg domain.SMS) error
}

type emailSender interface {
	Send(ctx context.Context, msg domain.Email) error
}

type pushSender interface {
	Send(ctx context.Context, msg domain.Push) error
}

// senders holds the outbound delivery adapters selected by DeliveryConfig.
type senders struct {
	sms   smsSender
	email emailSender
	push  pushSender
}

func newSenders(cfg config.DeliveryConfig, logger *slog.Logger) senders {
	var s senders

	switch cfg.SMSProvider {
	case "http":
		s.sms = sms.NewHTTPSender(cfg.SMSEndpoint, cfg.SMSAPIKey, cfg.SMSFrom, cfg.RequestTimeout, logger)
	default:
		s.sms = sms.NewLogSender(logger)
	}

	switch cfg.EmailProvider {
	case "http":
		s.email = email.NewHTTPSender(cfg.EmailEndpoint, cfg.EmailAPIKey, cfg.EmailFrom, cfg.RequestTimeout, logger)
	default:
		s.email = email.NewLogSender(logger)
	}

	switch cfg.PushProvider {
	case "expo", "http":
		s.push = push.NewExpoSender(cfg.PushEndpoint, cfg.PushAccessToken, cfg.RequestTimeout, logger)
	default:
		s.push = push.NewLogSender(logger)
	}

	logger.Info("delivery providers",
		slog.String("sms", cfg.SMSProvider),
		slog.String("email", cfg.EmailProvider),
		slog.String("push", cfg.PushProvider),
	)
	return s
}
