// Command cleanup purges read notifications and reminder log rows older than
// the configured retention periods. It is intended to be invoked by an
// external cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/memoir-backend/internal/adapter/postgres"
	"github.com/heartmarshall/memoir-backend/internal/adapter/postgres/notification"
	"github.com/heartmarshall/memoir-backend/internal/adapter/postgres/reminderlog"
	"github.com/heartmarshall/memoir-backend/internal/app"
	"github.com/heartmarshall/memoir-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	now := time.Now().UTC()

	readCutoff := now.Add(-cfg.Cleanup.ReadNotificationRetention)
	deleted, err := notification.New(pool).DeleteReadOlderThan(ctx, readCutoff)
	if err != nil {
		logger.Error("purge read notifications failed",
			slog.String("error", err.Error()),
			slog.Time("cutoff", readCutoff),
		)
		os.Exit(1)
	}
	logger.Info("read notifications purged",
		slog.Int64("deleted", deleted),
		slog.Time("cutoff", readCutoff),
	)

	// The reminder log only feeds the daily cap, so anything older than a
	// day is history; the retention keeps it around for support queries.
	logCutoff := now.Add(-cfg.Cleanup.ReminderLogRetention)
	purged, err := reminderlog.New(pool).PurgeOlderThan(ctx, logCutoff)
	if err != nil {
		logger.Error("purge reminder log failed",
			slog.String("error", err.Error()),
			slog.Time("cutoff", logCutoff),
		)
		os.Exit(1)
	}
	logger.Info("reminder log purged",
		slog.Int64("deleted", purged),
		slog.Time("cutoff", logCutoff),
	)
}
