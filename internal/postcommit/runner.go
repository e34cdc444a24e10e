// Package postcommit runs side effects after a transaction has committed.
// Hooks run in the background, detached from the request context, and a
// failing hook never affects another hook or the committed state.
package postcommit

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Hook is a named side effect.
type Hook struct {
	Name string
	Run  func(ctx context.Context) error
}

// Runner executes hooks in background goroutines.
type Runner struct {
	log     *slog.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

// NewRunner creates a runner. Each hook gets at most timeout to finish.
func NewRunner(logger *slog.Logger, timeout time.Duration) *Runner {
	return &Runner{
		log:     logger.With("component", "postcommit"),
		timeout: timeout,
	}
}

// Go starts every hook in its own goroutine and returns immediately.
// The hooks inherit ctx values (request id, user id) but not its cancellation.
func (r *Runner) Go(ctx context.Context, hooks ...Hook) {
	base := context.WithoutCancel(ctx)
	for _, h := range hooks {
		r.wg.Add(1)
		go func(h Hook) {
			defer r.wg.Done()
			r.run(base, h)
		}(h)
	}
}

// RunNow executes the hooks synchronously, each isolated like Go.
func (r *Runner) RunNow(ctx context.Context, hooks ...Hook) {
	base := context.WithoutCancel(ctx)
	for _, h := range hooks {
		r.run(base, h)
	}
}

func (r *Runner) run(ctx context.Context, h Hook) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	defer func() {
		if rec := recover(); rec != nil {
			r.log.ErrorContext(ctx, "post-commit hook panicked",
				slog.String("hook", h.Name),
				slog.Any("panic", rec),
			)
		}
	}()

	start := time.Now()
	if err := h.Run(ctx); err != nil {
		r.log.WarnContext(ctx, "post-commit hook failed",
			slog.String("hook", h.Name),
			slog.String("error", err.Error()),
			slog.Duration("duration", time.Since(start)),
		)
		return
	}
	r.log.DebugContext(ctx, "post-commit hook done",
		slog.String("hook", h.Name),
		slog.Duration("duration", time.Since(start)),
	)
}

// Wait blocks until all started hooks finish or ctx is done.
func (r *Runner) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
