package workers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/securevault/securevault/internal/logger"
	"github.com/securevault/securevault/internal/notify"
	"github.com/securevault/securevault/internal/service"
	"github.com/securevault/securevault/models"
)

const defaultBreachCheckInterval = 30 * time.Minute

// BreachWorker periodically rescans the vault against the breach corpus
// while a user is signed in and fully set up.
type BreachWorker struct {
	auth     service.AuthSessionService
	breach   service.BreachService
	notifier notify.Notifier
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewBreachWorker(auth service.AuthSessionService, breach service.BreachService, notifier notify.Notifier, interval time.Duration, log *logger.Logger) *BreachWorker {
	if interval <= 0 {
		interval = defaultBreachCheckInterval
	}
	return &BreachWorker{
		auth:     auth,
		breach:   breach,
		notifier: notifier,
		interval: interval,
		logger:   log,
	}
}

// Run launches the background scan loop. Any previously running loop is
// stopped before the new one begins.
func (w *BreachWorker) Run(ctx context.Context) {
	w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	w.mu.Lock()
	w.cancel = cancel
	w.done = done
	w.mu.Unlock()

	go func() {
		defer close(done)

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				w.scan(ctx)
			}
		}
	}()
}

// Stop signals the background goroutine to exit and blocks until it has
// fully terminated.
func (w *BreachWorker) Stop() {
	w.mu.Lock()
	cancel, done := w.cancel, w.done
	w.cancel, w.done = nil, nil
	w.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (w *BreachWorker) scan(ctx context.Context) {
	if w.auth.State() != models.StateActive {
		return
	}

	compromised, err := w.breach.CheckVault(ctx)
	if err != nil {
		w.logger.Warn().
			Str("func", "BreachWorker.scan").
			Err(err).
			Msg("breach scan failed")
		return
	}

	if compromised > 0 {
		w.notifier.Error(fmt.Sprintf("%d stored passwords appear in known breaches", compromised))
	}
}
