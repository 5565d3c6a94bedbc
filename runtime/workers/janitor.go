package workers

import (
	"context"
	"log/slog"
	"time"

	"chat-gateway/contract"
)

// Sweeper is the part of the login code broker the janitor needs.
type Sweeper interface {
	Sweep() int
	Outstanding() int
}

// JanitorWorker periodically reclaims expired login codes. Expiry itself is
// enforced lazily on resolve/consume; the sweep only bounds memory.
type JanitorWorker struct {
	log      *slog.Logger
	sweeper  Sweeper
	interval time.Duration
}

var _ contract.Worker = (*JanitorWorker)(nil)

func NewJanitorWorker(log *slog.Logger, sweeper Sweeper, interval time.Duration) *JanitorWorker {
	return &JanitorWorker{log: log, sweeper: sweeper, interval: interval}
}

func (w *JanitorWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping janitor")
			return ctx.Err()
		case <-ticker.C:
			removed := w.sweeper.Sweep()
			if removed > 0 {
				w.log.Debug("swept expired login codes",
					"removed", removed, "outstanding", w.sweeper.Outstanding())
			}
		}
	}
}
