package workers

import (
	"context"
	"log/slog"
	"time"
)

// TickFunc re-fetches one snapshot and re-renders its screen section.
type TickFunc func(ctx context.Context) error

// Poller runs a TickFunc on a fixed interval for the lifetime of its
// context. A failed tick is logged and skipped; there are no retries.
// Two pollers over the same page are independent: the last snapshot
// received wins for its own section, with no cross-poller ordering.
type Poller struct {
	name     string
	interval time.Duration
	tick     TickFunc
	log      *slog.Logger
}

func NewPoller(name string, interval time.Duration, tick TickFunc, log *slog.Logger) *Poller {
	return &Poller{name: name, interval: interval, tick: tick, log: log}
}

func (p *Poller) Run(ctx context.Context) error {
	p.log.Debug("Starting poller", "name", p.name, "interval", p.interval)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.log.Debug("Stopping poller", "name", p.name)
			return ctx.Err()
		case <-ticker.C:
			if err := p.tick(ctx); err != nil {
				p.log.Warn("Poll tick failed", "name", p.name, "error", err)
			}
		}
	}
}
