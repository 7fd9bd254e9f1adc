package machine

import (
	"context"
	"time"

	"auctionhouse/utils"
)

// Sweeper runs the expiry sweep on a fixed interval until its context is
// cancelled. Running more than one sweeper is safe: the transition is a
// compare-and-set, so a second sweep finds nothing to do.
type Sweeper struct {
	machine  *AuctionMachine
	interval time.Duration
}

// NewSweeper creates a sweeper over the given machine.
func NewSweeper(m *AuctionMachine, interval time.Duration) *Sweeper {
	return &Sweeper{machine: m, interval: interval}
}

// Run blocks until ctx is cancelled, sweeping once per interval.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			n, err := s.machine.ExpireDue()
			if err != nil {
				utils.Error("sweeper: expiry sweep failed", map[string]any{"error": err.Error()})
				continue
			}
			if n > 0 {
				utils.Info("sweeper: expired auctions", map[string]any{"count": n})
			}
		case <-ctx.Done():
			return
		}
	}
}
