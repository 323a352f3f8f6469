package ticker

import (
	"context"
	"sync"
	"time"

	"auction-house/internal/repository"
	"auction-house/utils"
)

// Countdown drives the auction clocks. It calls AdvanceClock on the store
// once per interval until stopped, taking the same mutual exclusion path as
// every other store mutation.
type Countdown struct {
	interval time.Duration
	store    repository.AuctionStore

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a countdown driver. Intervals below one second still advance
// the clocks by one second per tick.
func New(store repository.AuctionStore, interval time.Duration) *Countdown {
	if interval <= 0 {
		interval = time.Second
	}
	return &Countdown{
		interval: interval,
		store:    store,
	}
}

// Start launches the ticking goroutine. Calling Start twice without an
// intervening Stop leaks the first goroutine; callers own the lifecycle.
func (c *Countdown) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	c.wg.Add(1)
	go c.run(ctx)

	utils.Info("countdown started", map[string]any{"interval": c.interval.String()})
}

// Stop halts ticking and waits for the goroutine to exit.
func (c *Countdown) Stop() {
	if c.cancel == nil {
		return
	}
	c.cancel()
	c.wg.Wait()
	utils.Info("countdown stopped", nil)
}

func (c *Countdown) run(ctx context.Context) {
	defer c.wg.Done()

	elapsed := int(c.interval / time.Second)
	if elapsed < 1 {
		elapsed = 1
	}

	tick := time.NewTicker(c.interval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			c.store.AdvanceClock(elapsed)
			utils.Debug("countdown tick", map[string]any{"elapsed_seconds": elapsed})
		}
	}
}
