package usecase

import (
	"context"
	"log"
	"sync/atomic"
	"time"
)

const DefaultRefreshLatency = time.Second

type orderLoader interface {
	Load(ctx context.Context) error
}

type IRefreshController interface {
	Refresh(ctx context.Context) error
	RefreshAsync(ctx context.Context) <-chan error
	Refreshing() bool
}

var _ IRefreshController = (*RefreshController)(nil)

// RefreshController reloads the order store after a simulated network delay and
// exposes whether a refresh is in flight.
//
// Overlapping refreshes are not serialized; the flag reflects the last write.
type RefreshController struct {
	orders     orderLoader
	latency    time.Duration
	refreshing atomic.Bool
}

func NewRefreshController(orders orderLoader, latency time.Duration) *RefreshController {
	if latency < 0 {
		latency = DefaultRefreshLatency
	}
	return &RefreshController{orders: orders, latency: latency}
}

func (c *RefreshController) Refreshing() bool {
	return c.refreshing.Load()
}

// Refresh waits for the configured latency and reloads the orders. Load
// failures are logged and swallowed. A cancelled ctx skips the reload and
// returns ctx.Err().
func (c *RefreshController) Refresh(ctx context.Context) error {
	c.refreshing.Store(true)
	defer c.refreshing.Store(false)

	timer := time.NewTimer(c.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		log.Printf("[order][refresh] cancelled err=%v", ctx.Err())
		return ctx.Err()
	case <-timer.C:
	}

	if err := c.orders.Load(ctx); err != nil {
		log.Printf("[order][refresh] load failed err=%v", err)
	}
	return nil
}

// RefreshAsync runs Refresh in the background. The returned channel receives
// the result once and is then closed.
func (c *RefreshController) RefreshAsync(ctx context.Context) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- c.Refresh(ctx)
	}()
	return done
}
