package workers

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPoller_TicksUntilCancelled(t *testing.T) {
	req := require.New(t)

	var ticks atomic.Int32
	poller := NewPoller("ticker", 10*time.Millisecond, func(ctx context.Context) error {
		ticks.Add(1)
		return nil
	}, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- poller.Run(ctx) }()

	require.Eventually(t, func() bool {
		return ticks.Load() >= 3
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		req.ErrorIs(err, context.Canceled)
	case <-time.After(time.Second):
		req.Fail("poller did not stop on cancel")
	}
}

func TestPoller_FailedTickDoesNotStopTheLoop(t *testing.T) {
	var ticks atomic.Int32
	poller := NewPoller("flaky", 10*time.Millisecond, func(ctx context.Context) error {
		ticks.Add(1)
		return fmt.Errorf("tick %d failed", ticks.Load())
	}, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = poller.Run(ctx) }()

	require.Eventually(t, func() bool {
		return ticks.Load() >= 3
	}, time.Second, 5*time.Millisecond)
}
