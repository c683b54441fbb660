package scheduler

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"campaign_syncer/internal/domain"
)

type countingDetector struct {
	calls    atomic.Int32
	deadline atomic.Bool
}

func (d *countingDetector) PollAll(ctx context.Context) []*domain.PollResult {
	d.calls.Add(1)
	if _, ok := ctx.Deadline(); ok {
		d.deadline.Store(true)
	}
	return []*domain.PollResult{{AccountID: "acct-1", Updated: 1, Errors: 1, ErrorMessages: []string{"boom"}}}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestScheduler_PollsImmediatelyAndOnTick(t *testing.T) {
	defer goleak.VerifyNone(t)

	detector := &countingDetector{}
	s := NewScheduler(detector, 10*time.Millisecond, time.Second, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.Start(ctx)
	}()

	require.Eventually(t, func() bool {
		return detector.calls.Load() >= 3
	}, 2*time.Second, 5*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
	assert.True(t, detector.deadline.Load())
}

func TestScheduler_StopsWhenContextAlreadyCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	detector := &countingDetector{}
	s := NewScheduler(detector, time.Hour, time.Second, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Start(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(1), detector.calls.Load())
}
