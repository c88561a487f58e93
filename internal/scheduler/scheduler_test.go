package scheduler_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"cgtsc/website/internal/scheduler"

	"github.com/stretchr/testify/require"
)

type countingRefresher struct {
	calls atomic.Int32
	err   error
}

func (r *countingRefresher) Refresh(context.Context) error {
	r.calls.Add(1)
	return r.err
}

type blockingRefresher struct {
	started chan struct{}
	done    chan error
}

func (r *blockingRefresher) Refresh(ctx context.Context) error {
	close(r.started)
	<-ctx.Done()
	r.done <- ctx.Err()
	return ctx.Err()
}

func TestScheduler_RefreshesImmediatelyAndOnInterval(t *testing.T) {
	r := &countingRefresher{}
	s := scheduler.New(r, 20*time.Millisecond)
	s.Start()
	defer s.Stop()

	require.Eventually(t, func() bool { return r.calls.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
}

func TestScheduler_KeepsRunningAfterFailure(t *testing.T) {
	r := &countingRefresher{err: errors.New("upstream down")}
	s := scheduler.New(r, 10*time.Millisecond)
	s.Start()
	defer s.Stop()

	require.Eventually(t, func() bool { return r.calls.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)
}

func TestScheduler_StopCancelsInFlightRefresh(t *testing.T) {
	r := &blockingRefresher{started: make(chan struct{}), done: make(chan error, 1)}
	s := scheduler.New(r, time.Hour)
	s.Start()

	select {
	case <-r.started:
	case <-time.After(2 * time.Second):
		t.Fatal("refresh did not start")
	}

	s.Stop()
	require.ErrorIs(t, <-r.done, context.Canceled)

	s.Stop()
}
