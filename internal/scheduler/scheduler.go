package scheduler

import (
	"context"
	"sync"
	"time"

	"cgtsc/website/internal/logger"
)

// Refresher is the part of the notice service the scheduler drives.
type Refresher interface {
	Refresh(ctx context.Context) error
}

type Scheduler struct {
	refresher  Refresher
	interval   time.Duration
	stopCh     chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
	cancelFunc context.CancelFunc // cancels the in-flight refresh
	mu         sync.Mutex         // protects cancelFunc
}

func New(refresher Refresher, interval time.Duration) *Scheduler {
	return &Scheduler{
		refresher: refresher,
		interval:  interval,
		stopCh:    make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("scheduler started", "module", "scheduler", "action", "refresh", "resource", "notice", "result", "ok", "interval_ms", s.interval.Milliseconds())
}

// Stop cancels a refresh in progress and waits for the loop to exit.
// Calling it more than once is harmless.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		if s.cancelFunc != nil {
			s.cancelFunc()
		}
		s.mu.Unlock()

		close(s.stopCh)
		s.wg.Wait()
		logger.Info("scheduler stopped", "module", "scheduler", "action", "refresh", "resource", "notice", "result", "ok")
	})
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	s.refresh()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.refresh()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)

	s.mu.Lock()
	select {
	case <-s.stopCh:
		s.mu.Unlock()
		cancel()
		return
	default:
	}
	s.cancelFunc = cancel
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		s.cancelFunc = nil
		s.mu.Unlock()
	}()

	logger.Debug("scheduled notice refresh started", "module", "scheduler", "action", "refresh", "resource", "notice", "result", "ok")
	if err := s.refresher.Refresh(ctx); err != nil {
		if ctx.Err() != nil {
			logger.Warn("scheduled refresh cancelled", "module", "scheduler", "action", "refresh", "resource", "notice", "result", "cancelled")
			return
		}
		logger.Error("scheduled refresh failed", "module", "scheduler", "action", "refresh", "resource", "notice", "result", "failed", "error", err)
		return
	}
	logger.Debug("scheduled notice refresh completed", "module", "scheduler", "action", "refresh", "resource", "notice", "result", "ok")
}
