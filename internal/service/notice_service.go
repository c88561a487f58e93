package service

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"cgtsc/website/internal/logger"
	"cgtsc/website/internal/model"
	"cgtsc/website/internal/repository"
	"cgtsc/website/internal/source"
)

type NoticeService interface {
	// List returns the stored notices. When nothing is stored it refreshes
	// once and falls back to SampleNotices if that fails. The only error is
	// a cancelled context.
	List(ctx context.Context) ([]model.Notice, error)
	// Refresh fetches the source and replaces the stored snapshot. On failure
	// the previous snapshot is kept.
	Refresh(ctx context.Context) error
}

type noticeService struct {
	notices    repository.NoticeRepository
	source     source.Source
	normalizer *source.Normalizer
	limit      int
	group      singleflight.Group
	now        func() time.Time
}

func NewNoticeService(notices repository.NoticeRepository, src source.Source, limit int) NoticeService {
	return &noticeService{
		notices:    notices,
		source:     src,
		normalizer: source.NewNormalizer(),
		limit:      limit,
		now:        time.Now,
	}
}

func (s *noticeService) List(ctx context.Context) ([]model.Notice, error) {
	snap, err := s.notices.LatestSnapshot(ctx)
	if err != nil {
		logger.Error("notice snapshot read failed", "module", "service", "action", "list", "resource", "notice", "result", "failed", "error", err)
	}
	if snap != nil {
		return snap.Notices, nil
	}

	if err := s.Refresh(ctx); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		logger.Warn("serving sample notices", "module", "service", "action", "list", "resource", "notice", "result", "fallback", "error", err)
		return SampleNotices(), nil
	}

	snap, err = s.notices.LatestSnapshot(ctx)
	if err != nil || snap == nil {
		logger.Error("notice snapshot missing after refresh", "module", "service", "action", "list", "resource", "notice", "result", "failed", "error", err)
		return SampleNotices(), nil
	}
	return snap.Notices, nil
}

// RefreshTimeout bounds a shared refresh. The refresh outlives the caller
// that started it so other callers waiting on it are not cancelled.
const RefreshTimeout = 2 * time.Minute

func (s *noticeService) Refresh(ctx context.Context) error {
	ch := s.group.DoChan("refresh", func() (any, error) {
		refreshCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), RefreshTimeout)
		defer cancel()
		return nil, s.refresh(refreshCtx)
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		return ctx.Err()
	}
	err, shared := res.Err, res.Shared
	if shared {
		logger.Debug("notice refresh shared", "module", "service", "action", "refresh", "resource", "notice", "result", "ok")
	}
	return err
}

func (s *noticeService) refresh(ctx context.Context) error {
	start := s.now()
	items, err := s.source.Fetch(ctx)
	if err != nil {
		logger.Error("notice source fetch failed", "module", "service", "action", "refresh", "resource", "notice", "result", "failed", "source", s.source.Name(), "error", err)
		return &SourceFetchError{Source: s.source.Name(), Err: err}
	}

	notices, rejected := s.normalizer.Normalize(items, s.limit)
	for _, r := range rejected {
		logger.Warn("notice row skipped", "module", "service", "action", "refresh", "resource", "notice", "result", "skipped", "source", s.source.Name(), "row", r.Index, "title", r.Title, "reason", r.Reason)
	}

	snap := model.NoticeSnapshot{
		Notices:   notices,
		Source:    s.source.Name(),
		FetchedAt: s.now().UTC(),
	}
	if err := s.notices.ReplaceSnapshot(ctx, snap); err != nil {
		logger.Error("notice snapshot save failed", "module", "service", "action", "refresh", "resource", "notice", "result", "failed", "error", err)
		return err
	}

	logger.Info("notices refreshed", "module", "service", "action", "refresh", "resource", "notice", "result", "ok", "source", s.source.Name(), "count", len(notices), "skipped", len(rejected), "duration_ms", s.now().Sub(start).Milliseconds())
	return nil
}
