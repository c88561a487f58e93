package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cgtsc/website/internal/model"
	"cgtsc/website/internal/repository/mock"
	"cgtsc/website/internal/service"
	"cgtsc/website/internal/source"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubSource struct {
	items []source.Item
	err   error
	calls int
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Fetch(ctx context.Context) ([]source.Item, error) {
	s.calls++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.items, s.err
}

type blockingSource struct {
	started chan struct{}
	release chan struct{}
	ctxErr  chan error
}

func (s *blockingSource) Name() string { return "blocking" }

func (s *blockingSource) Fetch(ctx context.Context) ([]source.Item, error) {
	close(s.started)
	<-s.release
	if s.ctxErr != nil {
		s.ctxErr <- ctx.Err()
	}
	return []source.Item{{Title: "Holiday Notice", Date: "2025-01-10"}}, nil
}

func notice(title, date string) model.Notice {
	t, _ := model.ParseISODate(date)
	return model.Notice{Title: title, Date: model.DateOf(t)}
}

func TestNoticeService_List_FromSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNotices := mock.NewMockNoticeRepository(ctrl)
	src := &stubSource{}
	stored := []model.Notice{notice("Holiday Notice", "2025-01-10"), notice("Exam", "2025-01-08")}
	mockNotices.EXPECT().LatestSnapshot(gomock.Any()).Return(&model.NoticeSnapshot{Notices: stored, Source: "sheet"}, nil)

	svc := service.NewNoticeService(mockNotices, src, 10)
	got, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, stored, got)
	require.Zero(t, src.calls)
}

func TestNoticeService_List_RefreshesWhenEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNotices := mock.NewMockNoticeRepository(ctrl)
	src := &stubSource{items: []source.Item{
		{Title: "Welcome", Date: "1/15/2025", Description: "Classes start"},
		{Title: "", Date: "2025-01-01"},
	}}

	var saved model.NoticeSnapshot
	gomock.InOrder(
		mockNotices.EXPECT().LatestSnapshot(gomock.Any()).Return(nil, nil),
		mockNotices.EXPECT().ReplaceSnapshot(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, snap model.NoticeSnapshot) error {
				saved = snap
				return nil
			},
		),
		mockNotices.EXPECT().LatestSnapshot(gomock.Any()).DoAndReturn(
			func(context.Context) (*model.NoticeSnapshot, error) {
				return &saved, nil
			},
		),
	)

	svc := service.NewNoticeService(mockNotices, src, 10)
	got, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Welcome", got[0].Title)
	require.Equal(t, "2025-01-15", got[0].Date.String())
	require.Equal(t, "stub", saved.Source)
	require.False(t, saved.FetchedAt.IsZero())
	require.Equal(t, 1, src.calls)
}

func TestNoticeService_List_FallsBackToSamples(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNotices := mock.NewMockNoticeRepository(ctrl)
	src := &stubSource{err: errors.New("connection refused")}
	mockNotices.EXPECT().LatestSnapshot(gomock.Any()).Return(nil, nil)

	svc := service.NewNoticeService(mockNotices, src, 10)
	got, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, service.SampleNotices(), got)
}

func TestNoticeService_List_SnapshotReadErrorFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNotices := mock.NewMockNoticeRepository(ctrl)
	src := &stubSource{err: errors.New("dns failure")}
	mockNotices.EXPECT().LatestSnapshot(gomock.Any()).Return(nil, errors.New("disk I/O error"))

	svc := service.NewNoticeService(mockNotices, src, 10)
	got, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
}

func TestNoticeService_List_CancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNotices := mock.NewMockNoticeRepository(ctrl)
	mockNotices.EXPECT().LatestSnapshot(gomock.Any()).Return(nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := service.NewNoticeService(mockNotices, &stubSource{err: errors.New("offline")}, 10)
	_, err := svc.List(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestNoticeService_Refresh_SourceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNotices := mock.NewMockNoticeRepository(ctrl)
	upstream := &source.StatusError{URL: "https://docs.google.com", StatusCode: 500}
	svc := service.NewNoticeService(mockNotices, &stubSource{err: upstream}, 10)

	err := svc.Refresh(context.Background())
	require.ErrorIs(t, err, service.ErrSourceFetch)

	var fetchErr *service.SourceFetchError
	require.ErrorAs(t, err, &fetchErr)
	require.Equal(t, "stub", fetchErr.Source)

	var statusErr *source.StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, 500, statusErr.StatusCode)
}

func TestNoticeService_Refresh_AppliesLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	items := make([]source.Item, 12)
	for i := range items {
		items[i] = source.Item{Title: "Notice", Date: "2025-01-10"}
	}

	mockNotices := mock.NewMockNoticeRepository(ctrl)
	mockNotices.EXPECT().ReplaceSnapshot(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, snap model.NoticeSnapshot) error {
			require.Len(t, snap.Notices, 10)
			return nil
		},
	)

	svc := service.NewNoticeService(mockNotices, &stubSource{items: items}, 10)
	require.NoError(t, svc.Refresh(context.Background()))
}

func TestNoticeService_Refresh_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNotices := mock.NewMockNoticeRepository(ctrl)
	mockNotices.EXPECT().ReplaceSnapshot(gomock.Any(), gomock.Any()).Return(errors.New("database is locked"))

	svc := service.NewNoticeService(mockNotices, &stubSource{items: []source.Item{{Title: "A", Date: "2025-01-01"}}}, 10)
	err := svc.Refresh(context.Background())
	require.Error(t, err)
	require.NotErrorIs(t, err, service.ErrSourceFetch)
}

func TestSampleNotices(t *testing.T) {
	samples := service.SampleNotices()
	require.Len(t, samples, 3)
	require.Equal(t, "Welcome to New Academic Year 2025", samples[0].Title)
	require.Equal(t, time.January, samples[2].Date.Time.Month())
}

func TestNoticeService_Refresh_OutlivesCancelledCaller(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := &blockingSource{
		started: make(chan struct{}),
		release: make(chan struct{}),
		ctxErr:  make(chan error, 1),
	}
	saved := make(chan model.NoticeSnapshot, 1)
	mockNotices := mock.NewMockNoticeRepository(ctrl)
	mockNotices.EXPECT().ReplaceSnapshot(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, snap model.NoticeSnapshot) error {
			saved <- snap
			return ctx.Err()
		},
	)

	svc := service.NewNoticeService(mockNotices, src, 10)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Refresh(ctx) }()

	<-src.started
	cancel()
	require.ErrorIs(t, <-done, context.Canceled)

	close(src.release)
	require.NoError(t, <-src.ctxErr)
	select {
	case snap := <-saved:
		require.Len(t, snap.Notices, 1)
		require.Equal(t, "Holiday Notice", snap.Notices[0].Title)
	case <-time.After(2 * time.Second):
		t.Fatal("shared refresh did not finish")
	}
}
