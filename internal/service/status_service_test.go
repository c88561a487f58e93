package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cgtsc/website/internal/model"
	"cgtsc/website/internal/repository/mock"
	"cgtsc/website/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStatusService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockChecks := mock.NewMockStatusCheckRepository(ctrl)
	mockChecks.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, check model.StatusCheck) error {
			require.Equal(t, "frontend", check.ClientName)
			return nil
		},
	)

	svc := service.NewStatusService(mockChecks)
	check, err := svc.Create(context.Background(), "  frontend ")
	require.NoError(t, err)
	require.Equal(t, "frontend", check.ClientName)
	_, err = uuid.Parse(check.ID)
	require.NoError(t, err)
	require.Equal(t, time.UTC, check.Timestamp.Location())
}

func TestStatusService_Create_Blank(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.NewStatusService(mock.NewMockStatusCheckRepository(ctrl))
	_, err := svc.Create(context.Background(), "   ")
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestStatusService_Create_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockChecks := mock.NewMockStatusCheckRepository(ctrl)
	mockChecks.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db error"))

	svc := service.NewStatusService(mockChecks)
	_, err := svc.Create(context.Background(), "frontend")
	require.Error(t, err)
}

func TestStatusService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockChecks := mock.NewMockStatusCheckRepository(ctrl)
	want := []model.StatusCheck{{ID: "1", ClientName: "a"}}
	mockChecks.EXPECT().List(gomock.Any(), service.StatusListLimit).Return(want, nil)

	got, err := service.NewStatusService(mockChecks).List(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)
}
