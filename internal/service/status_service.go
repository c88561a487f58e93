package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"cgtsc/website/internal/logger"
	"cgtsc/website/internal/model"
	"cgtsc/website/internal/repository"
)

// StatusListLimit caps how many status checks List returns.
const StatusListLimit = 1000

type StatusService interface {
	Create(ctx context.Context, clientName string) (model.StatusCheck, error)
	List(ctx context.Context) ([]model.StatusCheck, error)
}

type statusService struct {
	checks repository.StatusCheckRepository
	now    func() time.Time
}

func NewStatusService(checks repository.StatusCheckRepository) StatusService {
	return &statusService{checks: checks, now: time.Now}
}

func (s *statusService) Create(ctx context.Context, clientName string) (model.StatusCheck, error) {
	clientName = strings.TrimSpace(clientName)
	if clientName == "" {
		return model.StatusCheck{}, ErrInvalid
	}

	check := model.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  s.now().UTC(),
	}
	if err := s.checks.Create(ctx, check); err != nil {
		logger.Error("status check create failed", "module", "service", "action", "create", "resource", "status_check", "result", "failed", "error", err)
		return model.StatusCheck{}, err
	}
	logger.Debug("status check created", "module", "service", "action", "create", "resource", "status_check", "result", "ok", "client_name", clientName)
	return check, nil
}

func (s *statusService) List(ctx context.Context) ([]model.StatusCheck, error) {
	return s.checks.List(ctx, StatusListLimit)
}
