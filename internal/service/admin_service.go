package service

import (
	"context"

	"event-ticketing-be/internal/dto"
	"event-ticketing-be/internal/pkg/logger"
	"event-ticketing-be/internal/repository/unitofwork"
)

type IAdminService interface {
	Dashboard(ctx context.Context) (*dto.DashboardResponse, error)
	Logs(level string, limit, offset int) ([]logger.LogEntry, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IAdminService {
	return &adminService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *adminService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.RegistrationRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	byStatus, err := uow.RegistrationRepository().CountByPaymentStatus(ctx)
	if err != nil {
		return nil, err
	}

	byCategory, err := uow.RegistrationRepository().CountByCategory(ctx)
	if err != nil {
		return nil, err
	}

	collected, err := uow.RegistrationRepository().TotalCollected(ctx)
	if err != nil {
		return nil, err
	}

	scans, err := uow.ScanLogRepository().CountByAction(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		TotalRegistrations: total,
		ByPaymentStatus:    byStatus,
		ByCategory:         byCategory,
		TotalCollected:     collected,
		ScansByAction:      scans,
	}, nil
}

func (s *adminService) Logs(level string, limit, offset int) ([]logger.LogEntry, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.logger.GetLogs(level, limit, offset)
}
