package service

import (
	"context"
	"time"

	"event-ticketing-be/internal/dto"
	"event-ticketing-be/internal/entity"
	"event-ticketing-be/internal/repository/specification"
	"event-ticketing-be/internal/repository/unitofwork"
	"event-ticketing-be/pkg/events"
	pktNats "event-ticketing-be/pkg/nats"
)

type IScanService interface {
	LogScan(ctx context.Context, req *dto.LogScanRequest, scannedBy string) (*dto.ScanLogResponse, error)
	List(ctx context.Context, limit, offset int) (*dto.ScanLogListResponse, error)
}

type scanService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
}

func NewScanService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher) IScanService {
	return &scanService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

// LogScan records one attempt per call, success or not. An unknown ticket
// still produces a row, with the action forced to SCAN_FAILED.
func (s *scanService) LogScan(ctx context.Context, req *dto.LogScanRequest, scannedBy string) (*dto.ScanLogResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	action := entity.ScanAction(req.Action)
	if req.Action == "" {
		action = entity.ScanActionSuccess
	}

	scanLog := &entity.ScanLog{
		TicketNo: req.TicketNo,
		Action:   action,
		Notes:    req.Notes,
	}
	if scannedBy != "" {
		scanLog.ScannedBy = &scannedBy
	}

	registration, err := uow.RegistrationRepository().FindOne(ctx, specification.ByTicketNo{TicketNo: req.TicketNo})
	if err != nil {
		return nil, err
	}

	var registrantName string
	if registration == nil {
		scanLog.Action = entity.ScanActionFailed
		if scanLog.Notes == "" {
			scanLog.Notes = "Ticket not found"
		}
	} else {
		scanLog.RegistrationId = &registration.Id
		registrantName = registration.Name
	}

	if err := uow.ScanLogRepository().Create(ctx, scanLog); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TicketScanned,
			Data: map[string]interface{}{
				"ticket_no":  scanLog.TicketNo,
				"action":     string(scanLog.Action),
				"name":       registrantName,
				"scanned_by": scannedBy,
				"scanned_at": scanLog.CreatedAt.Format(time.RFC3339),
			},
			OccurredAt: time.Now(),
		}
		_ = s.eventPublisher.Publish(ctx, evt)
	}

	return toScanLogResponse(scanLog), nil
}

func (s *scanService) List(ctx context.Context, limit, offset int) (*dto.ScanLogListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	total, err := uow.ScanLogRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	logs, err := uow.ScanLogRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	data := make([]*dto.ScanLogResponse, len(logs))
	for i, l := range logs {
		data[i] = toScanLogResponse(l)
	}

	return &dto.ScanLogListResponse{
		Data:  data,
		Total: total,
		Limit: limit,
		Page:  offset/limit + 1,
	}, nil
}

func toScanLogResponse(l *entity.ScanLog) *dto.ScanLogResponse {
	return &dto.ScanLogResponse{
		Id:             l.Id,
		TicketNo:       l.TicketNo,
		RegistrationId: l.RegistrationId,
		Action:         string(l.Action),
		ScannedBy:      l.ScannedBy,
		Notes:          l.Notes,
		CreatedAt:      l.CreatedAt,
	}
}
