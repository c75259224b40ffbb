package service

import (
	"context"
	"time"

	"event-ticketing-be/internal/dto"
	"event-ticketing-be/internal/entity"
	"event-ticketing-be/internal/pkg/serverutils"
	"event-ticketing-be/internal/repository/specification"
	"event-ticketing-be/internal/repository/unitofwork"
	"event-ticketing-be/pkg/events"
	pktNats "event-ticketing-be/pkg/nats"

	"github.com/google/uuid"
)

type IRegistrationService interface {
	Create(ctx context.Context, req *dto.CreateRegistrationRequest) (*dto.RegistrationResponse, error)
	List(ctx context.Context, req *dto.ListRegistrationsRequest) (*dto.RegistrationListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.RegistrationResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateRegistrationRequest) (*dto.RegistrationResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type registrationService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	ticketPrefix   string
}

func NewRegistrationService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher, ticketPrefix string) IRegistrationService {
	return &registrationService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		ticketPrefix:   ticketPrefix,
	}
}

func (s *registrationService) Create(ctx context.Context, req *dto.CreateRegistrationRequest) (*dto.RegistrationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	registration := &entity.Registration{
		TicketNo:        entity.NewTicketNo(s.ticketPrefix),
		Name:            req.Name,
		MobileNumber:    req.MobileNumber,
		Email:           req.Email,
		Age:             req.Age,
		Location:        req.Location,
		CompanyName:     req.CompanyName,
		RegistrationFor: entity.RegistrationCategory(req.RegistrationFor),
		PaymentStatus:   entity.PaymentStatusPending,
	}

	if err := uow.RegistrationRepository().Create(ctx, registration); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.RegistrationCreated,
			Data: map[string]interface{}{
				"registration_id":  registration.Id.String(),
				"ticket_no":        registration.TicketNo,
				"registration_for": string(registration.RegistrationFor),
			},
			OccurredAt: time.Now(),
		}
		// Event delivery is best-effort; registration is already persisted.
		_ = s.eventPublisher.Publish(ctx, evt)
	}

	return toRegistrationResponse(registration), nil
}

func (s *registrationService) List(ctx context.Context, req *dto.ListRegistrationsRequest) (*dto.RegistrationListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	limit := req.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	filters := []specification.Specification{}
	if req.PaymentStatus != "" {
		filters = append(filters, specification.ByPaymentStatus{Status: req.PaymentStatus})
	}
	if req.Category != "" {
		filters = append(filters, specification.ByCategory{Category: req.Category})
	}

	total, err := uow.RegistrationRepository().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	listSpecs := append(filters,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	registrations, err := uow.RegistrationRepository().FindAll(ctx, listSpecs...)
	if err != nil {
		return nil, err
	}

	data := make([]*dto.RegistrationResponse, len(registrations))
	for i, r := range registrations {
		data[i] = toRegistrationResponse(r)
	}

	return &dto.RegistrationListResponse{
		Data:  data,
		Total: total,
		Limit: limit,
		Page:  offset/limit + 1,
	}, nil
}

func (s *registrationService) Get(ctx context.Context, id uuid.UUID) (*dto.RegistrationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	registration, err := uow.RegistrationRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if registration == nil {
		return nil, serverutils.NewNotFoundError("Registration not found")
	}
	return toRegistrationResponse(registration), nil
}

func (s *registrationService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateRegistrationRequest) (*dto.RegistrationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	registration, err := uow.RegistrationRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if registration == nil {
		return nil, serverutils.NewNotFoundError("Registration not found")
	}

	// Only contact fields are writable. Ticket and payment fields are owned
	// by the payment pipeline.
	if req.Name != nil {
		registration.Name = *req.Name
	}
	if req.MobileNumber != nil {
		registration.MobileNumber = *req.MobileNumber
	}
	if req.Email != nil {
		registration.Email = *req.Email
	}
	if req.Age != nil {
		registration.Age = *req.Age
	}
	if req.Location != nil {
		registration.Location = *req.Location
	}
	if req.CompanyName != nil {
		registration.CompanyName = *req.CompanyName
	}
	if req.RegistrationFor != nil {
		category := entity.RegistrationCategory(*req.RegistrationFor)
		if !entity.ValidCategory(category) {
			return nil, serverutils.NewValidationError("Invalid registration_for value")
		}
		registration.RegistrationFor = category
	}

	if err := uow.RegistrationRepository().Update(ctx, registration); err != nil {
		return nil, err
	}
	return toRegistrationResponse(registration), nil
}

func (s *registrationService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	registration, err := uow.RegistrationRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if registration == nil {
		return serverutils.NewNotFoundError("Registration not found")
	}
	return uow.RegistrationRepository().Delete(ctx, id)
}

func toRegistrationResponse(r *entity.Registration) *dto.RegistrationResponse {
	return &dto.RegistrationResponse{
		Id:              r.Id,
		TicketNo:        r.TicketNo,
		Name:            r.Name,
		MobileNumber:    r.MobileNumber,
		Email:           r.Email,
		Age:             r.Age,
		Location:        r.Location,
		CompanyName:     r.CompanyName,
		RegistrationFor: string(r.RegistrationFor),
		PaymentStatus:   string(r.PaymentStatus),
		PaymentId:       r.PaymentId,
		OrderId:         r.OrderId,
		Amount:          r.Amount,
		PaymentDate:     r.PaymentDate,
		PaymentInfo:     r.PaymentInfo,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}
