package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"event-ticketing-be/internal/dto"
	"event-ticketing-be/internal/entity"
	"event-ticketing-be/internal/pkg/serverutils"
	"event-ticketing-be/internal/repository/specification"
	"event-ticketing-be/internal/repository/unitofwork"
	"event-ticketing-be/pkg/cashfree"
	"event-ticketing-be/pkg/events"
	pktNats "event-ticketing-be/pkg/nats"

	"github.com/google/uuid"
)

type IPaymentService interface {
	CreateOrder(ctx context.Context, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error)
	VerifyPayment(ctx context.Context, req *dto.VerifyPaymentRequest) (*dto.VerifyPaymentResponse, error)
	HandleWebhook(ctx context.Context, payload *dto.CashfreeWebhookPayload) error
}

// PaymentConfig carries the knobs the payment flow needs.
type PaymentConfig struct {
	OrderPrefix   string
	PaymentAmount float64
	FrontendURL   string
	BaseURL       string
}

type paymentService struct {
	uowFactory       unitofwork.RepositoryFactory
	gateway          cashfree.Gateway
	eventPublisher   *pktNats.Publisher
	publisherService IPublisherService
	cfg              PaymentConfig
}

func NewPaymentService(
	uowFactory unitofwork.RepositoryFactory,
	gateway cashfree.Gateway,
	eventPublisher *pktNats.Publisher,
	publisherService IPublisherService,
	cfg PaymentConfig,
) IPaymentService {
	return &paymentService{
		uowFactory:       uowFactory,
		gateway:          gateway,
		eventPublisher:   eventPublisher,
		publisherService: publisherService,
		cfg:              cfg,
	}
}

// NewOrderId builds the gateway order reference for a ticket. The random
// suffix keeps references unique across repeated create-order calls for the
// same registration.
func NewOrderId(prefix, ticketNo string) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return fmt.Sprintf("%s_ORDER_%s_%s", prefix, ticketNo, suffix)
}

func (s *paymentService) CreateOrder(ctx context.Context, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	registrationId, err := uuid.Parse(req.RegistrationId)
	if err != nil {
		return nil, serverutils.NewValidationError("registration_id must be a valid uuid")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	registration, err := uow.RegistrationRepository().FindOne(ctx, specification.ByID{ID: registrationId})
	if err != nil {
		return nil, err
	}
	if registration == nil {
		return nil, serverutils.NewNotFoundError("Registration not found")
	}

	if registration.PaymentStatus == entity.PaymentStatusSuccess {
		return nil, serverutils.NewConflictError("Payment already completed for this registration")
	}

	orderId := NewOrderId(s.cfg.OrderPrefix, registration.TicketNo)

	// The gateway rejects customer names shorter than 3 characters.
	// Counted in runes, not bytes, so short multibyte names get padded too.
	customerName := registration.Name
	if utf8.RuneCountInString(customerName) < 3 {
		customerName = fmt.Sprintf("%s User", customerName)
	}

	orderReq := &cashfree.CreateOrderRequest{
		OrderId:       orderId,
		OrderAmount:   s.cfg.PaymentAmount,
		OrderCurrency: "INR",
		CustomerDetails: cashfree.CustomerDetails{
			CustomerId:    fmt.Sprintf("%s_%s", s.cfg.OrderPrefix, registration.TicketNo),
			CustomerName:  customerName,
			CustomerEmail: registration.Email,
			CustomerPhone: registration.MobileNumber,
		},
		OrderMeta: &cashfree.OrderMeta{
			ReturnURL: fmt.Sprintf("%s/payment/success?order_id=%s", s.cfg.FrontendURL, orderId),
			NotifyURL: fmt.Sprintf("%s/api/payment/webhook/", s.cfg.BaseURL),
		},
	}

	orderResp, err := s.gateway.CreateOrder(ctx, orderReq)
	if err != nil {
		return nil, serverutils.NewExternalServiceError(fmt.Sprintf("Cashfree API error: %v", err), err)
	}

	registration.OrderId = &orderId
	registration.Amount = s.cfg.PaymentAmount
	if err := uow.RegistrationRepository().Update(ctx, registration); err != nil {
		return nil, err
	}

	orderStatus := orderResp.OrderStatus
	if orderStatus == "" {
		orderStatus = "ACTIVE"
	}

	var paymentURL *string
	if orderResp.PaymentSessionId != "" {
		url := s.gateway.PaymentURL(orderResp.PaymentSessionId)
		paymentURL = &url
	}

	return &dto.CreateOrderResponse{
		Success:          true,
		OrderId:          orderId,
		PaymentSessionId: orderResp.PaymentSessionId,
		PaymentURL:       paymentURL,
		OrderStatus:      orderStatus,
	}, nil
}

func (s *paymentService) VerifyPayment(ctx context.Context, req *dto.VerifyPaymentRequest) (*dto.VerifyPaymentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	registration, err := uow.RegistrationRepository().FindOne(ctx, specification.ByOrderID{OrderID: req.OrderId})
	if err != nil {
		return nil, err
	}
	if registration == nil {
		return nil, serverutils.NewNotFoundError("Order not found")
	}

	payments, err := s.gateway.FetchOrderPayments(ctx, req.OrderId)
	if err != nil {
		return nil, serverutils.NewExternalServiceError(fmt.Sprintf("Cashfree API error: %v", err), err)
	}
	if len(payments) == 0 {
		return nil, serverutils.NewNotFoundError("No payment found for this order")
	}

	// The gateway returns payment attempts newest first; the head decides.
	payment := payments[0]

	var paymentInfo *string
	switch payment.PaymentStatus {
	case cashfree.PaymentStatusSuccess:
		info, _ := json.Marshal(map[string]string{
			"payment_method": payment.PaymentGroup,
			"payment_time":   payment.PaymentTime,
			"payment_amount": strconv.FormatFloat(payment.PaymentAmount, 'f', 2, 64),
		})
		paymentInfo = stringPtr(string(info))
	case cashfree.PaymentStatusFailed, cashfree.PaymentStatusCancelled, cashfree.PaymentStatusUserDropped:
		message := payment.PaymentMessage
		if message == "" {
			message = "Payment failed"
		}
		info, _ := json.Marshal(map[string]string{
			"status":  payment.PaymentStatus,
			"message": message,
		})
		paymentInfo = stringPtr(string(info))
	}

	s.applyGatewayStatus(registration, payment.PaymentStatus, payment.PaymentId(), paymentInfo)

	if err := uow.RegistrationRepository().Update(ctx, registration); err != nil {
		return nil, err
	}
	s.notifyGatewayStatus(ctx, registration, payment.PaymentStatus)

	return &dto.VerifyPaymentResponse{
		Success:       true,
		PaymentStatus: string(registration.PaymentStatus),
		TicketNo:      registration.TicketNo,
	}, nil
}

func (s *paymentService) HandleWebhook(ctx context.Context, payload *dto.CashfreeWebhookPayload) error {
	orderId := payload.OrderID()
	if orderId == "" {
		return serverutils.NewValidationError("Invalid webhook data")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	registration, err := uow.RegistrationRepository().FindOne(ctx, specification.ByOrderID{OrderID: orderId})
	if err != nil {
		return err
	}
	if registration == nil {
		return serverutils.NewNotFoundError("Order not found")
	}

	var payment cashfree.Payment
	if len(payload.Data.Payment) > 0 {
		// Decode only the fields the transition needs; the raw object is
		// what gets stored.
		_ = json.Unmarshal(payload.Data.Payment, &payment)
	}

	var paymentInfo *string
	if len(payload.Data.Payment) > 0 {
		paymentInfo = stringPtr(string(payload.Data.Payment))
	}

	s.applyGatewayStatus(registration, payment.PaymentStatus, payment.PaymentId(), paymentInfo)

	if err := uow.RegistrationRepository().Update(ctx, registration); err != nil {
		return err
	}
	s.notifyGatewayStatus(ctx, registration, payment.PaymentStatus)
	return nil
}

// applyGatewayStatus maps a gateway payment status onto the registration.
// Statuses outside the terminal sets leave the record unchanged. Repeated
// deliveries re-apply last-write-wins; no idempotency is enforced.
// It only mutates; callers fire the follow-up events once the transition
// is persisted.
func (s *paymentService) applyGatewayStatus(registration *entity.Registration, status, paymentId string, paymentInfo *string) {
	switch status {
	case cashfree.PaymentStatusSuccess:
		registration.PaymentStatus = entity.PaymentStatusSuccess
		if paymentId != "" {
			registration.PaymentId = &paymentId
		}
		now := time.Now()
		registration.PaymentDate = &now
		registration.PaymentInfo = paymentInfo
	case cashfree.PaymentStatusFailed, cashfree.PaymentStatusCancelled, cashfree.PaymentStatusUserDropped:
		registration.PaymentStatus = entity.PaymentStatusFailed
		registration.PaymentInfo = paymentInfo
	}
}

// notifyGatewayStatus publishes the events for a persisted transition.
func (s *paymentService) notifyGatewayStatus(ctx context.Context, registration *entity.Registration, status string) {
	switch status {
	case cashfree.PaymentStatusSuccess:
		s.onPaymentCompleted(ctx, registration)
	case cashfree.PaymentStatusFailed, cashfree.PaymentStatusCancelled, cashfree.PaymentStatusUserDropped:
		s.onPaymentFailed(ctx, registration, status)
	}
}

func (s *paymentService) onPaymentCompleted(ctx context.Context, registration *entity.Registration) {
	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.PaymentCompleted,
			Data: map[string]interface{}{
				"registration_id": registration.Id.String(),
				"ticket_no":       registration.TicketNo,
				"amount":          registration.Amount,
			},
			OccurredAt: time.Now(),
		}
		_ = s.eventPublisher.Publish(ctx, evt)
	}

	if s.publisherService != nil {
		msg := dto.TicketEmailMessage{RegistrationId: registration.Id}
		payload, _ := json.Marshal(msg)
		// Ticket email is best-effort and must never fail the payment path.
		_ = s.publisherService.Publish(ctx, payload)
	}
}

func (s *paymentService) onPaymentFailed(ctx context.Context, registration *entity.Registration, gatewayStatus string) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type: events.PaymentFailed,
		Data: map[string]interface{}{
			"registration_id": registration.Id.String(),
			"ticket_no":       registration.TicketNo,
			"gateway_status":  gatewayStatus,
		},
		OccurredAt: time.Now(),
	}
	_ = s.eventPublisher.Publish(ctx, evt)
}

func stringPtr(s string) *string {
	return &s
}
