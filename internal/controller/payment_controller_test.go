package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"event-ticketing-be/internal/dto"
	"event-ticketing-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubPaymentService struct {
	createOrderFn func(ctx context.Context, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error)
	verifyFn      func(ctx context.Context, req *dto.VerifyPaymentRequest) (*dto.VerifyPaymentResponse, error)
	webhookFn     func(ctx context.Context, payload *dto.CashfreeWebhookPayload) error
}

func (s *stubPaymentService) CreateOrder(ctx context.Context, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	return s.createOrderFn(ctx, req)
}

func (s *stubPaymentService) VerifyPayment(ctx context.Context, req *dto.VerifyPaymentRequest) (*dto.VerifyPaymentResponse, error) {
	return s.verifyFn(ctx, req)
}

func (s *stubPaymentService) HandleWebhook(ctx context.Context, payload *dto.CashfreeWebhookPayload) error {
	return s.webhookFn(ctx, payload)
}

func newPaymentTestApp(svc *stubPaymentService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewPaymentController(svc).RegisterRoutes(app.Group("/api"))
	return app
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCreateOrderEndpoint(t *testing.T) {
	t.Run("missing registration_id returns 400", func(t *testing.T) {
		app := newPaymentTestApp(&stubPaymentService{})

		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/payment/create-order", `{}`))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body map[string]string
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "registration_id is required", body["error"])
	})

	t.Run("conflict from service maps to 400", func(t *testing.T) {
		svc := &stubPaymentService{
			createOrderFn: func(ctx context.Context, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
				return nil, serverutils.NewConflictError("Payment already completed")
			},
		}
		app := newPaymentTestApp(svc)

		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/payment/create-order",
			`{"registration_id":"b7f0c6de-76a3-4f35-9f0f-0a9a1f3a2b11"}`))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body map[string]string
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Payment already completed", body["error"])
	})

	t.Run("success returns order details", func(t *testing.T) {
		url := "https://sandbox.cashfree.com/pg/view/gateway/session_xyz"
		svc := &stubPaymentService{
			createOrderFn: func(ctx context.Context, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
				return &dto.CreateOrderResponse{
					Success:          true,
					OrderId:          "EVT_ORDER_EVT12345678_abcd1234",
					PaymentSessionId: "session_xyz",
					PaymentURL:       &url,
					OrderStatus:      "ACTIVE",
				}, nil
			},
		}
		app := newPaymentTestApp(svc)

		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/payment/create-order",
			`{"registration_id":"b7f0c6de-76a3-4f35-9f0f-0a9a1f3a2b11"}`))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body dto.CreateOrderResponse
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.True(t, body.Success)
		assert.Equal(t, "EVT_ORDER_EVT12345678_abcd1234", body.OrderId)
		assert.NotNil(t, body.PaymentURL)
	})
}

func TestVerifyPaymentEndpoint(t *testing.T) {
	svc := &stubPaymentService{
		verifyFn: func(ctx context.Context, req *dto.VerifyPaymentRequest) (*dto.VerifyPaymentResponse, error) {
			return &dto.VerifyPaymentResponse{Success: true, PaymentStatus: "SUCCESS", TicketNo: "EVT12345678"}, nil
		},
	}
	app := newPaymentTestApp(svc)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/payment/verify",
		`{"order_id":"EVT_ORDER_EVT12345678_abcd1234"}`))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.VerifyPaymentResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "SUCCESS", body.PaymentStatus)
	assert.Equal(t, "EVT12345678", body.TicketNo)
}

func TestWebhookEndpoint(t *testing.T) {
	t.Run("missing order id maps to 400 envelope", func(t *testing.T) {
		svc := &stubPaymentService{
			webhookFn: func(ctx context.Context, payload *dto.CashfreeWebhookPayload) error {
				return serverutils.NewValidationError("Order ID missing in webhook")
			},
		}
		app := newPaymentTestApp(svc)

		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/payment/webhook", `{"data":{}}`))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body dto.WebhookResponse
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "error", body.Status)
		assert.Equal(t, "Order ID missing in webhook", body.Message)
	})

	t.Run("unknown order maps to 404 envelope", func(t *testing.T) {
		svc := &stubPaymentService{
			webhookFn: func(ctx context.Context, payload *dto.CashfreeWebhookPayload) error {
				return serverutils.NewNotFoundError("Registration not found for order")
			},
		}
		app := newPaymentTestApp(svc)

		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/payment/webhook",
			`{"data":{"order":{"order_id":"EVT_ORDER_missing_x"}}}`))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body dto.WebhookResponse
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "error", body.Status)
	})

	t.Run("success returns status success", func(t *testing.T) {
		var gotOrderId string
		svc := &stubPaymentService{
			webhookFn: func(ctx context.Context, payload *dto.CashfreeWebhookPayload) error {
				gotOrderId = payload.OrderID()
				return nil
			},
		}
		app := newPaymentTestApp(svc)

		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/payment/webhook",
			`{"type":"PAYMENT_SUCCESS_WEBHOOK","data":{"order":{"order_id":"EVT_ORDER_EVT12345678_abcd1234"},"payment":{"cf_payment_id":123,"payment_status":"SUCCESS"}}}`))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "EVT_ORDER_EVT12345678_abcd1234", gotOrderId)

		var body dto.WebhookResponse
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "success", body.Status)
		assert.Empty(t, body.Message)
	})
}
