package controller

import (
	"errors"

	"event-ticketing-be/internal/dto"
	"event-ticketing-be/internal/pkg/serverutils"
	"event-ticketing-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPaymentController interface {
	RegisterRoutes(r fiber.Router)
	CreateOrder(ctx *fiber.Ctx) error
	VerifyPayment(ctx *fiber.Ctx) error
	Webhook(ctx *fiber.Ctx) error
}

type paymentController struct {
	service service.IPaymentService
}

func NewPaymentController(service service.IPaymentService) IPaymentController {
	return &paymentController{service: service}
}

// All payment routes are public: the registrant pays before any staff
// account exists, and the webhook is called by the gateway.
func (c *paymentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/payment")
	h.Post("/create-order", c.CreateOrder)
	h.Post("/verify", c.VerifyPayment)
	h.Post("/webhook", c.Webhook)
}

func (c *paymentController) CreateOrder(ctx *fiber.Ctx) error {
	var req dto.CreateOrderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid request body")
	}
	if req.RegistrationId == "" {
		return serverutils.NewValidationError("registration_id is required")
	}

	res, err := c.service.CreateOrder(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *paymentController) VerifyPayment(ctx *fiber.Ctx) error {
	var req dto.VerifyPaymentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid request body")
	}
	if req.OrderId == "" {
		return serverutils.NewValidationError("order_id is required")
	}

	res, err := c.service.VerifyPayment(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

// Webhook speaks the gateway's {status, message} envelope instead of the
// API's usual error body, so errors are mapped here rather than by the
// central middleware. Deliveries are unauthenticated per the gateway
// contract; repeated deliveries simply re-apply.
func (c *paymentController) Webhook(ctx *fiber.Ctx) error {
	var payload dto.CashfreeWebhookPayload
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(dto.WebhookResponse{
			Status:  "error",
			Message: "Invalid webhook data",
		})
	}

	if err := c.service.HandleWebhook(ctx.UserContext(), &payload); err != nil {
		var appErr *serverutils.AppError
		if errors.As(err, &appErr) {
			return ctx.Status(appErr.StatusCode()).JSON(dto.WebhookResponse{
				Status:  "error",
				Message: appErr.Message,
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(dto.WebhookResponse{
			Status:  "error",
			Message: err.Error(),
		})
	}

	return ctx.JSON(dto.WebhookResponse{Status: "success"})
}
