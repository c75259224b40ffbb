package controller

import (
	"event-ticketing-be/internal/dto"
	"event-ticketing-be/internal/pkg/serverutils"
	"event-ticketing-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IScanController interface {
	RegisterRoutes(r fiber.Router)
	LogScan(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type scanController struct {
	service service.IScanService
}

func NewScanController(service service.IScanService) IScanController {
	return &scanController{service: service}
}

func (c *scanController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/scan-logs")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/log_scan", c.LogScan)
	h.Get("/", c.List)
}

// LogScan records the attempt and responds 201 whether or not the ticket
// resolved; failure is expressed in the returned log's action.
func (c *scanController) LogScan(ctx *fiber.Ctx) error {
	var req dto.LogScanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	scannedBy, _ := ctx.Locals("user_name").(string)

	res, err := c.service.LogScan(ctx.UserContext(), &req, scannedBy)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *scanController) List(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.service.List(ctx.UserContext(), limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
