package controller

import (
	"event-ticketing-be/internal/dto"
	"event-ticketing-be/internal/pkg/serverutils"
	"event-ticketing-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IRegistrationController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type registrationController struct {
	service service.IRegistrationService
}

func NewRegistrationController(service service.IRegistrationService) IRegistrationController {
	return &registrationController{service: service}
}

func (c *registrationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/registrations")
	h.Post("/", c.Create) // public signup

	// Staff routes
	h.Get("/", serverutils.JwtMiddleware, c.List)
	h.Get("/:id", serverutils.JwtMiddleware, c.Get)
	h.Put("/:id", serverutils.JwtMiddleware, c.Update)
	h.Patch("/:id", serverutils.JwtMiddleware, c.Update)
	h.Delete("/:id", serverutils.JwtMiddleware, serverutils.RequireSuperuser, c.Delete)
}

func (c *registrationController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateRegistrationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *registrationController) List(ctx *fiber.Ctx) error {
	var req dto.ListRegistrationsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid query parameters")
	}

	res, err := c.service.List(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *registrationController) Get(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewValidationError("Invalid registration id")
	}

	res, err := c.service.Get(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *registrationController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewValidationError("Invalid registration id")
	}

	var req dto.UpdateRegistrationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.UserContext(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *registrationController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewValidationError("Invalid registration id")
	}

	if err := c.service.Delete(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
