package controller

import (
	"fmt"
	"path/filepath"
	"strings"

	"event-ticketing-be/internal/dto"
	"event-ticketing-be/internal/pkg/serverutils"
	"event-ticketing-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISettingsController interface {
	RegisterRoutes(r fiber.Router)
	Get(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	UploadLogo(ctx *fiber.Ctx) error
}

type settingsController struct {
	service   service.ISettingsService
	uploadDir string
}

func NewSettingsController(service service.ISettingsService, uploadDir string) ISettingsController {
	return &settingsController{
		service:   service,
		uploadDir: uploadDir,
	}
}

func (c *settingsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/settings")
	h.Get("/", c.Get) // public

	h.Post("/logo", serverutils.JwtMiddleware, c.UploadLogo)
	// The singleton ignores the id segment; it exists for client compatibility.
	h.Put("/:id", serverutils.JwtMiddleware, c.Update)
	h.Patch("/:id", serverutils.JwtMiddleware, c.Update)
}

func (c *settingsController) Get(ctx *fiber.Ctx) error {
	res, err := c.service.Get(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *settingsController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateSettingsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *settingsController) UploadLogo(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("logo")
	if err != nil {
		return serverutils.NewValidationError("Logo file is required")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp":
	default:
		return serverutils.NewValidationError("Unsupported logo file type")
	}

	filename := fmt.Sprintf("logo_%s%s", strings.ReplaceAll(uuid.New().String(), "-", ""), ext)
	if err := ctx.SaveFile(file, filepath.Join(c.uploadDir, filename)); err != nil {
		return err
	}

	res, err := c.service.SetLogo(ctx.UserContext(), filename)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
