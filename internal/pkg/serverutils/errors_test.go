package serverutils

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestAppErrorStatusCode(t *testing.T) {
	cases := []struct {
		err  *AppError
		want int
	}{
		{NewValidationError("bad input"), fiber.StatusBadRequest},
		{NewConflictError("already exists"), fiber.StatusBadRequest},
		{NewNotFoundError("missing"), fiber.StatusNotFound},
		{NewUnauthorizedError("no token"), fiber.StatusUnauthorized},
		{NewForbiddenError("nope"), fiber.StatusForbidden},
		{NewExternalServiceError("upstream down", nil), fiber.StatusInternalServerError},
		{&AppError{Kind: KindUnhandled, Message: "boom"}, fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.err.StatusCode(), tc.err.Message)
	}
}

func TestErrorHandlerMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/not-found", func(c *fiber.Ctx) error {
		return NewNotFoundError("Registration not found")
	})
	app.Get("/plain", func(c *fiber.Ctx) error {
		return io.ErrUnexpectedEOF
	})
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.JSON(SuccessResponse("done", fiber.Map{}))
	})

	t.Run("app error maps to flat body", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/not-found", nil))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body map[string]string
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Registration not found", body["error"])
	})

	t.Run("unknown error becomes 500", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/plain", nil))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		var body map[string]string
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Internal server error", body["error"])
	})

	t.Run("success passes through", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestValidateRequest(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
		Age   int    `validate:"gte=1"`
	}

	err := ValidateRequest(&payload{Email: "jo@example.com", Age: 30})
	assert.NoError(t, err)

	err = ValidateRequest(&payload{Email: "not-an-email", Age: 0})
	assert.Error(t, err)
	var appErr *AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, KindValidation, appErr.Kind)
}
