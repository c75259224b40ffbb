package serverutils

import "github.com/gofiber/fiber/v2"

type Response[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Message: message,
		Data:    data,
	}
}

// ErrorResponse produces the flat error body used across the API.
func ErrorResponse(message string) fiber.Map {
	return fiber.Map{"error": message}
}
