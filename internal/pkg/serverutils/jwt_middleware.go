package serverutils

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func JwtMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse("Missing token"))
	}
	tokenStr := authHeader[7:]

	claims, err := ParseToken(tokenStr)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse("Invalid token"))
	}

	ctx.Locals("user_id", claims["user_id"])
	ctx.Locals("user_name", claims["name"])
	ctx.Locals("user_role", claims["role"])
	return ctx.Next()
}

// RequireSuperuser guards destructive admin routes. Must run after JwtMiddleware.
func RequireSuperuser(ctx *fiber.Ctx) error {
	role, _ := ctx.Locals("user_role").(string)
	if role != "superuser" {
		return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse("Superuser access required"))
	}
	return ctx.Next()
}

// JwtSecret returns the token signing key, shared by the issuer and the
// middleware so both sides always agree.
func JwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	return []byte(secret)
}

// ParseToken validates a JWT and returns its claims.
func ParseToken(tokenStr string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return JwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return nil, NewUnauthorizedError("Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, NewUnauthorizedError("Invalid claims")
	}
	return claims, nil
}
