package middleware

import (
	"strconv"

	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JWTProtected verifies the bearer token and stores it under "user".
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized: invalid or expired token",
			})
		},
	})
}

// SelfOnly lets a request through only when the token subject equals the
// numeric value of the :id route param. It must run after JWTProtected.
func SelfOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok || token == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		sub, err := token.Claims.GetSubject()
		id, idErr := c.ParamsInt("id")
		if err != nil || idErr != nil || id <= 0 || sub != strconv.Itoa(id) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Forbidden",
			})
		}
		return c.Next()
	}
}

// UserScoped returns the chain guarding /users/:id routes. With tokens
// disabled the routes stay open.
func UserScoped(cfg *config.Config) []fiber.Handler {
	if !cfg.TokensEnabled() {
		return nil
	}
	return []fiber.Handler{JWTProtected(cfg), SelfOnly()}
}
