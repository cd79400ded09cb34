package handlers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
)

var errInvalidID = errors.New("invalid id")

func errorJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: true, Message: message})
}

// userID reads the :id route param. Only positive integers are accepted.
func userID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}

func requestID(c *fiber.Ctx) string {
	return c.GetRespHeader(fiber.HeaderXRequestID)
}
