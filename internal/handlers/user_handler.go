package handlers

import (
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/storage"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/validation"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	store     storage.Storage
	validator *validation.Validator
}

func NewUserHandler(store storage.Storage, validator *validation.Validator) *UserHandler {
	return &UserHandler{store: store, validator: validator}
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := userID(c)
	if err != nil {
		return errorJSON(c, fiber.StatusNotFound, "User not found")
	}

	user, err := h.store.GetUser(c.UserContext(), id)
	if err != nil {
		slog.Error("get user failed", "error", err, "user_id", id, "request_id", requestID(c))
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}
	if user == nil {
		return errorJSON(c, fiber.StatusNotFound, "User not found")
	}
	return c.JSON(user)
}

// UpdateUser applies a partial update. Updating an unknown user is reported
// as a server fault, not a 404.
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := userID(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validator.Struct(&req); err != nil {
		slog.Info("user update rejected", "error", err, "user_id", id, "request_id", requestID(c))
		return errorJSON(c, fiber.StatusBadRequest, "Invalid input")
	}

	user, err := h.store.UpdateUser(c.UserContext(), id, req.ToUpdate())
	if err != nil {
		slog.Error("update user failed", "error", err, "user_id", id, "request_id", requestID(c))
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to update user")
	}
	return c.JSON(user)
}
