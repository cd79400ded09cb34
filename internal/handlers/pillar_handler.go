package handlers

import (
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/storage"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/validation"
	"github.com/gofiber/fiber/v2"
)

type PillarHandler struct {
	store     storage.Storage
	validator *validation.Validator
}

func NewPillarHandler(store storage.Storage, validator *validation.Validator) *PillarHandler {
	return &PillarHandler{store: store, validator: validator}
}

func (h *PillarHandler) ListPillars(c *fiber.Ctx) error {
	pillars, err := h.store.GetHealthPillars(c.UserContext())
	if err != nil {
		slog.Error("list pillars failed", "error", err, "request_id", requestID(c))
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to fetch pillars")
	}
	return c.JSON(pillars)
}

func (h *PillarHandler) ListUserPillars(c *fiber.Ctx) error {
	id, err := userID(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	rows, err := h.store.GetUserPillars(c.UserContext(), id)
	if err != nil {
		slog.Error("list user pillars failed", "error", err, "user_id", id, "request_id", requestID(c))
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to fetch user pillars")
	}
	return c.JSON(rows)
}

func (h *PillarHandler) UpsertUserPillar(c *fiber.Ctx) error {
	id, err := userID(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var req dto.UpsertPillarRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validator.Struct(&req); err != nil {
		slog.Info("pillar score rejected", "error", err, "user_id", id, "request_id", requestID(c))
		return errorJSON(c, fiber.StatusBadRequest, "Invalid input")
	}

	row, err := h.store.UpsertUserPillar(c.UserContext(), models.PillarScore{
		UserID:   id,
		PillarID: req.PillarID,
		Score:    req.Score,
	})
	if err != nil {
		slog.Error("upsert user pillar failed", "error", err, "user_id", id, "request_id", requestID(c))
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to update pillar")
	}
	return c.JSON(row)
}
