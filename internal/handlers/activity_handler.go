package handlers

import (
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/storage"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/validation"
	"github.com/gofiber/fiber/v2"
)

type ActivityHandler struct {
	store           storage.Storage
	activityService *services.ActivityService
	validator       *validation.Validator
}

func NewActivityHandler(store storage.Storage, activityService *services.ActivityService, validator *validation.Validator) *ActivityHandler {
	return &ActivityHandler{store: store, activityService: activityService, validator: validator}
}

// ListActivities returns the active catalog, narrowed to one context when
// ?context= is present.
func (h *ActivityHandler) ListActivities(c *fiber.Ctx) error {
	var (
		activities []models.Activity
		err        error
	)
	if activityContext := c.Query("context"); activityContext != "" {
		activities, err = h.store.GetActivitiesByContext(c.UserContext(), activityContext)
	} else {
		activities, err = h.store.GetActivities(c.UserContext())
	}
	if err != nil {
		slog.Error("list activities failed", "error", err, "request_id", requestID(c))
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to fetch activities")
	}
	return c.JSON(activities)
}

func (h *ActivityHandler) ListUserActivitiesForDate(c *fiber.Ctx) error {
	id, err := userID(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid user ID")
	}
	// The date is matched as an opaque string; a malformed one yields [].
	date := c.Params("date")

	rows, err := h.store.GetUserActivitiesForDate(c.UserContext(), id, date)
	if err != nil {
		slog.Error("list user activities failed", "error", err, "user_id", id, "date", date, "request_id", requestID(c))
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to fetch user activities")
	}
	return c.JSON(rows)
}

func (h *ActivityHandler) RecordUserActivity(c *fiber.Ctx) error {
	id, err := userID(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var req dto.RecordActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validator.Struct(&req); err != nil {
		slog.Info("activity rejected", "error", err, "user_id", id, "request_id", requestID(c))
		return errorJSON(c, fiber.StatusBadRequest, "Invalid input")
	}

	row, err := h.activityService.Record(c.UserContext(), id, &req)
	if err != nil {
		slog.Error("record activity failed", "error", err, "user_id", id, "request_id", requestID(c))
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to record activity")
	}
	return c.JSON(row)
}
