package handlers

import (
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/storage"
	"github.com/gofiber/fiber/v2"
)

// CatalogHandler serves achievements and rewards. Nothing in the API grants
// either, so the per-user lists stay empty.
type CatalogHandler struct {
	store storage.Storage
}

func NewCatalogHandler(store storage.Storage) *CatalogHandler {
	return &CatalogHandler{store: store}
}

func (h *CatalogHandler) ListAchievements(c *fiber.Ctx) error {
	rows, err := h.store.GetAchievements(c.UserContext())
	if err != nil {
		slog.Error("list achievements failed", "error", err, "request_id", requestID(c))
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to fetch achievements")
	}
	return c.JSON(rows)
}

func (h *CatalogHandler) ListUserAchievements(c *fiber.Ctx) error {
	id, err := userID(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid user ID")
	}
	rows, err := h.store.GetUserAchievements(c.UserContext(), id)
	if err != nil {
		slog.Error("list user achievements failed", "error", err, "user_id", id, "request_id", requestID(c))
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to fetch user achievements")
	}
	return c.JSON(rows)
}

func (h *CatalogHandler) ListRewards(c *fiber.Ctx) error {
	rows, err := h.store.GetRewards(c.UserContext())
	if err != nil {
		slog.Error("list rewards failed", "error", err, "request_id", requestID(c))
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to fetch rewards")
	}
	return c.JSON(rows)
}

func (h *CatalogHandler) ListUserRewards(c *fiber.Ctx) error {
	id, err := userID(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid user ID")
	}
	rows, err := h.store.GetUserRewards(c.UserContext(), id)
	if err != nil {
		slog.Error("list user rewards failed", "error", err, "user_id", id, "request_id", requestID(c))
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to fetch user rewards")
	}
	return c.JSON(rows)
}
