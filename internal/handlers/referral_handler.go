package handlers

import (
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/storage"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/validation"
	"github.com/gofiber/fiber/v2"
)

type ReferralHandler struct {
	store     storage.Storage
	validator *validation.Validator
}

func NewReferralHandler(store storage.Storage, validator *validation.Validator) *ReferralHandler {
	return &ReferralHandler{store: store, validator: validator}
}

func (h *ReferralHandler) CreateReferral(c *fiber.Ctx) error {
	id, err := userID(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var req dto.CreateReferralRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validator.Struct(&req); err != nil {
		slog.Info("referral rejected", "error", err, "user_id", id, "request_id", requestID(c))
		return errorJSON(c, fiber.StatusBadRequest, "Invalid input")
	}

	ref, err := h.store.CreateReferral(c.UserContext(), id, req.Email)
	if err != nil {
		slog.Error("create referral failed", "error", err, "user_id", id, "request_id", requestID(c))
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to create referral")
	}
	return c.JSON(ref)
}

func (h *ReferralHandler) GetReferral(c *fiber.Ctx) error {
	code := c.Params("code")
	ref, err := h.store.GetReferralByCode(c.UserContext(), code)
	if err != nil {
		slog.Error("get referral failed", "error", err, "code", code, "request_id", requestID(c))
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to fetch referral")
	}
	if ref == nil {
		return errorJSON(c, fiber.StatusNotFound, "Referral not found")
	}
	return c.JSON(ref)
}
