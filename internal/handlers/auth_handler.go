package handlers

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/validation"
	"github.com/gofiber/fiber/v2"
)

const HeaderAccessToken = "X-Access-Token"

type AuthHandler struct {
	authService *services.AuthService
	validator   *validation.Validator
}

func NewAuthHandler(authService *services.AuthService, validator *validation.Validator) *AuthHandler {
	return &AuthHandler{authService: authService, validator: validator}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validator.Struct(&req); err != nil {
		slog.Info("signup rejected", "error", err, "request_id", requestID(c))
		return errorJSON(c, fiber.StatusBadRequest, "Invalid input")
	}

	res, err := h.authService.Signup(c.UserContext(), &req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return errorJSON(c, fiber.StatusBadRequest, "User already exists")
		}
		slog.Error("signup failed", "error", err, "request_id", requestID(c))
		return errorJSON(c, fiber.StatusInternalServerError, "Signup failed")
	}

	if res.AccessToken != "" {
		c.Set(HeaderAccessToken, res.AccessToken)
	}
	return c.JSON(res.User)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	res, err := h.authService.Login(c.UserContext(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return errorJSON(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		slog.Error("login failed", "error", err, "request_id", requestID(c))
		return errorJSON(c, fiber.StatusInternalServerError, "Login failed")
	}

	if res.AccessToken != "" {
		c.Set(HeaderAccessToken, res.AccessToken)
	}
	return c.JSON(res.User)
}
