package routes

import (
	"slices"
	"time"

	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	pillarHandler *handlers.PillarHandler,
	activityHandler *handlers.ActivityHandler,
	catalogHandler *handlers.CatalogHandler,
	referralHandler *handlers.ReferralHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limit per IP
	api.Use(perIPLimiter(cfg.RateLimitMax))

	api.Get("/health", healthHandler.Check)

	// Auth gets a stricter limit
	auth := api.Group("/auth")
	auth.Use(perIPLimiter(cfg.AuthRateLimitMax))
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)

	// Catalogs and referral lookup are public
	api.Get("/pillars", pillarHandler.ListPillars)
	api.Get("/activities", activityHandler.ListActivities)
	api.Get("/achievements", catalogHandler.ListAchievements)
	api.Get("/rewards", catalogHandler.ListRewards)
	api.Get("/referrals/:code", referralHandler.GetReferral)

	// Per-user routes; guarded by the token subject when JWT is configured
	guard := middleware.UserScoped(cfg)
	scoped := func(h fiber.Handler) []fiber.Handler {
		return append(slices.Clone(guard), h)
	}

	api.Get("/users/:id", scoped(userHandler.GetUser)...)
	api.Put("/users/:id", scoped(userHandler.UpdateUser)...)
	api.Get("/users/:id/pillars", scoped(pillarHandler.ListUserPillars)...)
	api.Post("/users/:id/pillars", scoped(pillarHandler.UpsertUserPillar)...)
	api.Get("/users/:id/activities/:date", scoped(activityHandler.ListUserActivitiesForDate)...)
	api.Post("/users/:id/activities", scoped(activityHandler.RecordUserActivity)...)
	api.Get("/users/:id/achievements", scoped(catalogHandler.ListUserAchievements)...)
	api.Get("/users/:id/rewards", scoped(catalogHandler.ListUserRewards)...)
	api.Post("/users/:id/referrals", scoped(referralHandler.CreateReferral)...)
}

func perIPLimiter(max int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:               max,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
		LimitReached:      limitReached,
	})
}

func limitReached(c *fiber.Ctx) error {
	return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
		Error: true, Message: "Too many requests",
	})
}
