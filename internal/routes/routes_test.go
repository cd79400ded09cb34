package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/storage"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/validation"
)

func testConfig() *config.Config {
	return &config.Config{
		BcryptCost:       bcrypt.MinCost,
		JWTAccessExpiry:  time.Minute,
		CORSOrigins:      "*",
		RateLimitMax:     1000,
		AuthRateLimitMax: 1000,
	}
}

func newTestApp(t *testing.T, cfg *config.Config) *fiber.App {
	t.Helper()
	store := storage.NewMemStorage()
	validator := validation.New()

	app := fiber.New()
	app.Use(requestid.New())
	Setup(app, cfg,
		handlers.NewAuthHandler(services.NewAuthService(store, cfg), validator),
		handlers.NewUserHandler(store, validator),
		handlers.NewPillarHandler(store, validator),
		handlers.NewActivityHandler(store, services.NewActivityService(store), validator),
		handlers.NewCatalogHandler(store),
		handlers.NewReferralHandler(store, validator),
		handlers.NewHealthHandler(store),
	)
	return app
}

type reqOpt func(*http.Request)

func withBearer(token string) reqOpt {
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
}

func do(t *testing.T, app *fiber.App, method, path string, body interface{}, opts ...reqOpt) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, opt := range opts {
		opt(req)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func decode(t *testing.T, raw []byte) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &m), string(raw))
	return m
}

func decodeList(t *testing.T, raw []byte) []map[string]interface{} {
	t.Helper()
	var l []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &l), string(raw))
	return l
}

func signup(t *testing.T, app *fiber.App, email string) map[string]interface{} {
	t.Helper()
	resp, raw := do(t, app, http.MethodPost, "/api/auth/signup", fiber.Map{"email": email, "password": "secret"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	return decode(t, raw)
}

func TestSignupActivityCreditsPoints(t *testing.T) {
	app := newTestApp(t, testConfig())

	user := signup(t, app, "a@x.com")
	assert.Equal(t, float64(1), user["id"])
	assert.Equal(t, float64(10), user["healthPoints"])
	assert.Equal(t, float64(1), user["level"])
	assert.NotContains(t, user, "password")

	resp, raw := do(t, app, http.MethodPost, "/api/users/1/activities",
		fiber.Map{"activityId": 1, "pointsEarned": 5, "date": "2024-01-01"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	row := decode(t, raw)
	assert.Equal(t, float64(2), row["id"])
	assert.Equal(t, float64(5), row["pointsEarned"])

	resp, raw = do(t, app, http.MethodGet, "/api/users/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(15), decode(t, raw)["healthPoints"])

	resp, raw = do(t, app, http.MethodGet, "/api/users/1/activities/2024-01-01", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeList(t, raw), 1)

	resp, raw = do(t, app, http.MethodGet, "/api/users/1/activities/2024-01-02", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "[]", string(raw))
}

func TestSignupValidation(t *testing.T) {
	app := newTestApp(t, testConfig())
	signup(t, app, "a@x.com")

	resp, raw := do(t, app, http.MethodPost, "/api/auth/signup", fiber.Map{"email": "a@x.com", "password": "other"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode(t, raw)
	assert.Equal(t, true, body["error"])
	assert.Equal(t, "User already exists", body["message"])

	resp, _ = do(t, app, http.MethodPost, "/api/auth/signup", fiber.Map{"email": "not-an-email", "password": "pw"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, app, http.MethodPost, "/api/auth/signup", fiber.Map{"email": "b@x.com"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	app := newTestApp(t, testConfig())
	signup(t, app, "a@x.com")

	resp, raw := do(t, app, http.MethodPost, "/api/auth/login", fiber.Map{"email": "a@x.com", "password": "secret"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, raw)
	assert.Equal(t, "a@x.com", body["email"])
	assert.NotContains(t, body, "password")

	resp, raw = do(t, app, http.MethodPost, "/api/auth/login", fiber.Map{"email": "a@x.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", decode(t, raw)["message"])

	resp, _ = do(t, app, http.MethodPost, "/api/auth/login", fiber.Map{"email": "nobody@x.com", "password": "secret"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUsers(t *testing.T) {
	app := newTestApp(t, testConfig())
	signup(t, app, "a@x.com")

	resp, _ := do(t, app, http.MethodGet, "/api/users/99", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = do(t, app, http.MethodGet, "/api/users/abc", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, raw := do(t, app, http.MethodPut, "/api/users/1", fiber.Map{"firstName": "Ann", "onboardingComplete": true, "level": 2})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	user := decode(t, raw)
	assert.Equal(t, "Ann", user["firstName"])
	assert.Equal(t, true, user["onboardingComplete"])
	assert.Equal(t, float64(2), user["level"])
	assert.Equal(t, "a@x.com", user["email"])

	resp, _ = do(t, app, http.MethodPut, "/api/users/99", fiber.Map{"firstName": "Ghost"})
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	resp, _ = do(t, app, http.MethodPut, "/api/users/1", fiber.Map{"healthPoints": -1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPillars(t *testing.T) {
	app := newTestApp(t, testConfig())
	signup(t, app, "a@x.com")

	resp, raw := do(t, app, http.MethodGet, "/api/pillars", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeList(t, raw), 6)

	resp, raw = do(t, app, http.MethodPost, "/api/users/1/pillars", fiber.Map{"pillarId": 2, "score": 3})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	first := decode(t, raw)
	assert.Equal(t, float64(3), first["score"])
	assert.Equal(t, float64(0), first["totalPoints"])

	resp, raw = do(t, app, http.MethodPost, "/api/users/1/pillars", fiber.Map{"pillarId": 2})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	second := decode(t, raw)
	assert.Equal(t, first["id"], second["id"])
	assert.Equal(t, float64(3), second["score"])

	resp, raw = do(t, app, http.MethodGet, "/api/users/1/pillars", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeList(t, raw), 1)

	resp, _ = do(t, app, http.MethodPost, "/api/users/1/pillars", fiber.Map{"pillarId": 2, "score": 5})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, app, http.MethodPost, "/api/users/1/pillars", fiber.Map{"score": 1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestActivities(t *testing.T) {
	app := newTestApp(t, testConfig())

	resp, raw := do(t, app, http.MethodGet, "/api/activities", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeList(t, raw), 9)

	resp, raw = do(t, app, http.MethodGet, "/api/activities?context=morning", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	morning := decodeList(t, raw)
	assert.Len(t, morning, 4)
	for _, a := range morning {
		assert.Equal(t, "morning", a["context"])
	}

	resp, raw = do(t, app, http.MethodGet, "/api/activities?context=night", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "[]", string(raw))

	resp, _ = do(t, app, http.MethodPost, "/api/users/1/activities", fiber.Map{"activityId": 1, "pointsEarned": 5, "date": "Jan 1"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, app, http.MethodPost, "/api/users/1/activities", fiber.Map{"activityId": 1, "date": "2024-01-01"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, raw = do(t, app, http.MethodGet, "/api/users/1/activities/yesterday", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "[]", string(raw))
}

func TestCatalogs(t *testing.T) {
	app := newTestApp(t, testConfig())

	resp, raw := do(t, app, http.MethodGet, "/api/achievements", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	achievements := decodeList(t, raw)
	require.Len(t, achievements, 5)
	assert.IsType(t, map[string]interface{}{}, achievements[0]["requirement"])

	resp, raw = do(t, app, http.MethodGet, "/api/rewards", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeList(t, raw), 3)

	for _, path := range []string{"/api/users/1/achievements", "/api/users/1/rewards"} {
		resp, raw = do(t, app, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "[]", string(raw))
	}
}

func TestReferrals(t *testing.T) {
	app := newTestApp(t, testConfig())
	signup(t, app, "a@x.com")

	resp, raw := do(t, app, http.MethodPost, "/api/users/1/referrals", fiber.Map{"email": "friend@x.com"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	ref := decode(t, raw)
	code, _ := ref["code"].(string)
	assert.Len(t, code, 6)
	assert.Equal(t, "pending", ref["status"])
	assert.Equal(t, float64(1), ref["referrerId"])
	assert.Equal(t, float64(0), ref["pointsAwarded"])
	assert.Nil(t, ref["refereeId"])

	resp, raw = do(t, app, http.MethodGet, "/api/referrals/"+code, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "friend@x.com", decode(t, raw)["refereeEmail"])

	resp, raw = do(t, app, http.MethodGet, "/api/referrals/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Referral not found", decode(t, raw)["message"])

	resp, _ = do(t, app, http.MethodPost, "/api/users/1/referrals", fiber.Map{"email": ""})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	app := newTestApp(t, testConfig())

	resp, raw := do(t, app, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, raw)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "ok", body["storage"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestUserRoutesRequireOwnToken(t *testing.T) {
	cfg := testConfig()
	cfg.JWTSecret = "test-secret"
	app := newTestApp(t, cfg)

	resp, _ := do(t, app, http.MethodPost, "/api/auth/signup", fiber.Map{"email": "a@x.com", "password": "secret"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token := resp.Header.Get(handlers.HeaderAccessToken)
	require.NotEmpty(t, token)
	signup(t, app, "b@x.com")

	resp, _ = do(t, app, http.MethodGet, "/api/users/1", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = do(t, app, http.MethodGet, "/api/users/1", nil, withBearer(token))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = do(t, app, http.MethodGet, "/api/users/2", nil, withBearer(token))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = do(t, app, http.MethodGet, "/api/pillars", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.AuthRateLimitMax = 2
	app := newTestApp(t, cfg)

	for i := 0; i < 2; i++ {
		resp, _ := do(t, app, http.MethodPost, "/api/auth/login", fiber.Map{"email": "x@x.com", "password": "pw"})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}
	resp, raw := do(t, app, http.MethodPost, "/api/auth/login", fiber.Map{"email": "x@x.com", "password": "pw"})
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	body := decode(t, raw)
	assert.Equal(t, true, body["error"])
	assert.Equal(t, "Too many requests", body["message"])
}
