package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"gympro_backend/internals/configs"
)

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)
	return tok
}

func newProtectedApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/me", AuthMiddleware(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"gym_id":   c.Locals("gym_id"),
			"admin_id": c.Locals("admin_id"),
			"role":     c.Locals("role"),
		})
	})
	return app
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	configs.JWTSecret = "middleware-test-secret"
	app := newProtectedApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareRejectsBadSignature(t *testing.T) {
	configs.JWTSecret = "middleware-test-secret"
	app := newProtectedApp(t)

	tok := signTestToken(t, "wrong-secret", jwt.MapClaims{
		"admin_id": uuid.NewString(),
		"gym_id":   uuid.NewString(),
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	configs.JWTSecret = "middleware-test-secret"
	app := newProtectedApp(t)

	tok := signTestToken(t, configs.JWTSecret, jwt.MapClaims{
		"admin_id": uuid.NewString(),
		"gym_id":   uuid.NewString(),
		"exp":      time.Now().Add(-time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareRejectsTokenWithoutTenant(t *testing.T) {
	configs.JWTSecret = "middleware-test-secret"
	app := newProtectedApp(t)

	tok := signTestToken(t, configs.JWTSecret, jwt.MapClaims{
		"admin_id": uuid.NewString(),
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareStoresClaims(t *testing.T) {
	configs.JWTSecret = "middleware-test-secret"
	app := fiber.New()

	gymID := uuid.NewString()
	adminID := uuid.NewString()

	var gotGym, gotAdmin, gotRole string
	app.Get("/me", AuthMiddleware(), func(c *fiber.Ctx) error {
		gotGym, _ = c.Locals("gym_id").(string)
		gotAdmin, _ = c.Locals("admin_id").(string)
		gotRole, _ = c.Locals("role").(string)
		return c.SendStatus(fiber.StatusOK)
	})

	tok := signTestToken(t, configs.JWTSecret, jwt.MapClaims{
		"admin_id": adminID,
		"gym_id":   gymID,
		"role":     "owner",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, gymID, gotGym)
	assert.Equal(t, adminID, gotAdmin)
	assert.Equal(t, "owner", gotRole)
}

func TestExtractBearerTokenFormats(t *testing.T) {
	app := fiber.New()

	var got string
	var gotErr error
	app.Get("/t", func(c *fiber.Ctx) error {
		got, gotErr = extractBearerToken(c)
		return c.SendStatus(fiber.StatusOK)
	})

	send := func(header string) {
		req := httptest.NewRequest("GET", "/t", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		_, err := app.Test(req)
		assert.NoError(t, err)
	}

	send("Bearer abc.def.ghi")
	assert.NoError(t, gotErr)
	assert.Equal(t, "abc.def.ghi", got)

	send("bearer  abc.def.ghi")
	assert.NoError(t, gotErr)
	assert.Equal(t, "abc.def.ghi", got)

	send("Token abc")
	assert.Error(t, gotErr)

	send("")
	assert.Error(t, gotErr)
}

func TestValidateTokenExpirySkew(t *testing.T) {
	// Just expired but inside the clock skew allowance.
	claims := jwt.MapClaims{"exp": float64(time.Now().Add(-10 * time.Second).Unix())}
	assert.NoError(t, validateTokenExpiry(claims, 30*time.Second))

	// Past the skew.
	claims = jwt.MapClaims{"exp": float64(time.Now().Add(-time.Minute).Unix())}
	assert.Error(t, validateTokenExpiry(claims, 30*time.Second))

	assert.Error(t, validateTokenExpiry(jwt.MapClaims{}, 0))
	assert.Error(t, validateTokenExpiry(jwt.MapClaims{"exp": "garbage"}, 0))
}
