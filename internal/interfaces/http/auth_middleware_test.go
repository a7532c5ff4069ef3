package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/straydog-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/straydog-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "507f1f77bcf86cd799439011"
	testIssuer    = "straydog-api-test"
	testExpMin    = 60
)

// buildTestApp builds a minimal app with a route behind AuthMiddleware and
// RequireRole that answers 200 when both let the request through.
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"ok": true, "role": apphttp.GetRole(c)})
		},
	)
	return app
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// envelope decodes a response body into a generic map.
func envelope(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminOnAdminRoute(t *testing.T) {
	resp := doRequest(t, buildTestApp("ADMIN"), tokenForRole(t, "ADMIN"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := envelope(t, resp)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "ADMIN", body["role"])
}

func TestRequireRole_AnyOfSeveralRoles(t *testing.T) {
	resp := doRequest(t, buildTestApp("ADMIN", "VOLUNTEER"), tokenForRole(t, "VOLUNTEER"))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_WrongRoleIsForbidden(t *testing.T) {
	resp := doRequest(t, buildTestApp("ADMIN"), tokenForRole(t, "USER"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body := envelope(t, resp)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Insufficient permissions", body["message"])
}

func TestRequireRole_TokenWithoutRoleIsForbidden(t *testing.T) {
	resp := doRequest(t, buildTestApp("ADMIN"), tokenForRole(t, ""))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireRole_WithoutAuthMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/protected", apphttp.RequireRole("ADMIN"), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp := doRequest(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Not authenticated", envelope(t, resp)["message"])
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_Rejections(t *testing.T) {
	expired, err := pkgjwt.Generate(testJWTSecret, testUserID, "USER", testIssuer, -1)
	require.NoError(t, err)
	foreign, err := pkgjwt.Generate("another-secret", testUserID, "USER", testIssuer, testExpMin)
	require.NoError(t, err)

	cases := []struct {
		name, header, message string
	}{
		{"missing header", "", "No token provided"},
		{"wrong scheme", "Basic abc", "No token provided"},
		{"empty bearer", "Bearer ", "No token provided"},
		{"malformed", "Bearer not.a.token", "Invalid token"},
		{"foreign secret", "Bearer " + foreign, "Invalid token"},
		{"expired", "Bearer " + expired, "Token expired"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doRequest(t, buildTestApp("USER"), tc.header)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			body := envelope(t, resp)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tc.message, body["message"])
		})
	}
}

func TestAuthMiddleware_ExtractsClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": apphttp.GetUserID(c), "role": apphttp.GetRole(c)})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForRole(t, "VOLUNTEER"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := envelope(t, resp)
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "VOLUNTEER", body["role"])
}

func TestOptionalAuth(t *testing.T) {
	app := fiber.New()
	app.Get("/protected", apphttp.OptionalAuth(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": apphttp.GetUserID(c)})
	})

	resp := doRequest(t, app, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "", envelope(t, resp)["user_id"])

	resp = doRequest(t, app, tokenForRole(t, "USER"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, testUserID, envelope(t, resp)["user_id"])

	resp = doRequest(t, app, "Bearer garbage")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
