package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	"github.com/jhoicas/straydog-api/pkg/jwt"
	"github.com/jhoicas/straydog-api/pkg/response"
)

// Locals keys for the authenticated caller.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// AuthMiddleware validates the Bearer token and stores the user id and role in c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, role, reason := parseBearer(c, jwtSecret)
		if reason != "" {
			return c.Status(fiber.StatusUnauthorized).JSON(response.Fail(reason))
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// OptionalAuth behaves like AuthMiddleware when a token is sent and lets
// anonymous requests through. Bad tokens are still rejected.
func OptionalAuth(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get(fiber.HeaderAuthorization) == "" {
			return c.Next()
		}
		return AuthMiddleware(jwtSecret)(c)
	}
}

// parseBearer returns the token's claims, or the 401 message when it is unusable.
func parseBearer(c *fiber.Ctx, secret string) (userID, role, reason string) {
	scheme, token, ok := strings.Cut(c.Get(fiber.HeaderAuthorization), " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", "", "No token provided"
	}
	userID, role, err := jwt.Parse(secret, token)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", "", "Token expired"
	case err != nil, userID == "":
		return "", "", "Invalid token"
	}
	return userID, role, ""
}

// RequireRole lets the request through only when the caller's role is one of
// roles. Must run after AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetUserID(c) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(response.Fail("Not authenticated"))
		}
		if !lo.Contains(roles, GetRole(c)) {
			return c.Status(fiber.StatusForbidden).JSON(response.Fail("Insufficient permissions"))
		}
		return c.Next()
	}
}

// GetUserID returns the caller's user id, or "" for anonymous requests.
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetRole returns the caller's role, or "".
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}
