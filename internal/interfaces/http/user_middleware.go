package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/straydog-api/internal/domain"
	"github.com/jhoicas/straydog-api/internal/domain/entity"
	"github.com/jhoicas/straydog-api/pkg/response"
)

// LocalUser holds the loaded *entity.User.
const LocalUser = "user"

// userLoader is the minimal contract LoadUser needs. *auth.AuthUseCase implements it.
type userLoader interface {
	User(ctx context.Context, userID string) (*entity.User, error)
}

// LoadUser fetches the caller's account after AuthMiddleware, for handlers
// that sign content with the caller's name.
//
//   - 401 when the account no longer exists.
//   - 403 when it was deactivated after the token was issued.
func LoadUser(users userLoader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(response.Fail("Not authenticated"))
		}
		user, err := users.User(c.UserContext(), userID)
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(response.Fail("User not found"))
		}
		if err != nil {
			return err
		}
		if !user.Active {
			return c.Status(fiber.StatusForbidden).JSON(response.Fail("Account is deactivated"))
		}
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// CurrentUser returns the account loaded by LoadUser, or nil.
func CurrentUser(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(LocalUser).(*entity.User)
	return u
}
