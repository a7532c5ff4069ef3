package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/straydog-api/internal/domain"
	"github.com/jhoicas/straydog-api/pkg/logger"
	"github.com/jhoicas/straydog-api/pkg/pagination"
	"github.com/jhoicas/straydog-api/pkg/response"
	"github.com/jhoicas/straydog-api/pkg/validation"
)

// ErrorHandler renders every error that reaches fiber as an envelope.
// *fiber.Error keeps its code and message; anything else is logged and
// answered with a generic 500.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(response.Fail(fe.Message))
		}
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			return c.Status(fiber.StatusBadRequest).JSON(response.ValidationFailed(verrs))
		}
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("request_id", requestID(c)).
			Msg("request failed")
		return c.Status(fiber.StatusInternalServerError).JSON(response.Fail("Internal server error"))
	}
}

// httpError translates use case errors into client errors. notFound is the
// message for domain.ErrNotFound; unknown errors pass through untouched.
func httpError(err error, notFound string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, notFound)
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.NewError(fiber.StatusBadRequest, "Email already registered")
	case errors.Is(err, domain.ErrAlreadyRegistered):
		return fiber.NewError(fiber.StatusBadRequest, "Already registered as a volunteer")
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, domain.ErrInactiveAccount):
		return fiber.NewError(fiber.StatusForbidden, "Account is deactivated")
	case errors.Is(err, domain.ErrForbidden):
		return fiber.NewError(fiber.StatusForbidden, "Insufficient permissions")
	case errors.Is(err, domain.ErrLocked):
		return fiber.NewError(fiber.StatusForbidden, "This post is locked")
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	case errors.Is(err, pagination.ErrInvalidOptions):
		return fiber.NewError(fiber.StatusBadRequest, "Invalid pagination parameters")
	}
	return err
}
