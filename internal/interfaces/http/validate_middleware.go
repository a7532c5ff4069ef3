package http

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/straydog-api/pkg/response"
	"github.com/jhoicas/straydog-api/pkg/validation"
)

// Validate runs set against the request body, query string and path params
// before the handler. Any failing rule answers 400 with every failure listed.
func Validate(v *validation.Validator, set validation.RuleSet) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, err := bodyFields(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		errs := v.Check(set, validation.Input{
			Body:   body,
			Query:  c.Queries(),
			Params: c.AllParams(),
		})
		if len(errs) > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(response.ValidationFailed(errs))
		}
		return c.Next()
	}
}

// bodyFields decodes a JSON object or a form body into untyped fields.
// An empty body yields no fields.
func bodyFields(c *fiber.Ctx) (map[string]any, error) {
	raw := bytes.TrimSpace(c.Body())
	if len(raw) == 0 {
		return nil, nil
	}
	switch {
	case bytes.HasPrefix([]byte(c.Get(fiber.HeaderContentType)), []byte(fiber.MIMEApplicationForm)):
		fields := map[string]any{}
		c.Request().PostArgs().VisitAll(func(k, v []byte) {
			fields[string(k)] = string(v)
		})
		return fields, nil
	default:
		var fields map[string]any
		if err := c.App().Config().JSONDecoder(raw, &fields); err != nil {
			return nil, err
		}
		return fields, nil
	}
}
