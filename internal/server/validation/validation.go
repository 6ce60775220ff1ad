package validation

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Validatable is implemented by requests with rules beyond struct tags.
type Validatable interface {
	Validate() error
}

// DecorateWithBodyEx parses the body (JSON, form or multipart) into T,
// validates it and passes it to next.
func DecorateWithBodyEx[T any](v *validator.Validate, next func(c *fiber.Ctx, req *T) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(T)
		if err := c.BodyParser(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("failed to parse body: %s", err))
		}

		if err := validate(v, req); err != nil {
			return err
		}

		return next(c, req)
	}
}

// DecorateWithQueryEx is DecorateWithBodyEx for query strings.
func DecorateWithQueryEx[T any](v *validator.Validate, next func(c *fiber.Ctx, req *T) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(T)
		if err := c.QueryParser(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("failed to parse query: %s", err))
		}

		if err := validate(v, req); err != nil {
			return err
		}

		return next(c, req)
	}
}

// ParamID reads a positive integer route parameter.
func ParamID(c *fiber.Ctx, name string) (int64, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("invalid %s", name))
	}

	return int64(id), nil
}

// OptionalDate parses a YYYY-MM-DD value, an empty value yields nil.
func OptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil //nolint:nilnil //empty means unset
	}

	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("invalid date %q", value))
	}

	return &t, nil
}

func validate(v *validator.Validate, req any) error {
	if err := v.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if val, ok := req.(Validatable); ok {
		if err := val.Validate(); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}

	return nil
}
