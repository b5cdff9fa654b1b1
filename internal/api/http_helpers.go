package api

import (
	"encoding/json"
	"errors"
	"reflect"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/dailydiet/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func validationError(c *fiber.Ctx, validation *services.ValidationError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  "validation failed",
		"fields": validation.Fields,
	})
}

func (handler *Handler) internalError(c *fiber.Ctx, operation string, err error) error {
	handler.logger.ErrorContext(c.UserContext(), operation+" failed",
		"error", err,
		"method", c.Method(),
		"path", c.Path(),
	)
	return apiError(c, fiber.StatusInternalServerError, "internal error")
}

// respondServiceError maps service errors onto HTTP statuses.
func (handler *Handler) respondServiceError(c *fiber.Ctx, operation string, err error) error {
	if validation, ok := services.AsValidationError(err); ok {
		return validationError(c, validation)
	}

	switch {
	case errors.Is(err, services.ErrEmailAlreadyUsed):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		return apiError(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrSessionNotFound), errors.Is(err, services.ErrUserNotFound):
		return apiError(c, fiber.StatusUnauthorized, "user not found")
	case errors.Is(err, services.ErrMealNotFound):
		return apiError(c, fiber.StatusNotFound, err.Error())
	default:
		return handler.internalError(c, operation, err)
	}
}

// parseJSONBody decodes the request body; an empty body decodes to the zero value.
func parseJSONBody(c *fiber.Ctx, target any) error {
	body := c.Body()
	if len(body) == 0 {
		return nil
	}
	return c.App().Config().JSONDecoder(body, target)
}

// bodyError reports a wrongly typed field as a field error; anything else is
// unparseable input.
func bodyError(c *fiber.Ctx, err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return validationError(c, &services.ValidationError{Fields: []services.FieldError{{
			Field:   typeErr.Field,
			Message: expectedTypeMessage(typeErr.Type),
		}}})
	}
	return apiError(c, fiber.StatusBadRequest, "invalid input")
}

func expectedTypeMessage(target reflect.Type) string {
	if target == nil {
		return "has an invalid type"
	}
	switch target.Kind() {
	case reflect.Bool:
		return "must be a boolean"
	case reflect.String:
		return "must be a string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "must be an integer"
	case reflect.Float32, reflect.Float64:
		return "must be a number"
	case reflect.Struct, reflect.Map:
		return "must be an object"
	case reflect.Slice, reflect.Array:
		return "must be an array"
	default:
		return "has an invalid type"
	}
}
