package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/dailydiet/internal/services"
)

// AuthRequired resolves the session cookie to a user once per request.
// Handlers behind it read the user with currentUser.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	token, err := handler.sessionTokenFromCookie(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	user, err := handler.authService.ResolveSession(c.UserContext(), token)
	if errors.Is(err, services.ErrSessionNotFound) {
		return apiError(c, fiber.StatusUnauthorized, "user not found")
	}
	if err != nil {
		return handler.internalError(c, "resolve session", err)
	}

	c.Locals(contextUserKey, &user)
	return c.Next()
}
