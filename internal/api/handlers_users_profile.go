package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/dailydiet/internal/services"
)

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(fiber.Map{"user": user})
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := profilePayload{}
	if err := parseJSONBody(c, &payload); err != nil {
		return bodyError(c, err)
	}

	updated, err := handler.userService.UpdateProfile(c.UserContext(), user.ID, services.ProfileUpdateInput{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		PhotoURL:  payload.PhotoURL,
		Weight:    payload.Weight,
		Height:    payload.Height,
		Goal:      payload.Goal,
	})
	if err != nil {
		return handler.respondServiceError(c, "update profile", err)
	}
	return c.JSON(fiber.Map{"user": updated})
}

func (handler *Handler) DeleteAccount(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.userService.DeleteAccount(c.UserContext(), user.ID); err != nil {
		return handler.respondServiceError(c, "delete account", err)
	}
	handler.clearSessionCookie(c)
	return c.SendStatus(fiber.StatusNoContent)
}

// ListAllUsers is public; EXPOSE_USER_DIRECTORY=false hides it.
func (handler *Handler) ListAllUsers(c *fiber.Ctx) error {
	if !handler.exposeUserDirectory {
		return apiError(c, fiber.StatusNotFound, "not found")
	}

	users, err := handler.userService.ListAll(c.UserContext())
	if err != nil {
		return handler.respondServiceError(c, "list users", err)
	}
	return c.JSON(fiber.Map{"total": len(users), "users": users})
}
