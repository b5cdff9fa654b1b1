package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/dailydiet/internal/services"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	payload := registerPayload{}
	if err := parseJSONBody(c, &payload); err != nil {
		return bodyError(c, err)
	}

	user, sessionToken, err := handler.authService.Register(c.UserContext(), services.RegistrationInput{
		Email:     payload.Email,
		Password:  payload.Password,
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		PhotoURL:  payload.PhotoURL,
		Weight:    payload.Weight,
		Height:    payload.Height,
		Goal:      payload.Goal,
	}, handler.presentedSessionToken(c))
	if err != nil {
		return handler.respondServiceError(c, "register user", err)
	}

	if err := handler.setSessionCookie(c, sessionToken); err != nil {
		return handler.internalError(c, "create session cookie", err)
	}
	return c.JSON(fiber.Map{"user": user})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	payload := loginPayload{}
	if err := parseJSONBody(c, &payload); err != nil {
		return bodyError(c, err)
	}

	user, sessionToken, err := handler.authService.Login(c.UserContext(), services.LoginInput{
		Email:    payload.Email,
		Password: payload.Password,
	}, handler.presentedSessionToken(c))
	if err != nil {
		return handler.respondServiceError(c, "login", err)
	}

	if err := handler.setSessionCookie(c, sessionToken); err != nil {
		return handler.internalError(c, "create session cookie", err)
	}
	return c.JSON(fiber.Map{"user": user})
}

// Logout succeeds with or without a session; a readable token is revoked.
func (handler *Handler) Logout(c *fiber.Ctx) error {
	if c.Cookies(sessionCookieName) != "" {
		if err := handler.authService.Logout(c.UserContext(), handler.presentedSessionToken(c)); err != nil {
			return handler.internalError(c, "logout", err)
		}
		handler.clearSessionCookie(c)
	}
	return c.JSON(fiber.Map{"message": "logged out"})
}
