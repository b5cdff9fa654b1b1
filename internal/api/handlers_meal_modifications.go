package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/dailydiet/internal/services"
)

func (handler *Handler) CreateMealModification(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := mealModificationPayload{}
	if err := parseJSONBody(c, &payload); err != nil {
		return bodyError(c, err)
	}

	if _, err := handler.modificationService.Record(c.UserContext(), user.ID, services.ModificationInput{
		MealID:   payload.MealID,
		Type:     payload.Type,
		MealData: payload.MealData,
	}); err != nil {
		return handler.respondServiceError(c, "record meal modification", err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

func (handler *Handler) ListMealModifications(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	modifications, err := handler.modificationService.ListRecent(c.UserContext(), user.ID)
	if err != nil {
		return handler.respondServiceError(c, "list meal modifications", err)
	}
	return c.JSON(fiber.Map{"modifications": modifications})
}
