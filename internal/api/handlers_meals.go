package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/terraincognita07/dailydiet/internal/services"
)

func (handler *Handler) CreateMeal(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := mealPayload{}
	if err := parseJSONBody(c, &payload); err != nil {
		return bodyError(c, err)
	}

	meal, err := handler.mealService.Create(c.UserContext(), user.ID, payload.input())
	if err != nil {
		return handler.respondServiceError(c, "create meal", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"meal": meal})
}

func (handler *Handler) ListMeals(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	meals, err := handler.mealService.List(c.UserContext(), user.ID)
	if err != nil {
		return handler.respondServiceError(c, "list meals", err)
	}
	return c.JSON(fiber.Map{"meals": meals})
}

func (handler *Handler) GetMeal(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	mealID, ok := parseMealIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid meal id")
	}

	meal, err := handler.mealService.Get(c.UserContext(), user.ID, mealID)
	if err != nil {
		return handler.respondServiceError(c, "get meal", err)
	}
	return c.JSON(fiber.Map{"meal": meal})
}

func (handler *Handler) UpdateMeal(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	mealID, ok := parseMealIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid meal id")
	}

	payload := mealPayload{}
	if err := parseJSONBody(c, &payload); err != nil {
		return bodyError(c, err)
	}

	meal, err := handler.mealService.Update(c.UserContext(), user.ID, mealID, payload.input())
	if err != nil {
		return handler.respondServiceError(c, "update meal", err)
	}
	return c.JSON(fiber.Map{"meal": meal})
}

func (handler *Handler) DeleteMeal(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	mealID, ok := parseMealIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid meal id")
	}

	if err := handler.mealService.Delete(c.UserContext(), user.ID, mealID); err != nil {
		return handler.respondServiceError(c, "delete meal", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseMealIDParam(c *fiber.Ctx) (string, bool) {
	parsed, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}

func (payload mealPayload) input() services.MealInput {
	return services.MealInput{
		Name:        payload.Name,
		Description: payload.Description,
		Date:        payload.Date,
		Time:        payload.Time,
		OnDiet:      payload.OnDiet,
		Calories:    payload.Calories,
	}
}
