package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	v1 := app.Group("/v1")
	registerUserRoutes(v1, handler)
	registerMealRoutes(v1, handler)

	modifications := v1.Group("/meal-modifications", handler.AuthRequired)
	modifications.Get("", handler.ListMealModifications)
	modifications.Post("", handler.CreateMealModification)
}

func registerUserRoutes(router fiber.Router, handler *Handler) {
	users := router.Group("/users")
	users.Post("", handler.Register)
	users.Get("/listAllUsers", handler.ListAllUsers)
	users.Post("/login", handler.Login)
	users.Post("/logout", handler.Logout)
	users.Get("", handler.AuthRequired, handler.GetProfile)
	users.Put("/profile", handler.AuthRequired, handler.UpdateProfile)
	users.Delete("", handler.AuthRequired, handler.DeleteAccount)
}

func registerMealRoutes(router fiber.Router, handler *Handler) {
	meals := router.Group("/meals", handler.AuthRequired)
	meals.Post("", handler.CreateMeal)
	meals.Get("", handler.ListMeals)
	meals.Get("/metrics", handler.GetMealMetrics)
	meals.Get("/metrics/daily", handler.GetDailyMealMetrics)
	meals.Get("/:id", handler.GetMeal)
	meals.Put("/:id", handler.UpdateMeal)
	meals.Delete("/:id", handler.DeleteMeal)
}
