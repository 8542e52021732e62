package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	registerPageRoutes(app, handler)
	registerAPIRoutes(app, handler)
}

func registerPageRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	app.Get("/login", handler.ShowLoginPage)
	app.Get("/register", handler.ShowRegisterPage)

	app.Get("/", handler.AuthRequired, handler.ShowTaskBoard)
	app.Get("/tasks", handler.AuthRequired, handler.ShowTaskBoard)
	app.Get("/tasks/new", handler.AuthRequired, handler.ShowNewTaskPage)
	app.Get("/points", handler.AuthRequired, handler.ShowPointsPage)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	tasks := api.Group("/tasks", handler.AuthRequired)
	tasks.Post("", handler.CreateTask)
	tasks.Post("/complete", handler.CompleteTask)
	tasks.Post("/delete", handler.DeleteTask)
	tasks.Post("/deadline", handler.UpdateTaskDeadline)

	points := api.Group("/points", handler.AuthRequired)
	points.Get("", handler.GetWeeklyPoints)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
