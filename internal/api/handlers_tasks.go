package api

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/warsom77/to-do-list/internal/services"
)

func (handler *Handler) ShowTaskBoard(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	board, err := handler.taskService.ListTasks(user.Username)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load tasks")
	}

	flash := handler.popFlashCookie(c)
	return handler.render(c, "tasks", fiber.Map{
		"Title":       "Tasks",
		"Board":       board,
		"TaskError":   flash.TaskError,
		"TaskSuccess": flash.TaskSuccess,
	})
}

func (handler *Handler) ShowNewTaskPage(c *fiber.Ctx) error {
	flash := handler.popFlashCookie(c)
	return handler.render(c, "task_new", fiber.Map{
		"Title":     "New Task",
		"TaskError": flash.TaskError,
	})
}

func (handler *Handler) CreateTask(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := taskInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondTaskError(c, fiber.StatusBadRequest, "invalid input", "/tasks/new")
	}

	deadline, ok := parseDeadline(input.Deadline, handler.location)
	if !ok {
		return handler.respondTaskError(c, fiber.StatusBadRequest, "a valid deadline is required", "/tasks/new")
	}

	task, err := handler.taskService.CreateTask(services.CreateTaskInput{
		Name:        input.Name,
		Description: input.Description,
		Priority:    input.Priority,
		Deadline:    deadline,
		Username:    user.Username,
	})
	if err != nil {
		if errors.Is(err, services.ErrIncompleteTask) {
			return handler.respondTaskError(c, fiber.StatusBadRequest, err.Error(), "/tasks/new")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create task")
	}

	if acceptsJSON(c) {
		return c.Status(fiber.StatusCreated).JSON(task)
	}
	handler.setFlashCookie(c, FlashPayload{TaskSuccess: fmt.Sprintf("Task %q added", task.Name)})
	return c.Redirect("/tasks", fiber.StatusSeeOther)
}

func (handler *Handler) CompleteTask(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := taskActionInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondTaskError(c, fiber.StatusBadRequest, "invalid input", "/tasks")
	}

	if err := handler.taskService.CompleteTask(input.Name, user.Username); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to complete task")
	}

	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	handler.setFlashCookie(c, FlashPayload{TaskSuccess: fmt.Sprintf("Task %q done", input.Name)})
	return c.Redirect("/tasks", fiber.StatusSeeOther)
}

func (handler *Handler) DeleteTask(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := taskActionInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondTaskError(c, fiber.StatusBadRequest, "invalid input", "/tasks")
	}

	if err := handler.taskService.DeleteTask(input.Name, user.Username); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete task")
	}

	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	handler.setFlashCookie(c, FlashPayload{TaskSuccess: fmt.Sprintf("Task %q removed", input.Name)})
	return c.Redirect("/tasks", fiber.StatusSeeOther)
}

func (handler *Handler) UpdateTaskDeadline(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := deadlineInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondTaskError(c, fiber.StatusBadRequest, "invalid input", "/tasks")
	}

	deadline, ok := parseDeadline(input.Deadline, handler.location)
	if !ok {
		return handler.respondTaskError(c, fiber.StatusBadRequest, "a valid deadline is required", "/tasks")
	}

	if err := handler.taskService.UpdateDeadline(input.Name, deadline, user.Username); err != nil {
		switch {
		case errors.Is(err, services.ErrPastDeadline):
			return handler.respondTaskError(c, fiber.StatusBadRequest, err.Error(), "/tasks")
		case errors.Is(err, services.ErrTaskNotFound):
			return handler.respondTaskError(c, fiber.StatusNotFound, err.Error(), "/tasks")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to update deadline")
		}
	}

	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	handler.setFlashCookie(c, FlashPayload{TaskSuccess: fmt.Sprintf("Deadline for %q updated", input.Name)})
	return c.Redirect("/tasks", fiber.StatusSeeOther)
}

func (handler *Handler) respondTaskError(c *fiber.Ctx, status int, message string, redirectPath string) error {
	if acceptsJSON(c) {
		return apiError(c, status, message)
	}
	handler.setFlashCookie(c, FlashPayload{TaskError: message})
	return c.Redirect(redirectPath, fiber.StatusSeeOther)
}
