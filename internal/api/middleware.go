package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/warsom77/to-do-list/internal/models"
)

const (
	authCookieName  = "todolist_auth"
	flashCookieName = "todolist_flash"
	contextUserKey  = "current_user"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}
