package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/warsom77/to-do-list/internal/services"
)

const (
	loginAttemptLimit  = 5
	loginAttemptWindow = 10 * time.Minute
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "invalid input", input.Username)
	}
	if strings.TrimSpace(input.ConfirmPassword) != strings.TrimSpace(input.Password) {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "passwords do not match", input.Username)
	}

	user, err := handler.authService.Register(input.Username, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCredentialsIncomplete):
			return handler.respondAuthError(c, fiber.StatusBadRequest, err.Error(), input.Username)
		case errors.Is(err, services.ErrUsernameTaken):
			return handler.respondAuthError(c, fiber.StatusConflict, err.Error(), input.Username)
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to create account")
		}
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return redirectOrJSON(c, "/tasks")
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "invalid input", input.Username)
	}

	limiterKey := requestLimiterKey(c)
	now := time.Now()
	if handler.loginLimiter.tooManyRecent(limiterKey, now, loginAttemptLimit, loginAttemptWindow) {
		return handler.respondAuthError(c, fiber.StatusTooManyRequests, "too many attempts, try again later", input.Username)
	}

	user, err := handler.authService.Login(input.Username, input.Password)
	if err != nil {
		handler.loginLimiter.addFailure(limiterKey, now, loginAttemptWindow)
		return handler.respondAuthError(c, fiber.StatusUnauthorized, services.ErrInvalidCredentials.Error(), input.Username)
	}
	handler.loginLimiter.reset(limiterKey)

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return redirectOrJSON(c, "/tasks")
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	handler.clearFlashCookie(c)
	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}

func (handler *Handler) respondAuthError(c *fiber.Ctx, status int, message string, username string) error {
	if acceptsJSON(c) {
		return apiError(c, status, message)
	}

	flash := FlashPayload{AuthError: message, LoginUsername: strings.TrimSpace(username)}
	handler.setFlashCookie(c, flash)
	if c.Path() == "/api/auth/register" {
		return c.Redirect("/register", fiber.StatusSeeOther)
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}
