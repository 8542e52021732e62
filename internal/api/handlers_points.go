package api

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/warsom77/to-do-list/internal/services"
)

func (handler *Handler) ShowPointsPage(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	points, err := handler.pointsService.WeeklyPoints(user.Username)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load points")
	}

	hasPoints := false
	for _, day := range points {
		if day.Points > 0 {
			hasPoints = true
			break
		}
	}

	message, level := pointsComparison(points, time.Now().In(handler.location))
	return handler.render(c, "points", fiber.Map{
		"Title":      "Weekly Points",
		"Points":     points,
		"HasPoints":  hasPoints,
		"Comparison": message,
		"Level":      level,
	})
}

func (handler *Handler) GetWeeklyPoints(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	points, err := handler.pointsService.WeeklyPoints(user.Username)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return apiError(c, fiber.StatusNotFound, "user not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load points")
	}

	return c.JSON(fiber.Map{
		"username": user.Username,
		"points":   points,
	})
}

// pointsComparison builds the encouragement banner comparing today's
// tally against yesterday's.
func pointsComparison(points []services.DayPoints, now time.Time) (string, string) {
	today := now.Weekday().String()
	yesterday := now.AddDate(0, 0, -1).Weekday().String()

	todayPoints := 0
	yesterdayPoints := 0
	for _, day := range points {
		switch day.Day {
		case today:
			todayPoints = day.Points
		case yesterday:
			yesterdayPoints = day.Points
		}
	}

	switch {
	case todayPoints > yesterdayPoints:
		return fmt.Sprintf("Great job! Today (%s) beats yesterday (%s). Keep it up!", today, yesterday), "success"
	case todayPoints == yesterdayPoints:
		return fmt.Sprintf("Today (%s) matches yesterday (%s). Hold the pace!", today, yesterday), "info"
	default:
		return fmt.Sprintf("Today (%s) is behind yesterday (%s). Finish a task to catch up!", today, yesterday), "warning"
	}
}
