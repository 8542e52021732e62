package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/warsom77/to-do-list/internal/models"
	"gorm.io/gorm"
)

var (
	ErrMissingUsername = errors.New("username is required")
	ErrUserNotFound    = errors.New("user not found")
)

type PointsUserRepository interface {
	FindByUsername(username string) (models.User, error)
	IncrementWeekdayPoints(username string, day time.Weekday, amount int) error
	ResetWeekPoints(username string, resetAt time.Time) error
}

// PointsService is the weekly point ledger. It always loads the user
// fresh by username instead of trusting any session snapshot, and the
// weekly reset is evaluated lazily on every award, never on a timer.
type PointsService struct {
	users    PointsUserRepository
	location *time.Location
	now      func() time.Time
}

func NewPointsService(users PointsUserRepository, location *time.Location) *PointsService {
	if location == nil {
		location = time.UTC
	}
	return &PointsService{
		users:    users,
		location: location,
		now:      time.Now,
	}
}

// AddPoints credits today's counter for the user. Amount zero is legal
// and happens for missed-task completions.
func (service *PointsService) AddPoints(amount int, username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrMissingUsername
	}

	user, err := service.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("load user %s: %w", username, err)
	}

	now := service.now().In(service.location)
	if ResetDue(now, user.LastReset, service.location) {
		if err := service.users.ResetWeekPoints(username, now); err != nil {
			return fmt.Errorf("reset week points for %s: %w", username, err)
		}
	}

	if err := service.users.IncrementWeekdayPoints(username, now.Weekday(), amount); err != nil {
		return fmt.Errorf("increment points for %s: %w", username, err)
	}
	return nil
}

// WeeklyPoints is a pure read in Monday..Sunday order; it never applies
// the reset.
func (service *PointsService) WeeklyPoints(username string) ([]DayPoints, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrMissingUsername
	}

	user, err := service.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("load user %s: %w", username, err)
	}
	return WeeklyTally(user), nil
}
