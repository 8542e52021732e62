package db

import (
	"fmt"
	"time"

	"github.com/warsom77/to-do-list/internal/models"
	"gorm.io/gorm"
)

// weekdayPointColumns pins each weekday to its counter column so point
// updates always target a fixed, known column name.
var weekdayPointColumns = map[time.Weekday]string{
	time.Monday:    "point_mon",
	time.Tuesday:   "point_tue",
	time.Wednesday: "point_wed",
	time.Thursday:  "point_thu",
	time.Friday:    "point_fri",
	time.Saturday:  "point_sat",
	time.Sunday:    "point_sun",
}

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByUsername(username string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("username = ?", username).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) ExistsByUsername(username string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("username = ?", username).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

// IncrementWeekdayPoints applies the delta in SQL, not read-modify-write.
func (repo *UserRepository) IncrementWeekdayPoints(username string, day time.Weekday, amount int) error {
	column, ok := weekdayPointColumns[day]
	if !ok {
		return fmt.Errorf("no point column for weekday %v", day)
	}
	return repo.database.Model(&models.User{}).
		Where("username = ?", username).
		UpdateColumn(column, gorm.Expr(column+" + ?", amount)).Error
}

func (repo *UserRepository) ResetWeekPoints(username string, resetAt time.Time) error {
	return repo.database.Model(&models.User{}).
		Where("username = ?", username).
		Updates(map[string]any{
			"point_mon":  0,
			"point_tue":  0,
			"point_wed":  0,
			"point_thu":  0,
			"point_fri":  0,
			"point_sat":  0,
			"point_sun":  0,
			"last_reset": resetAt,
		}).Error
}

func (repo *UserRepository) UpdatePasswordHash(username string, passwordHash string) error {
	return repo.database.Model(&models.User{}).
		Where("username = ?", username).
		Update("password_hash", passwordHash).Error
}
