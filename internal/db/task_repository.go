package db

import (
	"errors"
	"time"

	"github.com/warsom77/to-do-list/internal/models"
	"gorm.io/gorm"
)

type TaskRepository struct {
	database *gorm.DB
}

func NewTaskRepository(database *gorm.DB) *TaskRepository {
	return &TaskRepository{database: database}
}

func (repo *TaskRepository) Create(task *models.Task) error {
	return repo.database.Create(task).Error
}

func (repo *TaskRepository) FindByOwnerAndName(username string, name string) (models.Task, bool, error) {
	var task models.Task
	err := repo.database.
		Where("username = ? AND name = ?", username, name).
		First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Task{}, false, nil
	}
	if err != nil {
		return models.Task{}, false, err
	}
	return task, true, nil
}

// DeleteByOwnerAndName removes the matching task if present and reports
// nothing when it is absent.
func (repo *TaskRepository) DeleteByOwnerAndName(username string, name string) error {
	return repo.database.
		Where("username = ? AND name = ?", username, name).
		Delete(&models.Task{}).Error
}

func (repo *TaskRepository) ListByOwnerAndType(username string, taskType string) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	if err := repo.database.
		Where("username = ? AND type = ?", username, taskType).
		Order("deadline ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// MarkMissedBefore flips every overdue task to missed and zeroes its
// point in the same batch update, so a missed task can never pay out.
func (repo *TaskRepository) MarkMissedBefore(cutoff time.Time) error {
	return repo.database.Model(&models.Task{}).
		Where("deadline < ? AND type <> ?", cutoff, models.TypeMissed).
		Updates(map[string]any{
			"type":   models.TypeMissed,
			"status": models.StatusMissed,
			"point":  0,
		}).Error
}

func (repo *TaskRepository) MarkUrgentBetween(from time.Time, to time.Time) error {
	return repo.database.Model(&models.Task{}).
		Where("deadline > ? AND deadline < ? AND type = ?", from, to, models.TypeCommon).
		Update("type", models.TypeUrgent).Error
}

// UpdateDeadline rewrites deadline, type and status for the matching
// task and reports how many rows matched so callers can surface a
// missing task without treating it as fatal.
func (repo *TaskRepository) UpdateDeadline(username string, name string, deadline time.Time, taskType string, status string) (int64, error) {
	result := repo.database.Model(&models.Task{}).
		Where("username = ? AND name = ?", username, name).
		Updates(map[string]any{
			"deadline": deadline,
			"type":     taskType,
			"status":   status,
		})
	return result.RowsAffected, result.Error
}
