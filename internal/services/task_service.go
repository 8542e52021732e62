package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/warsom77/to-do-list/internal/models"
)

var (
	ErrIncompleteTask = errors.New("all task fields are required")
	ErrPastDeadline   = errors.New("deadline must not be in the past")
	ErrTaskNotFound   = errors.New("task not found")
)

type TaskStore interface {
	Create(task *models.Task) error
	FindByOwnerAndName(username string, name string) (models.Task, bool, error)
	DeleteByOwnerAndName(username string, name string) error
	ListByOwnerAndType(username string, taskType string) ([]models.Task, error)
	MarkMissedBefore(cutoff time.Time) error
	MarkUrgentBetween(from time.Time, to time.Time) error
	UpdateDeadline(username string, name string, deadline time.Time, taskType string, status string) (int64, error)
}

type PointAwarder interface {
	AddPoints(amount int, username string) error
}

type CreateTaskInput struct {
	Name        string
	Description string
	Priority    string
	Deadline    time.Time
	Username    string
}

type TaskBoard struct {
	Urgent []models.Task
	Common []models.Task
	Missed []models.Task
}

func (board TaskBoard) Total() int {
	return len(board.Urgent) + len(board.Common) + len(board.Missed)
}

type TaskService struct {
	tasks    TaskStore
	points   PointAwarder
	location *time.Location
	now      func() time.Time
}

func NewTaskService(tasks TaskStore, points PointAwarder, location *time.Location) *TaskService {
	if location == nil {
		location = time.UTC
	}
	return &TaskService{
		tasks:    tasks,
		points:   points,
		location: location,
		now:      time.Now,
	}
}

func (service *TaskService) CreateTask(input CreateTaskInput) (models.Task, error) {
	name := strings.TrimSpace(input.Name)
	description := strings.TrimSpace(input.Description)
	priority := CanonicalPriority(input.Priority)
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return models.Task{}, ErrMissingUsername
	}
	if name == "" || description == "" || priority == "" || input.Deadline.IsZero() {
		return models.Task{}, ErrIncompleteTask
	}

	now := service.now().In(service.location)
	task := models.Task{
		Name:        name,
		Description: description,
		Priority:    priority,
		Deadline:    input.Deadline,
		Status:      models.StatusOngoing,
		Type:        ClassifyDeadline(input.Deadline, now),
		Point:       RollTaskPoint(priority),
		Username:    username,
		CreatedAt:   now,
	}
	if err := service.tasks.Create(&task); err != nil {
		return models.Task{}, fmt.Errorf("create task %s: %w", name, err)
	}
	return task, nil
}

// ReclassifyAll is the deadline sweep run before every listing. Both
// branches are batch conditional updates, so running it twice in a row
// changes nothing: overdue tasks become missed with their point zeroed,
// and common tasks inside the urgent window become urgent.
func (service *TaskService) ReclassifyAll() error {
	now := service.now().In(service.location)
	if err := service.tasks.MarkMissedBefore(now); err != nil {
		return fmt.Errorf("mark missed tasks: %w", err)
	}
	if err := service.tasks.MarkUrgentBetween(now, now.Add(UrgentWindow)); err != nil {
		return fmt.Errorf("mark urgent tasks: %w", err)
	}
	return nil
}

func (service *TaskService) ListTasks(username string) (TaskBoard, error) {
	if err := service.ReclassifyAll(); err != nil {
		return TaskBoard{}, err
	}

	board := TaskBoard{}
	groups := []struct {
		taskType string
		into     *[]models.Task
	}{
		{models.TypeUrgent, &board.Urgent},
		{models.TypeCommon, &board.Common},
		{models.TypeMissed, &board.Missed},
	}
	for _, group := range groups {
		tasks, err := service.tasks.ListByOwnerAndType(username, group.taskType)
		if err != nil {
			return TaskBoard{}, fmt.Errorf("list %s tasks: %w", group.taskType, err)
		}
		*group.into = tasks
	}
	return board, nil
}

// CompleteTask awards the task's point value to today's counter and
// removes the task. Missed tasks are removed without any award, and a
// task that no longer exists completes as a silent no-op. The award and
// the delete are two separate storage writes, not one transaction.
func (service *TaskService) CompleteTask(name string, username string) error {
	task, found, err := service.tasks.FindByOwnerAndName(username, name)
	if err != nil {
		return fmt.Errorf("load task %s: %w", name, err)
	}
	if !found {
		return nil
	}

	if task.Type != models.TypeMissed {
		if err := service.points.AddPoints(task.Point, username); err != nil {
			return fmt.Errorf("award points for %s: %w", name, err)
		}
	}
	if err := service.tasks.DeleteByOwnerAndName(username, name); err != nil {
		return fmt.Errorf("delete task %s: %w", name, err)
	}
	return nil
}

// UpdateDeadline gives a missed task a second chance: the new deadline
// must still be ahead of now, the type is re-derived from the urgent
// window and the status returns to ongoing.
func (service *TaskService) UpdateDeadline(name string, deadline time.Time, username string) error {
	now := service.now().In(service.location)
	if deadline.Before(now) {
		return ErrPastDeadline
	}

	matched, err := service.tasks.UpdateDeadline(
		username,
		strings.TrimSpace(name),
		deadline,
		ClassifyDeadline(deadline, now),
		models.StatusOngoing,
	)
	if err != nil {
		return fmt.Errorf("update deadline for %s: %w", name, err)
	}
	if matched == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (service *TaskService) DeleteTask(name string, username string) error {
	if err := service.tasks.DeleteByOwnerAndName(username, name); err != nil {
		return fmt.Errorf("delete task %s: %w", name, err)
	}
	return nil
}
