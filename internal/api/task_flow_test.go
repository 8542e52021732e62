package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/warsom77/to-do-list/internal/models"
)

func decodeTask(t *testing.T, response *http.Response) models.Task {
	t.Helper()
	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	task := models.Task{}
	if err := json.Unmarshal(body, &task); err != nil {
		t.Fatalf("decode task body %q: %v", body, err)
	}
	return task
}

func TestCreateCompleteAndPointsFlow(t *testing.T) {
	app, database := newTestApp(t)
	cookie := registerTestUser(t, app, "worker", "pw")

	deadline := time.Now().UTC().Add(48 * time.Hour).Format("2006-01-02T15:04")
	created := postFormJSON(t, app, "/api/tasks", url.Values{
		"name":        {"quarterly report"},
		"description": {"compile the numbers"},
		"priority":    {"tinggi"},
		"deadline":    {deadline},
	}, cookie)
	if created.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 for task creation, got %d", created.StatusCode)
	}
	task := decodeTask(t, created)
	if task.Priority != models.PriorityHigh {
		t.Fatalf("expected priority %q, got %q", models.PriorityHigh, task.Priority)
	}
	if task.Type != models.TypeCommon {
		t.Fatalf("expected type %q for a far deadline, got %q", models.TypeCommon, task.Type)
	}
	if task.Point < 11 || task.Point > 15 {
		t.Fatalf("expected high-priority reward in [11, 15], got %d", task.Point)
	}

	board := getWithCookies(t, app, "/tasks", false, cookie)
	if board.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for task board, got %d", board.StatusCode)
	}
	page, err := io.ReadAll(board.Body)
	if err != nil {
		t.Fatalf("read board page: %v", err)
	}
	if !strings.Contains(string(page), "quarterly report") {
		t.Fatal("expected the new task on the board page")
	}

	completed := postFormJSON(t, app, "/api/tasks/complete", url.Values{
		"name": {"quarterly report"},
	}, cookie)
	if completed.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for completion, got %d", completed.StatusCode)
	}

	var remaining int64
	if err := database.Model(&models.Task{}).Where("username = ?", "worker").Count(&remaining).Error; err != nil {
		t.Fatalf("count tasks: %v", err)
	}
	if remaining != 0 {
		t.Fatalf("expected completed task removed, %d rows remain", remaining)
	}

	points := getWithCookies(t, app, "/api/points", true, cookie)
	if points.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for weekly points, got %d", points.StatusCode)
	}
	body, err := io.ReadAll(points.Body)
	if err != nil {
		t.Fatalf("read points body: %v", err)
	}
	payload := struct {
		Username string `json:"username"`
		Points   []struct {
			Day    string `json:"day"`
			Points int    `json:"points"`
		} `json:"points"`
	}{}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("decode points body %q: %v", body, err)
	}
	if payload.Username != "worker" {
		t.Fatalf("expected points for worker, got %q", payload.Username)
	}

	today := time.Now().UTC().Weekday().String()
	credited := -1
	for _, day := range payload.Points {
		if day.Day == today {
			credited = day.Points
		}
	}
	if credited != task.Point {
		t.Fatalf("expected %d points credited on %s, got %d", task.Point, today, credited)
	}

	// completing an absent task pays nothing and still succeeds
	again := postFormJSON(t, app, "/api/tasks/complete", url.Values{
		"name": {"quarterly report"},
	}, cookie)
	if again.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for repeated completion, got %d", again.StatusCode)
	}
}

func TestCreateTaskRejectsIncompleteInput(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := registerTestUser(t, app, "strict", "pw")

	deadline := time.Now().UTC().Add(time.Hour).Format("2006-01-02T15:04")
	missingName := postFormJSON(t, app, "/api/tasks", url.Values{
		"description": {"no name"},
		"priority":    {"low"},
		"deadline":    {deadline},
	}, cookie)
	if missingName.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing name, got %d", missingName.StatusCode)
	}

	badDeadline := postFormJSON(t, app, "/api/tasks", url.Values{
		"name":        {"untimed"},
		"description": {"broken clock"},
		"priority":    {"low"},
		"deadline":    {"soon"},
	}, cookie)
	if badDeadline.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed deadline, got %d", badDeadline.StatusCode)
	}
}

func TestUpdateDeadlineOverHTTP(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := registerTestUser(t, app, "planner", "pw")

	deadline := time.Now().UTC().Add(2 * time.Hour).Format("2006-01-02T15:04")
	created := postFormJSON(t, app, "/api/tasks", url.Values{
		"name":        {"standup prep"},
		"description": {"collect updates"},
		"priority":    {"medium"},
		"deadline":    {deadline},
	}, cookie)
	if created.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 for task creation, got %d", created.StatusCode)
	}

	past := time.Now().UTC().Add(-time.Hour).Format("2006-01-02T15:04")
	rejected := postFormJSON(t, app, "/api/tasks/deadline", url.Values{
		"name":     {"standup prep"},
		"deadline": {past},
	}, cookie)
	if rejected.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for past deadline, got %d", rejected.StatusCode)
	}

	missing := postFormJSON(t, app, "/api/tasks/deadline", url.Values{
		"name":     {"no such task"},
		"deadline": {time.Now().UTC().Add(3 * time.Hour).Format("2006-01-02T15:04")},
	}, cookie)
	if missing.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown task, got %d", missing.StatusCode)
	}

	moved := postFormJSON(t, app, "/api/tasks/deadline", url.Values{
		"name":     {"standup prep"},
		"deadline": {time.Now().UTC().Add(72 * time.Hour).Format("2006-01-02T15:04")},
	}, cookie)
	if moved.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for deadline update, got %d", moved.StatusCode)
	}
}

func TestDeleteTaskOverHTTP(t *testing.T) {
	app, database := newTestApp(t)
	cookie := registerTestUser(t, app, "cleaner", "pw")

	deadline := time.Now().UTC().Add(6 * time.Hour).Format("2006-01-02T15:04")
	created := postFormJSON(t, app, "/api/tasks", url.Values{
		"name":        {"inbox zero"},
		"description": {"archive everything"},
		"priority":    {"low"},
		"deadline":    {deadline},
	}, cookie)
	if created.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 for task creation, got %d", created.StatusCode)
	}

	deleted := postFormJSON(t, app, "/api/tasks/delete", url.Values{
		"name": {"inbox zero"},
	}, cookie)
	if deleted.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for deletion, got %d", deleted.StatusCode)
	}

	var remaining int64
	if err := database.Model(&models.Task{}).Where("username = ?", "cleaner").Count(&remaining).Error; err != nil {
		t.Fatalf("count tasks: %v", err)
	}
	if remaining != 0 {
		t.Fatalf("expected deleted task removed, %d rows remain", remaining)
	}

	var user models.User
	if err := database.Where("username = ?", "cleaner").First(&user).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	total := user.PointMon + user.PointTue + user.PointWed + user.PointThu +
		user.PointFri + user.PointSat + user.PointSun
	if total != 0 {
		t.Fatalf("expected no points for a deleted task, got %d", total)
	}
}
