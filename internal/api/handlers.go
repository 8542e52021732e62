package api

import (
	"encoding/json"
	"fmt"
	"html/template"
	"path/filepath"
	"time"

	"github.com/warsom77/to-do-list/internal/db"
	"github.com/warsom77/to-do-list/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db            *gorm.DB
	secretKey     []byte
	location      *time.Location
	cookieSecure  bool
	templates     map[string]*template.Template
	cookieCodec   *secureCookieCodec
	loginLimiter  *attemptLimiter
	repositories  *db.Repositories
	authService   *services.AuthService
	pointsService *services.PointsService
	taskService   *services.TaskService
}

type credentialsInput struct {
	Username        string `json:"username" form:"username"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

type taskInput struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
	Priority    string `json:"priority" form:"priority"`
	Deadline    string `json:"deadline" form:"deadline"`
}

type taskActionInput struct {
	Name string `json:"name" form:"name"`
}

type deadlineInput struct {
	Name     string `json:"name" form:"name"`
	Deadline string `json:"deadline" form:"deadline"`
}

type FlashPayload struct {
	AuthError     string `json:"auth_error,omitempty"`
	TaskError     string `json:"task_error,omitempty"`
	TaskSuccess   string `json:"task_success,omitempty"`
	LoginUsername string `json:"login_username,omitempty"`
}

const authTokenTTL = 7 * 24 * time.Hour

func NewHandler(database *gorm.DB, secret string, templateDir string, location *time.Location, cookieSecure bool) (*Handler, error) {
	if location == nil {
		location = time.Local
	}

	codec, err := newSecureCookieCodec([]byte(secret))
	if err != nil {
		return nil, err
	}

	funcMap := template.FuncMap{
		"formatDate": func(value time.Time, layout string) string {
			if value.IsZero() {
				return ""
			}
			return value.In(location).Format(layout)
		},
		"toJSON": func(value any) template.JS {
			serialized, _ := json.Marshal(value)
			return template.JS(serialized)
		},
		"dict": func(pairs ...any) map[string]any {
			values := make(map[string]any, len(pairs)/2)
			for index := 0; index+1 < len(pairs); index += 2 {
				key, ok := pairs[index].(string)
				if !ok {
					continue
				}
				values[key] = pairs[index+1]
			}
			return values
		},
	}

	templates := make(map[string]*template.Template)
	pages := []string{
		"login",
		"register",
		"tasks",
		"task_new",
		"points",
	}
	for _, page := range pages {
		templatePath := filepath.Join(templateDir, page+".html")
		parsed, err := template.New("base").Funcs(funcMap).ParseFiles(
			filepath.Join(templateDir, "base.html"),
			templatePath,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = parsed
	}

	repositories := db.NewRepositories(database)
	pointsService := services.NewPointsService(repositories.Users, location)

	return &Handler{
		db:            database,
		secretKey:     []byte(secret),
		location:      location,
		cookieSecure:  cookieSecure,
		templates:     templates,
		cookieCodec:   codec,
		loginLimiter:  newAttemptLimiter(),
		repositories:  repositories,
		authService:   services.NewAuthService(repositories.Users, location),
		pointsService: pointsService,
		taskService:   services.NewTaskService(repositories.Tasks, pointsService, location),
	}, nil
}
