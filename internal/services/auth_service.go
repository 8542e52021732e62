package services

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/warsom77/to-do-list/internal/models"
)

var (
	ErrUsernameTaken = errors.New("username already exists")
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords so login failures never reveal which accounts exist.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type AuthUserRepository interface {
	ExistsByUsername(username string) (bool, error)
	FindByUsername(username string) (models.User, error)
	Create(user *models.User) error
}

type AuthService struct {
	users    AuthUserRepository
	location *time.Location
	now      func() time.Time
}

func NewAuthService(users AuthUserRepository, location *time.Location) *AuthService {
	if location == nil {
		location = time.UTC
	}
	return &AuthService{
		users:    users,
		location: location,
		now:      time.Now,
	}
}

// HashPassword produces the unsalted SHA-256 hex digest the stored
// credentials use. Kept as-is for compatibility with existing accounts;
// switching to a salted slow hash would invalidate every stored digest.
func HashPassword(password string) string {
	digest := sha256.Sum256([]byte(password))
	return hex.EncodeToString(digest[:])
}

func (service *AuthService) Register(usernameRaw string, passwordRaw string) (models.User, error) {
	username, password, err := NormalizeCredentials(usernameRaw, passwordRaw)
	if err != nil {
		return models.User{}, err
	}

	exists, err := service.users.ExistsByUsername(username)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, ErrUsernameTaken
	}

	now := service.now().In(service.location)
	user := models.User{
		Username:     username,
		PasswordHash: HashPassword(password),
		LastReset:    now,
		CreatedAt:    now,
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, ErrUsernameTaken
	}
	return user, nil
}

func (service *AuthService) FindByUsername(username string) (models.User, error) {
	return service.users.FindByUsername(username)
}

func (service *AuthService) Login(usernameRaw string, passwordRaw string) (models.User, error) {
	username, password, err := NormalizeCredentials(usernameRaw, passwordRaw)
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	user, err := service.users.FindByUsername(username)
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if user.PasswordHash != HashPassword(password) {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}
