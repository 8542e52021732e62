package services

import (
	"errors"
	"testing"
	"time"

	"github.com/warsom77/to-do-list/internal/models"
	"gorm.io/gorm"
)

type stubAuthUserRepository struct {
	users map[string]models.User
}

func newStubAuthUserRepository() *stubAuthUserRepository {
	return &stubAuthUserRepository{users: make(map[string]models.User)}
}

func (stub *stubAuthUserRepository) ExistsByUsername(username string) (bool, error) {
	_, ok := stub.users[username]
	return ok, nil
}

func (stub *stubAuthUserRepository) FindByUsername(username string) (models.User, error) {
	user, ok := stub.users[username]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (stub *stubAuthUserRepository) Create(user *models.User) error {
	if _, ok := stub.users[user.Username]; ok {
		return errors.New("unique constraint violated")
	}
	user.ID = uint(len(stub.users) + 1)
	stub.users[user.Username] = *user
	return nil
}

func TestRegisterAndLoginScenario(t *testing.T) {
	repo := newStubAuthUserRepository()
	service := NewAuthService(repo, time.UTC)

	user, err := service.Register("alice", "pw1")
	if err != nil {
		t.Fatalf("register alice: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("expected username alice, got %q", user.Username)
	}
	if user.PointMon != 0 || user.PointSun != 0 {
		t.Fatal("expected fresh counters at zero")
	}
	if user.LastReset.IsZero() {
		t.Fatal("expected last reset to be initialized")
	}

	if _, err := service.Register("alice", "pw2"); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}

	if _, err := service.Login("alice", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}

	logged, err := service.Login("alice", "pw1")
	if err != nil {
		t.Fatalf("login alice: %v", err)
	}
	if logged.Username != "alice" {
		t.Fatalf("expected alice, got %q", logged.Username)
	}
}

func TestLoginDoesNotRevealUnknownUsers(t *testing.T) {
	service := NewAuthService(newStubAuthUserRepository(), time.UTC)

	_, unknownErr := service.Login("nobody", "pw")
	if !errors.Is(unknownErr, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", unknownErr)
	}

	repo := newStubAuthUserRepository()
	service = NewAuthService(repo, time.UTC)
	if _, err := service.Register("bob", "secret"); err != nil {
		t.Fatalf("register bob: %v", err)
	}
	_, wrongErr := service.Login("bob", "nope")
	if !errors.Is(wrongErr, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", wrongErr)
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Fatal("expected identical messages for unknown user and wrong password")
	}
}

func TestRegisterRejectsIncompleteCredentials(t *testing.T) {
	service := NewAuthService(newStubAuthUserRepository(), time.UTC)

	if _, err := service.Register("  ", "pw"); !errors.Is(err, ErrCredentialsIncomplete) {
		t.Fatalf("expected ErrCredentialsIncomplete for blank username, got %v", err)
	}
	if _, err := service.Register("carol", ""); !errors.Is(err, ErrCredentialsIncomplete) {
		t.Fatalf("expected ErrCredentialsIncomplete for blank password, got %v", err)
	}
}

func TestHashPasswordIsStableHexDigest(t *testing.T) {
	first := HashPassword("pw1")
	second := HashPassword("pw1")
	if first != second {
		t.Fatal("expected deterministic digests")
	}
	if len(first) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(first))
	}
	if first == HashPassword("pw2") {
		t.Fatal("expected different digests for different passwords")
	}
}
