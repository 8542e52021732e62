package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/warsom77/to-do-list/internal/db"
	"github.com/warsom77/to-do-list/internal/security"
	"github.com/warsom77/to-do-list/internal/services"
	"gorm.io/gorm"
)

const temporaryPasswordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghjkmnpqrstuvwxyz23456789"

// RunResetPasswordCommand assigns the user a fresh temporary password
// and prints it. The stored digest keeps the application's SHA-256
// format so existing logins keep working unchanged.
func RunResetPasswordCommand(dbPath string, username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errors.New("username is required")
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	users := db.NewUserRepository(database)
	if _, err := users.FindByUsername(username); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user %s not found", username)
		}
		return fmt.Errorf("load user: %w", err)
	}

	temporaryPassword, err := security.RandomString(12, temporaryPasswordAlphabet)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}

	if err := users.UpdatePasswordHash(username, services.HashPassword(temporaryPassword)); err != nil {
		return fmt.Errorf("update user password: %w", err)
	}

	fmt.Println("Password reset successful")
	fmt.Printf("Temporary password for %s: %s\n", username, temporaryPassword)
	return nil
}
