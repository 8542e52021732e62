package services

import (
	"errors"
	"strings"
)

var ErrCredentialsIncomplete = errors.New("username and password are required")

func NormalizeCredentials(usernameRaw string, passwordRaw string) (string, string, error) {
	username := strings.TrimSpace(usernameRaw)
	password := strings.TrimSpace(passwordRaw)
	if username == "" || password == "" {
		return "", "", ErrCredentialsIncomplete
	}
	return username, password, nil
}
