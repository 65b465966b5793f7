package utils

import (
	"os"
	"os/user"
)

// GetUsername returns the current username.
func GetUsername() (string, error) {
	user, err := user.Current()
	if err != nil {
		return "", err
	}
	return user.Username, nil
}

// DefaultAuthor returns the name recorded as author when none is given:
// the current username, falling back to $USER and then "unknown".
func DefaultAuthor() string {
	if name, err := GetUsername(); err == nil && name != "" {
		return name
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "unknown"
}
