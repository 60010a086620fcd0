package domain

import (
	"strings"
	"time"
)

type User struct {
	ID           string
	Name         string
	Email        string // normalized, unique
	PasswordHash string // bcrypt encoded
	Avatar       string
	CreatedAt    time.Time
}

// NormalizeEmail is the form emails are stored and looked up in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
