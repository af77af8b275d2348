package models

import (
	"strings"
	"time"

	"github.com/emrekoca/recipebox/internal/apperr"
)

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Profile is the only user shape handlers serialize. It has no credential
// field at all, so the hash cannot leak through an encoder option.
type Profile struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func (u User) Profile() Profile {
	return Profile{ID: u.ID, Username: u.Username, Email: u.Email, CreatedAt: u.CreatedAt}
}

func (u *User) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return apperr.New(apperr.Validation, "Username is required")
	}
	if !strings.Contains(u.Email, "@") || !strings.Contains(u.Email, ".") {
		return apperr.New(apperr.Validation, "Please provide a valid email address")
	}
	return nil
}
