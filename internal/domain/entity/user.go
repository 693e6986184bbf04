package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account holder. Every category, bill item, bill and period
// created through the API belongs to exactly one user.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User.
func NewUser(email, name, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ChangePassword replaces the stored password hash.
func (u *User) ChangePassword(passwordHash string) {
	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now().UTC()
}
