package entity

import (
	"fmt"
	"time"
)

// User is the aggregate root for the account domain.
// PasswordHash holds a bcrypt hash, never the raw password.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewUser builds an unsaved user, running the plaintext password through
// hash. Email syntax is the request schema's concern, not the domain's;
// the only way this fails is the hash itself failing.
func NewUser(name, email, password string, hash func(string) (string, error)) (*User, error) {
	h, err := hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return &User{Name: name, Email: email, PasswordHash: h}, nil
}
