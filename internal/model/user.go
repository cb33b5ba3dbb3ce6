// Package model defines domain entities for the application.
package model

import (
	"errors"
	"time"
)

// Validation errors for record construction.
var (
	ErrEmptyName  = errors.New("name must not be empty")
	ErrEmptyEmail = errors.New("email must not be empty")
)

// User represents a registered user row.
// ID and CreatedAt are assigned by the persistence layer at insert time;
// a User constructed by NewUser carries zero values for both.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUser creates a pending user record. Both fields are required.
func NewUser(name, email string) (*User, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if email == "" {
		return nil, ErrEmptyEmail
	}
	return &User{
		Name:  name,
		Email: email,
	}, nil
}
