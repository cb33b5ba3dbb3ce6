package model

import "time"

// Subscriber represents a newsletter subscription row.
// Structurally a User, except the timestamp column is subscribed_at.
type Subscriber struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

// NewSubscriber creates a pending subscriber record. Both fields are required.
func NewSubscriber(email, name string) (*Subscriber, error) {
	if email == "" {
		return nil, ErrEmptyEmail
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Subscriber{
		Email: email,
		Name:  name,
	}, nil
}
