package model

import (
	"errors"
	"testing"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("Ada", "ada@example.com")
	if err != nil {
		t.Fatalf("NewUser failed: %v", err)
	}

	if u.Name != "Ada" {
		t.Errorf("Name mismatch: got %q, want %q", u.Name, "Ada")
	}
	if u.Email != "ada@example.com" {
		t.Errorf("Email mismatch: got %q, want %q", u.Email, "ada@example.com")
	}
	if u.ID != "" {
		t.Errorf("ID should be unset before persistence, got %q", u.ID)
	}
	if !u.CreatedAt.IsZero() {
		t.Errorf("CreatedAt should be unset before persistence, got %v", u.CreatedAt)
	}
}

func TestNewUser_EmptyName(t *testing.T) {
	_, err := NewUser("", "ada@example.com")
	if !errors.Is(err, ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got: %v", err)
	}
}

func TestNewUser_EmptyEmail(t *testing.T) {
	_, err := NewUser("Ada", "")
	if !errors.Is(err, ErrEmptyEmail) {
		t.Errorf("expected ErrEmptyEmail, got: %v", err)
	}
}

func TestNewSubscriber(t *testing.T) {
	s, err := NewSubscriber("ada@example.com", "Ada")
	if err != nil {
		t.Fatalf("NewSubscriber failed: %v", err)
	}

	if s.Email != "ada@example.com" {
		t.Errorf("Email mismatch: got %q, want %q", s.Email, "ada@example.com")
	}
	if s.Name != "Ada" {
		t.Errorf("Name mismatch: got %q, want %q", s.Name, "Ada")
	}
	if s.ID != "" {
		t.Errorf("ID should be unset before persistence, got %q", s.ID)
	}
	if !s.SubscribedAt.IsZero() {
		t.Errorf("SubscribedAt should be unset before persistence, got %v", s.SubscribedAt)
	}
}

func TestNewSubscriber_EmptyFields(t *testing.T) {
	if _, err := NewSubscriber("", "Ada"); !errors.Is(err, ErrEmptyEmail) {
		t.Errorf("expected ErrEmptyEmail, got: %v", err)
	}
	if _, err := NewSubscriber("ada@example.com", ""); !errors.Is(err, ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got: %v", err)
	}
}
