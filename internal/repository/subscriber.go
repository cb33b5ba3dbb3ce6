package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/listkeeper/listkeeper/internal/model"
)

// ErrSubscriberNotFound is returned when a subscriber lookup matches zero rows.
var ErrSubscriberNotFound = errors.New("subscriber not found")

// CreateSubscriber persists a pending subscriber, assigning the id and
// subscription timestamp server-side.
func (r *Repository) CreateSubscriber(ctx context.Context, sub *model.Subscriber) (*model.Subscriber, error) {
	query := `
		INSERT INTO subscriptions (id, email, name, subscribed_at)
		VALUES ($1, $2, $3, $4)
	`

	created := &model.Subscriber{
		ID:           newRecordID(),
		Email:        sub.Email,
		Name:         sub.Name,
		SubscribedAt: time.Now().UTC(),
	}

	_, err := r.pool.Exec(ctx, query,
		created.ID,
		created.Email,
		created.Name,
		created.SubscribedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create subscriber: %w", err)
	}

	return created, nil
}

// GetSubscriberByID retrieves a subscriber by their ID.
func (r *Repository) GetSubscriberByID(ctx context.Context, id string) (*model.Subscriber, error) {
	query := `
		SELECT id, email, name, subscribed_at
		FROM subscriptions
		WHERE id = $1
	`

	var sub model.Subscriber
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&sub.ID,
		&sub.Email,
		&sub.Name,
		&sub.SubscribedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubscriberNotFound
		}
		return nil, fmt.Errorf("failed to get subscriber by ID: %w", err)
	}

	return &sub, nil
}

// ListSubscribers retrieves every subscription row. Order is unspecified.
func (r *Repository) ListSubscribers(ctx context.Context) ([]*model.Subscriber, error) {
	query := `
		SELECT id, email, name, subscribed_at
		FROM subscriptions
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	defer rows.Close()

	subs := make([]*model.Subscriber, 0)
	for rows.Next() {
		var sub model.Subscriber
		if err := rows.Scan(&sub.ID, &sub.Email, &sub.Name, &sub.SubscribedAt); err != nil {
			return nil, fmt.Errorf("failed to scan subscriber row: %w", err)
		}
		subs = append(subs, &sub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read subscriber rows: %w", err)
	}

	return subs, nil
}
