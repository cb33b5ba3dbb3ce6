package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/listkeeper/listkeeper/internal/model"
	"github.com/listkeeper/listkeeper/internal/repository"
)

// SubscriberStore is the gateway surface the subscription handlers depend on.
type SubscriberStore interface {
	ListSubscribers(ctx context.Context) ([]*model.Subscriber, error)
	GetSubscriberByID(ctx context.Context, id string) (*model.Subscriber, error)
	CreateSubscriber(ctx context.Context, sub *model.Subscriber) (*model.Subscriber, error)
}

// SubscriptionHandler handles HTTP requests for subscription records.
type SubscriptionHandler struct {
	store  SubscriberStore
	logger *slog.Logger
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(store SubscriberStore, logger *slog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		store:  store,
		logger: logger,
	}
}

// List handles GET /subscriptions.
func (h *SubscriptionHandler) List(w http.ResponseWriter, r *http.Request) {
	subs, err := h.store.ListSubscribers(r.Context())
	if err != nil {
		h.logger.Error("list_subscribers_failed", "error", err)
		w.WriteHeader(http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, subs)
}

// Get handles GET /subscriptions/{id}.
func (h *SubscriptionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	sub, err := h.store.GetSubscriberByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriberNotFound) {
			h.logger.Warn("subscriber_not_found", "subscriber_id", id)
		} else {
			h.logger.Error("get_subscriber_failed", "subscriber_id", id, "error", err)
		}
		w.WriteHeader(http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, sub)
}

// Subscribe handles POST /subscriptions with form-encoded email and name.
func (h *SubscriptionHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	pending, err := model.NewSubscriber(r.PostFormValue("email"), r.PostFormValue("name"))
	if err != nil {
		h.logger.Warn("invalid_subscriber_input", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	created, err := h.store.CreateSubscriber(r.Context(), pending)
	if err != nil {
		h.logger.Error("create_subscriber_failed", "subscriber_email", pending.Email, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	h.logger.Info("subscriber_created",
		"subscriber_id", created.ID,
		"subscriber_email", created.Email,
	)

	w.WriteHeader(http.StatusOK)
}
