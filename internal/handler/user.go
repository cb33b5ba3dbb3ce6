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

// UserStore is the gateway surface the user handlers depend on.
// *repository.Repository satisfies it; tests substitute a fake.
type UserStore interface {
	ListUsers(ctx context.Context) ([]*model.User, error)
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
}

// UserHandler handles HTTP requests for user records.
type UserHandler struct {
	store  UserStore
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(store UserStore, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		store:  store,
		logger: logger,
	}
}

// List handles GET /user.
//
// Any store failure is collapsed to 404 with an empty body. That matches
// the lookup-miss contract on purpose: clients get a uniform read error,
// the log sink gets the real cause.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		h.logger.Error("list_users_failed", "error", err)
		w.WriteHeader(http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// Get handles GET /user/{id}.
// The id is passed to the store as-is; an unknown or malformed id is
// indistinguishable from a missing row.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	user, err := h.store.GetUserByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			h.logger.Warn("user_not_found", "user_id", id)
		} else {
			h.logger.Error("get_user_failed", "user_id", id, "error", err)
		}
		w.WriteHeader(http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Create handles POST /user with form-encoded name and email.
// Success returns 200 with an empty body; the generated id is not echoed
// back to the caller.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	pending, err := model.NewUser(r.PostFormValue("name"), r.PostFormValue("email"))
	if err != nil {
		h.logger.Warn("invalid_user_input", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	created, err := h.store.CreateUser(r.Context(), pending)
	if err != nil {
		h.logger.Error("create_user_failed", "user_email", pending.Email, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	h.logger.Info("user_created",
		"user_id", created.ID,
		"user_email", created.Email,
	)

	w.WriteHeader(http.StatusOK)
}
