package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/userdir/userdir/internal/handler/dto"
	"github.com/userdir/userdir/internal/service"
)

// msgFieldsRequired is the exact client-error body for incomplete input.
const msgFieldsRequired = "Username and email are required"

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	svc    *service.UserService
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /users. The payload comes back from the service already
// serialized, so cached and recomputed listings are written byte-for-byte.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	payload, err := h.svc.ListUsers(r.Context())
	if err != nil {
		h.logger.Error("list_users_failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list users")
		return
	}

	writeRawJSON(w, http.StatusOK, payload)
}

// Create handles POST /users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// An unreadable body means the required fields were not supplied.
		writeError(w, http.StatusBadRequest, msgFieldsRequired)
		return
	}

	input := service.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
	}

	user, err := h.svc.CreateUser(r.Context(), input)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("user_created",
		"user_id", user.ID,
		"username", user.Username,
	)

	writeJSON(w, http.StatusCreated, user)
}

// handleServiceError maps service errors to HTTP responses. Store failure
// details stay in the logs; the response bodies carry fixed messages.
func (h *UserHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMissingFields):
		writeError(w, http.StatusBadRequest, msgFieldsRequired)
	case errors.Is(err, service.ErrUserExists):
		writeError(w, http.StatusInternalServerError, "username or email already exists")
	default:
		h.logger.Error("create_user_failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create user")
	}
}
