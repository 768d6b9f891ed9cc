package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-auction-market/internal/jwt"
	"github.com/sbilibin2017/gw-auction-market/internal/logger"
	"github.com/sbilibin2017/gw-auction-market/internal/services"
)

// UserTokener defines only the methods needed by the user handlers.
type UserTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// UserUpdater defines the interface that the service must implement.
type UserUpdater interface {
	Update(ctx context.Context, callerID, userID uuid.UUID, username, email string) error
}

// UserUpdateRequest represents the JSON body for updating a user
// swagger:model UserUpdateRequest
type UserUpdateRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`
}

// UserUpdateResponse represents a successful user update response
// swagger:model UserUpdateResponse
type UserUpdateResponse struct {
	// Success message
	// default: User updated
	Message string `json:"message"`
}

// UserUpdateErrorResponse represents an error response for user update
// swagger:model UserUpdateErrorResponse
type UserUpdateErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewUserUpdateHandler returns an HTTP handler for updating the caller's
// own account.
// @Summary Update a user
// @Description Updates username and email. Callers can only update their own account.
// @Tags users
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Param userUpdateRequest body handlers.UserUpdateRequest true "User update request"
// @Success 200 {object} handlers.UserUpdateResponse "User updated"
// @Failure 400 {object} handlers.UserUpdateErrorResponse "Invalid request"
// @Failure 401 {object} handlers.UserUpdateErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.UserUpdateErrorResponse "Caller does not own this account"
// @Failure 404 {object} handlers.UserUpdateErrorResponse "User not found"
// @Router /users/{user_id} [put]
// @Security BearerAuth
func NewUserUpdateHandler(
	svc UserUpdater,
	tokenGetter UserTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(UserUpdateErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(UserUpdateErrorResponse{Error: "Unauthorized"})
			return
		}

		userID, err := uuid.Parse(chi.URLParam(r, "user_id"))
		if err != nil {
			logger.Log.Warnw("invalid user id", "user_id", chi.URLParam(r, "user_id"))
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(UserUpdateErrorResponse{Error: "User not found"})
			return
		}

		var req UserUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode user update request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UserUpdateErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.Username == "" || req.Email == "" {
			logger.Log.Warnw("user update with empty fields", "userID", userID)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UserUpdateErrorResponse{Error: "Username and email are required"})
			return
		}

		if err := svc.Update(ctx, claims.UserID, userID, req.Username, req.Email); err != nil {
			switch err {
			case services.ErrUserNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UserUpdateErrorResponse{Error: "User not found"})
			case services.ErrNotAccountOwner:
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(UserUpdateErrorResponse{Error: "Cannot update another user's account"})
			default:
				logger.Log.Errorw("failed to update user", "userID", userID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UserUpdateErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UserUpdateResponse{Message: "User updated"})
	}
}
