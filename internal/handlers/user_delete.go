package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-auction-market/internal/logger"
	"github.com/sbilibin2017/gw-auction-market/internal/services"
)

// UserDeleter defines the interface that the service must implement.
type UserDeleter interface {
	Delete(ctx context.Context, callerID, userID uuid.UUID) error
}

// UserDeleteResponse represents a successful user deletion response
// swagger:model UserDeleteResponse
type UserDeleteResponse struct {
	// Success message
	// default: User deleted
	Message string `json:"message"`
}

// UserDeleteErrorResponse represents an error response for user deletion
// swagger:model UserDeleteErrorResponse
type UserDeleteErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewUserDeleteHandler returns an HTTP handler for deleting the caller's
// own account.
// @Summary Delete a user
// @Description Deletes the caller's own account.
// @Tags users
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} handlers.UserDeleteResponse "User deleted"
// @Failure 401 {object} handlers.UserDeleteErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.UserDeleteErrorResponse "Caller does not own this account"
// @Failure 404 {object} handlers.UserDeleteErrorResponse "User not found"
// @Router /users/{user_id} [delete]
// @Security BearerAuth
func NewUserDeleteHandler(
	svc UserDeleter,
	tokenGetter UserTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(UserDeleteErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(UserDeleteErrorResponse{Error: "Unauthorized"})
			return
		}

		userID, err := uuid.Parse(chi.URLParam(r, "user_id"))
		if err != nil {
			logger.Log.Warnw("invalid user id", "user_id", chi.URLParam(r, "user_id"))
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(UserDeleteErrorResponse{Error: "User not found"})
			return
		}

		if err := svc.Delete(ctx, claims.UserID, userID); err != nil {
			switch err {
			case services.ErrUserNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UserDeleteErrorResponse{Error: "User not found"})
			case services.ErrNotAccountOwner:
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(UserDeleteErrorResponse{Error: "Cannot delete another user's account"})
			default:
				logger.Log.Errorw("failed to delete user", "userID", userID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UserDeleteErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UserDeleteResponse{Message: "User deleted"})
	}
}
