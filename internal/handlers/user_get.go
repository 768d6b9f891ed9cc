package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-auction-market/internal/logger"
	"github.com/sbilibin2017/gw-auction-market/internal/models"
	"github.com/sbilibin2017/gw-auction-market/internal/services"
)

// UserGetter defines the interface that the service must implement.
type UserGetter interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserGetErrorResponse represents an error response for fetching a user
// swagger:model UserGetErrorResponse
type UserGetErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewUserGetHandler returns an HTTP handler for fetching a single user.
// @Summary Get a user
// @Description Returns a user's public profile by id. The password hash is never serialized.
// @Tags users
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} models.UserDB "User profile"
// @Failure 404 {object} handlers.UserGetErrorResponse "User not found"
// @Router /users/{user_id} [get]
func NewUserGetHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := uuid.Parse(chi.URLParam(r, "user_id"))
		if err != nil {
			logger.Log.Warnw("invalid user id", "user_id", chi.URLParam(r, "user_id"))
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(UserGetErrorResponse{Error: "User not found"})
			return
		}

		user, err := svc.Get(ctx, userID)
		if err != nil {
			switch err {
			case services.ErrUserNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UserGetErrorResponse{Error: "User not found"})
			default:
				logger.Log.Errorw("failed to get user", "userID", userID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UserGetErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}
