package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-auction-market/internal/logger"
	"github.com/sbilibin2017/gw-auction-market/internal/models"
)

// UserLister defines the interface that the service must implement.
type UserLister interface {
	List(ctx context.Context, skip, limit int) ([]models.UserDB, error)
}

// UserListErrorResponse represents an error response for listing users
// swagger:model UserListErrorResponse
type UserListErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewUserListHandler returns an HTTP handler for listing users.
// @Summary List users
// @Description Returns user profiles with skip/limit paging.
// @Tags users
// @Produce json
// @Param skip query int false "Number of users to skip" default(0)
// @Param limit query int false "Maximum number of users to return" default(100)
// @Success 200 {array} models.UserDB "User profiles"
// @Failure 500 {object} handlers.UserListErrorResponse "Internal server error"
// @Router /users [get]
func NewUserListHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		skip, limit := parsePaging(r)

		users, err := svc.List(ctx, skip, limit)
		if err != nil {
			logger.Log.Errorw("failed to list users", "skip", skip, "limit", limit, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UserListErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(users)
	}
}
