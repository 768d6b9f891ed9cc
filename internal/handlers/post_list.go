package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/gw-auction-market/internal/logger"
	"github.com/sbilibin2017/gw-auction-market/internal/models"
)

// defaultListLimit caps unpaged list responses.
const defaultListLimit = 100

// PostLister defines the interface that the service must implement.
type PostLister interface {
	List(ctx context.Context, skip, limit int) ([]models.PostDB, error)
}

// PostListErrorResponse represents an error response for listing posts
// swagger:model PostListErrorResponse
type PostListErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewPostListHandler returns an HTTP handler for listing posts.
// @Summary List posts
// @Description Returns auction listings with skip/limit paging.
// @Tags posts
// @Produce json
// @Param skip query int false "Number of listings to skip" default(0)
// @Param limit query int false "Maximum number of listings to return" default(100)
// @Success 200 {array} models.PostDB "Auction listings"
// @Failure 500 {object} handlers.PostListErrorResponse "Internal server error"
// @Router /posts [get]
func NewPostListHandler(svc PostLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		skip, limit := parsePaging(r)

		posts, err := svc.List(ctx, skip, limit)
		if err != nil {
			logger.Log.Errorw("failed to list posts", "skip", skip, "limit", limit, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(PostListErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(posts)
	}
}

// parsePaging reads skip/limit query parameters, falling back to sane
// defaults on absent or malformed values.
func parsePaging(r *http.Request) (skip, limit int) {
	skip = 0
	limit = defaultListLimit

	if v := r.URL.Query().Get("skip"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			skip = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= defaultListLimit {
			limit = n
		}
	}
	return skip, limit
}
