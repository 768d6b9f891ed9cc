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

// PostGetter defines the interface that the service must implement.
type PostGetter interface {
	Get(ctx context.Context, postID uuid.UUID) (*models.PostDB, error)
}

// PostGetErrorResponse represents an error response for fetching a post
// swagger:model PostGetErrorResponse
type PostGetErrorResponse struct {
	// Error message
	// default: Post not found
	Error string `json:"error"`
}

// NewPostGetHandler returns an HTTP handler for fetching a single post.
// @Summary Get a post
// @Description Returns a single auction listing by id, including its current price.
// @Tags posts
// @Produce json
// @Param post_id path string true "Post ID"
// @Success 200 {object} models.PostDB "Auction listing"
// @Failure 404 {object} handlers.PostGetErrorResponse "Post not found"
// @Router /posts/{post_id} [get]
func NewPostGetHandler(svc PostGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		postID, err := uuid.Parse(chi.URLParam(r, "post_id"))
		if err != nil {
			logger.Log.Warnw("invalid post id", "post_id", chi.URLParam(r, "post_id"))
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(PostGetErrorResponse{Error: "Post not found"})
			return
		}

		post, err := svc.Get(ctx, postID)
		if err != nil {
			switch err {
			case services.ErrPostNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(PostGetErrorResponse{Error: "Post not found"})
			default:
				logger.Log.Errorw("failed to get post", "postID", postID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(PostGetErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(post)
	}
}
