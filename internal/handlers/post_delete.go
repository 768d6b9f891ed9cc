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

// PostDeleter defines the interface that the service must implement.
type PostDeleter interface {
	Delete(ctx context.Context, callerID, postID uuid.UUID) error
}

// PostDeleteResponse represents a successful post deletion response
// swagger:model PostDeleteResponse
type PostDeleteResponse struct {
	// Success message
	// default: Post deleted
	Message string `json:"message"`
}

// PostDeleteErrorResponse represents an error response for post deletion
// swagger:model PostDeleteErrorResponse
type PostDeleteErrorResponse struct {
	// Error message
	// default: Post not found
	Error string `json:"error"`
}

// NewPostDeleteHandler returns an HTTP handler for deleting a post.
// @Summary Delete a post
// @Description Deletes a post the caller created, along with its bid history.
// @Tags posts
// @Produce json
// @Param post_id path string true "Post ID"
// @Success 200 {object} handlers.PostDeleteResponse "Post deleted"
// @Failure 401 {object} handlers.PostDeleteErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.PostDeleteErrorResponse "Caller is not the creator"
// @Failure 404 {object} handlers.PostDeleteErrorResponse "Post not found"
// @Router /posts/{post_id} [delete]
// @Security BearerAuth
func NewPostDeleteHandler(
	svc PostDeleter,
	tokenGetter PostTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(PostDeleteErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(PostDeleteErrorResponse{Error: "Unauthorized"})
			return
		}

		postID, err := uuid.Parse(chi.URLParam(r, "post_id"))
		if err != nil {
			logger.Log.Warnw("invalid post id", "post_id", chi.URLParam(r, "post_id"))
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(PostDeleteErrorResponse{Error: "Post not found"})
			return
		}

		if err := svc.Delete(ctx, claims.UserID, postID); err != nil {
			switch err {
			case services.ErrPostNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(PostDeleteErrorResponse{Error: "Post not found"})
			case services.ErrNotPostOwner:
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(PostDeleteErrorResponse{Error: "Only the creator can delete this post"})
			default:
				logger.Log.Errorw("failed to delete post", "postID", postID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(PostDeleteErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PostDeleteResponse{Message: "Post deleted"})
	}
}
