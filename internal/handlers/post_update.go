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

// PostUpdater defines the interface that the service must implement.
type PostUpdater interface {
	Update(ctx context.Context, callerID, postID uuid.UUID, title, description, image string, topPrice int64) error
}

// PostUpdateRequest represents the JSON body for updating a post
// swagger:model PostUpdateRequest
type PostUpdateRequest struct {
	// Listing title
	// required: true
	// default: Vintage camera
	Title string `json:"title"`

	// Listing description
	// default: Fully working, some scratches
	Description string `json:"description"`

	// Image URL
	// default: https://example.com/camera.jpg
	Image string `json:"image"`

	// Optional price ceiling, informational only
	// default: 0
	TopPrice int64 `json:"top_price"`
}

// PostUpdateResponse represents a successful post update response
// swagger:model PostUpdateResponse
type PostUpdateResponse struct {
	// Success message
	// default: Post updated
	Message string `json:"message"`
}

// PostUpdateErrorResponse represents an error response for post update
// swagger:model PostUpdateErrorResponse
type PostUpdateErrorResponse struct {
	// Error message
	// default: Post not found
	Error string `json:"error"`
}

// NewPostUpdateHandler returns an HTTP handler for updating a post's
// listing fields. The current price never changes here.
// @Summary Update a post
// @Description Updates the listing fields of a post the caller created. The current price only moves through bids.
// @Tags posts
// @Accept json
// @Produce json
// @Param post_id path string true "Post ID"
// @Param postUpdateRequest body handlers.PostUpdateRequest true "Post update request"
// @Success 200 {object} handlers.PostUpdateResponse "Post updated"
// @Failure 400 {object} handlers.PostUpdateErrorResponse "Invalid request"
// @Failure 401 {object} handlers.PostUpdateErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.PostUpdateErrorResponse "Caller is not the creator"
// @Failure 404 {object} handlers.PostUpdateErrorResponse "Post not found"
// @Router /posts/{post_id} [put]
// @Security BearerAuth
func NewPostUpdateHandler(
	svc PostUpdater,
	tokenGetter PostTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(PostUpdateErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(PostUpdateErrorResponse{Error: "Unauthorized"})
			return
		}

		postID, err := uuid.Parse(chi.URLParam(r, "post_id"))
		if err != nil {
			logger.Log.Warnw("invalid post id", "post_id", chi.URLParam(r, "post_id"))
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(PostUpdateErrorResponse{Error: "Post not found"})
			return
		}

		var req PostUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode post update request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PostUpdateErrorResponse{Error: "Invalid request body"})
			return
		}

		if err := svc.Update(ctx, claims.UserID, postID, req.Title, req.Description, req.Image, req.TopPrice); err != nil {
			switch err {
			case services.ErrPostNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(PostUpdateErrorResponse{Error: "Post not found"})
			case services.ErrNotPostOwner:
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(PostUpdateErrorResponse{Error: "Only the creator can update this post"})
			default:
				logger.Log.Errorw("failed to update post", "postID", postID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(PostUpdateErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PostUpdateResponse{Message: "Post updated"})
	}
}
