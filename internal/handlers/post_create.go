package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-auction-market/internal/jwt"
	"github.com/sbilibin2017/gw-auction-market/internal/logger"
	"github.com/sbilibin2017/gw-auction-market/internal/services"
)

// PostTokener defines only the methods needed by the post handlers.
type PostTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// PostCreator defines the interface that the service must implement.
type PostCreator interface {
	Create(ctx context.Context, creatorID uuid.UUID, title, description, image string, startingPrice, topPrice int64) (uuid.UUID, error)
}

// PostCreateRequest represents the JSON body for creating a post
// swagger:model PostCreateRequest
type PostCreateRequest struct {
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

	// Starting price, becomes the initial current price
	// required: true
	// default: 100
	StartingPrice int64 `json:"starting_price"`

	// Optional price ceiling, informational only
	// default: 0
	TopPrice int64 `json:"top_price"`
}

// PostCreateResponse represents a successful post creation response
// swagger:model PostCreateResponse
type PostCreateResponse struct {
	// Success message
	// default: Post created
	Message string `json:"message"`

	// Identifier of the new post
	PostID string `json:"post_id"`
}

// PostCreateErrorResponse represents an error response for post creation
// swagger:model PostCreateErrorResponse
type PostCreateErrorResponse struct {
	// Error message
	// default: Starting price must not be negative
	Error string `json:"error"`
}

// NewPostCreateHandler returns an HTTP handler for creating an auction post.
// @Summary Create a post
// @Description Creates a new auction listing owned by the authenticated caller. The starting price becomes the initial current price.
// @Tags posts
// @Accept json
// @Produce json
// @Param postCreateRequest body handlers.PostCreateRequest true "Post creation request"
// @Success 201 {object} handlers.PostCreateResponse "Post successfully created"
// @Failure 400 {object} handlers.PostCreateErrorResponse "Invalid request"
// @Failure 401 {object} handlers.PostCreateErrorResponse "Unauthorized"
// @Router /posts [post]
// @Security BearerAuth
func NewPostCreateHandler(
	svc PostCreator,
	tokenGetter PostTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(PostCreateErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(PostCreateErrorResponse{Error: "Unauthorized"})
			return
		}

		var req PostCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode post create request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PostCreateErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.Title == "" {
			logger.Log.Warnw("post create with empty title", "userID", claims.UserID)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PostCreateErrorResponse{Error: "Title is required"})
			return
		}

		postID, err := svc.Create(ctx, claims.UserID, req.Title, req.Description, req.Image, req.StartingPrice, req.TopPrice)
		if err != nil {
			switch err {
			case services.ErrInvalidStartingPrice:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(PostCreateErrorResponse{Error: "Starting price must not be negative"})
			default:
				logger.Log.Errorw("failed to create post", "userID", claims.UserID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(PostCreateErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(PostCreateResponse{
			Message: "Post created",
			PostID:  postID.String(),
		})
	}
}
