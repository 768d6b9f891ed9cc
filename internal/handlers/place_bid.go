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

// PlaceBidTokener defines only the methods needed by this handler.
type PlaceBidTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// BidPlacer defines the interface that the service must implement.
type BidPlacer interface {
	PlaceBid(ctx context.Context, postID uuid.UUID, bidAmount int64, bidderID uuid.UUID) (uuid.UUID, error)
}

// PlaceBidRequest represents the JSON body for placing a bid
// swagger:model PlaceBidRequest
type PlaceBidRequest struct {
	// Bid amount, must be strictly greater than the current price
	// required: true
	// default: 150
	BidAmount int64 `json:"bid_amount"`
}

// PlaceBidResponse represents a successful bid placement response
// swagger:model PlaceBidResponse
type PlaceBidResponse struct {
	// Success message
	// default: Bid placed successfully
	Message string `json:"message"`

	// Identifier of the accepted bid
	BidID string `json:"bid_id"`
}

// PlaceBidErrorResponse represents an error response for bid placement
// swagger:model PlaceBidErrorResponse
type PlaceBidErrorResponse struct {
	// Error message
	// default: Bid amount must be greater than the current price
	Error string `json:"error"`
}

// NewPlaceBidHandler returns an HTTP handler for placing a bid on a post.
// The bidder is always the authenticated caller; the price check and the
// ledger append commit or roll back together.
// @Summary Place a bid
// @Description Places a bid on an auction post. The bid must strictly exceed the current price. Concurrent bids race on a conditional price update; a losing bid is retried against the fresh price and eventually rejected with 409.
// @Tags bids
// @Accept json
// @Produce json
// @Param post_id path string true "Post ID"
// @Param placeBidRequest body handlers.PlaceBidRequest true "Bid placement request"
// @Success 200 {object} handlers.PlaceBidResponse "Bid placed successfully"
// @Failure 400 {object} handlers.PlaceBidErrorResponse "Bid amount not above the current price / invalid request"
// @Failure 401 {object} handlers.PlaceBidErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.PlaceBidErrorResponse "Post not found"
// @Failure 409 {object} handlers.PlaceBidErrorResponse "Lost to a concurrent bid"
// @Router /bids/place_bid/{post_id} [post]
// @Security BearerAuth
func NewPlaceBidHandler(
	svc BidPlacer,
	tokenGetter PlaceBidTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(PlaceBidErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(PlaceBidErrorResponse{Error: "Unauthorized"})
			return
		}

		postID, err := uuid.Parse(chi.URLParam(r, "post_id"))
		if err != nil {
			logger.Log.Warnw("invalid post id", "post_id", chi.URLParam(r, "post_id"))
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(PlaceBidErrorResponse{Error: "Post not found"})
			return
		}

		var req PlaceBidRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode bid request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PlaceBidErrorResponse{Error: "Invalid request body"})
			return
		}

		bidID, err := svc.PlaceBid(ctx, postID, req.BidAmount, claims.UserID)
		if err != nil {
			switch err {
			case services.ErrPostNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(PlaceBidErrorResponse{Error: "Post not found"})
			case services.ErrBidTooLow:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(PlaceBidErrorResponse{Error: "Bid amount must be greater than the current price"})
			case services.ErrBidConflict:
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(PlaceBidErrorResponse{Error: "Bid lost to a concurrent bid, please retry"})
			default:
				logger.Log.Errorw("failed to place bid", "postID", postID, "userID", claims.UserID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(PlaceBidErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PlaceBidResponse{
			Message: "Bid placed successfully",
			BidID:   bidID.String(),
		})
	}
}
