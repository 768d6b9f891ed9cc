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

// BidHistorian defines the interface that the service must implement.
type BidHistorian interface {
	History(ctx context.Context, postID uuid.UUID) ([]models.BidDB, error)
}

// BidListErrorResponse represents an error response for the bid history
// swagger:model BidListErrorResponse
type BidListErrorResponse struct {
	// Error message
	// default: Post not found
	Error string `json:"error"`
}

// NewBidListHandler returns an HTTP handler for listing the accepted bids
// of a post in acceptance order.
// @Summary List bids of a post
// @Description Returns every accepted bid of the post, oldest first.
// @Tags bids
// @Produce json
// @Param post_id path string true "Post ID"
// @Success 200 {array} models.BidDB "Accepted bids"
// @Failure 404 {object} handlers.BidListErrorResponse "Post not found"
// @Router /bids/{post_id} [get]
func NewBidListHandler(svc BidHistorian) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		postID, err := uuid.Parse(chi.URLParam(r, "post_id"))
		if err != nil {
			logger.Log.Warnw("invalid post id", "post_id", chi.URLParam(r, "post_id"))
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(BidListErrorResponse{Error: "Post not found"})
			return
		}

		bids, err := svc.History(ctx, postID)
		if err != nil {
			switch err {
			case services.ErrPostNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(BidListErrorResponse{Error: "Post not found"})
			default:
				logger.Log.Errorw("failed to list bids", "postID", postID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(BidListErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(bids)
	}
}
