package models

import (
	"time"

	"github.com/google/uuid"
)

// BidDB represents an accepted bid in the ledger. Rows are append-only:
// a bid is never mutated or deleted after creation.
type BidDB struct {
	BidID     uuid.UUID `json:"bid_id" db:"bid_id"`         // Primary key
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Bidder, resolved from the authenticated caller
	PostID    uuid.UUID `json:"post_id" db:"post_id"`       // Auction the bid targets
	BidAmount int64     `json:"bid_amount" db:"bid_amount"` // Accepted amount, strictly above the previous price
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Acceptance timestamp
}

// BidEvent is the message published to Kafka for every accepted bid.
type BidEvent struct {
	EventID   string `json:"event_id"`   // Unique identifier of the event
	Timestamp int64  `json:"timestamp"`  // Unix timestamp (seconds) of acceptance
	BidID     string `json:"bid_id"`     // Identifier of the accepted bid
	PostID    string `json:"post_id"`    // Auction the bid targets
	UserID    string `json:"user_id"`    // Bidder identifier
	BidAmount int64  `json:"bid_amount"` // Accepted amount
}
