package models

import (
	"time"

	"github.com/google/uuid"
)

// PostDB represents an auction listing row in the database.
// CurrentPrice is the highest accepted bid so far (or the starting price
// while no bids exist) and only changes through an accepted bid.
type PostDB struct {
	PostID       uuid.UUID `json:"post_id" db:"post_id"`           // Primary key
	Title        string    `json:"title" db:"title"`               // Listing title
	Description  string    `json:"description" db:"description"`   // Listing description
	Image        string    `json:"image" db:"image"`               // Image URL
	CurrentPrice int64     `json:"current_price" db:"current_price"` // Highest accepted bid, monotonically non-decreasing
	TopPrice     int64     `json:"top_price" db:"top_price"`       // Optional ceiling, stored but not enforced
	CreatorID    uuid.UUID `json:"creator_id" db:"creator_id"`     // Owning user
	CreatedAt    time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`     // Last update timestamp
}
