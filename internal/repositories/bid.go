package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-auction-market/internal/logger"
	"github.com/sbilibin2017/gw-auction-market/internal/models"
)

// BidWriteRepository appends accepted bids to the ledger. The ledger is
// append-only: no update or delete is exposed.
type BidWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewBidWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *BidWriteRepository {
	return &BidWriteRepository{db: db, txGetter: txGetter}
}

// Append inserts a bid row and returns its generated identifier. When a
// request transaction is present in the context, the insert joins it so the
// ledger row and the price update commit or abort together.
func (r *BidWriteRepository) Append(ctx context.Context, postID, userID uuid.UUID, bidAmount int64) (uuid.UUID, error) {
	const query = `
		INSERT INTO bids (bid_id, user_id, post_id, bid_amount, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING bid_id
	`
	args := []any{uuid.New(), userID, postID, bidAmount}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var bidID uuid.UUID
	err := sqlx.GetContext(ctx, executor, &bidID, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, postID, bidAmount},
		"result", bidID,
		"error", err,
	)

	return bidID, err
}

// BidReadRepository handles bid ledger read operations.
type BidReadRepository struct {
	db *sqlx.DB
}

func NewBidReadRepository(db *sqlx.DB) *BidReadRepository {
	return &BidReadRepository{db: db}
}

// ListByPost returns all accepted bids for a post in acceptance order.
func (r *BidReadRepository) ListByPost(ctx context.Context, postID uuid.UUID) ([]models.BidDB, error) {
	const query = `
		SELECT bid_id, user_id, post_id, bid_amount, created_at
		FROM bids
		WHERE post_id = $1
		ORDER BY created_at, bid_amount
	`

	var bids []models.BidDB
	err := r.db.SelectContext(ctx, &bids, query, postID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{postID},
		"result", len(bids),
		"error", err,
	)

	return bids, err
}
