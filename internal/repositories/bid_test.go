package repositories

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func TestBidWriteRepository_Append(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	creatorID := insertUser(t, db, "alice", "alice@example.com")
	bidderID := insertUser(t, db, "bob", "bob@example.com")
	postID := insertPost(t, db, creatorID, 100)

	writer := NewBidWriteRepository(db, nil)
	reader := NewBidReadRepository(db)

	bidID, err := writer.Append(ctx, postID, bidderID, 150)
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, bidID)

	bids, err := reader.ListByPost(ctx, postID)
	assert.NoError(t, err)
	assert.Len(t, bids, 1)
	assert.Equal(t, bidID, bids[0].BidID)
	assert.Equal(t, bidderID, bids[0].UserID)
	assert.Equal(t, int64(150), bids[0].BidAmount)
}

func TestBidWriteRepository_AppendJoinsTransaction(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	creatorID := insertUser(t, db, "alice", "alice@example.com")
	bidderID := insertUser(t, db, "bob", "bob@example.com")
	postID := insertPost(t, db, creatorID, 100)

	tx, err := db.BeginTxx(ctx, nil)
	assert.NoError(t, err)

	writer := NewBidWriteRepository(db, func(ctx context.Context) *sqlx.Tx { return tx })
	reader := NewBidReadRepository(db)

	_, err = writer.Append(ctx, postID, bidderID, 150)
	assert.NoError(t, err)

	// The rollback must take the ledger row with it.
	assert.NoError(t, tx.Rollback())

	bids, err := reader.ListByPost(ctx, postID)
	assert.NoError(t, err)
	assert.Len(t, bids, 0)
}

func TestBidReadRepository_ListByPost_Order(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	creatorID := insertUser(t, db, "alice", "alice@example.com")
	bidderID := insertUser(t, db, "bob", "bob@example.com")
	postID := insertPost(t, db, creatorID, 100)
	otherPostID := insertPost(t, db, creatorID, 100)

	writer := NewBidWriteRepository(db, nil)
	reader := NewBidReadRepository(db)

	for _, amount := range []int64{110, 120, 130} {
		_, err := writer.Append(ctx, postID, bidderID, amount)
		assert.NoError(t, err)
	}
	_, err := writer.Append(ctx, otherPostID, bidderID, 999)
	assert.NoError(t, err)

	bids, err := reader.ListByPost(ctx, postID)
	assert.NoError(t, err)
	assert.Len(t, bids, 3)
	for i := 1; i < len(bids); i++ {
		assert.Greater(t, bids[i].BidAmount, bids[i-1].BidAmount)
	}
}

// Full read-validate-update-append loop under concurrency: the committed
// price sequence must be strictly increasing and the final price must equal
// the highest accepted bid.
func TestBidPlacementConcurrency(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	creatorID := insertUser(t, db, "alice", "alice@example.com")
	bidderID := insertUser(t, db, "bob", "bob@example.com")
	postID := insertPost(t, db, creatorID, 100)

	postReader := NewPostReadRepository(db)

	placeBid := func(bidAmount int64) error {
		tx, err := db.BeginTxx(ctx, nil)
		if err != nil {
			return err
		}
		txGetter := func(ctx context.Context) *sqlx.Tx { return tx }
		postWriter := NewPostWriteRepository(db, txGetter)
		bidWriter := NewBidWriteRepository(db, txGetter)

		for {
			currentPrice, err := postReader.GetCurrentPrice(ctx, postID)
			if err != nil {
				tx.Rollback()
				return err
			}
			if bidAmount <= currentPrice {
				return tx.Rollback()
			}
			ok, err := postWriter.CompareAndSetPrice(ctx, postID, currentPrice, bidAmount)
			if err != nil {
				tx.Rollback()
				return err
			}
			if !ok {
				continue
			}
			if _, err := bidWriter.Append(ctx, postID, bidderID, bidAmount); err != nil {
				tx.Rollback()
				return err
			}
			return tx.Commit()
		}
	}

	const workers = 10
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(amount int64) {
			defer wg.Done()
			assert.NoError(t, placeBid(amount))
		}(int64(101 + i*10))
	}
	wg.Wait()

	finalPrice, err := postReader.GetCurrentPrice(ctx, postID)
	assert.NoError(t, err)

	var amounts []int64
	assert.NoError(t, db.Select(&amounts, `SELECT bid_amount FROM bids WHERE post_id=$1 ORDER BY bid_amount`, postID))
	assert.NotEmpty(t, amounts)

	// Every accepted amount is unique and the highest one is the final price.
	seen := map[int64]bool{}
	for _, a := range amounts {
		assert.False(t, seen[a])
		seen[a] = true
	}
	assert.Equal(t, amounts[len(amounts)-1], finalPrice)
}
