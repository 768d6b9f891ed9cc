package repositories

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPostWriteRepository_SaveAndGet(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	creatorID := insertUser(t, db, "alice", "alice@example.com")

	writer := NewPostWriteRepository(db, nil)
	reader := NewPostReadRepository(db)

	postID, err := writer.Save(ctx, "Vintage camera", "Fully working", "https://example.com/camera.jpg", 100, 500, creatorID)
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, postID)

	post, err := reader.GetByID(ctx, postID)
	assert.NoError(t, err)
	assert.NotNil(t, post)
	assert.Equal(t, "Vintage camera", post.Title)
	assert.Equal(t, int64(100), post.CurrentPrice)
	assert.Equal(t, int64(500), post.TopPrice)
	assert.Equal(t, creatorID, post.CreatorID)
}

func TestPostReadRepository_GetByID_NotFound(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	reader := NewPostReadRepository(db)

	post, err := reader.GetByID(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, post)
}

func TestPostReadRepository_GetCurrentPrice(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	creatorID := insertUser(t, db, "alice", "alice@example.com")
	postID := insertPost(t, db, creatorID, 100)

	reader := NewPostReadRepository(db)

	price, err := reader.GetCurrentPrice(ctx, postID)
	assert.NoError(t, err)
	assert.Equal(t, int64(100), price)

	_, err = reader.GetCurrentPrice(ctx, uuid.New())
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestPostWriteRepository_Update(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	creatorID := insertUser(t, db, "alice", "alice@example.com")
	postID := insertPost(t, db, creatorID, 100)

	writer := NewPostWriteRepository(db, nil)
	reader := NewPostReadRepository(db)

	err := writer.Update(ctx, postID, "New title", "New description", "https://example.com/new.jpg", 900)
	assert.NoError(t, err)

	post, err := reader.GetByID(ctx, postID)
	assert.NoError(t, err)
	assert.Equal(t, "New title", post.Title)
	assert.Equal(t, int64(900), post.TopPrice)
	// Listing updates never move the price.
	assert.Equal(t, int64(100), post.CurrentPrice)

	err = writer.Update(ctx, uuid.New(), "ghost", "", "", 0)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestPostWriteRepository_Delete(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	creatorID := insertUser(t, db, "alice", "alice@example.com")
	postID := insertPost(t, db, creatorID, 100)

	writer := NewPostWriteRepository(db, nil)
	reader := NewPostReadRepository(db)

	err := writer.Delete(ctx, postID)
	assert.NoError(t, err)

	post, err := reader.GetByID(ctx, postID)
	assert.NoError(t, err)
	assert.Nil(t, post)

	err = writer.Delete(ctx, postID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestPostWriteRepository_CompareAndSetPrice(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	creatorID := insertUser(t, db, "alice", "alice@example.com")
	postID := insertPost(t, db, creatorID, 100)

	writer := NewPostWriteRepository(db, nil)
	reader := NewPostReadRepository(db)

	ok, err := writer.CompareAndSetPrice(ctx, postID, 100, 150)
	assert.NoError(t, err)
	assert.True(t, ok)

	price, err := reader.GetCurrentPrice(ctx, postID)
	assert.NoError(t, err)
	assert.Equal(t, int64(150), price)

	// Stale expected price loses.
	ok, err = writer.CompareAndSetPrice(ctx, postID, 100, 200)
	assert.NoError(t, err)
	assert.False(t, ok)

	price, err = reader.GetCurrentPrice(ctx, postID)
	assert.NoError(t, err)
	assert.Equal(t, int64(150), price)
}

// Concurrent writers racing on the same expected price: exactly one
// conditional update may win.
func TestPostWriteRepository_CompareAndSetPriceConcurrency(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	creatorID := insertUser(t, db, "alice", "alice@example.com")
	postID := insertPost(t, db, creatorID, 100)

	writer := NewPostWriteRepository(db, nil)
	reader := NewPostReadRepository(db)

	const workers = 10
	wins := make(chan int64, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(amount int64) {
			defer wg.Done()
			ok, err := writer.CompareAndSetPrice(ctx, postID, 100, amount)
			assert.NoError(t, err)
			if ok {
				wins <- amount
			}
		}(int64(101 + i))
	}
	wg.Wait()
	close(wins)

	var winners []int64
	for w := range wins {
		winners = append(winners, w)
	}
	assert.Len(t, winners, 1)

	price, err := reader.GetCurrentPrice(ctx, postID)
	assert.NoError(t, err)
	assert.Equal(t, winners[0], price)
}
