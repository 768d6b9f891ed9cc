package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-auction-market/internal/logger"
	"github.com/sbilibin2017/gw-auction-market/internal/models"
)

// PostCacheRepository provides a Redis read-through cache for posts.
// Entries are invalidated on every post mutation, including accepted bids,
// so a cached current price is never older than the TTL.
type PostCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached posts
}

// NewPostCacheRepository creates a new repository instance with the given TTL.
func NewPostCacheRepository(client *redis.Client, expiration time.Duration) *PostCacheRepository {
	return &PostCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func postCacheKey(postID uuid.UUID) string {
	return fmt.Sprintf("post:%s", postID)
}

// Get fetches a cached post. Returns an error on a cache miss.
func (r *PostCacheRepository) Get(ctx context.Context, postID uuid.UUID) (*models.PostDB, error) {
	key := postCacheKey(postID)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("post not found in cache: %s", postID)
		}
		return nil, err
	}

	var post models.PostDB
	if err := json.Unmarshal(val, &post); err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", post.PostID,
		"error", nil,
	)

	return &post, nil
}

// Set caches a post with expiration.
func (r *PostCacheRepository) Set(ctx context.Context, post *models.PostDB) error {
	key := postCacheKey(post.PostID)

	data, err := json.Marshal(post)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}

// Delete drops a post from the cache.
func (r *PostCacheRepository) Delete(ctx context.Context, postID uuid.UUID) error {
	key := postCacheKey(postID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "deleted",
		"error", err,
	)

	return err
}
