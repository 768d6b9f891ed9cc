package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-auction-market/internal/logger"
	"github.com/sbilibin2017/gw-auction-market/internal/models"
)

var (
	// ErrPostNotFound is returned when a referenced auction listing does not exist.
	ErrPostNotFound = errors.New("post not found")
	// ErrNotPostOwner is returned when a caller mutates a listing they did not create.
	ErrNotPostOwner = errors.New("caller is not the creator of this post")
	// ErrInvalidStartingPrice is returned when a listing is created with a negative price.
	ErrInvalidStartingPrice = errors.New("starting price must not be negative")
)

// PostReader defines read operations the post service depends on.
type PostReader interface {
	GetByID(ctx context.Context, postID uuid.UUID) (*models.PostDB, error)
	List(ctx context.Context, skip, limit int) ([]models.PostDB, error)
}

// PostWriter defines mutation operations the post service depends on.
type PostWriter interface {
	Save(ctx context.Context, title, description, image string, currentPrice, topPrice int64, creatorID uuid.UUID) (uuid.UUID, error)
	Update(ctx context.Context, postID uuid.UUID, title, description, image string, topPrice int64) error
	Delete(ctx context.Context, postID uuid.UUID) error
}

// PostCache defines the read-through cache the post service depends on.
type PostCache interface {
	Get(ctx context.Context, postID uuid.UUID) (*models.PostDB, error)
	Set(ctx context.Context, post *models.PostDB) error
	Delete(ctx context.Context, postID uuid.UUID) error
}

// PostService handles auction listing CRUD. The current price is read-only
// here; it only moves through the bid service.
type PostService struct {
	reader PostReader
	writer PostWriter
	cache  PostCache
}

// NewPostService creates a new PostService instance.
func NewPostService(reader PostReader, writer PostWriter, cache PostCache) *PostService {
	return &PostService{
		reader: reader,
		writer: writer,
		cache:  cache,
	}
}

// Create inserts a new listing owned by the caller. The starting price
// becomes the initial current price.
func (svc *PostService) Create(ctx context.Context, creatorID uuid.UUID, title, description, image string, startingPrice, topPrice int64) (uuid.UUID, error) {
	if startingPrice < 0 {
		return uuid.Nil, ErrInvalidStartingPrice
	}

	postID, err := svc.writer.Save(ctx, title, description, image, startingPrice, topPrice, creatorID)
	if err != nil {
		logger.Log.Errorw("failed to save post", "creatorID", creatorID, "err", err)
		return uuid.Nil, err
	}
	return postID, nil
}

// Get returns a single listing, trying the cache before the database.
func (svc *PostService) Get(ctx context.Context, postID uuid.UUID) (*models.PostDB, error) {
	if svc.cache != nil {
		if post, err := svc.cache.Get(ctx, postID); err == nil {
			return post, nil
		}
	}

	post, err := svc.reader.GetByID(ctx, postID)
	if err != nil {
		logger.Log.Errorw("failed to get post", "postID", postID, "err", err)
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, post); err != nil {
			logger.Log.Warnw("failed to cache post", "postID", postID, "err", err)
		}
	}

	return post, nil
}

// List returns listings with skip/limit paging.
func (svc *PostService) List(ctx context.Context, skip, limit int) ([]models.PostDB, error) {
	posts, err := svc.reader.List(ctx, skip, limit)
	if err != nil {
		logger.Log.Errorw("failed to list posts", "skip", skip, "limit", limit, "err", err)
		return nil, err
	}
	return posts, nil
}

// Update changes the listing fields of a post the caller created and drops
// the cached copy.
func (svc *PostService) Update(ctx context.Context, callerID, postID uuid.UUID, title, description, image string, topPrice int64) error {
	post, err := svc.reader.GetByID(ctx, postID)
	if err != nil {
		logger.Log.Errorw("failed to get post for update", "postID", postID, "err", err)
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.CreatorID != callerID {
		logger.Log.Warnw("post update denied", "callerID", callerID, "creatorID", post.CreatorID)
		return ErrNotPostOwner
	}

	if err := svc.writer.Update(ctx, postID, title, description, image, topPrice); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrPostNotFound
		}
		logger.Log.Errorw("failed to update post", "postID", postID, "err", err)
		return err
	}

	svc.invalidate(ctx, postID)
	return nil
}

// Delete removes a post the caller created and drops the cached copy.
func (svc *PostService) Delete(ctx context.Context, callerID, postID uuid.UUID) error {
	post, err := svc.reader.GetByID(ctx, postID)
	if err != nil {
		logger.Log.Errorw("failed to get post for delete", "postID", postID, "err", err)
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.CreatorID != callerID {
		logger.Log.Warnw("post delete denied", "callerID", callerID, "creatorID", post.CreatorID)
		return ErrNotPostOwner
	}

	if err := svc.writer.Delete(ctx, postID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrPostNotFound
		}
		logger.Log.Errorw("failed to delete post", "postID", postID, "err", err)
		return err
	}

	svc.invalidate(ctx, postID)
	return nil
}

func (svc *PostService) invalidate(ctx context.Context, postID uuid.UUID) {
	if svc.cache == nil {
		return
	}
	if err := svc.cache.Delete(ctx, postID); err != nil {
		logger.Log.Warnw("failed to invalidate post cache", "postID", postID, "err", err)
	}
}
