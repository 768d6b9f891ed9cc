package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-auction-market/internal/logger"
	"github.com/sbilibin2017/gw-auction-market/internal/models"
)

// PostReadRepository handles auction listing read operations.
type PostReadRepository struct {
	db *sqlx.DB
}

func NewPostReadRepository(db *sqlx.DB) *PostReadRepository {
	return &PostReadRepository{db: db}
}

// GetByID returns the post with the given id, or nil when no such post exists.
func (r *PostReadRepository) GetByID(ctx context.Context, postID uuid.UUID) (*models.PostDB, error) {
	const query = `
		SELECT post_id, title, description, image, current_price, top_price, creator_id, created_at, updated_at
		FROM posts
		WHERE post_id = $1
	`

	var post models.PostDB
	err := r.db.GetContext(ctx, &post, query, postID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{postID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &post, nil
}

// GetCurrentPrice reads the current price of a post. Propagates sql.ErrNoRows
// when the post does not exist.
func (r *PostReadRepository) GetCurrentPrice(ctx context.Context, postID uuid.UUID) (int64, error) {
	const query = `SELECT current_price FROM posts WHERE post_id = $1`

	var price int64
	err := r.db.GetContext(ctx, &price, query, postID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{postID},
		"result", price,
		"error", err,
	)

	return price, err
}

// List returns posts ordered by creation time, with skip/limit paging.
func (r *PostReadRepository) List(ctx context.Context, skip, limit int) ([]models.PostDB, error) {
	const query = `
		SELECT post_id, title, description, image, current_price, top_price, creator_id, created_at, updated_at
		FROM posts
		ORDER BY created_at
		OFFSET $1 LIMIT $2
	`

	posts := make([]models.PostDB, 0, limit)
	err := r.db.SelectContext(ctx, &posts, query, skip, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{skip, limit},
		"result", len(posts),
		"error", err,
	)

	return posts, err
}

// PostWriteRepository handles auction listing write operations.
type PostWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPostWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PostWriteRepository {
	return &PostWriteRepository{db: db, txGetter: txGetter}
}

func (r *PostWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new post and returns its generated identifier.
func (r *PostWriteRepository) Save(ctx context.Context, title, description, image string, currentPrice, topPrice int64, creatorID uuid.UUID) (uuid.UUID, error) {
	const query = `
		INSERT INTO posts (post_id, title, description, image, current_price, top_price, creator_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING post_id
	`
	args := []any{uuid.New(), title, description, image, currentPrice, topPrice, creatorID}

	var postID uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &postID, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{title, currentPrice, topPrice, creatorID},
		"result", postID,
		"error", err,
	)

	return postID, err
}

// Update changes the listing fields of a post. The current price is not
// touched here: it only changes through CompareAndSetPrice on an accepted bid.
// Returns sql.ErrNoRows when the post does not exist.
func (r *PostWriteRepository) Update(ctx context.Context, postID uuid.UUID, title, description, image string, topPrice int64) error {
	const query = `
		UPDATE posts
		SET title = $2, description = $3, image = $4, top_price = $5, updated_at = NOW()
		WHERE post_id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, postID, title, description, image, topPrice)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{postID, title, topPrice},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a post. Returns sql.ErrNoRows when the post does not exist.
func (r *PostWriteRepository) Delete(ctx context.Context, postID uuid.UUID) error {
	const query = `DELETE FROM posts WHERE post_id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, postID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{postID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CompareAndSetPrice updates the current price only if it still equals the
// price observed during validation. A false result means a concurrent bid
// committed first and the caller must re-validate against the fresh price.
func (r *PostWriteRepository) CompareAndSetPrice(ctx context.Context, postID uuid.UUID, expectedPrice, newPrice int64) (bool, error) {
	const query = `
		UPDATE posts
		SET current_price = $3, updated_at = NOW()
		WHERE post_id = $1 AND current_price = $2
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, postID, expectedPrice, newPrice)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{postID, expectedPrice, newPrice},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected == 1, nil
}
