package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/gw-auction-market/internal/logger"
)

// --- Setup Postgres ---
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	logger.Initialize("debug")
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, err := container.Host(ctx)
	assert.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	assert.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())
	db, err := sqlx.Connect("pgx", dsn)
	assert.NoError(t, err)

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id UUID PRIMARY KEY,
			username VARCHAR(50) NOT NULL UNIQUE,
			email VARCHAR(100) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS posts (
			post_id UUID PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			image TEXT NOT NULL DEFAULT '',
			current_price BIGINT NOT NULL,
			top_price BIGINT NOT NULL DEFAULT 0,
			creator_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS bids (
			bid_id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
			post_id UUID NOT NULL REFERENCES posts(post_id) ON DELETE CASCADE,
			bid_amount BIGINT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		);`,
	}

	for _, m := range migrations {
		_, err = db.Exec(m)
		assert.NoError(t, err)
	}

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

// --- Helpers ---
func insertUser(t *testing.T, db *sqlx.DB, username, email string) uuid.UUID {
	userID := uuid.New()
	_, err := db.Exec(`INSERT INTO users (user_id, username, email, password_hash) VALUES ($1, $2, $3, $4)`,
		userID, username, email, "hashed-password")
	assert.NoError(t, err)
	return userID
}

func insertPost(t *testing.T, db *sqlx.DB, creatorID uuid.UUID, price int64) uuid.UUID {
	postID := uuid.New()
	_, err := db.Exec(`INSERT INTO posts (post_id, title, current_price, creator_id) VALUES ($1, $2, $3, $4)`,
		postID, "test post", price, creatorID)
	assert.NoError(t, err)
	return postID
}

// --- User repository tests ---
func TestUserWriteRepository_SaveAndGet(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	writer := NewUserWriteRepository(db)
	reader := NewUserReadRepository(db)

	userID, err := writer.Save(ctx, "alice", "alice@example.com", "hashed-password")
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, userID)

	user, err := reader.GetByID(ctx, userID)
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "hashed-password", user.PasswordHash)
}

func TestUserWriteRepository_SaveDuplicateUsername(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	writer := NewUserWriteRepository(db)

	_, err := writer.Save(ctx, "alice", "alice@example.com", "hashed-password")
	assert.NoError(t, err)

	_, err = writer.Save(ctx, "alice", "other@example.com", "hashed-password")
	assert.Error(t, err)
}

func TestUserReadRepository_GetByID_NotFound(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	reader := NewUserReadRepository(db)

	user, err := reader.GetByID(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserReadRepository_GetByUsernameOrEmail(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	insertUser(t, db, "alice", "alice@example.com")
	reader := NewUserReadRepository(db)

	username := "alice"
	user, err := reader.GetByUsernameOrEmail(ctx, &username, nil)
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)

	email := "alice@example.com"
	user, err = reader.GetByUsernameOrEmail(ctx, nil, &email)
	assert.NoError(t, err)
	assert.NotNil(t, user)

	unknown := "bob"
	user, err = reader.GetByUsernameOrEmail(ctx, &unknown, nil)
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserReadRepository_List(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	insertUser(t, db, "alice", "alice@example.com")
	insertUser(t, db, "bob", "bob@example.com")
	insertUser(t, db, "carol", "carol@example.com")

	reader := NewUserReadRepository(db)

	users, err := reader.List(ctx, 0, 10)
	assert.NoError(t, err)
	assert.Len(t, users, 3)

	users, err = reader.List(ctx, 1, 1)
	assert.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserWriteRepository_Update(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := insertUser(t, db, "alice", "alice@example.com")
	writer := NewUserWriteRepository(db)
	reader := NewUserReadRepository(db)

	err := writer.Update(ctx, userID, "alice2", "alice2@example.com")
	assert.NoError(t, err)

	user, err := reader.GetByID(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, "alice2", user.Username)

	err = writer.Update(ctx, uuid.New(), "ghost", "ghost@example.com")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestUserWriteRepository_Delete(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := insertUser(t, db, "alice", "alice@example.com")
	writer := NewUserWriteRepository(db)
	reader := NewUserReadRepository(db)

	err := writer.Delete(ctx, userID)
	assert.NoError(t, err)

	user, err := reader.GetByID(ctx, userID)
	assert.NoError(t, err)
	assert.Nil(t, user)

	err = writer.Delete(ctx, userID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
