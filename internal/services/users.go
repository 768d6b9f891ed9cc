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
	// ErrUserNotFound is returned when a referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrNotAccountOwner is returned when a caller mutates another user's account.
	ErrNotAccountOwner = errors.New("caller does not own this account")
)

// UserProvider defines read operations the user service depends on.
type UserProvider interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	List(ctx context.Context, skip, limit int) ([]models.UserDB, error)
}

// UserEditor defines mutation operations the user service depends on.
type UserEditor interface {
	Update(ctx context.Context, userID uuid.UUID, username, email string) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// UserService handles user account reads and self-service mutations.
type UserService struct {
	provider UserProvider
	editor   UserEditor
}

// NewUserService creates a new UserService instance.
func NewUserService(provider UserProvider, editor UserEditor) *UserService {
	return &UserService{provider: provider, editor: editor}
}

// Get returns a single user by id.
func (svc *UserService) Get(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.provider.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// List returns users with skip/limit paging.
func (svc *UserService) List(ctx context.Context, skip, limit int) ([]models.UserDB, error) {
	users, err := svc.provider.List(ctx, skip, limit)
	if err != nil {
		logger.Log.Errorw("failed to list users", "skip", skip, "limit", limit, "err", err)
		return nil, err
	}
	return users, nil
}

// Update changes the caller's own username and email. Callers can only
// mutate their own account.
func (svc *UserService) Update(ctx context.Context, callerID, userID uuid.UUID, username, email string) error {
	if callerID != userID {
		logger.Log.Warnw("account update denied", "callerID", callerID, "userID", userID)
		return ErrNotAccountOwner
	}

	if err := svc.editor.Update(ctx, userID, username, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		logger.Log.Errorw("failed to update user", "userID", userID, "err", err)
		return err
	}
	return nil
}

// Delete removes the caller's own account.
func (svc *UserService) Delete(ctx context.Context, callerID, userID uuid.UUID) error {
	if callerID != userID {
		logger.Log.Warnw("account delete denied", "callerID", callerID, "userID", userID)
		return ErrNotAccountOwner
	}

	if err := svc.editor.Delete(ctx, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		logger.Log.Errorw("failed to delete user", "userID", userID, "err", err)
		return err
	}
	return nil
}
