package services_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-auction-market/internal/models"
	"github.com/sbilibin2017/gw-auction-market/internal/services"
)

func TestUserService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := services.NewMockUserProvider(ctrl)
	editor := services.NewMockUserEditor(ctrl)

	svc := services.NewUserService(provider, editor)

	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Username: "alice"}

	t.Run("found", func(t *testing.T) {
		provider.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)

		got, err := svc.Get(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("not found", func(t *testing.T) {
		provider.EXPECT().GetByID(gomock.Any(), userID).Return(nil, nil)

		got, err := svc.Get(context.Background(), userID)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
		assert.Nil(t, got)
	})
}

func TestUserService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := services.NewMockUserProvider(ctrl)
	editor := services.NewMockUserEditor(ctrl)

	svc := services.NewUserService(provider, editor)

	users := []models.UserDB{{Username: "alice"}, {Username: "bob"}}
	provider.EXPECT().List(gomock.Any(), 0, 10).Return(users, nil)

	got, err := svc.List(context.Background(), 0, 10)
	assert.NoError(t, err)
	assert.Equal(t, users, got)
}

func TestUserService_UpdateAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := services.NewMockUserProvider(ctrl)
	editor := services.NewMockUserEditor(ctrl)

	svc := services.NewUserService(provider, editor)

	userID := uuid.New()

	t.Run("self update", func(t *testing.T) {
		editor.EXPECT().Update(gomock.Any(), userID, "alice2", "alice2@example.com").Return(nil)

		err := svc.Update(context.Background(), userID, userID, "alice2", "alice2@example.com")
		assert.NoError(t, err)
	})

	t.Run("update of another account denied", func(t *testing.T) {
		err := svc.Update(context.Background(), uuid.New(), userID, "alice2", "alice2@example.com")
		assert.ErrorIs(t, err, services.ErrNotAccountOwner)
	})

	t.Run("update of missing account", func(t *testing.T) {
		editor.EXPECT().Update(gomock.Any(), userID, "alice2", "alice2@example.com").Return(sql.ErrNoRows)

		err := svc.Update(context.Background(), userID, userID, "alice2", "alice2@example.com")
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})

	t.Run("self delete", func(t *testing.T) {
		editor.EXPECT().Delete(gomock.Any(), userID).Return(nil)

		err := svc.Delete(context.Background(), userID, userID)
		assert.NoError(t, err)
	})

	t.Run("delete of another account denied", func(t *testing.T) {
		err := svc.Delete(context.Background(), uuid.New(), userID)
		assert.ErrorIs(t, err, services.ErrNotAccountOwner)
	})
}
