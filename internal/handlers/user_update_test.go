package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-auction-market/internal/jwt"
	"github.com/sbilibin2017/gw-auction-market/internal/services"
)

func TestUserUpdateHandler(t *testing.T) {
	callerID := uuid.New()
	otherID := uuid.New()
	validToken := "valid-token"

	tests := []struct {
		name               string
		targetID           string
		requestBody        any
		setupMocks         func(mockSvc *MockUserUpdater, mockTokener *MockUserTokener)
		expectedStatusCode int
	}{
		{
			name:        "successful update",
			targetID:    callerID.String(),
			requestBody: UserUpdateRequest{Username: "john_doe", Email: "john@example.com"},
			setupMocks: func(mockSvc *MockUserUpdater, mockTokener *MockUserTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: callerID}, nil)
				mockSvc.EXPECT().
					Update(gomock.Any(), callerID, callerID, "john_doe", "john@example.com").
					Return(nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:        "another user's account",
			targetID:    otherID.String(),
			requestBody: UserUpdateRequest{Username: "john_doe", Email: "john@example.com"},
			setupMocks: func(mockSvc *MockUserUpdater, mockTokener *MockUserTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: callerID}, nil)
				mockSvc.EXPECT().
					Update(gomock.Any(), callerID, otherID, "john_doe", "john@example.com").
					Return(services.ErrNotAccountOwner)
			},
			expectedStatusCode: http.StatusForbidden,
		},
		{
			name:        "empty fields",
			targetID:    callerID.String(),
			requestBody: UserUpdateRequest{Username: "", Email: ""},
			setupMocks: func(mockSvc *MockUserUpdater, mockTokener *MockUserTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: callerID}, nil)
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:        "unauthorized",
			targetID:    callerID.String(),
			requestBody: UserUpdateRequest{Username: "john_doe", Email: "john@example.com"},
			setupMocks: func(mockSvc *MockUserUpdater, mockTokener *MockUserTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockUserUpdater(ctrl)
			mockTokener := NewMockUserTokener(ctrl)
			tt.setupMocks(mockSvc, mockTokener)

			router := chi.NewRouter()
			router.Put("/users/{user_id}", NewUserUpdateHandler(mockSvc, mockTokener))

			var body bytes.Buffer
			assert.NoError(t, json.NewEncoder(&body).Encode(tt.requestBody))

			req := httptest.NewRequest(http.MethodPut, "/users/"+tt.targetID, &body)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatusCode, rec.Code)
		})
	}
}

func TestUserDeleteHandler(t *testing.T) {
	callerID := uuid.New()
	otherID := uuid.New()
	validToken := "valid-token"

	tests := []struct {
		name               string
		targetID           string
		setupMocks         func(mockSvc *MockUserDeleter, mockTokener *MockUserTokener)
		expectedStatusCode int
	}{
		{
			name:     "successful deletion",
			targetID: callerID.String(),
			setupMocks: func(mockSvc *MockUserDeleter, mockTokener *MockUserTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: callerID}, nil)
				mockSvc.EXPECT().Delete(gomock.Any(), callerID, callerID).Return(nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:     "another user's account",
			targetID: otherID.String(),
			setupMocks: func(mockSvc *MockUserDeleter, mockTokener *MockUserTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: callerID}, nil)
				mockSvc.EXPECT().Delete(gomock.Any(), callerID, otherID).Return(services.ErrNotAccountOwner)
			},
			expectedStatusCode: http.StatusForbidden,
		},
		{
			name:     "user not found",
			targetID: callerID.String(),
			setupMocks: func(mockSvc *MockUserDeleter, mockTokener *MockUserTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: callerID}, nil)
				mockSvc.EXPECT().Delete(gomock.Any(), callerID, callerID).Return(services.ErrUserNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockUserDeleter(ctrl)
			mockTokener := NewMockUserTokener(ctrl)
			tt.setupMocks(mockSvc, mockTokener)

			router := chi.NewRouter()
			router.Delete("/users/{user_id}", NewUserDeleteHandler(mockSvc, mockTokener))

			req := httptest.NewRequest(http.MethodDelete, "/users/"+tt.targetID, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatusCode, rec.Code)
		})
	}
}
