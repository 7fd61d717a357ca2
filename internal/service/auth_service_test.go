package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"grocerly/internal/auth"
	"grocerly/internal/cache"
	"grocerly/internal/config"
	"grocerly/internal/errors"
	"grocerly/internal/model"
)

func newTestAuthService(exchanger *MockSessionExchanger, users *MockUserRepository, sessions *MockSessionRepository, adminEmails ...string) AuthService {
	cfg := &config.Config{AdminEmails: adminEmails}
	store := auth.NewSessionStore(sessions, (*cache.Client)(nil))
	return NewAuthService(exchanger, users, store, cfg)
}

func TestAuthService_CreateSession(t *testing.T) {
	sessionData := func(email string) *auth.SessionData {
		return &auth.SessionData{
			SessionToken: "tok-xyz",
			Email:        email,
			Name:         "Test Shopper",
			Picture:      "https://example.com/p.jpg",
		}
	}

	tests := []struct {
		name        string
		adminEmails []string
		setupMock   func(*MockSessionExchanger, *MockUserRepository, *MockSessionRepository)
		wantAdmin   bool
		wantErr     bool
	}{
		{
			name: "new user created",
			setupMock: func(ex *MockSessionExchanger, u *MockUserRepository, s *MockSessionRepository) {
				ex.On("ExchangeSession", mock.Anything, "sid-1").Return(sessionData("new@example.com"), nil)
				u.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, gorm.ErrRecordNotFound)
				u.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
				s.On("Create", mock.Anything, mock.AnythingOfType("*model.UserSession")).Return(nil)
			},
			wantAdmin: false,
		},
		{
			name:        "new allowlisted user is admin",
			adminEmails: []string{"boss@example.com"},
			setupMock: func(ex *MockSessionExchanger, u *MockUserRepository, s *MockSessionRepository) {
				ex.On("ExchangeSession", mock.Anything, "sid-1").Return(sessionData("boss@example.com"), nil)
				u.On("FindByEmail", mock.Anything, "boss@example.com").Return(nil, gorm.ErrRecordNotFound)
				u.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
				s.On("Create", mock.Anything, mock.AnythingOfType("*model.UserSession")).Return(nil)
			},
			wantAdmin: true,
		},
		{
			name:        "existing user gains admin on allowlisted login",
			adminEmails: []string{"Boss@Example.com"}, // allowlist match is case-insensitive
			setupMock: func(ex *MockSessionExchanger, u *MockUserRepository, s *MockSessionRepository) {
				ex.On("ExchangeSession", mock.Anything, "sid-1").Return(sessionData("boss@example.com"), nil)
				existing := &model.User{UserID: "user_111111111111", Email: "boss@example.com", IsAdmin: false}
				u.On("FindByEmail", mock.Anything, "boss@example.com").Return(existing, nil)
				u.On("UpdateIdentity", mock.Anything, "user_111111111111", "Test Shopper", "https://example.com/p.jpg", true).Return(nil)
				u.On("FindByUserID", mock.Anything, "user_111111111111").Return(&model.User{
					UserID: "user_111111111111", Email: "boss@example.com", IsAdmin: true,
				}, nil)
				s.On("Create", mock.Anything, mock.AnythingOfType("*model.UserSession")).Return(nil)
			},
			wantAdmin: true,
		},
		{
			name: "existing admin keeps flag when off the allowlist",
			setupMock: func(ex *MockSessionExchanger, u *MockUserRepository, s *MockSessionRepository) {
				ex.On("ExchangeSession", mock.Anything, "sid-1").Return(sessionData("former@example.com"), nil)
				existing := &model.User{UserID: "user_222222222222", Email: "former@example.com", IsAdmin: true}
				u.On("FindByEmail", mock.Anything, "former@example.com").Return(existing, nil)
				u.On("UpdateIdentity", mock.Anything, "user_222222222222", "Test Shopper", "https://example.com/p.jpg", true).Return(nil)
				u.On("FindByUserID", mock.Anything, "user_222222222222").Return(&model.User{
					UserID: "user_222222222222", Email: "former@example.com", IsAdmin: true,
				}, nil)
				s.On("Create", mock.Anything, mock.AnythingOfType("*model.UserSession")).Return(nil)
			},
			wantAdmin: true,
		},
		{
			name: "exchange failure surfaces as bad request",
			setupMock: func(ex *MockSessionExchanger, u *MockUserRepository, s *MockSessionRepository) {
				ex.On("ExchangeSession", mock.Anything, "sid-1").Return(nil, fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exchanger := new(MockSessionExchanger)
			users := new(MockUserRepository)
			sessions := new(MockSessionRepository)
			tt.setupMock(exchanger, users, sessions)

			svc := newTestAuthService(exchanger, users, sessions, tt.adminEmails...)
			user, token, err := svc.CreateSession(context.Background(), "sid-1")

			if tt.wantErr {
				require.Error(t, err)
				httpErr := errors.MapErrorToHTTP(err)
				assert.Equal(t, 400, httpErr.StatusCode)
				assert.Equal(t, "SESSION_EXCHANGE_FAILED", httpErr.Code)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				require.NotNil(t, user)
				assert.Equal(t, "tok-xyz", token)
				assert.Equal(t, tt.wantAdmin, user.IsAdmin)
				assert.NotEmpty(t, user.UserID)
			}

			exchanger.AssertExpectations(t)
			users.AssertExpectations(t)
			sessions.AssertExpectations(t)
		})
	}
}

func TestAuthService_CreateSession_SessionExpiry(t *testing.T) {
	exchanger := new(MockSessionExchanger)
	users := new(MockUserRepository)
	sessions := new(MockSessionRepository)

	exchanger.On("ExchangeSession", mock.Anything, "sid-1").Return(&auth.SessionData{
		SessionToken: "tok-xyz",
		Email:        "new@example.com",
		Name:         "Test Shopper",
	}, nil)
	users.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	var created *model.UserSession
	sessions.On("Create", mock.Anything, mock.AnythingOfType("*model.UserSession")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*model.UserSession)
		}).Return(nil)

	svc := newTestAuthService(exchanger, users, sessions)
	_, _, err := svc.CreateSession(context.Background(), "sid-1")
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, "tok-xyz", created.SessionToken)
	assert.InDelta(t, model.SessionTTL.Seconds(), created.ExpiresAt.Sub(created.CreatedAt).Seconds(), 1)
}

func TestAuthService_Logout(t *testing.T) {
	exchanger := new(MockSessionExchanger)
	users := new(MockUserRepository)
	sessions := new(MockSessionRepository)
	sessions.On("DeleteByToken", mock.Anything, "tok-xyz").Return(nil)

	svc := newTestAuthService(exchanger, users, sessions)
	require.NoError(t, svc.Logout(context.Background(), "tok-xyz"))
	sessions.AssertExpectations(t)

	// No token means nothing to delete.
	require.NoError(t, svc.Logout(context.Background(), ""))
}
