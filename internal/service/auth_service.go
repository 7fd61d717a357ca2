package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"gorm.io/gorm"

	"grocerly/internal/auth"
	"grocerly/internal/config"
	"grocerly/internal/errors"
	"grocerly/internal/model"
	"grocerly/internal/repository"
)

// AuthService handles the external login exchange and session lifecycle.
type AuthService interface {
	// CreateSession trades a one-time session id for a logged-in user and
	// an opaque session token.
	CreateSession(ctx context.Context, sessionID string) (*model.User, string, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	exchanger auth.SessionExchanger
	users     repository.UserRepository
	sessions  *auth.SessionStore
	cfg       *config.Config
	now       func() time.Time
}

// NewAuthService creates a new authentication service.
func NewAuthService(exchanger auth.SessionExchanger, users repository.UserRepository, sessions *auth.SessionStore, cfg *config.Config) AuthService {
	return &authService{
		exchanger: exchanger,
		users:     users,
		sessions:  sessions,
		cfg:       cfg,
		now:       time.Now,
	}
}

// CreateSession exchanges the session id, upserts the user by verified
// email, and opens a 7-day session. The admin flag is re-asserted on
// every login for allowlisted emails and never revoked here: removing an
// email from the allowlist does not demote an already-admin user.
func (s *authService) CreateSession(ctx context.Context, sessionID string) (*model.User, string, error) {
	data, err := s.exchanger.ExchangeSession(ctx, sessionID)
	if err != nil {
		return nil, "", errors.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("Failed to get session data: %v", err), "SESSION_EXCHANGE_FAILED")
	}

	user, err := s.users.FindByEmail(ctx, data.Email)
	switch {
	case err == nil:
		isAdmin := user.IsAdmin || s.cfg.IsAdminEmail(data.Email)
		if err := s.users.UpdateIdentity(ctx, user.UserID, data.Name, data.Picture, isAdmin); err != nil {
			return nil, "", fmt.Errorf("update user identity: %w", err)
		}
		if user, err = s.users.FindByUserID(ctx, user.UserID); err != nil {
			return nil, "", fmt.Errorf("reload user: %w", err)
		}
	case err == gorm.ErrRecordNotFound:
		user = &model.User{
			UserID:  model.NewDocID("user"),
			Email:   data.Email,
			Name:    data.Name,
			Picture: data.Picture,
			IsAdmin: s.cfg.IsAdminEmail(data.Email),
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, "", fmt.Errorf("create user: %w", err)
		}
	default:
		return nil, "", fmt.Errorf("find user by email: %w", err)
	}

	if _, err := s.sessions.Create(ctx, user.UserID, data.SessionToken, s.now()); err != nil {
		return nil, "", fmt.Errorf("create session: %w", err)
	}
	return user, data.SessionToken, nil
}

// Logout deletes the session for the token, if any.
func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}
