package auth

import (
	"context"
	"time"

	"gorm.io/gorm"

	apperrors "grocerly/internal/errors"
	"grocerly/internal/model"
	"grocerly/internal/repository"
)

// Authenticator is the gate every protected endpoint goes through: it
// turns a bearer token into the full User record, or fails with a 401/404
// class error.
type Authenticator struct {
	store *SessionStore
	users repository.UserRepository
	now   func() time.Time
}

// NewAuthenticator creates a new authenticator.
func NewAuthenticator(store *SessionStore, users repository.UserRepository) *Authenticator {
	return &Authenticator{store: store, users: users, now: time.Now}
}

// Authenticate resolves a session token to its user. Missing tokens fail
// with ErrNotAuthenticated, unknown ones with ErrInvalidSession, expired
// ones with ErrSessionExpired. A session whose user record is gone is an
// inconsistency and reported as ErrUserNotFound rather than recovered.
func (a *Authenticator) Authenticate(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, apperrors.ErrNotAuthenticated
	}

	session, err := a.store.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	if session.Expired(a.now()) {
		return nil, apperrors.ErrSessionExpired
	}

	user, err := a.users.FindByUserID(ctx, session.UserID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
