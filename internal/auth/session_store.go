package auth

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"grocerly/internal/cache"
	apperrors "grocerly/internal/errors"
	"grocerly/internal/model"
	"grocerly/internal/repository"
)

const (
	sessionKeyPrefix = "session:"
	sessionCacheTTL  = 5 * time.Minute
)

// SessionStore resolves opaque session tokens to session documents. Hot
// tokens are cached in Redis; the user_sessions collection stays the
// source of truth.
type SessionStore struct {
	sessions repository.SessionRepository
	cache    *cache.Client
}

// NewSessionStore creates a new session store.
func NewSessionStore(sessions repository.SessionRepository, cache *cache.Client) *SessionStore {
	return &SessionStore{sessions: sessions, cache: cache}
}

// Resolve returns the session for a token, or ErrInvalidSession when no
// session matches.
func (s *SessionStore) Resolve(ctx context.Context, token string) (*model.UserSession, error) {
	key := sessionKeyPrefix + token
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached model.UserSession
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	session, err := s.sessions.FindByToken(ctx, token)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrInvalidSession
		}
		return nil, err
	}

	if payload, err := json.Marshal(session); err == nil {
		_ = s.cache.Set(ctx, key, payload, sessionCacheTTL)
	}
	return session, nil
}

// Create stores a fresh session for the user.
func (s *SessionStore) Create(ctx context.Context, userID, token string, now time.Time) (*model.UserSession, error) {
	session := &model.UserSession{
		SessionToken: token,
		UserID:       userID,
		ExpiresAt:    now.UTC().Add(model.SessionTTL),
		CreatedAt:    now.UTC(),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Delete removes a session and drops it from the cache.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	_ = s.cache.Delete(ctx, sessionKeyPrefix+token)
	return s.sessions.DeleteByToken(ctx, token)
}
