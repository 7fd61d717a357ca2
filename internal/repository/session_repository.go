package repository

import (
	"context"

	"gorm.io/gorm"

	"grocerly/internal/model"
)

// SessionRepository defines persistence operations over user_sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *model.UserSession) error
	FindByToken(ctx context.Context, token string) (*model.UserSession, error)
	DeleteByToken(ctx context.Context, token string) error
}

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository builds a GORM-backed repository.
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *model.UserSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepository) FindByToken(ctx context.Context, token string) (*model.UserSession, error) {
	var session model.UserSession
	if err := r.db.WithContext(ctx).Where("session_token = ?", token).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) DeleteByToken(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Where("session_token = ?", token).Delete(&model.UserSession{}).Error
}
