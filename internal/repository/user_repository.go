package repository

import (
	"context"

	"gorm.io/gorm"

	"grocerly/internal/model"
)

// UserRepository defines persistence operations over the users collection.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByUserID(ctx context.Context, userID string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// UpdateIdentity refreshes the fields resupplied by the login
	// exchange: display name, picture, and the admin flag.
	UpdateIdentity(ctx context.Context, userID, name, picture string, isAdmin bool) error
	UpdateProfile(ctx context.Context, userID, phoneNumber, homeAddress string) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByUserID(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateIdentity(ctx context.Context, userID, name, picture string, isAdmin bool) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"name":     name,
			"picture":  picture,
			"is_admin": isAdmin,
		}).Error
}

func (r *userRepository) UpdateProfile(ctx context.Context, userID, phoneNumber, homeAddress string) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"phone_number": phoneNumber,
			"home_address": homeAddress,
		}).Error
}
