package repository

import (
	"context"

	"gorm.io/gorm"

	"grocerly/internal/model"
)

// CartRepository defines persistence operations over carts. Each user has
// at most one cart row.
type CartRepository interface {
	FindByUserID(ctx context.Context, userID string) (*model.Cart, error)
	// Save writes the whole cart document, replacing any previous items.
	Save(ctx context.Context, cart *model.Cart) error
	DeleteByUserID(ctx context.Context, userID string) error
}

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository builds a GORM-backed repository.
func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) FindByUserID(ctx context.Context, userID string) (*model.Cart, error) {
	var cart model.Cart
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) Save(ctx context.Context, cart *model.Cart) error {
	return r.db.WithContext(ctx).Save(cart).Error
}

func (r *cartRepository) DeleteByUserID(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Cart{}).Error
}
