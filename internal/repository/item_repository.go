package repository

import (
	"context"

	"gorm.io/gorm"

	"grocerly/internal/model"
)

// ItemRepository defines persistence operations over the items collection.
type ItemRepository interface {
	Create(ctx context.Context, item *model.Item) error
	FindByItemID(ctx context.Context, itemID string) (*model.Item, error)
	List(ctx context.Context) ([]model.Item, error)
	// Update patches the mutable fields and reports how many rows matched.
	Update(ctx context.Context, itemID string, fields map[string]interface{}) (int64, error)
	// Delete removes an item and reports how many rows were affected.
	Delete(ctx context.Context, itemID string) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountByCategory(ctx context.Context, category string) (int64, error)
	DistinctCategories(ctx context.Context) ([]string, error)
}

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository builds a GORM-backed repository.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) FindByItemID(ctx context.Context, itemID string) (*model.Item, error) {
	var item model.Item
	if err := r.db.WithContext(ctx).Where("item_id = ?", itemID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) List(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	if err := r.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) Update(ctx context.Context, itemID string, fields map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Item{}).
		Where("item_id = ?", itemID).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *itemRepository) Delete(ctx context.Context, itemID string) (int64, error) {
	res := r.db.WithContext(ctx).Where("item_id = ?", itemID).Delete(&model.Item{})
	return res.RowsAffected, res.Error
}

func (r *itemRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Item{}).Count(&count).Error
	return count, err
}

func (r *itemRepository) CountByCategory(ctx context.Context, category string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Item{}).
		Where("category = ?", category).Count(&count).Error
	return count, err
}

func (r *itemRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).Model(&model.Item{}).
		Distinct("category").Pluck("category", &categories).Error
	return categories, err
}
