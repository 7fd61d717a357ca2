package repository

import (
	"context"

	"gorm.io/gorm"

	"grocerly/internal/model"
)

// CategoryRepository defines persistence operations over categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	List(ctx context.Context) ([]model.Category, error)
	FindByCategoryID(ctx context.Context, categoryID string) (*model.Category, error)
	// FindByNameFold looks a category up by name, case-insensitively.
	FindByNameFold(ctx context.Context, name string) (*model.Category, error)
	Delete(ctx context.Context, categoryID string) error
	Count(ctx context.Context) (int64, error)
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository builds a GORM-backed repository.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.WithContext(ctx).Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) FindByCategoryID(ctx context.Context, categoryID string) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).Where("category_id = ?", categoryID).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindByNameFold(ctx context.Context, name string) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) Delete(ctx context.Context, categoryID string) error {
	return r.db.WithContext(ctx).Where("category_id = ?", categoryID).Delete(&model.Category{}).Error
}

func (r *categoryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Category{}).Count(&count).Error
	return count, err
}
