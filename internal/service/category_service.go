package service

import (
	"context"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"grocerly/internal/errors"
	"grocerly/internal/model"
	"grocerly/internal/repository"
	"grocerly/internal/validate"
)

// CategoryService handles category reads and the admin-gated mutations.
type CategoryService interface {
	// ListNames returns ["All"] plus the sorted category names. "All" is
	// a UI pseudo-category and is never stored.
	ListNames(ctx context.Context) ([]string, error)
	ListAll(ctx context.Context) ([]model.Category, error)
	Create(ctx context.Context, name string) (*model.Category, error)
	Delete(ctx context.Context, categoryID string) error
	// SeedDefaults makes sure every default category exists.
	SeedDefaults(ctx context.Context) error
}

type categoryService struct {
	categories repository.CategoryRepository
	items      repository.ItemRepository
}

// NewCategoryService creates a new category service.
func NewCategoryService(categories repository.CategoryRepository, items repository.ItemRepository) CategoryService {
	return &categoryService{categories: categories, items: items}
}

// ListNames sources names from the categories collection, falling back to
// the distinct categories present on items when none are stored yet.
func (s *categoryService) ListNames(ctx context.Context) ([]string, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	var names []string
	if len(categories) > 0 {
		for _, category := range categories {
			names = append(names, category.Name)
		}
	} else {
		distinct, err := s.items.DistinctCategories(ctx)
		if err != nil {
			return nil, err
		}
		for _, name := range distinct {
			if name != "" {
				names = append(names, name)
			}
		}
	}

	sort.Strings(names)
	return append([]string{"All"}, names...), nil
}

func (s *categoryService) ListAll(ctx context.Context) ([]model.Category, error) {
	return s.categories.List(ctx)
}

// Create stores a custom category after a case-insensitive duplicate check.
func (s *categoryService) Create(ctx context.Context, name string) (*model.Category, error) {
	name, err := validate.CategoryName(name)
	if err != nil {
		return nil, err
	}

	if _, err := s.categories.FindByNameFold(ctx, name); err == nil {
		return nil, errors.ErrDuplicateCategory
	} else if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check category existence: %w", err)
	}

	category := &model.Category{
		CategoryID: model.NewDocID("category"),
		Name:       name,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

// Delete removes a custom, unused category. Default categories and
// categories still referenced by items are refused.
func (s *categoryService) Delete(ctx context.Context, categoryID string) error {
	category, err := s.categories.FindByCategoryID(ctx, categoryID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrCategoryNotFound
		}
		return err
	}
	if category.IsDefault {
		return errors.ErrDefaultCategory
	}

	inUse, err := s.items.CountByCategory(ctx, category.Name)
	if err != nil {
		return fmt.Errorf("count items in category: %w", err)
	}
	if inUse > 0 {
		return errors.ErrCategoryInUse
	}

	return s.categories.Delete(ctx, categoryID)
}

// SeedDefaults creates any missing default category rows.
func (s *categoryService) SeedDefaults(ctx context.Context) error {
	for _, name := range model.DefaultCategories {
		_, err := s.categories.FindByNameFold(ctx, name)
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("check default category %q: %w", name, err)
		}
		category := &model.Category{
			CategoryID: model.NewDocID("category"),
			Name:       name,
			IsDefault:  true,
		}
		if err := s.categories.Create(ctx, category); err != nil {
			return fmt.Errorf("seed default category %q: %w", name, err)
		}
	}
	return nil
}
