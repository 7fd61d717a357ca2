package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"grocerly/internal/cache"
	"grocerly/internal/errors"
	"grocerly/internal/model"
	"grocerly/internal/repository"
	"grocerly/internal/validate"
)

const (
	itemsCacheKey = "items:all"
	itemsCacheTTL = 5 * time.Minute
)

// CatalogService handles catalog item operations. Mutations are admin
// only; the gate lives in the router, not here.
type CatalogService interface {
	ListItems(ctx context.Context) ([]model.Item, error)
	CreateItem(ctx context.Context, in validate.ItemInput) (*model.Item, error)
	UpdateItem(ctx context.Context, itemID string, in validate.ItemInput) (*model.Item, error)
	DeleteItem(ctx context.Context, itemID string) error
	// SeedItems inserts the sample catalog when the items collection is
	// empty and reports how many items were written.
	SeedItems(ctx context.Context) (int, error)
}

type catalogService struct {
	items repository.ItemRepository
	cache *cache.Client
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(items repository.ItemRepository, cache *cache.Client) CatalogService {
	return &catalogService{items: items, cache: cache}
}

// ListItems returns the full catalog, serving from cache when warm.
func (s *catalogService) ListItems(ctx context.Context) ([]model.Item, error) {
	if data, _ := s.cache.Get(ctx, itemsCacheKey); data != nil {
		var cached []model.Item
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	items, err := s.items.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(items); err == nil {
		_ = s.cache.Set(ctx, itemsCacheKey, payload, itemsCacheTTL)
	}
	return items, nil
}

// CreateItem validates and stores a new catalog item.
func (s *catalogService) CreateItem(ctx context.Context, in validate.ItemInput) (*model.Item, error) {
	in, err := validate.Item(in)
	if err != nil {
		return nil, err
	}

	item := &model.Item{
		ItemID:   model.NewDocID("item"),
		Name:     in.Name,
		Rate:     in.Rate,
		ImageURL: in.ImageURL,
		Category: in.Category,
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	_ = s.cache.Delete(ctx, itemsCacheKey)
	return item, nil
}

// UpdateItem validates and patches an existing item.
func (s *catalogService) UpdateItem(ctx context.Context, itemID string, in validate.ItemInput) (*model.Item, error) {
	in, err := validate.Item(in)
	if err != nil {
		return nil, err
	}

	if _, err := s.items.Update(ctx, itemID, map[string]interface{}{
		"name":      in.Name,
		"rate":      in.Rate,
		"image_url": in.ImageURL,
		"category":  in.Category,
	}); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}

	item, err := s.items.FindByItemID(ctx, itemID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrItemNotFound
		}
		return nil, err
	}

	_ = s.cache.Delete(ctx, itemsCacheKey)
	return item, nil
}

// DeleteItem removes an item; absent items report ErrItemNotFound.
func (s *catalogService) DeleteItem(ctx context.Context, itemID string) error {
	affected, err := s.items.Delete(ctx, itemID)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if affected == 0 {
		return errors.ErrItemNotFound
	}
	_ = s.cache.Delete(ctx, itemsCacheKey)
	return nil
}

// SeedItems writes the sample catalog into an empty items collection.
func (s *catalogService) SeedItems(ctx context.Context) (int, error) {
	count, err := s.items.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	for _, sample := range sampleItems {
		item := &model.Item{
			ItemID:   model.NewDocID("item"),
			Name:     sample.Name,
			Rate:     sample.Rate,
			ImageURL: sample.ImageURL,
			Category: sample.Category,
		}
		if err := s.items.Create(ctx, item); err != nil {
			return 0, fmt.Errorf("seed item %q: %w", sample.Name, err)
		}
	}

	_ = s.cache.Delete(ctx, itemsCacheKey)
	return len(sampleItems), nil
}
