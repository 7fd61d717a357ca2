package service

import (
	"context"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"grocerly/internal/model"
	"grocerly/internal/repository"
	"grocerly/internal/validate"
)

// CartService handles the single per-user cart. Updates replace the whole
// items list; two tabs racing on the same cart resolve last-write-wins.
type CartService interface {
	// Get returns the stored cart, or an empty shell when none exists.
	Get(ctx context.Context, userID string) (*model.Cart, error)
	Update(ctx context.Context, userID string, items []model.OrderItem) (*model.Cart, error)
	// Clear deletes the cart document. Clearing a missing cart succeeds.
	Clear(ctx context.Context, userID string) error
}

type cartService struct {
	carts repository.CartRepository
}

// NewCartService creates a new cart service.
func NewCartService(carts repository.CartRepository) CartService {
	return &cartService{carts: carts}
}

func (s *cartService) Get(ctx context.Context, userID string) (*model.Cart, error) {
	cart, err := s.carts.FindByUserID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return model.EmptyCart(userID), nil
		}
		return nil, err
	}
	return cart, nil
}

// Update validates and reconciles the lines, then replaces the stored
// cart. The first write allocates a cart id; later writes keep it.
func (s *cartService) Update(ctx context.Context, userID string, items []model.OrderItem) (*model.Cart, error) {
	corrected, err := validate.LineItems(items)
	if err != nil {
		return nil, err
	}

	cart, err := s.carts.FindByUserID(ctx, userID)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("load cart: %w", err)
		}
		cart = &model.Cart{
			CartID: model.NewDocID("cart"),
			UserID: userID,
		}
	}

	cart.Items = datatypes.NewJSONType(corrected)
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return cart, nil
}

func (s *cartService) Clear(ctx context.Context, userID string) error {
	return s.carts.DeleteByUserID(ctx, userID)
}
