package service

import (
	"context"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"grocerly/internal/errors"
	"grocerly/internal/model"
	"grocerly/internal/repository"
	"grocerly/internal/validate"
)

// OrderService handles the order lifecycle.
type OrderService interface {
	Create(ctx context.Context, user *model.User, items []model.OrderItem, grandTotal float64) (*model.Order, error)
	ListForUser(ctx context.Context, userID string) ([]model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	// Delete is allowed for the order's owner or an admin.
	Delete(ctx context.Context, user *model.User, orderID string) error
	// Confirm moves an order to "Order Confirmed". Re-confirming an
	// already confirmed order succeeds.
	Confirm(ctx context.Context, orderID string) (*model.Order, error)
}

type orderService struct {
	orders repository.OrderRepository
}

// NewOrderService creates a new order service.
func NewOrderService(orders repository.OrderRepository) OrderService {
	return &orderService{orders: orders}
}

// Create reconciles the totals and stores the order with a snapshot of
// the caller's contact details. The snapshot is a historical record;
// later profile edits must not alter past orders.
func (s *orderService) Create(ctx context.Context, user *model.User, items []model.OrderItem, grandTotal float64) (*model.Order, error) {
	corrected, total, err := validate.OrderItems(items, grandTotal)
	if err != nil {
		return nil, err
	}

	order := &model.Order{
		OrderID:     model.NewDocID("order"),
		UserID:      user.UserID,
		Items:       datatypes.NewJSONType(corrected),
		GrandTotal:  total,
		Status:      model.OrderStatusPending,
		UserName:    user.Name,
		UserEmail:   user.Email,
		UserPhone:   user.PhoneNumber,
		UserAddress: user.HomeAddress,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

func (s *orderService) ListForUser(ctx context.Context, userID string) ([]model.Order, error) {
	return s.orders.ListByUserID(ctx, userID)
}

func (s *orderService) ListAll(ctx context.Context) ([]model.Order, error) {
	return s.orders.ListAll(ctx)
}

func (s *orderService) Delete(ctx context.Context, user *model.User, orderID string) error {
	order, err := s.orders.FindByOrderID(ctx, orderID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrOrderNotFound
		}
		return err
	}
	if order.UserID != user.UserID && !user.IsAdmin {
		return errors.ErrNotAuthorized
	}
	return s.orders.Delete(ctx, orderID)
}

func (s *orderService) Confirm(ctx context.Context, orderID string) (*model.Order, error) {
	order, err := s.orders.FindByOrderID(ctx, orderID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrOrderNotFound
		}
		return nil, err
	}

	if _, err := s.orders.UpdateStatus(ctx, orderID, model.OrderStatusConfirmed); err != nil {
		return nil, fmt.Errorf("confirm order: %w", err)
	}
	order.Status = model.OrderStatusConfirmed
	return order, nil
}
