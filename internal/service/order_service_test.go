package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"grocerly/internal/errors"
	"grocerly/internal/model"
)

func testShopper() *model.User {
	return &model.User{
		UserID:      "user_aaa111bbb222",
		Email:       "shopper@example.com",
		Name:        "Test Shopper",
		PhoneNumber: "9876543210",
		HomeAddress: "12 Main Street, Springfield",
	}
}

func TestOrderService_Create(t *testing.T) {
	orders := new(MockOrderRepository)

	var stored *model.Order
	orders.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*model.Order)
		}).Return(nil)

	svc := NewOrderService(orders)
	items := []model.OrderItem{
		{ItemID: "item_abc123def456", ItemName: "Tomato", Rate: 40, Quantity: 2, Total: 999},
		{ItemID: "item_abc123def457", ItemName: "Basmati Rice", Rate: 12.5, Quantity: 3, Total: 37.5},
	}

	order, err := svc.Create(context.Background(), testShopper(), items, 5000)
	require.NoError(t, err)
	require.NotNil(t, order)
	require.Same(t, stored, order)

	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.InDelta(t, 117.5, order.GrandTotal, 1e-9)

	corrected := order.Items.Data()
	require.Len(t, corrected, 2)
	assert.InDelta(t, 80, corrected[0].Total, 1e-9)
	assert.InDelta(t, 37.5, corrected[1].Total, 1e-9)

	// Contact snapshot is taken at checkout time.
	assert.Equal(t, "Test Shopper", order.UserName)
	assert.Equal(t, "shopper@example.com", order.UserEmail)
	assert.Equal(t, "9876543210", order.UserPhone)
	assert.Equal(t, "12 Main Street, Springfield", order.UserAddress)

	orders.AssertExpectations(t)
}

func TestOrderService_Create_InvalidItems(t *testing.T) {
	orders := new(MockOrderRepository)
	svc := NewOrderService(orders)

	_, err := svc.Create(context.Background(), testShopper(), nil, 0)
	require.Error(t, err)
	assert.Equal(t, 422, errors.MapErrorToHTTP(err).StatusCode)
	orders.AssertNotCalled(t, "Create")
}

func TestOrderService_Delete(t *testing.T) {
	ownedOrder := func() *model.Order {
		return &model.Order{OrderID: "order_fff000fff000", UserID: "user_aaa111bbb222"}
	}

	tests := []struct {
		name      string
		user      *model.User
		setupMock func(*MockOrderRepository)
		wantErr   error
	}{
		{
			name: "owner can delete",
			user: testShopper(),
			setupMock: func(o *MockOrderRepository) {
				o.On("FindByOrderID", mock.Anything, "order_fff000fff000").Return(ownedOrder(), nil)
				o.On("Delete", mock.Anything, "order_fff000fff000").Return(nil)
			},
		},
		{
			name: "admin can delete another user's order",
			user: &model.User{UserID: "user_zzz999zzz999", IsAdmin: true},
			setupMock: func(o *MockOrderRepository) {
				o.On("FindByOrderID", mock.Anything, "order_fff000fff000").Return(ownedOrder(), nil)
				o.On("Delete", mock.Anything, "order_fff000fff000").Return(nil)
			},
		},
		{
			name: "other user is refused",
			user: &model.User{UserID: "user_zzz999zzz999"},
			setupMock: func(o *MockOrderRepository) {
				o.On("FindByOrderID", mock.Anything, "order_fff000fff000").Return(ownedOrder(), nil)
			},
			wantErr: errors.ErrNotAuthorized,
		},
		{
			name: "missing order",
			user: testShopper(),
			setupMock: func(o *MockOrderRepository) {
				o.On("FindByOrderID", mock.Anything, "order_fff000fff000").Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: errors.ErrOrderNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := new(MockOrderRepository)
			tt.setupMock(orders)

			svc := NewOrderService(orders)
			err := svc.Delete(context.Background(), tt.user, "order_fff000fff000")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			orders.AssertExpectations(t)
		})
	}
}

func TestOrderService_Confirm(t *testing.T) {
	t.Run("pending order confirmed", func(t *testing.T) {
		orders := new(MockOrderRepository)
		orders.On("FindByOrderID", mock.Anything, "order_fff000fff000").Return(&model.Order{
			OrderID: "order_fff000fff000",
			Status:  model.OrderStatusPending,
		}, nil)
		orders.On("UpdateStatus", mock.Anything, "order_fff000fff000", model.OrderStatusConfirmed).Return(int64(1), nil)

		svc := NewOrderService(orders)
		order, err := svc.Confirm(context.Background(), "order_fff000fff000")
		require.NoError(t, err)
		assert.Equal(t, model.OrderStatusConfirmed, order.Status)
		orders.AssertExpectations(t)
	})

	t.Run("re-confirming succeeds", func(t *testing.T) {
		orders := new(MockOrderRepository)
		orders.On("FindByOrderID", mock.Anything, "order_fff000fff000").Return(&model.Order{
			OrderID: "order_fff000fff000",
			Status:  model.OrderStatusConfirmed,
		}, nil)
		// Same-value updates report zero affected rows; that is not an error.
		orders.On("UpdateStatus", mock.Anything, "order_fff000fff000", model.OrderStatusConfirmed).Return(int64(0), nil)

		svc := NewOrderService(orders)
		order, err := svc.Confirm(context.Background(), "order_fff000fff000")
		require.NoError(t, err)
		assert.Equal(t, model.OrderStatusConfirmed, order.Status)
	})

	t.Run("missing order", func(t *testing.T) {
		orders := new(MockOrderRepository)
		orders.On("FindByOrderID", mock.Anything, "order_missing").Return(nil, gorm.ErrRecordNotFound)

		svc := NewOrderService(orders)
		_, err := svc.Confirm(context.Background(), "order_missing")
		require.ErrorIs(t, err, errors.ErrOrderNotFound)
	})
}
