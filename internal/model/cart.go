package model

import (
	"time"

	"gorm.io/datatypes"
)

// Cart is the single mutable cart a user has. Updates replace the whole
// items list; there is no incremental merge.
type Cart struct {
	ID        uint                            `json:"-" gorm:"primaryKey"`
	CartID    string                          `json:"cart_id,omitempty" gorm:"uniqueIndex;size:64"`
	UserID    string                          `json:"user_id" gorm:"uniqueIndex;size:64;not null"`
	Items     datatypes.JSONType[[]OrderItem] `json:"items"`
	CreatedAt time.Time                       `json:"-"`
	UpdatedAt time.Time                       `json:"updated_at"`
}

// EmptyCart is the shell returned when a user has no stored cart yet.
func EmptyCart(userID string) *Cart {
	return &Cart{
		UserID: userID,
		Items:  datatypes.NewJSONType([]OrderItem{}),
	}
}
