package model

import (
	"time"

	"gorm.io/datatypes"
)

// Order statuses. The only defined transition is Pending to
// "Order Confirmed" by an admin; deletion is the only reversal.
const (
	OrderStatusPending   = "Pending"
	OrderStatusConfirmed = "Order Confirmed"
)

// OrderItem is one purchased line. The same shape is used for cart lines.
// Total is server-reconciled: round(rate*quantity, 2) replaces the
// submitted value when they differ by more than a cent.
type OrderItem struct {
	ItemID   string  `json:"item_id"`
	ItemName string  `json:"item_name"`
	Rate     float64 `json:"rate"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
}

// Order is a placed order. The user_name/email/phone/address fields are a
// snapshot taken at creation time so later profile edits do not alter
// historical orders.
type Order struct {
	ID          uint                               `json:"-" gorm:"primaryKey"`
	OrderID     string                             `json:"order_id" gorm:"uniqueIndex;size:64;not null"`
	UserID      string                             `json:"user_id" gorm:"index;size:64;not null"`
	Items       datatypes.JSONType[[]OrderItem]    `json:"items"`
	GrandTotal  float64                            `json:"grand_total"`
	Status      string                             `json:"status" gorm:"size:32;default:'Pending'"`
	UserName    string                             `json:"user_name" gorm:"size:255"`
	UserEmail   string                             `json:"user_email" gorm:"size:255"`
	UserPhone   string                             `json:"user_phone,omitempty" gorm:"size:32"`
	UserAddress string                             `json:"user_address,omitempty" gorm:"size:1024"`
	CreatedAt   time.Time                          `json:"created_at"`
}
