package model

import "time"

// User represents an authenticated shopper or admin.
type User struct {
	ID          uint      `json:"-" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"uniqueIndex;size:64;not null"`
	Email       string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Picture     string    `json:"picture,omitempty" gorm:"size:2048"`
	PhoneNumber string    `json:"phone_number,omitempty" gorm:"size:32"`
	HomeAddress string    `json:"home_address,omitempty" gorm:"size:1024"`
	IsAdmin     bool      `json:"is_admin" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
}
