package model

import "time"

// Item is a catalog entry. Items are admin-owned; users never own them.
type Item struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	ItemID    string    `json:"item_id" gorm:"uniqueIndex;size:64;not null"`
	Name      string    `json:"name" gorm:"size:200;not null"`
	Rate      float64   `json:"rate" gorm:"not null"`
	ImageURL  string    `json:"image_url" gorm:"size:2000"`
	Category  string    `json:"category" gorm:"size:100;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
