package model

import "time"

// DefaultCategories are seeded at startup and can never be deleted
// through the admin API.
var DefaultCategories = []string{"Household", "Pulses", "Rice", "Spices"}

// Category is a named grouping for catalog items. Name uniqueness is
// case-insensitive and enforced by the catalog service before insert.
type Category struct {
	ID         uint      `json:"-" gorm:"primaryKey"`
	CategoryID string    `json:"category_id" gorm:"uniqueIndex;size:64;not null"`
	Name       string    `json:"name" gorm:"uniqueIndex;size:100;not null"`
	IsDefault  bool      `json:"is_default" gorm:"default:false"`
	CreatedAt  time.Time `json:"created_at"`
}
