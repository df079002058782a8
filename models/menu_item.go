package models

import "gorm.io/gorm"

const (
	CategoryBreakfast = "Breakfast"
	CategoryLunch     = "Lunch"
	CategoryDinner    = "Dinner"
)

// One dish on a kitchen's menu. Category decides the delivery window
// the resulting order is scheduled into.
type MenuItem struct {
	gorm.Model
	KitchenID   uint    `gorm:"index;not null"`
	Kitchen     Kitchen `json:"-"`
	Name        string  `gorm:"not null"`
	Description string
	Price       float64 `gorm:"not null"`
	Category    string  `gorm:"size:16;not null"` // Breakfast | Lunch | Dinner
	IsVeg       bool
	Available   bool `gorm:"default:true"`
	ImageURL    string
}
