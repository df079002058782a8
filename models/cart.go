package models

import "time"

// One active cart per user. Hard-deleted (no soft-delete column) when
// checkout succeeds, so the unique index never blocks a fresh cart.
type Cart struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"uniqueIndex;not null"`
	Items     []CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartItem snapshots name/price/veg flag at add time so the cart view
// survives later menu edits; checkout re-reads the live MenuItem for
// kitchen and category.
type CartItem struct {
	ID         uint `gorm:"primaryKey"`
	CartID     uint `gorm:"index;not null"`
	MenuItemID uint `gorm:"not null"`
	MenuItem   MenuItem

	Name     string
	Price    float64
	Quantity int `gorm:"not null"`
	IsVeg    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
