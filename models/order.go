package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	OrderPending        = "pending"
	OrderConfirmed      = "confirmed"
	OrderPreparing      = "preparing"
	OrderOutForDelivery = "out_for_delivery"
	OrderDelivered      = "delivered"
	OrderCancelled      = "cancelled"
)

// Order is one (kitchen, meal category) slice of a checkout. A cart
// spanning two kitchens or two categories produces two orders.
// Financial fields are written once at checkout and never mutated.
type Order struct {
	gorm.Model
	CustomerID  uint `gorm:"index;not null"`
	SellerID    uint `gorm:"index;not null"`
	KitchenID   uint `gorm:"index;not null"`
	KitchenName string

	Items []OrderItem

	DeliveryAddress string `gorm:"not null"`
	PaymentMethod   string `gorm:"size:16;not null"` // cash | online

	Subtotal    float64
	DeliveryFee float64
	Tax         float64
	TotalAmount float64

	MealCategory       string    `gorm:"size:16;not null"`
	DeliveryDate       time.Time `gorm:"index"`
	DeliveryTimeWindow string

	Status string `gorm:"size:24;default:'pending'"`
	// Reserved for future cutoff enforcement, always false today.
	OrderDeadlinePassed bool

	StatusHistory []OrderStatusHistory
}

// Snapshot of the menu item at checkout, decoupled from later edits.
type OrderItem struct {
	gorm.Model
	OrderID    uint `gorm:"index;not null"`
	MenuItemID uint

	Name     string
	Price    float64
	Quantity int
	IsVeg    bool
}

// Append-only audit trail of status changes.
type OrderStatusHistory struct {
	ID         uint   `gorm:"primaryKey"`
	OrderID    uint   `gorm:"index;not null"`
	FromStatus string `gorm:"size:24"`
	ToStatus   string `gorm:"size:24;not null"`
	ChangedBy  uint
	Note       string `gorm:"type:text"`
	CreatedAt  time.Time
}
