package models

import (
	"gorm.io/gorm"
)

const (
	KitchenPending   = "pending"
	KitchenApproved  = "approved"
	KitchenSuspended = "suspended"
)

// DeliveryInfo is the per-kitchen delivery policy. Zero values mean
// "not configured": no minimum, no charge, no free-delivery threshold.
// Defaults are resolved here at the schema boundary, never inline.
type DeliveryInfo struct {
	MinimumOrder      float64 `json:"minimum_order"`
	DeliveryCharge    float64 `json:"delivery_charge"`
	FreeDeliveryAbove float64 `json:"free_delivery_above"`
}

// A seller's storefront. Moderated by admins: new kitchens start
// pending and only approved ones are browsable or orderable.
type Kitchen struct {
	gorm.Model
	SellerID    uint   `gorm:"index;not null"`
	Name        string `gorm:"not null"`
	Description string
	Address     string
	Cuisine     string
	ImageURL    string
	Status      string `gorm:"size:16;default:'pending'"`
	IsOpen      bool   `gorm:"default:true"`

	DeliveryInfo DeliveryInfo `gorm:"embedded;embeddedPrefix:delivery_"`

	Items []MenuItem
}
