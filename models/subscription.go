package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	TierFree  = "free"
	TierBasic = "basic"
	TierPro   = "pro"
)

// SellerSubscription pins a seller to a tier; the tier's kitchen and
// menu-item quotas live in services.PlanLimits.
type SellerSubscription struct {
	gorm.Model
	SellerID  uint   `gorm:"uniqueIndex;not null"`
	Tier      string `gorm:"size:16;default:'free'"`
	ExpiresAt time.Time
	Active    bool `gorm:"default:true"`
}
