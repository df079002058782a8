package services

import (
	"errors"
	"time"

	"github.com/MILANBHADARKA/TiffinCart-sub000/config"
	"github.com/MILANBHADARKA/TiffinCart-sub000/models"

	"gorm.io/gorm"
)

type PlanLimits struct {
	Tier               string  `json:"tier"`
	MaxKitchens        int     `json:"max_kitchens"`
	MaxItemsPerKitchen int     `json:"max_items_per_kitchen"`
	PricePerMonth      float64 `json:"price_per_month"`
}

// Static plan table; payment for upgrades is out of scope so a
// subscribe call activates the tier immediately.
var plans = map[string]PlanLimits{
	models.TierFree:  {Tier: models.TierFree, MaxKitchens: 1, MaxItemsPerKitchen: 10, PricePerMonth: 0},
	models.TierBasic: {Tier: models.TierBasic, MaxKitchens: 3, MaxItemsPerKitchen: 30, PricePerMonth: 299},
	models.TierPro:   {Tier: models.TierPro, MaxKitchens: 10, MaxItemsPerKitchen: 100, PricePerMonth: 999},
}

var ErrUnknownTier = errors.New("unknown subscription tier")

func ListPlans() []PlanLimits {
	return []PlanLimits{plans[models.TierFree], plans[models.TierBasic], plans[models.TierPro]}
}

// LimitsFor resolves a seller's quota, defaulting to the free tier when
// the seller never subscribed or the subscription lapsed.
func LimitsFor(sellerID uint) PlanLimits {
	var sub models.SellerSubscription
	err := config.DB.Where("seller_id = ?", sellerID).First(&sub).Error
	if err != nil || !sub.Active || (!sub.ExpiresAt.IsZero() && sub.ExpiresAt.Before(time.Now())) {
		return plans[models.TierFree]
	}
	if p, ok := plans[sub.Tier]; ok {
		return p
	}
	return plans[models.TierFree]
}

func Subscribe(sellerID uint, tier string) (*models.SellerSubscription, error) {
	if _, ok := plans[tier]; !ok {
		return nil, ErrUnknownTier
	}

	var sub models.SellerSubscription
	err := config.DB.Where("seller_id = ?", sellerID).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sub = models.SellerSubscription{SellerID: sellerID}
	} else if err != nil {
		return nil, err
	}

	sub.Tier = tier
	sub.Active = true
	sub.ExpiresAt = time.Now().AddDate(0, 1, 0)
	if err := config.DB.Save(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

// Usage reports current counts against the tier's quota.
func Usage(sellerID uint) (map[string]interface{}, error) {
	limits := LimitsFor(sellerID)

	var kitchenCount int64
	if err := config.DB.Model(&models.Kitchen{}).
		Where("seller_id = ?", sellerID).
		Count(&kitchenCount).Error; err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"tier":         limits.Tier,
		"kitchens":     kitchenCount,
		"max_kitchens": limits.MaxKitchens,
	}, nil
}
