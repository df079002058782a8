package services

import (
	"errors"

	"github.com/MILANBHADARKA/TiffinCart-sub000/config"
	"github.com/MILANBHADARKA/TiffinCart-sub000/models"
)

var ErrQuotaExceeded = errors.New("subscription tier limit reached")

type KitchenInput struct {
	Name              string  `json:"name" binding:"required"`
	Description       string  `json:"description"`
	Address           string  `json:"address"`
	Cuisine           string  `json:"cuisine"`
	ImageURL          string  `json:"image_url"`
	MinimumOrder      float64 `json:"minimum_order"`
	DeliveryCharge    float64 `json:"delivery_charge"`
	FreeDeliveryAbove float64 `json:"free_delivery_above"`
}

type KitchenService struct{}

func NewKitchenService() *KitchenService {
	return &KitchenService{}
}

// CreateKitchen registers a new storefront for the seller, subject to
// the tier quota. New kitchens start pending until an admin approves.
func (s *KitchenService) CreateKitchen(sellerID uint, in KitchenInput) (*models.Kitchen, error) {
	limits := LimitsFor(sellerID)

	var count int64
	if err := config.DB.Model(&models.Kitchen{}).
		Where("seller_id = ?", sellerID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count >= int64(limits.MaxKitchens) {
		return nil, ErrQuotaExceeded
	}

	kitchen := models.Kitchen{
		SellerID:    sellerID,
		Name:        in.Name,
		Description: in.Description,
		Address:     in.Address,
		Cuisine:     in.Cuisine,
		ImageURL:    in.ImageURL,
		Status:      models.KitchenPending,
		IsOpen:      true,
		DeliveryInfo: models.DeliveryInfo{
			MinimumOrder:      in.MinimumOrder,
			DeliveryCharge:    in.DeliveryCharge,
			FreeDeliveryAbove: in.FreeDeliveryAbove,
		},
	}
	if err := config.DB.Create(&kitchen).Error; err != nil {
		return nil, err
	}
	return &kitchen, nil
}

func (s *KitchenService) UpdateKitchen(sellerID, kitchenID uint, in KitchenInput) (*models.Kitchen, error) {
	var kitchen models.Kitchen
	if err := config.DB.
		Where("id = ? AND seller_id = ?", kitchenID, sellerID).
		First(&kitchen).Error; err != nil {
		return nil, err
	}

	kitchen.Name = in.Name
	kitchen.Description = in.Description
	kitchen.Address = in.Address
	kitchen.Cuisine = in.Cuisine
	if in.ImageURL != "" {
		kitchen.ImageURL = in.ImageURL
	}
	kitchen.DeliveryInfo = models.DeliveryInfo{
		MinimumOrder:      in.MinimumOrder,
		DeliveryCharge:    in.DeliveryCharge,
		FreeDeliveryAbove: in.FreeDeliveryAbove,
	}

	if err := config.DB.Save(&kitchen).Error; err != nil {
		return nil, err
	}
	return &kitchen, nil
}

func (s *KitchenService) DeleteKitchen(sellerID, kitchenID uint) error {
	var kitchen models.Kitchen
	if err := config.DB.
		Where("id = ? AND seller_id = ?", kitchenID, sellerID).
		First(&kitchen).Error; err != nil {
		return err
	}
	if err := config.DB.
		Where("kitchen_id = ?", kitchen.ID).
		Delete(&models.MenuItem{}).Error; err != nil {
		return err
	}
	return config.DB.Delete(&kitchen).Error
}

func (s *KitchenService) ToggleOpen(sellerID, kitchenID uint, open bool) (*models.Kitchen, error) {
	var kitchen models.Kitchen
	if err := config.DB.
		Where("id = ? AND seller_id = ?", kitchenID, sellerID).
		First(&kitchen).Error; err != nil {
		return nil, err
	}
	kitchen.IsOpen = open
	if err := config.DB.Save(&kitchen).Error; err != nil {
		return nil, err
	}
	return &kitchen, nil
}

func (s *KitchenService) ListSellerKitchens(sellerID uint) ([]models.Kitchen, error) {
	var kitchens []models.Kitchen
	err := config.DB.
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&kitchens).Error
	return kitchens, err
}

// ListApproved is the public browse view: approved, open kitchens,
// optionally filtered by cuisine.
func (s *KitchenService) ListApproved(cuisine string) ([]models.Kitchen, error) {
	q := config.DB.
		Where("status = ? AND is_open = ?", models.KitchenApproved, true).
		Order("name ASC")
	if cuisine != "" {
		q = q.Where("cuisine = ?", cuisine)
	}
	var kitchens []models.Kitchen
	err := q.Find(&kitchens).Error
	return kitchens, err
}

// GetPublicKitchen returns an approved kitchen with its available menu
// grouped by meal category.
func (s *KitchenService) GetPublicKitchen(kitchenID uint) (*models.Kitchen, map[string][]models.MenuItem, error) {
	var kitchen models.Kitchen
	if err := config.DB.
		Where("id = ? AND status = ?", kitchenID, models.KitchenApproved).
		First(&kitchen).Error; err != nil {
		return nil, nil, err
	}

	var items []models.MenuItem
	if err := config.DB.
		Where("kitchen_id = ? AND available = ?", kitchenID, true).
		Order("category, name").
		Find(&items).Error; err != nil {
		return nil, nil, err
	}

	menu := make(map[string][]models.MenuItem)
	for _, it := range items {
		menu[it.Category] = append(menu[it.Category], it)
	}
	return &kitchen, menu, nil
}

// SetStatus is the admin moderation hook (approve / suspend).
func (s *KitchenService) SetStatus(kitchenID uint, status string) (*models.Kitchen, error) {
	var kitchen models.Kitchen
	if err := config.DB.First(&kitchen, kitchenID).Error; err != nil {
		return nil, err
	}
	kitchen.Status = status
	if err := config.DB.Save(&kitchen).Error; err != nil {
		return nil, err
	}
	return &kitchen, nil
}

func (s *KitchenService) ListByStatus(status string) ([]models.Kitchen, error) {
	q := config.DB.Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var kitchens []models.Kitchen
	err := q.Find(&kitchens).Error
	return kitchens, err
}
