package services

import (
	"errors"

	"github.com/MILANBHADARKA/TiffinCart-sub000/config"
	"github.com/MILANBHADARKA/TiffinCart-sub000/models"
)

var ErrBadCategory = errors.New("category must be Breakfast, Lunch or Dinner")

type MenuItemInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required"`
	IsVeg       bool    `json:"is_veg"`
	Available   *bool   `json:"available"`
	ImageURL    string  `json:"image_url"`
}

type MenuService struct{}

func NewMenuService() *MenuService {
	return &MenuService{}
}

func validCategory(c string) bool {
	switch c {
	case models.CategoryBreakfast, models.CategoryLunch, models.CategoryDinner:
		return true
	}
	return false
}

// AddItem creates a menu item under the seller's kitchen, subject to
// the per-kitchen quota of the seller's tier.
func (s *MenuService) AddItem(sellerID, kitchenID uint, in MenuItemInput) (*models.MenuItem, error) {
	if !validCategory(in.Category) {
		return nil, ErrBadCategory
	}

	var kitchen models.Kitchen
	if err := config.DB.
		Where("id = ? AND seller_id = ?", kitchenID, sellerID).
		First(&kitchen).Error; err != nil {
		return nil, err
	}

	limits := LimitsFor(sellerID)
	var count int64
	if err := config.DB.Model(&models.MenuItem{}).
		Where("kitchen_id = ?", kitchenID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count >= int64(limits.MaxItemsPerKitchen) {
		return nil, ErrQuotaExceeded
	}

	item := models.MenuItem{
		KitchenID:   kitchenID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		IsVeg:       in.IsVeg,
		Available:   true,
		ImageURL:    in.ImageURL,
	}
	if in.Available != nil {
		item.Available = *in.Available
	}
	if err := config.DB.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *MenuService) UpdateItem(sellerID, itemID uint, in MenuItemInput) (*models.MenuItem, error) {
	if !validCategory(in.Category) {
		return nil, ErrBadCategory
	}

	item, err := s.ownedItem(sellerID, itemID)
	if err != nil {
		return nil, err
	}

	item.Name = in.Name
	item.Description = in.Description
	item.Price = in.Price
	item.Category = in.Category
	item.IsVeg = in.IsVeg
	if in.Available != nil {
		item.Available = *in.Available
	}
	if in.ImageURL != "" {
		item.ImageURL = in.ImageURL
	}
	if err := config.DB.Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) DeleteItem(sellerID, itemID uint) error {
	item, err := s.ownedItem(sellerID, itemID)
	if err != nil {
		return err
	}
	return config.DB.Delete(item).Error
}

func (s *MenuService) ListKitchenItems(sellerID, kitchenID uint) ([]models.MenuItem, error) {
	var kitchen models.Kitchen
	if err := config.DB.
		Where("id = ? AND seller_id = ?", kitchenID, sellerID).
		First(&kitchen).Error; err != nil {
		return nil, err
	}
	var items []models.MenuItem
	err := config.DB.
		Where("kitchen_id = ?", kitchenID).
		Order("category, name").
		Find(&items).Error
	return items, err
}

// ownedItem fetches an item and verifies the kitchen belongs to the seller.
func (s *MenuService) ownedItem(sellerID, itemID uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := config.DB.
		Joins("JOIN kitchens ON kitchens.id = menu_items.kitchen_id").
		Where("menu_items.id = ? AND kitchens.seller_id = ?", itemID, sellerID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}
