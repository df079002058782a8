package services

import (
	"errors"

	"github.com/MILANBHADARKA/TiffinCart-sub000/config"
	"github.com/MILANBHADARKA/TiffinCart-sub000/models"

	"gorm.io/gorm"
)

var (
	ErrItemUnavailable     = errors.New("menu item is not available")
	ErrKitchenNotOrderable = errors.New("kitchen is not accepting orders")
)

type CartService struct{}

func NewCartService() *CartService {
	return &CartService{}
}

// GetCart returns the user's cart populated down to kitchens, creating
// an empty one if none exists yet.
func (s *CartService) GetCart(userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := config.DB.
		Preload("Items.MenuItem.Kitchen").
		Where("user_id = ?", userID).
		First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{UserID: userID}
		if err := config.DB.Create(&cart).Error; err != nil {
			return nil, err
		}
		return &cart, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddItem puts a menu item in the cart, snapshotting name/price/veg.
// Adding the same item again merges into the existing line's quantity.
func (s *CartService) AddItem(userID, menuItemID uint, quantity int) (*models.Cart, error) {
	if quantity <= 0 {
		quantity = 1
	}

	var item models.MenuItem
	if err := config.DB.Preload("Kitchen").First(&item, menuItemID).Error; err != nil {
		return nil, err
	}
	if !item.Available {
		return nil, ErrItemUnavailable
	}
	if item.Kitchen.Status != models.KitchenApproved || !item.Kitchen.IsOpen {
		return nil, ErrKitchenNotOrderable
	}

	cart, err := s.GetCart(userID)
	if err != nil {
		return nil, err
	}

	var line models.CartItem
	err = config.DB.
		Where("cart_id = ? AND menu_item_id = ?", cart.ID, menuItemID).
		First(&line).Error
	switch {
	case err == nil:
		line.Quantity += quantity
		// Refresh the snapshot while we're here.
		line.Name = item.Name
		line.Price = item.Price
		line.IsVeg = item.IsVeg
		if err := config.DB.Save(&line).Error; err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		line = models.CartItem{
			CartID:     cart.ID,
			MenuItemID: item.ID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   quantity,
			IsVeg:      item.IsVeg,
		}
		if err := config.DB.Create(&line).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return s.GetCart(userID)
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
func (s *CartService) UpdateQuantity(userID, cartItemID uint, quantity int) (*models.Cart, error) {
	cart, err := s.GetCart(userID)
	if err != nil {
		return nil, err
	}

	var line models.CartItem
	if err := config.DB.
		Where("id = ? AND cart_id = ?", cartItemID, cart.ID).
		First(&line).Error; err != nil {
		return nil, err
	}

	if quantity <= 0 {
		if err := config.DB.Delete(&line).Error; err != nil {
			return nil, err
		}
	} else {
		line.Quantity = quantity
		if err := config.DB.Save(&line).Error; err != nil {
			return nil, err
		}
	}

	return s.GetCart(userID)
}

func (s *CartService) RemoveItem(userID, cartItemID uint) (*models.Cart, error) {
	return s.UpdateQuantity(userID, cartItemID, 0)
}

func (s *CartService) ClearCart(userID uint) error {
	var cart models.Cart
	err := config.DB.Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := config.DB.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
		return err
	}
	return config.DB.Delete(&cart).Error
}

// SplitPreview tells the UI how many orders a checkout would produce,
// so "your cart will be split into N orders" can be shown up front.
func (s *CartService) SplitPreview(cart *models.Cart) map[string]int {
	preview := make(map[string]int)
	for key, b := range groupCart(cart) {
		preview[key] = len(b.Items)
	}
	return preview
}
