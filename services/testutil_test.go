package services_test

import (
	"fmt"
	"testing"

	"github.com/MILANBHADARKA/TiffinCart-sub000/config"
	"github.com/MILANBHADARKA/TiffinCart-sub000/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens a per-test in-memory SQLite database, migrates the
// schema and swaps the global handle, restoring it on cleanup.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	testDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect test database: %v", err)
	}

	err = testDB.AutoMigrate(
		&models.User{},
		&models.Kitchen{},
		&models.MenuItem{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderStatusHistory{},
		&models.SellerSubscription{},
		&models.ContactMessage{},
		&models.UserDevice{},
	)
	if err != nil {
		t.Fatalf("failed to auto-migrate models: %v", err)
	}

	originalDB := config.DB
	config.SetTestDB(testDB)
	t.Cleanup(func() {
		config.SetTestDB(originalDB)
	})

	return testDB
}

// seedKitchen creates an approved, open kitchen with the given policy.
func seedKitchen(t *testing.T, db *gorm.DB, sellerID uint, name string, info models.DeliveryInfo) models.Kitchen {
	t.Helper()
	kitchen := models.Kitchen{
		SellerID:     sellerID,
		Name:         name,
		Status:       models.KitchenApproved,
		IsOpen:       true,
		DeliveryInfo: info,
	}
	if err := db.Create(&kitchen).Error; err != nil {
		t.Fatalf("seed kitchen: %v", err)
	}
	return kitchen
}

func seedMenuItem(t *testing.T, db *gorm.DB, kitchenID uint, name, category string, price float64) models.MenuItem {
	t.Helper()
	item := models.MenuItem{
		KitchenID: kitchenID,
		Name:      name,
		Category:  category,
		Price:     price,
		Available: true,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed menu item: %v", err)
	}
	return item
}

func seedCart(t *testing.T, db *gorm.DB, userID uint, items ...models.CartItem) models.Cart {
	t.Helper()
	cart := models.Cart{UserID: userID}
	if err := db.Create(&cart).Error; err != nil {
		t.Fatalf("seed cart: %v", err)
	}
	for i := range items {
		items[i].CartID = cart.ID
		if err := db.Create(&items[i]).Error; err != nil {
			t.Fatalf("seed cart item: %v", err)
		}
	}
	return cart
}

// lineFor builds a cart line snapshotting the menu item.
func lineFor(item models.MenuItem, qty int) models.CartItem {
	return models.CartItem{
		MenuItemID: item.ID,
		Name:       item.Name,
		Price:      item.Price,
		Quantity:   qty,
		IsVeg:      item.IsVeg,
	}
}
