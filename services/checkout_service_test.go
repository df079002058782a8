package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/MILANBHADARKA/TiffinCart-sub000/models"
	"github.com/MILANBHADARKA/TiffinCart-sub000/services"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

var noon = time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)

func TestCheckoutSplitsAndPrices(t *testing.T) {
	db := setupTestDB(t)

	// Kitchen A: min 200, charge 30, free above 500.
	kitchen := seedKitchen(t, db, 7, "Asha's Kitchen", models.DeliveryInfo{
		MinimumOrder: 200, DeliveryCharge: 30, FreeDeliveryAbove: 500,
	})
	lunch := seedMenuItem(t, db, kitchen.ID, "Dal Rice", models.CategoryLunch, 100)
	dinner := seedMenuItem(t, db, kitchen.ID, "Paneer Thali", models.CategoryDinner, 150)

	cart := seedCart(t, db, 1, lineFor(lunch, 2), lineFor(dinner, 1))

	svc := services.NewCheckoutService()
	result, err := svc.Checkout(1, "221B MG Road", "cash", noon)
	assert.NoError(t, err)
	assert.Equal(t, 2, result.TotalOrders)
	assert.Equal(t, map[string]int{models.CategoryLunch: 1, models.CategoryDinner: 1}, result.OrdersByCategory)

	byCategory := map[string]models.Order{}
	for _, o := range result.Orders {
		byCategory[o.MealCategory] = o
	}

	// Aggregate 350 ≥ min 200 but < 500, so both buckets pay delivery.
	lunchOrder := byCategory[models.CategoryLunch]
	assert.Equal(t, 200.0, lunchOrder.Subtotal)
	assert.Equal(t, 30.0, lunchOrder.DeliveryFee)
	assert.Equal(t, 10.0, lunchOrder.Tax)
	assert.Equal(t, 240.0, lunchOrder.TotalAmount)

	dinnerOrder := byCategory[models.CategoryDinner]
	assert.Equal(t, 150.0, dinnerOrder.Subtotal)
	assert.Equal(t, 30.0, dinnerOrder.DeliveryFee)
	assert.Equal(t, 8.0, dinnerOrder.Tax)
	assert.Equal(t, 188.0, dinnerOrder.TotalAmount)

	for _, o := range result.Orders {
		assert.Equal(t, o.Subtotal+o.DeliveryFee+o.Tax, o.TotalAmount)
		assert.Equal(t, models.OrderPending, o.Status)
		assert.Equal(t, uint(1), o.CustomerID)
		assert.Equal(t, kitchen.SellerID, o.SellerID)
		assert.Len(t, o.StatusHistory, 1)
		assert.Equal(t, models.OrderPending, o.StatusHistory[0].ToStatus)
	}

	// Cart is gone after a fully successful checkout.
	var gone models.Cart
	err = db.Where("user_id = ?", 1).First(&gone).Error
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	var leftover int64
	db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&leftover)
	assert.Equal(t, int64(0), leftover)
}

func TestCheckoutMinimumOrderFailsWholeCheckout(t *testing.T) {
	db := setupTestDB(t)

	kitchen := seedKitchen(t, db, 7, "Bhavani Tiffins", models.DeliveryInfo{MinimumOrder: 200})
	lunch := seedMenuItem(t, db, kitchen.ID, "Idli Plate", models.CategoryLunch, 50)
	cart := seedCart(t, db, 2, lineFor(lunch, 1))

	svc := services.NewCheckoutService()
	_, err := svc.Checkout(2, "14 Nehru Street", "cash", noon)

	var minErr *services.MinimumOrderError
	assert.True(t, errors.As(err, &minErr))
	assert.Contains(t, minErr.Error(), "Bhavani Tiffins")
	assert.Contains(t, minErr.Error(), "₹200")
	assert.Contains(t, minErr.Error(), "₹50")

	// No orders, and the cart is untouched.
	var orderCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	assert.Equal(t, int64(0), orderCount)

	var stillThere models.Cart
	assert.NoError(t, db.Preload("Items").First(&stillThere, cart.ID).Error)
	assert.Len(t, stillThere.Items, 1)
}

func TestCheckoutMinimumOrderMetAcrossCategories(t *testing.T) {
	db := setupTestDB(t)

	// Neither bucket alone meets the minimum, together they do.
	kitchen := seedKitchen(t, db, 3, "Combined", models.DeliveryInfo{MinimumOrder: 250})
	lunch := seedMenuItem(t, db, kitchen.ID, "Thali", models.CategoryLunch, 150)
	dinner := seedMenuItem(t, db, kitchen.ID, "Biryani", models.CategoryDinner, 150)
	seedCart(t, db, 3, lineFor(lunch, 1), lineFor(dinner, 1))

	svc := services.NewCheckoutService()
	result, err := svc.Checkout(3, "5 Park Lane", "online", noon)
	assert.NoError(t, err)
	assert.Equal(t, 2, result.TotalOrders)
}

func TestCheckoutFreeDeliveryUsesKitchenAggregate(t *testing.T) {
	db := setupTestDB(t)

	kitchen := seedKitchen(t, db, 4, "Free Shippers", models.DeliveryInfo{
		DeliveryCharge: 40, FreeDeliveryAbove: 500,
	})
	lunch := seedMenuItem(t, db, kitchen.ID, "Mega Thali", models.CategoryLunch, 300)
	dinner := seedMenuItem(t, db, kitchen.ID, "Family Pack", models.CategoryDinner, 300)
	seedCart(t, db, 4, lineFor(lunch, 1), lineFor(dinner, 1))

	svc := services.NewCheckoutService()
	result, err := svc.Checkout(4, "9 Lake View", "cash", noon)
	assert.NoError(t, err)

	// Aggregate 600 ≥ 500: every bucket of this kitchen ships free.
	for _, o := range result.Orders {
		assert.Equal(t, 0.0, o.DeliveryFee)
	}
}

func TestCheckoutChargesFeePerBucket(t *testing.T) {
	db := setupTestDB(t)

	// Below the free threshold the flat fee lands on each bucket of the
	// same kitchen in full, not split or charged once.
	kitchen := seedKitchen(t, db, 5, "Double Fee", models.DeliveryInfo{
		DeliveryCharge: 25, FreeDeliveryAbove: 1000,
	})
	lunch := seedMenuItem(t, db, kitchen.ID, "Lunch Box", models.CategoryLunch, 100)
	dinner := seedMenuItem(t, db, kitchen.ID, "Dinner Box", models.CategoryDinner, 100)
	seedCart(t, db, 5, lineFor(lunch, 1), lineFor(dinner, 1))

	svc := services.NewCheckoutService()
	result, err := svc.Checkout(5, "1 Fee Street", "cash", noon)
	assert.NoError(t, err)
	assert.Equal(t, 2, result.TotalOrders)

	var feeTotal float64
	for _, o := range result.Orders {
		feeTotal += o.DeliveryFee
	}
	assert.Equal(t, 50.0, feeTotal)
}

func TestCheckoutNoDeliveryPolicy(t *testing.T) {
	db := setupTestDB(t)

	// Unset policy means no minimum and no charge.
	kitchen := seedKitchen(t, db, 6, "Bare Kitchen", models.DeliveryInfo{})
	lunch := seedMenuItem(t, db, kitchen.ID, "Poha", models.CategoryLunch, 40)
	seedCart(t, db, 6, lineFor(lunch, 1))

	svc := services.NewCheckoutService()
	result, err := svc.Checkout(6, "2 Anywhere", "cash", noon)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.TotalOrders)
	assert.Equal(t, 0.0, result.Orders[0].DeliveryFee)
	assert.Equal(t, 42.0, result.Orders[0].TotalAmount) // 40 + round(40*0.05)
}

func TestCheckoutTaxRounding(t *testing.T) {
	db := setupTestDB(t)

	kitchen := seedKitchen(t, db, 8, "Rounding", models.DeliveryInfo{})
	// 3 * 23 = 69, 69*0.05 = 3.45 → rounds to 3.
	item := seedMenuItem(t, db, kitchen.ID, "Vada", models.CategoryBreakfast, 23)
	seedCart(t, db, 8, lineFor(item, 3))

	svc := services.NewCheckoutService()
	result, err := svc.Checkout(8, "7 Round Rd", "cash", noon)
	assert.NoError(t, err)
	assert.Equal(t, 3.0, result.Orders[0].Tax)
	assert.Equal(t, 72.0, result.Orders[0].TotalAmount)
}

func TestCheckoutBreakfastRollsToTomorrowAfterCutoff(t *testing.T) {
	db := setupTestDB(t)

	kitchen := seedKitchen(t, db, 9, "Morning Glory", models.DeliveryInfo{})
	breakfast := seedMenuItem(t, db, kitchen.ID, "Upma", models.CategoryBreakfast, 60)
	seedCart(t, db, 9, lineFor(breakfast, 1))

	lateEvening := time.Date(2025, 3, 10, 20, 30, 0, 0, time.Local)

	svc := services.NewCheckoutService()
	result, err := svc.Checkout(9, "3 Sunrise Ave", "cash", lateEvening)
	assert.NoError(t, err)
	assert.Equal(t, 11, result.Orders[0].DeliveryDate.Day())
	assert.Equal(t, "7:00 AM - 10:00 AM", result.Orders[0].DeliveryTimeWindow)
}

func TestCheckoutEmptyOrMissingCart(t *testing.T) {
	db := setupTestDB(t)

	svc := services.NewCheckoutService()

	_, err := svc.Checkout(42, "Nowhere", "cash", noon)
	assert.ErrorIs(t, err, services.ErrEmptyCart)

	seedCart(t, db, 43) // cart with no items
	_, err = svc.Checkout(43, "Nowhere", "cash", noon)
	assert.ErrorIs(t, err, services.ErrEmptyCart)
}

func TestCheckoutItemsSnapshotDecoupledFromMenu(t *testing.T) {
	db := setupTestDB(t)

	kitchen := seedKitchen(t, db, 10, "Snapshot", models.DeliveryInfo{})
	item := seedMenuItem(t, db, kitchen.ID, "Chapati Roll", models.CategoryDinner, 80)
	seedCart(t, db, 10, lineFor(item, 2))

	svc := services.NewCheckoutService()
	result, err := svc.Checkout(10, "8 Copy St", "cash", noon)
	assert.NoError(t, err)

	// Mutating the menu item afterwards must not touch the order.
	db.Model(&models.MenuItem{}).Where("id = ?", item.ID).Update("price", 999)

	var order models.Order
	assert.NoError(t, db.Preload("Items").First(&order, result.Orders[0].ID).Error)
	assert.Len(t, order.Items, 1)
	assert.Equal(t, 80.0, order.Items[0].Price)
	assert.Equal(t, "Chapati Roll", order.Items[0].Name)
	assert.Equal(t, 2, order.Items[0].Quantity)
}

func TestCheckoutTwoKitchensSameCategory(t *testing.T) {
	db := setupTestDB(t)

	a := seedKitchen(t, db, 11, "Kitchen A", models.DeliveryInfo{DeliveryCharge: 10})
	b := seedKitchen(t, db, 12, "Kitchen B", models.DeliveryInfo{DeliveryCharge: 20})
	itemA := seedMenuItem(t, db, a.ID, "A Lunch", models.CategoryLunch, 100)
	itemB := seedMenuItem(t, db, b.ID, "B Lunch", models.CategoryLunch, 100)
	seedCart(t, db, 11, lineFor(itemA, 1), lineFor(itemB, 1))

	svc := services.NewCheckoutService()
	result, err := svc.Checkout(11, "Two Kitchens Rd", "cash", noon)
	assert.NoError(t, err)
	assert.Equal(t, 2, result.TotalOrders)
	assert.Equal(t, map[string]int{models.CategoryLunch: 2}, result.OrdersByCategory)

	// Each order carries its own kitchen's fee and seller.
	fees := map[uint]float64{}
	for _, o := range result.Orders {
		fees[o.KitchenID] = o.DeliveryFee
	}
	assert.Equal(t, 10.0, fees[a.ID])
	assert.Equal(t, 20.0, fees[b.ID])
}
