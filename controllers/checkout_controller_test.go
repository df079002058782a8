package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MILANBHADARKA/TiffinCart-sub000/config"
	"github.com/MILANBHADARKA/TiffinCart-sub000/controllers"
	"github.com/MILANBHADARKA/TiffinCart-sub000/middlewares"
	"github.com/MILANBHADARKA/TiffinCart-sub000/models"
	"github.com/MILANBHADARKA/TiffinCart-sub000/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCheckoutTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret-key")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	testDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect test database: %v", err)
	}
	err = testDB.AutoMigrate(
		&models.User{}, &models.Kitchen{}, &models.MenuItem{},
		&models.Cart{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{}, &models.OrderStatusHistory{},
	)
	if err != nil {
		t.Fatalf("failed to auto-migrate models: %v", err)
	}

	originalDB := config.DB
	config.SetTestDB(testDB)
	t.Cleanup(func() {
		config.SetTestDB(originalDB)
	})

	r := gin.New()
	r.Use(gin.Recovery())
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware(), middlewares.RequireRole(models.RoleCustomer))
	{
		api.POST("/orders/checkout", controllers.Checkout)
	}

	return r, testDB
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) models.User {
	t.Helper()
	user := models.User{Email: email, Password: "x", Role: role}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func performCheckout(t *testing.T, router *gin.Engine, user *models.User, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/orders/checkout", bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")

	if user != nil {
		token, err := utils.GenerateJWT(user.Email, user.Role)
		if err != nil {
			t.Fatalf("mint token: %v", err)
		}
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestCheckoutHandler(t *testing.T) {
	router, db := setupCheckoutTestRouter(t)

	customer := seedUser(t, db, "customer@example.com", models.RoleCustomer)
	seller := seedUser(t, db, "seller@example.com", models.RoleSeller)

	kitchen := models.Kitchen{
		SellerID: seller.ID, Name: "Asha's Kitchen",
		Status: models.KitchenApproved, IsOpen: true,
		DeliveryInfo: models.DeliveryInfo{MinimumOrder: 200, DeliveryCharge: 30, FreeDeliveryAbove: 500},
	}
	db.Create(&kitchen)

	lunch := models.MenuItem{KitchenID: kitchen.ID, Name: "Dal Rice", Category: models.CategoryLunch, Price: 100, Available: true}
	dinner := models.MenuItem{KitchenID: kitchen.ID, Name: "Paneer Thali", Category: models.CategoryDinner, Price: 150, Available: true}
	db.Create(&lunch)
	db.Create(&dinner)

	fillCart := func() models.Cart {
		cart := models.Cart{UserID: customer.ID}
		db.Create(&cart)
		db.Create(&models.CartItem{CartID: cart.ID, MenuItemID: lunch.ID, Name: lunch.Name, Price: lunch.Price, Quantity: 2})
		db.Create(&models.CartItem{CartID: cart.ID, MenuItemID: dinner.ID, Name: dinner.Name, Price: dinner.Price, Quantity: 1})
		return cart
	}

	t.Run("returns 401 without a token", func(t *testing.T) {
		recorder := performCheckout(t, router, nil, gin.H{"delivery_address": "a", "payment_method": "cash"})
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("returns 403 for a seller", func(t *testing.T) {
		recorder := performCheckout(t, router, &seller, gin.H{"delivery_address": "a", "payment_method": "cash"})
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("returns 400 when address or payment method missing", func(t *testing.T) {
		recorder := performCheckout(t, router, &customer, gin.H{"payment_method": "cash"})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		recorder = performCheckout(t, router, &customer, gin.H{"delivery_address": "a", "payment_method": "card"})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("returns 400 on empty cart", func(t *testing.T) {
		recorder := performCheckout(t, router, &customer, gin.H{"delivery_address": "221B MG Road", "payment_method": "cash"})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var response map[string]interface{}
		json.Unmarshal(recorder.Body.Bytes(), &response)
		assert.Equal(t, false, response["success"])
		assert.Equal(t, "cart is empty", response["error"])
	})

	t.Run("splits cart into per-category orders and clears it", func(t *testing.T) {
		fillCart()

		recorder := performCheckout(t, router, &customer, gin.H{"delivery_address": "221B MG Road", "payment_method": "cash"})
		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
			Data    struct {
				Orders           []models.Order `json:"orders"`
				TotalOrders      int            `json:"totalOrders"`
				OrdersByCategory map[string]int `json:"ordersByCategory"`
			} `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.True(t, response.Success)
		assert.Equal(t, 2, response.Data.TotalOrders)
		assert.Equal(t, 1, response.Data.OrdersByCategory[models.CategoryLunch])
		assert.Equal(t, 1, response.Data.OrdersByCategory[models.CategoryDinner])
		assert.Contains(t, response.Message, "split into 2 orders")

		for _, o := range response.Data.Orders {
			assert.Equal(t, o.Subtotal+o.DeliveryFee+o.Tax, o.TotalAmount)
			assert.Equal(t, models.OrderPending, o.Status)
		}

		var cartCount int64
		db.Model(&models.Cart{}).Where("user_id = ?", customer.ID).Count(&cartCount)
		assert.Equal(t, int64(0), cartCount)
	})

	t.Run("minimum order failure names kitchen and amounts, keeps cart", func(t *testing.T) {
		cart := models.Cart{UserID: customer.ID}
		db.Create(&cart)
		db.Create(&models.CartItem{CartID: cart.ID, MenuItemID: lunch.ID, Name: lunch.Name, Price: lunch.Price, Quantity: 1})

		recorder := performCheckout(t, router, &customer, gin.H{"delivery_address": "221B MG Road", "payment_method": "cash"})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var response map[string]interface{}
		json.Unmarshal(recorder.Body.Bytes(), &response)
		errMsg, _ := response["error"].(string)
		assert.Contains(t, errMsg, "Asha's Kitchen")
		assert.Contains(t, errMsg, "₹200")
		assert.Contains(t, errMsg, "₹100")

		var itemCount int64
		db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&itemCount)
		assert.Equal(t, int64(1), itemCount)

		var orderCount int64
		db.Model(&models.Order{}).Where("customer_id = ? AND subtotal = 100", customer.ID).Count(&orderCount)
		assert.Equal(t, int64(0), orderCount)

		// Clean up for any later subtests.
		db.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{})
		db.Delete(&cart)
	})
}
