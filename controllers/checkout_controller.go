package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MILANBHADARKA/TiffinCart-sub000/config"
	"github.com/MILANBHADARKA/TiffinCart-sub000/models"
	"github.com/MILANBHADARKA/TiffinCart-sub000/services"
	"github.com/MILANBHADARKA/TiffinCart-sub000/utils"

	"github.com/gin-gonic/gin"
)

type CheckoutInput struct {
	DeliveryAddress string `json:"delivery_address" binding:"required"`
	PaymentMethod   string `json:"payment_method" binding:"required,oneof=cash online"`
}

// Checkout splits the cart into one order per (kitchen, meal category)
// and clears the cart. Any validation failure leaves everything as-is.
func Checkout(c *gin.Context) {
	var input CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "delivery_address and payment_method are required"})
		return
	}

	userID := c.GetUint("userID")

	checkoutSvc := services.NewCheckoutService()
	result, err := checkoutSvc.Checkout(userID, input.DeliveryAddress, input.PaymentMethod, time.Now())
	if err != nil {
		var minErr *services.MinimumOrderError
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "cart is empty"})
		case errors.As(err, &minErr):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": minErr.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "checkout failed"})
		}
		return
	}

	// Confirmation mail after the transaction committed.
	var user models.User
	if err := config.DB.First(&user, userID).Error; err == nil {
		lines := make([]string, 0, len(result.Orders))
		var grand float64
		for _, o := range result.Orders {
			lines = append(lines, fmt.Sprintf("Order #%d — %s from %s: ₹%.0f (%s, %s)",
				o.ID, o.MealCategory, o.KitchenName, o.TotalAmount,
				o.DeliveryDate.Format("02 Jan"), o.DeliveryTimeWindow))
			grand += o.TotalAmount
		}
		go func(email string) {
			if err := utils.SendOrderConfirmationEmail(email, lines, grand); err != nil {
				fmt.Printf("confirmation email failed: %v\n", err)
			}
		}(user.Email)
	}

	message := "order placed successfully"
	if result.TotalOrders > 1 {
		message = fmt.Sprintf("your cart was split into %d orders", result.TotalOrders)
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": message,
		"data": gin.H{
			"orders":           result.Orders,
			"totalOrders":      result.TotalOrders,
			"ordersByCategory": result.OrdersByCategory,
		},
	})
}
