package controllers

import (
	"errors"
	"net/http"

	"github.com/MILANBHADARKA/TiffinCart-sub000/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetCart(c *gin.Context) {
	cartSvc := services.NewCartService()
	cart, err := cartSvc.GetCart(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
		"cart":  cart,
		"split": cartSvc.SplitPreview(cart),
	}})
}

type AddToCartInput struct {
	MenuItemID uint `json:"menu_item_id" binding:"required"`
	Quantity   int  `json:"quantity"`
}

func AddToCart(c *gin.Context) {
	var input AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	cartSvc := services.NewCartService()
	cart, err := cartSvc.AddItem(c.GetUint("userID"), input.MenuItemID, input.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "menu item not found"})
		case errors.Is(err, services.ErrItemUnavailable), errors.Is(err, services.ErrKitchenNotOrderable):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"cart": cart}})
}

type UpdateCartItemInput struct {
	Quantity int `json:"quantity"`
}

func UpdateCartItem(c *gin.Context) {
	var input UpdateCartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	cartSvc := services.NewCartService()
	cart, err := cartSvc.UpdateQuantity(c.GetUint("userID"), itemID, input.Quantity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "cart item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"cart": cart}})
}

func RemoveCartItem(c *gin.Context) {
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	cartSvc := services.NewCartService()
	cart, err := cartSvc.RemoveItem(c.GetUint("userID"), itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "cart item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"cart": cart}})
}

func ClearCart(c *gin.Context) {
	cartSvc := services.NewCartService()
	if err := cartSvc.ClearCart(c.GetUint("userID")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "cart cleared"})
}
