package controllers

import (
	"errors"
	"net/http"

	"github.com/MILANBHADARKA/TiffinCart-sub000/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func AddMenuItem(c *gin.Context) {
	kitchenID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input services.MenuItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	menuSvc := services.NewMenuService()
	item, err := menuSvc.AddItem(c.GetUint("userID"), kitchenID, input)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "kitchen not found"})
		case errors.Is(err, services.ErrQuotaExceeded):
			c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "menu item limit reached, upgrade your subscription"})
		case errors.Is(err, services.ErrBadCategory):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": gin.H{"item": item}})
}

func UpdateMenuItem(c *gin.Context) {
	itemID, ok := parseIDParam(c, "itemId")
	if !ok {
		return
	}

	var input services.MenuItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	menuSvc := services.NewMenuService()
	item, err := menuSvc.UpdateItem(c.GetUint("userID"), itemID, input)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "menu item not found"})
		case errors.Is(err, services.ErrBadCategory):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"item": item}})
}

func DeleteMenuItem(c *gin.Context) {
	itemID, ok := parseIDParam(c, "itemId")
	if !ok {
		return
	}

	menuSvc := services.NewMenuService()
	if err := menuSvc.DeleteItem(c.GetUint("userID"), itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "menu item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "menu item deleted"})
}

func ListMenuItems(c *gin.Context) {
	kitchenID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	menuSvc := services.NewMenuService()
	items, err := menuSvc.ListKitchenItems(c.GetUint("userID"), kitchenID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "kitchen not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"items": items}})
}
