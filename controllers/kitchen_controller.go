package controllers

import (
	"errors"
	"net/http"

	"github.com/MILANBHADARKA/TiffinCart-sub000/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ── public browse ──

func ListKitchens(c *gin.Context) {
	kitchenSvc := services.NewKitchenService()
	kitchens, err := kitchenSvc.ListApproved(c.Query("cuisine"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"kitchens": kitchens}})
}

func GetKitchen(c *gin.Context) {
	kitchenID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	kitchenSvc := services.NewKitchenService()
	kitchen, menu, err := kitchenSvc.GetPublicKitchen(kitchenID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "kitchen not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"kitchen": kitchen, "menu": menu}})
}

// ── seller ──

func CreateKitchen(c *gin.Context) {
	var input services.KitchenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	kitchenSvc := services.NewKitchenService()
	kitchen, err := kitchenSvc.CreateKitchen(c.GetUint("userID"), input)
	if err != nil {
		if errors.Is(err, services.ErrQuotaExceeded) {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "kitchen limit reached, upgrade your subscription"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": gin.H{"kitchen": kitchen}})
}

func UpdateKitchen(c *gin.Context) {
	kitchenID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input services.KitchenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	kitchenSvc := services.NewKitchenService()
	kitchen, err := kitchenSvc.UpdateKitchen(c.GetUint("userID"), kitchenID, input)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "kitchen not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"kitchen": kitchen}})
}

func DeleteKitchen(c *gin.Context) {
	kitchenID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	kitchenSvc := services.NewKitchenService()
	if err := kitchenSvc.DeleteKitchen(c.GetUint("userID"), kitchenID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "kitchen deleted"})
}

type ToggleOpenInput struct {
	IsOpen *bool `json:"is_open" binding:"required"`
}

func ToggleKitchenOpen(c *gin.Context) {
	kitchenID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input ToggleOpenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	kitchenSvc := services.NewKitchenService()
	kitchen, err := kitchenSvc.ToggleOpen(c.GetUint("userID"), kitchenID, *input.IsOpen)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "kitchen not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"kitchen": kitchen}})
}

func ListMyKitchens(c *gin.Context) {
	kitchenSvc := services.NewKitchenService()
	kitchens, err := kitchenSvc.ListSellerKitchens(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"kitchens": kitchens}})
}
