package controllers

import (
	"errors"
	"net/http"

	"github.com/MILANBHADARKA/TiffinCart-sub000/config"
	"github.com/MILANBHADARKA/TiffinCart-sub000/models"
	"github.com/MILANBHADARKA/TiffinCart-sub000/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func AdminListKitchens(c *gin.Context) {
	kitchenSvc := services.NewKitchenService()
	kitchens, err := kitchenSvc.ListByStatus(c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"kitchens": kitchens}})
}

type ModerateKitchenInput struct {
	Status string `json:"status" binding:"required,oneof=approved suspended pending"`
}

func AdminModerateKitchen(c *gin.Context) {
	kitchenID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input ModerateKitchenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	kitchenSvc := services.NewKitchenService()
	kitchen, err := kitchenSvc.SetStatus(kitchenID, input.Status)
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

func AdminListOrders(c *gin.Context) {
	orderSvc := services.NewOrderService()
	orders, err := orderSvc.ListAllOrders(c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"orders": orders}})
}

func AdminRevenueSummary(c *gin.Context) {
	orderSvc := services.NewOrderService()
	summary, err := orderSvc.RevenueSummary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": summary})
}

func AdminListContacts(c *gin.Context) {
	q := config.DB.Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	var messages []models.ContactMessage
	if err := q.Find(&messages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"messages": messages}})
}

func AdminResolveContact(c *gin.Context) {
	msgID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var msg models.ContactMessage
	if err := config.DB.First(&msg, msgID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "message not found"})
		return
	}
	msg.Status = "resolved"
	if err := config.DB.Save(&msg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "contact resolved"})
}

func AdminListUsers(c *gin.Context) {
	q := config.DB.Order("created_at DESC")
	if role := c.Query("role"); role != "" {
		q = q.Where("role = ?", role)
	}
	var users []models.User
	if err := q.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"users": users}})
}

type DisableUserInput struct {
	Disabled *bool `json:"disabled" binding:"required"`
}

func AdminDisableUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input DisableUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "user not found"})
		return
	}
	user.Disabled = *input.Disabled
	if err := config.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "user updated"})
}
