package controllers

import (
	"errors"
	"net/http"

	"github.com/MILANBHADARKA/TiffinCart-sub000/models"
	"github.com/MILANBHADARKA/TiffinCart-sub000/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ListMyOrders(c *gin.Context) {
	orderSvc := services.NewOrderService()
	orders, err := orderSvc.ListCustomerOrders(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"orders": orders}})
}

func ListSellerOrders(c *gin.Context) {
	orderSvc := services.NewOrderService()
	orders, err := orderSvc.ListSellerOrders(c.GetUint("userID"), c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"orders": orders}})
}

func GetOrder(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	orderSvc := services.NewOrderService()
	order, err := orderSvc.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	// Only the parties to the order (or an admin) may see it.
	userID := c.GetUint("userID")
	role := c.GetString("role")
	if role != models.RoleAdmin && order.CustomerID != userID && order.SellerID != userID {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "not your order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"order": order}})
}

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

func UpdateOrderStatus(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	orderSvc := services.NewOrderService()
	order, err := orderSvc.UpdateStatus(orderID, c.GetUint("userID"), c.GetString("role"), input.Status, input.Note)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "order not found"})
		case errors.Is(err, services.ErrBadTransition):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		default:
			c.JSON(http.StatusForbidden, gin.H{"success": false, "error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"order": order}})
}
