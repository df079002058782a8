package services

import (
	"errors"
	"fmt"

	"github.com/MILANBHADARKA/TiffinCart-sub000/config"
	"github.com/MILANBHADARKA/TiffinCart-sub000/models"
	"github.com/MILANBHADARKA/TiffinCart-sub000/utils"
)

var ErrBadTransition = errors.New("status transition not allowed")

// Legal lifecycle moves. Delivered and cancelled are terminal.
var allowedTransitions = map[string][]string{
	models.OrderPending:        {models.OrderConfirmed, models.OrderCancelled},
	models.OrderConfirmed:      {models.OrderPreparing, models.OrderCancelled},
	models.OrderPreparing:      {models.OrderOutForDelivery},
	models.OrderOutForDelivery: {models.OrderDelivered},
}

func transitionAllowed(from, to string) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

type OrderService struct{}

func NewOrderService() *OrderService {
	return &OrderService{}
}

func (s *OrderService) ListCustomerOrders(customerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := config.DB.
		Preload("Items").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (s *OrderService) ListSellerOrders(sellerID uint, status string) ([]models.Order, error) {
	q := config.DB.
		Preload("Items").
		Where("seller_id = ?", sellerID).
		Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var orders []models.Order
	err := q.Find(&orders).Error
	return orders, err
}

func (s *OrderService) GetOrder(orderID uint) (*models.Order, error) {
	var order models.Order
	err := config.DB.
		Preload("Items").
		Preload("StatusHistory").
		First(&order, orderID).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateStatus advances an order along the lifecycle, appends the audit
// row and notifies the customer. Sellers may only touch their own
// orders; customers may only cancel while the order is still pending.
func (s *OrderService) UpdateStatus(orderID, actorID uint, actorRole, newStatus, note string) (*models.Order, error) {
	var order models.Order
	if err := config.DB.First(&order, orderID).Error; err != nil {
		return nil, err
	}

	switch actorRole {
	case models.RoleSeller:
		if order.SellerID != actorID {
			return nil, errors.New("order belongs to another seller")
		}
	case models.RoleCustomer:
		if order.CustomerID != actorID {
			return nil, errors.New("order belongs to another customer")
		}
		if newStatus != models.OrderCancelled || order.Status != models.OrderPending {
			return nil, ErrBadTransition
		}
	case models.RoleAdmin:
		// admins can move any order
	default:
		return nil, errors.New("unknown role")
	}

	if !transitionAllowed(order.Status, newStatus) {
		return nil, ErrBadTransition
	}

	from := order.Status
	order.Status = newStatus
	if err := config.DB.Save(&order).Error; err != nil {
		return nil, err
	}

	hist := models.OrderStatusHistory{
		OrderID:    order.ID,
		FromStatus: from,
		ToStatus:   newStatus,
		ChangedBy:  actorID,
		Note:       note,
	}
	if err := config.DB.Create(&hist).Error; err != nil {
		return nil, err
	}

	EmitOrderEvent(order.CustomerID, "order.status", &order)

	if newStatus == models.OrderOutForDelivery || newStatus == models.OrderDelivered {
		var customer models.User
		if err := config.DB.First(&customer, order.CustomerID).Error; err == nil {
			go func(email string, o models.Order) {
				if err := utils.SendOrderStatusEmail(email, o.ID, o.Status, o.KitchenName); err != nil {
					fmt.Printf("status email for order %d failed: %v\n", o.ID, err)
				}
			}(customer.Email, order)
		}
	}

	return s.GetOrder(order.ID)
}

// RevenueSummary aggregates order counts and totals by status for the
// admin dashboard.
func (s *OrderService) RevenueSummary() (map[string]interface{}, error) {
	type row struct {
		Status string
		Count  int64
		Total  float64
	}
	var rows []row
	err := config.DB.Model(&models.Order{}).
		Select("status, COUNT(*) as count, COALESCE(SUM(total_amount),0) as total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	byStatus := make(map[string]interface{}, len(rows))
	var orders int64
	var revenue float64
	for _, r := range rows {
		byStatus[r.Status] = map[string]interface{}{"count": r.Count, "total": r.Total}
		orders += r.Count
		if r.Status != models.OrderCancelled {
			revenue += r.Total
		}
	}
	return map[string]interface{}{
		"total_orders":  orders,
		"total_revenue": revenue,
		"by_status":     byStatus,
	}, nil
}

func (s *OrderService) ListAllOrders(status string) ([]models.Order, error) {
	q := config.DB.Preload("Items").Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var orders []models.Order
	err := q.Find(&orders).Error
	return orders, err
}
