package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/MILANBHADARKA/TiffinCart-sub000/config"
	"github.com/MILANBHADARKA/TiffinCart-sub000/models"

	"gorm.io/gorm"
)

const taxRate = 0.05

var ErrEmptyCart = errors.New("cart is empty")

// MinimumOrderError fails the whole checkout when a kitchen's combined
// subtotal (across all its categories in the cart) is under its floor.
type MinimumOrderError struct {
	KitchenName string
	Required    float64
	Current     float64
}

func (e *MinimumOrderError) Error() string {
	return fmt.Sprintf("minimum order for %s is ₹%.0f, your total for this kitchen is ₹%.0f",
		e.KitchenName, e.Required, e.Current)
}

type CheckoutService struct{}

func NewCheckoutService() *CheckoutService {
	return &CheckoutService{}
}

// orderBucket groups cart items that share a kitchen and meal category.
// Transient: exists only while a checkout is being computed.
type orderBucket struct {
	Kitchen  models.Kitchen
	Category string
	Items    []models.CartItem
	Subtotal float64
}

type CheckoutResult struct {
	Orders           []models.Order `json:"orders"`
	TotalOrders      int            `json:"totalOrders"`
	OrdersByCategory map[string]int `json:"ordersByCategory"`
}

// groupCart partitions the populated cart into buckets keyed by
// kitchenID_category. Kitchen and category come from the live MenuItem,
// not the cart snapshot; price and quantity come from the snapshot.
func groupCart(cart *models.Cart) map[string]*orderBucket {
	buckets := make(map[string]*orderBucket)
	for _, it := range cart.Items {
		key := fmt.Sprintf("%d_%s", it.MenuItem.KitchenID, it.MenuItem.Category)
		b, ok := buckets[key]
		if !ok {
			b = &orderBucket{
				Kitchen:  it.MenuItem.Kitchen,
				Category: it.MenuItem.Category,
			}
			buckets[key] = b
		}
		b.Items = append(b.Items, it)
		b.Subtotal += it.Price * float64(it.Quantity)
	}
	return buckets
}

// kitchenSubtotal sums every bucket belonging to the same kitchen, so
// the minimum-order and free-delivery rules see the whole kitchen's
// share of the cart rather than one category slice.
func kitchenSubtotal(buckets map[string]*orderBucket, kitchenID uint) float64 {
	var total float64
	for _, b := range buckets {
		if b.Kitchen.ID == kitchenID {
			total += b.Subtotal
		}
	}
	return total
}

type bucketPricing struct {
	Subtotal    float64
	DeliveryFee float64
	Tax         float64
	TotalAmount float64
}

// priceBucket applies the kitchen's delivery policy to one bucket.
// Note: when a kitchen appears in several categories of the same cart,
// each bucket is charged the full delivery fee independently.
func priceBucket(b *orderBucket, buckets map[string]*orderBucket) (bucketPricing, error) {
	info := b.Kitchen.DeliveryInfo
	aggregate := kitchenSubtotal(buckets, b.Kitchen.ID)

	if info.MinimumOrder > 0 && aggregate < info.MinimumOrder {
		return bucketPricing{}, &MinimumOrderError{
			KitchenName: b.Kitchen.Name,
			Required:    info.MinimumOrder,
			Current:     aggregate,
		}
	}

	fee := info.DeliveryCharge
	if info.FreeDeliveryAbove > 0 && aggregate >= info.FreeDeliveryAbove {
		fee = 0
	}

	tax := math.Round(b.Subtotal * taxRate)

	return bucketPricing{
		Subtotal:    b.Subtotal,
		DeliveryFee: fee,
		Tax:         tax,
		TotalAmount: b.Subtotal + fee + tax,
	}, nil
}

// Checkout turns the user's cart into one order per (kitchen, category)
// bucket and deletes the cart. Orders and the cart delete share a single
// transaction: a validation failure leaves the cart untouched and no
// orders behind.
func (s *CheckoutService) Checkout(userID uint, deliveryAddress, paymentMethod string, now time.Time) (*CheckoutResult, error) {
	var cart models.Cart
	err := config.DB.
		Preload("Items.MenuItem.Kitchen").
		Where("user_id = ?", userID).
		First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmptyCart
		}
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	buckets := groupCart(&cart)

	// Price and schedule everything before the first write, so the
	// minimum-order gate can reject the checkout with zero side effects.
	type pricedBucket struct {
		bucket   *orderBucket
		pricing  bucketPricing
		date     time.Time
		window   string
		category string
	}
	priced := make([]pricedBucket, 0, len(buckets))
	for _, b := range buckets {
		p, err := priceBucket(b, buckets)
		if err != nil {
			return nil, err
		}
		date, window, err := ScheduleDelivery(b.Category, now)
		if err != nil {
			return nil, err
		}
		priced = append(priced, pricedBucket{
			bucket: b, pricing: p, date: date, window: window, category: b.Category,
		})
	}

	var orderIDs []uint
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		for _, pb := range priced {
			order := models.Order{
				CustomerID:         userID,
				SellerID:           pb.bucket.Kitchen.SellerID,
				KitchenID:          pb.bucket.Kitchen.ID,
				KitchenName:        pb.bucket.Kitchen.Name,
				DeliveryAddress:    deliveryAddress,
				PaymentMethod:      paymentMethod,
				Subtotal:           pb.pricing.Subtotal,
				DeliveryFee:        pb.pricing.DeliveryFee,
				Tax:                pb.pricing.Tax,
				TotalAmount:        pb.pricing.TotalAmount,
				MealCategory:       pb.category,
				DeliveryDate:       pb.date,
				DeliveryTimeWindow: pb.window,
				Status:             models.OrderPending,
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}

			items := make([]models.OrderItem, 0, len(pb.bucket.Items))
			for _, ci := range pb.bucket.Items {
				items = append(items, models.OrderItem{
					OrderID:    order.ID,
					MenuItemID: ci.MenuItemID,
					Name:       ci.Name,
					Price:      ci.Price,
					Quantity:   ci.Quantity,
					IsVeg:      ci.IsVeg,
				})
			}
			if err := tx.CreateInBatches(&items, len(items)).Error; err != nil {
				return err
			}

			hist := models.OrderStatusHistory{
				OrderID:   order.ID,
				ToStatus:  models.OrderPending,
				ChangedBy: userID,
				Note:      "order placed",
			}
			if err := tx.Create(&hist).Error; err != nil {
				return err
			}

			orderIDs = append(orderIDs, order.ID)
		}

		// Cart goes away only when every bucket produced an order.
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&cart).Error
	})
	if err != nil {
		return nil, err
	}

	var orders []models.Order
	if err := config.DB.
		Preload("Items").
		Preload("StatusHistory").
		Where("id IN ?", orderIDs).
		Find(&orders).Error; err != nil {
		return nil, err
	}

	result := &CheckoutResult{
		Orders:           orders,
		TotalOrders:      len(orders),
		OrdersByCategory: map[string]int{},
	}
	for _, o := range orders {
		result.OrdersByCategory[o.MealCategory]++
		EmitOrderEvent(o.SellerID, "order.created", &o)
	}
	return result, nil
}
