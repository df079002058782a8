package services

import (
	"fmt"

	"github.com/MILANBHADARKA/TiffinCart-sub000/models"
)

type orderEventDeps struct {
	rt *RealtimeHub
	ps *PushService
}

var _events orderEventDeps

func InitOrderEventDeps(rt *RealtimeHub, ps *PushService) {
	_events = orderEventDeps{rt: rt, ps: ps}
}

// EmitOrderEvent notifies one user about an order. Safe to call from
// anywhere, including before InitOrderEventDeps (it just no-ops).
func EmitOrderEvent(userID uint, kind string, order *models.Order) {
	if _events.rt != nil {
		_events.rt.Broadcast(userID, map[string]any{
			"kind":  kind,
			"order": order,
		})
	}
	if _events.ps != nil {
		title := "TiffinCart"
		body := fmt.Sprintf("Order #%d (%s) is %s", order.ID, order.MealCategory, order.Status)
		if kind == "order.created" {
			body = fmt.Sprintf("New %s order #%d for ₹%.0f", order.MealCategory, order.ID, order.TotalAmount)
		}
		_events.ps.PushToUser(userID, title, body, map[string]string{
			"kind":    kind,
			"orderId": fmt.Sprintf("%d", order.ID),
		})
	}
}
