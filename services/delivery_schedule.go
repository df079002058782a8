package services

import (
	"fmt"
	"time"

	"github.com/MILANBHADARKA/TiffinCart-sub000/models"
)

// Fixed per-category delivery windows. Not configurable per kitchen.
var deliveryWindows = map[string]string{
	models.CategoryBreakfast: "7:00 AM - 10:00 AM",
	models.CategoryLunch:     "12:00 PM - 3:00 PM",
	models.CategoryDinner:    "7:00 PM - 10:00 PM",
}

const breakfastCutoffHour = 20 // 8 PM

// ScheduleDelivery picks the delivery date and time window for a meal
// category at the given order time. Breakfast ordered at or after 8 PM
// rolls to the next day; Lunch and Dinner always ship same-day (the
// advertised 9 AM / 4 PM cutoffs are UI copy only and not enforced).
func ScheduleDelivery(category string, now time.Time) (time.Time, string, error) {
	window, ok := deliveryWindows[category]
	if !ok {
		return time.Time{}, "", fmt.Errorf("unknown meal category: %q", category)
	}

	deliveryDate := now
	if category == models.CategoryBreakfast && now.Hour() >= breakfastCutoffHour {
		deliveryDate = deliveryDate.AddDate(0, 0, 1)
	}
	return deliveryDate, window, nil
}
