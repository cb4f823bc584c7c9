// Package queue builds the per-shop work list: badge counts per status filter and a
// FIFO-ordered selection for the filter staff are looking at.
package queue

import (
	"sort"

	"github.com/tumbleweedd/campus_orders/order_notifier/internal/domain/lifecycle"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/domain/models"
)

type Filter string

const (
	FilterActive Filter = "active"
	FilterAll    Filter = "all"
)

func StatusFilter(status models.OrderStatus) Filter {
	return Filter(status)
}

// ParseFilter accepts "active", "all" or an order status. Empty means active.
func ParseFilter(s string) (Filter, bool) {
	switch Filter(s) {
	case "":
		return FilterActive, true
	case FilterActive, FilterAll:
		return Filter(s), true
	}

	if status, ok := models.ParseOrderStatus(s); ok {
		return StatusFilter(status), true
	}

	return "", false
}

func (f Filter) match(order *models.Order) bool {
	switch f {
	case FilterAll:
		return true
	case FilterActive:
		return lifecycle.IsActive(order.Status)
	default:
		return order.Status == models.OrderStatus(f)
	}
}

type View struct {
	Filter Filter         `json:"filter"`
	Counts map[Filter]int `json:"counts"`
	Orders []models.Order `json:"orders"`
}

func Build(orders []models.Order, filter Filter) View {
	return View{
		Filter: filter,
		Counts: Counts(orders),
		Orders: Select(orders, filter),
	}
}

// Counts returns a badge count for every status plus the active and all buckets.
func Counts(orders []models.Order) map[Filter]int {
	counts := make(map[Filter]int, len(models.AllOrderStatuses())+2)
	for _, status := range models.AllOrderStatuses() {
		counts[StatusFilter(status)] = 0
	}

	counts[FilterActive] = 0
	counts[FilterAll] = len(orders)

	for i := range orders {
		counts[StatusFilter(orders[i].Status)]++
		if lifecycle.IsActive(orders[i].Status) {
			counts[FilterActive]++
		}
	}

	return counts
}

func Active(orders []models.Order) []models.Order {
	return Select(orders, FilterActive)
}

// Select returns the orders matching filter, oldest first. Equal creation times are
// ordered by id so every device shows the same list. The input is not modified.
func Select(orders []models.Order, filter Filter) []models.Order {
	result := make([]models.Order, 0, len(orders))
	for i := range orders {
		if filter.match(&orders[i]) {
			result = append(result, orders[i])
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return Less(&result[i], &result[j])
	})

	return result
}

func Less(a, b *models.Order) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}

	return a.OrderUUID.String() < b.OrderUUID.String()
}
