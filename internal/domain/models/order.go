package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	internalErrors "github.com/tumbleweedd/campus_orders/order_notifier/internal/lib/errors"
)

type OrderStatus string

const (
	OrderStatusPending            OrderStatus = "pending"
	OrderStatusPreparing          OrderStatus = "preparing"
	OrderStatusReady              OrderStatus = "ready"
	OrderStatusPartiallyDelivered OrderStatus = "partially_delivered"
	OrderStatusCompleted          OrderStatus = "completed"
	OrderStatusCancelled          OrderStatus = "cancelled"
)

var orderStatuses = map[OrderStatus]struct{}{
	OrderStatusPending:            {},
	OrderStatusPreparing:          {},
	OrderStatusReady:              {},
	OrderStatusPartiallyDelivered: {},
	OrderStatusCompleted:          {},
	OrderStatusCancelled:          {},
}

// AllOrderStatuses lists statuses in lifecycle order.
func AllOrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending,
		OrderStatusPreparing,
		OrderStatusReady,
		OrderStatusPartiallyDelivered,
		OrderStatusCompleted,
		OrderStatusCancelled,
	}
}

func ParseOrderStatus(s string) (OrderStatus, bool) {
	status := OrderStatus(s)
	_, ok := orderStatuses[status]

	return status, ok
}

func (s OrderStatus) String() string {
	return string(s)
}

type Order struct {
	OrderUUID    uuid.UUID   `json:"id"`
	DisplayToken string      `json:"display_token"`
	ShopID       string      `json:"shop_id"`
	CustomerID   string      `json:"customer_id"`
	CustomerName string      `json:"customer_name"`
	Items        []OrderItem `json:"items"`
	Status       OrderStatus `json:"status"`
	Total        int64       `json:"total"`
	CreatedAt    time.Time   `json:"created_at"`
	CompletedAt  *time.Time  `json:"completed_at,omitempty"`
}

// OrderItem prices are minor currency units.
type OrderItem struct {
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	UnitPrice  int64  `json:"unit_price"`
	OfferPrice *int64 `json:"offer_price,omitempty"`
	Delivered  bool   `json:"delivered"`
}

func (i OrderItem) Price() int64 {
	if i.OfferPrice != nil {
		return *i.OfferPrice
	}

	return i.UnitPrice
}

func (i OrderItem) Subtotal() int64 {
	return i.Price() * int64(i.Quantity)
}

func (o *Order) UUID() string {
	return o.OrderUUID.String()
}

func (o *Order) ItemsTotal() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.Subtotal()
	}

	return total
}

// ItemDelivered reports the effective delivery state of an item. A completed order
// has settled every item, whatever the individual flags say.
func (o *Order) ItemDelivered(index int) bool {
	if index < 0 || index >= len(o.Items) {
		return false
	}

	if o.Status == OrderStatusCompleted {
		return true
	}

	return o.Items[index].Delivered
}

func (o *Order) Validate() error {
	if len(o.Items) == 0 {
		return fmt.Errorf("%w: order has no items", internalErrors.ErrInvalidOrder)
	}

	if _, ok := orderStatuses[o.Status]; !ok {
		return fmt.Errorf("%w: unknown status %q", internalErrors.ErrInvalidOrder, o.Status)
	}

	for i, item := range o.Items {
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: item %d has non-positive quantity", internalErrors.ErrInvalidOrder, i)
		}

		if item.UnitPrice < 0 || (item.OfferPrice != nil && *item.OfferPrice < 0) {
			return fmt.Errorf("%w: item %d has negative price", internalErrors.ErrInvalidOrder, i)
		}
	}

	if o.Total < 0 {
		return fmt.Errorf("%w: negative total", internalErrors.ErrInvalidOrder)
	}

	if itemsTotal := o.ItemsTotal(); itemsTotal != o.Total {
		return fmt.Errorf("%w: total %d does not match items %d", internalErrors.ErrInvalidOrder, o.Total, itemsTotal)
	}

	if o.CompletedAt != nil && o.Status != OrderStatusCompleted {
		return fmt.Errorf("%w: completed_at set on %s order", internalErrors.ErrInvalidOrder, o.Status)
	}

	return nil
}

// Clone returns a deep copy so callers can mutate it without touching cached snapshots.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}

	clone := *o

	if o.Items != nil {
		clone.Items = make([]OrderItem, len(o.Items))
		for i, item := range o.Items {
			if item.OfferPrice != nil {
				price := *item.OfferPrice
				item.OfferPrice = &price
			}
			clone.Items[i] = item
		}
	}

	if o.CompletedAt != nil {
		completedAt := *o.CompletedAt
		clone.CompletedAt = &completedAt
	}

	return &clone
}
