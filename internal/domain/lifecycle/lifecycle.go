// Package lifecycle holds the legal order statuses and transitions.
//
// The server owns the persisted status; this package is used to gate staff actions
// before they are submitted and to apply the server's answer to a local snapshot.
package lifecycle

import (
	"fmt"
	"time"

	"github.com/tumbleweedd/campus_orders/order_notifier/internal/domain/models"
	internalErrors "github.com/tumbleweedd/campus_orders/order_notifier/internal/lib/errors"
)

// AllowedTransitions is the order flow. Accept (pending -> preparing) and reject
// (pending -> cancelled) leave pending, so only one of them can ever fire.
var AllowedTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderStatusPending:            {models.OrderStatusPreparing, models.OrderStatusCancelled},
	models.OrderStatusPreparing:          {models.OrderStatusReady, models.OrderStatusPartiallyDelivered},
	models.OrderStatusReady:              {models.OrderStatusCompleted},
	models.OrderStatusPartiallyDelivered: {models.OrderStatusCompleted},
}

var allowedTransitionSet = buildTransitionSet(AllowedTransitions)

func buildTransitionSet(transitions map[models.OrderStatus][]models.OrderStatus) map[models.OrderStatus]map[models.OrderStatus]struct{} {
	set := make(map[models.OrderStatus]map[models.OrderStatus]struct{}, len(transitions))
	for from, tos := range transitions {
		next := make(map[models.OrderStatus]struct{}, len(tos))
		for _, to := range tos {
			next[to] = struct{}{}
		}
		set[from] = next
	}
	return set
}

func CanTransition(from, to models.OrderStatus) bool {
	next, ok := allowedTransitionSet[from]
	if !ok {
		return false
	}
	_, ok = next[to]
	return ok
}

func IsTerminal(status models.OrderStatus) bool {
	return status == models.OrderStatusCompleted || status == models.OrderStatusCancelled
}

func IsActive(status models.OrderStatus) bool {
	return !IsTerminal(status)
}

func CanDeliverItems(status models.OrderStatus) bool {
	return status == models.OrderStatusPreparing || status == models.OrderStatusPartiallyDelivered
}

// Transition moves order to status "to". On an illegal edge the order is left untouched.
// Entering completed stamps CompletedAt once and settles every item.
func Transition(order *models.Order, to models.OrderStatus, now time.Time) error {
	if !CanTransition(order.Status, to) {
		return fmt.Errorf("%w: %s -> %s", internalErrors.ErrInvalidTransition, order.Status, to)
	}

	order.Status = to

	if to == models.OrderStatusCompleted {
		if order.CompletedAt == nil {
			completedAt := now
			order.CompletedAt = &completedAt
		}

		for i := range order.Items {
			order.Items[i].Delivered = true
		}
	}

	return nil
}

// MarkItemDelivered flags a single item. Marking an item twice is a successful no-op,
// reported with changed == false. The order status is never derived here:
// partially_delivered is assigned by the server.
func MarkItemDelivered(order *models.Order, index int) (changed bool, err error) {
	if index < 0 || index >= len(order.Items) {
		return false, fmt.Errorf("%w: index %d of %d", internalErrors.ErrItemNotFound, index, len(order.Items))
	}

	if order.ItemDelivered(index) {
		return false, nil
	}

	if !CanDeliverItems(order.Status) {
		return false, fmt.Errorf("%w: status %s", internalErrors.ErrItemDeliveryNotAllowed, order.Status)
	}

	order.Items[index].Delivered = true

	return true, nil
}
