// Package router decides which presentation channel surfaces a notification event.
package router

import (
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/domain/models"
)

type Route struct {
	ChannelID    models.ChannelID
	Priority     models.Priority
	HighPriority bool
}

var highPriorityStatuses = map[models.OrderStatus]struct{}{
	models.OrderStatusPreparing: {},
	models.OrderStatusReady:     {},
	models.OrderStatusCompleted: {},
	models.OrderStatusCancelled: {},
}

// IsHighPriorityStatusChange reports order events the customer has to be alerted to
// immediately.
func IsHighPriorityStatusChange(event models.NotificationEvent) bool {
	if event.Kind != models.KindOrder {
		return false
	}

	_, ok := highPriorityStatuses[event.Status()]
	return ok
}

func RouteFor(event models.NotificationEvent) Route {
	switch {
	case IsHighPriorityStatusChange(event):
		route := Route{ChannelID: models.ChannelOrderUpdates, Priority: models.PriorityMax, HighPriority: true}
		if event.Status() == models.OrderStatusReady {
			route.ChannelID = models.ChannelOrderReady
		}
		return route
	case event.Kind == models.KindWallet:
		return Route{ChannelID: models.ChannelWallet, Priority: models.PriorityDefault}
	default:
		return Route{ChannelID: models.ChannelGeneral, Priority: models.PriorityDefault}
	}
}

// Presentation renders event on the routed channel, keeping the payload for deep links.
func Presentation(event models.NotificationEvent, route Route) models.Presentation {
	return models.Presentation{
		EventKey:  event.EventKey,
		ChannelID: route.ChannelID,
		Title:     event.Title,
		Body:      event.Body,
		Priority:  route.Priority,
		Payload:   copyPayload(event.Payload),
	}
}

func copyPayload(payload map[string]string) map[string]string {
	if payload == nil {
		return map[string]string{}
	}

	result := make(map[string]string, len(payload))
	for k, v := range payload {
		result[k] = v
	}

	return result
}

var orderVibration = []int64{0, 500, 250, 500}

// Channels is the full channel set. It has to exist on the surface before the first
// presentation in any execution context.
func Channels() []models.Channel {
	return []models.Channel{
		{
			ID:                models.ChannelOrderReady,
			Name:              "Order Ready",
			Priority:          models.PriorityMax,
			Sound:             "order_ready",
			Vibration:         []int64{0, 1000, 500, 1000},
			LockscreenVisible: true,
			BypassDND:         true,
		},
		{
			ID:                models.ChannelOrderUpdates,
			Name:              "Order Updates",
			Priority:          models.PriorityMax,
			Sound:             "default",
			Vibration:         orderVibration,
			LockscreenVisible: true,
		},
		{
			ID:       models.ChannelWallet,
			Name:     "Wallet",
			Priority: models.PriorityDefault,
			Sound:    "default",
		},
		{
			ID:       models.ChannelGeneral,
			Name:     "General",
			Priority: models.PriorityDefault,
			Sound:    "default",
		},
	}
}
