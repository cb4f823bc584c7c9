package ingestion

import (
	"fmt"
	"strings"
	"time"

	"github.com/tumbleweedd/campus_orders/order_notifier/internal/dedup"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/domain/models"
	internalErrors "github.com/tumbleweedd/campus_orders/order_notifier/internal/lib/errors"
)

// RemoteMessage is what both transports hand over: the push provider's message and the
// realtime feed's status event are decoded into the same shape.
type RemoteMessage struct {
	MessageID    string            `json:"message_id"`
	Notification Notification      `json:"notification"`
	Data         map[string]string `json:"data"`
	SentAt       time.Time         `json:"sent_at"`
}

type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

var kinds = map[string]models.NotificationKind{
	"order":        models.KindOrder,
	"order_update": models.KindOrder,
	"wallet":       models.KindWallet,
	"announcement": models.KindAnnouncement,
	"system":       models.KindSystem,
}

// Normalize turns a transport message into a NotificationEvent. It is the only place
// that knows the wire field names.
func Normalize(msg RemoteMessage, source models.EventSource) (models.NotificationEvent, error) {
	const op = "ingestion.Normalize"

	payload := make(map[string]string, len(msg.Data))
	for k, v := range msg.Data {
		payload[k] = strings.TrimSpace(v)
	}

	if status, ok := payload[models.PayloadStatus]; ok {
		payload[models.PayloadStatus] = strings.ToLower(status)
	}

	kind, ok := kinds[strings.ToLower(payload[models.PayloadType])]
	if !ok {
		kind = models.KindSystem
	}

	event := models.NotificationEvent{
		Kind:       kind,
		Title:      firstNonEmpty(msg.Notification.Title, payload[models.PayloadTitle]),
		Body:       firstNonEmpty(msg.Notification.Body, payload[models.PayloadBody]),
		Payload:    payload,
		MessageID:  strings.TrimSpace(msg.MessageID),
		Source:     source,
		ReceivedAt: msg.SentAt,
	}

	event.EventKey = dedup.KeyFor(event.OrderID(), string(event.Status()), event.MessageID)
	if event.EventKey == "" {
		return models.NotificationEvent{}, fmt.Errorf("%s: %w: no message id and no order status", op, internalErrors.ErrMalformedEvent)
	}

	return event, nil
}

// InAppNotification is the feed entry recorded for event.
func InAppNotification(event models.NotificationEvent) models.InAppNotification {
	data := make(map[string]string, len(event.Payload))
	for k, v := range event.Payload {
		data[k] = v
	}

	return models.InAppNotification{
		MessageID: firstNonEmpty(event.MessageID, event.EventKey),
		Title:     event.Title,
		Message:   event.Body,
		Type:      event.Kind,
		CreatedAt: event.ReceivedAt,
		Data:      data,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}

	return ""
}
