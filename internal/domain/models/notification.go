package models

import (
	"time"

	"github.com/google/uuid"
)

type NotificationKind string

const (
	KindOrder        NotificationKind = "order"
	KindWallet       NotificationKind = "wallet"
	KindAnnouncement NotificationKind = "announcement"
	KindSystem       NotificationKind = "system"
)

type EventSource string

const (
	SourcePush     EventSource = "push"
	SourceRealtime EventSource = "realtime"
)

// Payload keys shared by both transports.
const (
	PayloadType        = "type"
	PayloadOrderID     = "orderId"
	PayloadOrderNumber = "orderNumber"
	PayloadStatus      = "status"
	PayloadTitle       = "title"
	PayloadBody        = "body"
)

type NotificationEvent struct {
	EventKey   string            `json:"event_key"`
	Kind       NotificationKind  `json:"kind"`
	Title      string            `json:"title"`
	Body       string            `json:"body"`
	Payload    map[string]string `json:"payload"`
	MessageID  string            `json:"message_id"`
	Source     EventSource       `json:"source"`
	ReceivedAt time.Time         `json:"received_at"`
}

func (e NotificationEvent) OrderID() string {
	return e.Payload[PayloadOrderID]
}

func (e NotificationEvent) Status() OrderStatus {
	return OrderStatus(e.Payload[PayloadStatus])
}

type InAppNotification struct {
	ID        uuid.UUID         `json:"id"`
	MessageID string            `json:"message_id"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Type      NotificationKind  `json:"type"`
	Read      bool              `json:"read"`
	CreatedAt time.Time         `json:"created_at"`
	Data      map[string]string `json:"data"`
}
