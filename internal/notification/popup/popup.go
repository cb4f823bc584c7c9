// Package popup carries in-process UI signals from the foreground ingestion path to
// whatever renders the full-screen in-app overlay.
package popup

import (
	"sync"

	"github.com/tumbleweedd/campus_orders/order_notifier/internal/domain/models"
)

type Popup struct {
	EventKey    string             `json:"event_key"`
	OrderID     string             `json:"order_id"`
	OrderNumber string             `json:"order_number"`
	Status      models.OrderStatus `json:"status"`
	Title       string             `json:"title"`
	Body        string             `json:"body"`
	Payload     map[string]string  `json:"payload"`
}

func FromEvent(event models.NotificationEvent) Popup {
	return Popup{
		EventKey:    event.EventKey,
		OrderID:     event.OrderID(),
		OrderNumber: event.Payload[models.PayloadOrderNumber],
		Status:      event.Status(),
		Title:       event.Title,
		Body:        event.Body,
		Payload:     event.Payload,
	}
}

const subscriberBuffer = 8

type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan Popup
	closed bool
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan Popup)}
}

// Subscribe registers a listener. The returned cancel func closes the channel.
func (b *Bus) Subscribe() (<-chan Popup, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Popup, subscriberBuffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}

	return ch, cancel
}

// Close ends every subscription. Later subscribers get an already closed channel.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}

// Publish never blocks. It reports whether at least one subscriber took the popup.
func (b *Bus) Publish(p Popup) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	var delivered bool
	for _, ch := range b.subs {
		select {
		case ch <- p:
			delivered = true
		default:
		}
	}

	return delivered
}

func (b *Bus) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.subs)
}
