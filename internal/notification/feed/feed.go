// Package feed is the in-app notification center. It lives in foreground application
// state only; the background path never writes to it.
package feed

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/domain/models"
	internalErrors "github.com/tumbleweedd/campus_orders/order_notifier/internal/lib/errors"
)

type Feed struct {
	mu    sync.RWMutex
	items []models.InAppNotification
	// seen survives ClearAll so a replayed message cannot reappear in the same session.
	seen map[string]struct{}
}

func New() *Feed {
	return &Feed{
		seen: make(map[string]struct{}),
	}
}

// Append adds n unless a notification with the same provider message id was already
// appended in this session. It reports whether n was added.
func (f *Feed) Append(n models.InAppNotification) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if n.MessageID != "" {
		if _, ok := f.seen[n.MessageID]; ok {
			return false
		}
		f.seen[n.MessageID] = struct{}{}
	}

	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}

	f.items = append(f.items, n)

	return true
}

func (f *Feed) MarkRead(id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Read = true
			return nil
		}
	}

	return fmt.Errorf("%w: %s", internalErrors.ErrNotificationNotFound, id)
}

func (f *Feed) ClearAll() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.items = nil
}

// List returns a copy of the feed, newest first.
func (f *Feed) List() []models.InAppNotification {
	f.mu.RLock()
	defer f.mu.RUnlock()

	result := make([]models.InAppNotification, 0, len(f.items))
	for i := len(f.items) - 1; i >= 0; i-- {
		result = append(result, f.items[i])
	}

	return result
}

func (f *Feed) UnreadCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var unread int
	for i := range f.items {
		if !f.items[i].Read {
			unread++
		}
	}

	return unread
}
