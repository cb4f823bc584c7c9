package ingestion

import (
	"context"
	"sync"

	"github.com/tumbleweedd/campus_orders/order_notifier/internal/domain/models"
	"github.com/tumbleweedd/campus_orders/order_notifier/pkg/logger"
)

// Dispatcher sends each incoming message to the path matching the current app state.
// Push messages reach both paths; the realtime feed only exists while a UI is attached.
type Dispatcher struct {
	log     logger.Logger
	handler *Handler

	mu    sync.RWMutex
	state *AppState
}

func NewDispatcher(log logger.Logger, handler *Handler) *Dispatcher {
	return &Dispatcher{
		log:     log,
		handler: handler,
	}
}

func (d *Dispatcher) Attach(state *AppState) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.state = state
}

func (d *Dispatcher) Detach() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.state = nil
}

// State returns the attached foreground state, or nil while in background.
func (d *Dispatcher) State() *AppState {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.state
}

func (d *Dispatcher) DeliverPush(ctx context.Context, msg RemoteMessage) {
	if state := d.State(); state != nil {
		d.handler.HandleForegroundEvent(ctx, msg, models.SourcePush, state)
		return
	}

	d.handler.HandleBackgroundEvent(ctx, msg)
}

func (d *Dispatcher) DeliverRealtime(ctx context.Context, msg RemoteMessage) {
	const op = "ingestion.Dispatcher.DeliverRealtime"

	state := d.State()
	if state == nil {
		d.log.DebugContext(ctx, op+": not attached, dropped", logger.String("message_id", msg.MessageID))
		return
	}

	d.handler.HandleForegroundEvent(ctx, msg, models.SourceRealtime, state)
}
