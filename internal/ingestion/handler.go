package ingestion

import (
	"context"
	"sync/atomic"

	"github.com/facebookgo/clock"
	"github.com/google/uuid"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/domain/models"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/metrics"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/notification/feed"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/notification/popup"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/notification/router"
	"github.com/tumbleweedd/campus_orders/order_notifier/pkg/logger"
)

type Deduplicator interface {
	IsDuplicate(key string) bool
}

type Presenter interface {
	EnsureChannels(ctx context.Context) error
	Present(ctx context.Context, event models.NotificationEvent, route router.Route) error
	PresentAlarm(ctx context.Context, event models.NotificationEvent, route router.Route) error
}

// SnapshotInvalidator drops a cached order so the next read goes to the backend.
type SnapshotInvalidator interface {
	Remove(key uuid.UUID) (present bool)
}

// AppState is the state only a running foreground UI has.
type AppState struct {
	Feed   *feed.Feed
	Popups *popup.Bus
}

func NewAppState() *AppState {
	return &AppState{
		Feed:   feed.New(),
		Popups: popup.NewBus(),
	}
}

type Handler struct {
	log       logger.Logger
	dedup     Deduplicator
	presenter Presenter
	snapshots SnapshotInvalidator
	metrics   *metrics.Metrics
	clock     clock.Clock

	foregroundChannels atomic.Bool
}

func NewHandler(
	log logger.Logger,
	dedup Deduplicator,
	presenter Presenter,
	snapshots SnapshotInvalidator,
	metrics *metrics.Metrics,
	clk clock.Clock,
) *Handler {
	return &Handler{
		log:       log,
		dedup:     dedup,
		presenter: presenter,
		snapshots: snapshots,
		metrics:   metrics,
		clock:     clk,
	}
}

// HandleForegroundEvent processes an event while the UI is running. Failures are
// logged and counted, never returned.
func (h *Handler) HandleForegroundEvent(ctx context.Context, msg RemoteMessage, source models.EventSource, state *AppState) {
	const op = "ingestion.HandleForegroundEvent"

	if state == nil {
		h.log.WarnContext(ctx, op+": no application state, handling in background", logger.String("message_id", msg.MessageID))
		h.HandleBackgroundEvent(ctx, msg)
		return
	}

	event, ok := h.accept(ctx, msg, source, metrics.ContextForeground)
	if !ok {
		return
	}

	log := h.log.With(logger.String("op", op), logger.String("event_key", event.EventKey))

	route := router.RouteFor(event)
	if route.HighPriority && state.Popups != nil && state.Popups.Publish(popup.FromEvent(event)) {
		h.metrics.Popups.Inc()
		log.DebugContext(ctx, "popup emitted")
	} else {
		h.ensureForegroundChannels(ctx)
		h.present(ctx, log, event, route, metrics.ContextForeground, false)
	}

	if state.Feed != nil && state.Feed.Append(InAppNotification(event)) {
		h.metrics.FeedAppends.Inc()
	}
}

// HandleBackgroundEvent processes an event with no UI and no shared state. The
// in-app feed is never touched from here.
func (h *Handler) HandleBackgroundEvent(ctx context.Context, msg RemoteMessage) {
	const op = "ingestion.HandleBackgroundEvent"

	// Each background invocation may be a fresh execution context.
	if err := h.presenter.EnsureChannels(ctx); err != nil {
		h.log.WarnContext(ctx, op, logger.Err(err))
	}

	event, ok := h.accept(ctx, msg, models.SourcePush, metrics.ContextBackground)
	if !ok {
		return
	}

	log := h.log.With(logger.String("op", op), logger.String("event_key", event.EventKey))

	route := router.RouteFor(event)
	h.present(ctx, log, event, route, metrics.ContextBackground, route.HighPriority)
}

func (h *Handler) accept(ctx context.Context, msg RemoteMessage, source models.EventSource, execCtx string) (models.NotificationEvent, bool) {
	const op = "ingestion.accept"

	h.metrics.EventsReceived.WithLabelValues(string(source), execCtx).Inc()

	event, err := Normalize(msg, source)
	if err != nil {
		h.metrics.EventsMalformed.WithLabelValues(string(source), execCtx).Inc()
		h.log.WarnContext(ctx, op, logger.String("source", string(source)), logger.Err(err))
		return models.NotificationEvent{}, false
	}

	if event.ReceivedAt.IsZero() {
		event.ReceivedAt = h.clock.Now()
	}

	if h.dedup.IsDuplicate(event.EventKey) {
		h.metrics.EventsDuplicate.WithLabelValues(string(source), execCtx).Inc()
		h.log.DebugContext(ctx, op+": duplicate suppressed",
			logger.String("event_key", event.EventKey),
			logger.String("source", string(source)),
		)
		return models.NotificationEvent{}, false
	}

	h.invalidateSnapshot(ctx, event)

	return event, true
}

// invalidateSnapshot makes the order view follow the same event that announced the
// change instead of waiting for the next poll.
func (h *Handler) invalidateSnapshot(ctx context.Context, event models.NotificationEvent) {
	if h.snapshots == nil || event.Kind != models.KindOrder {
		return
	}

	orderUUID, err := uuid.Parse(event.OrderID())
	if err != nil {
		return
	}

	if h.snapshots.Remove(orderUUID) {
		h.log.DebugContext(ctx, "ingestion.invalidateSnapshot", logger.String("order_uuid", orderUUID.String()))
	}
}

func (h *Handler) present(
	ctx context.Context,
	log logger.Logger,
	event models.NotificationEvent,
	route router.Route,
	execCtx string,
	alarm bool,
) {
	var err error
	if alarm {
		err = h.presenter.PresentAlarm(ctx, event, route)
	} else {
		err = h.presenter.Present(ctx, event, route)
	}

	if err != nil {
		h.metrics.PresentationFailures.WithLabelValues(execCtx).Inc()
		log.WarnContext(ctx, "presentation failed", logger.Err(err))
		return
	}

	h.metrics.Presentations.WithLabelValues(string(route.ChannelID), execCtx).Inc()
}

func (h *Handler) ensureForegroundChannels(ctx context.Context) {
	if h.foregroundChannels.Load() {
		return
	}

	if err := h.presenter.EnsureChannels(ctx); err != nil {
		h.log.WarnContext(ctx, "ingestion.ensureForegroundChannels", logger.Err(err))
		return
	}

	h.foregroundChannels.Store(true)
}
