package ingestion

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/facebookgo/clock"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/dedup"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/domain/lifecycle"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/domain/models"
	internalErrors "github.com/tumbleweedd/campus_orders/order_notifier/internal/lib/errors"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/metrics"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/notification/presenter"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/notification/presenter/mocks"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/notification/router"
	"github.com/tumbleweedd/campus_orders/order_notifier/pkg/logger"
)

type fakeSnapshots struct {
	removed []uuid.UUID
}

func (f *fakeSnapshots) Remove(key uuid.UUID) bool {
	f.removed = append(f.removed, key)
	return true
}

type testEnv struct {
	surface    *mocks.MockSurface
	snapshots  *fakeSnapshots
	clock      *clock.Mock
	metrics    *metrics.Metrics
	handler    *Handler
	dispatcher *Dispatcher
}

func newTestEnv(t *testing.T) *testEnv {
	ctl := gomock.NewController(t)
	t.Cleanup(ctl.Finish)

	log := logger.NewDiscard()
	clk := clock.NewMock()
	m := metrics.New(prometheus.NewRegistry())
	surface := mocks.NewMockSurface(ctl)
	snapshots := &fakeSnapshots{}

	handler := NewHandler(log, dedup.New(clk, dedup.DefaultTTL), presenter.New(log, surface), snapshots, m, clk)

	return &testEnv{
		surface:    surface,
		snapshots:  snapshots,
		clock:      clk,
		metrics:    m,
		handler:    handler,
		dispatcher: NewDispatcher(log, handler),
	}
}

func statusMessage(messageID, orderID string, status models.OrderStatus) RemoteMessage {
	return RemoteMessage{
		MessageID:    messageID,
		Notification: Notification{Title: "Order " + string(status), Body: "Order A-17 is " + string(status)},
		Data: map[string]string{
			"type":        "order_update",
			"orderId":     orderID,
			"orderNumber": "A-17",
			"status":      string(status),
		},
	}
}

func TestForegroundHighPriorityEmitsPopup(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	state := NewAppState()
	popups, cancel := state.Popups.Subscribe()
	defer cancel()

	env.handler.HandleForegroundEvent(ctx, statusMessage("m-1", "o1", models.OrderStatusReady), models.SourcePush, state)

	select {
	case p := <-popups:
		require.Equal(t, "o1:ready", p.EventKey)
		require.Equal(t, "o1", p.OrderID)
		require.Equal(t, "A-17", p.OrderNumber)
		require.Equal(t, models.OrderStatusReady, p.Status)
	default:
		t.Fatal("popup was not emitted")
	}

	items := state.Feed.List()
	require.Len(t, items, 1)
	require.Equal(t, "m-1", items[0].MessageID)
	require.Equal(t, models.KindOrder, items[0].Type)
	require.Equal(t, env.clock.Now(), items[0].CreatedAt)

	require.Equal(t, float64(1), testutil.ToFloat64(env.metrics.Popups))
	require.Equal(t, float64(1), testutil.ToFloat64(env.metrics.FeedAppends))
}

func TestOrderEventsInvalidateSnapshot(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	orderUUID := uuid.New()
	state := NewAppState()
	popups, cancel := state.Popups.Subscribe()
	defer cancel()

	env.handler.HandleForegroundEvent(ctx, statusMessage("m-1", orderUUID.String(), models.OrderStatusReady), models.SourcePush, state)
	<-popups
	require.Equal(t, []uuid.UUID{orderUUID}, env.snapshots.removed)

	// Same change over the other transport is a duplicate and changes nothing.
	env.handler.HandleForegroundEvent(ctx, statusMessage("m-2", orderUUID.String(), models.OrderStatusReady), models.SourceRealtime, state)
	require.Len(t, env.snapshots.removed, 1)

	env.surface.EXPECT().CreateChannel(ctx, gomock.Any()).Return(nil).AnyTimes()
	env.surface.EXPECT().Show(ctx, gomock.Any()).Return(nil).AnyTimes()

	env.handler.HandleBackgroundEvent(ctx, statusMessage("m-3", orderUUID.String(), models.OrderStatusCompleted))
	require.Equal(t, []uuid.UUID{orderUUID, orderUUID}, env.snapshots.removed)

	env.handler.HandleForegroundEvent(ctx, RemoteMessage{
		MessageID: "m-4",
		Data:      map[string]string{"type": "wallet", "orderId": uuid.NewString()},
	}, models.SourcePush, state)
	require.Len(t, env.snapshots.removed, 2)
}

func TestForegroundHighPriorityWithoutSubscriberPresents(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.surface.EXPECT().CreateChannel(ctx, gomock.Any()).Return(nil).Times(len(router.Channels()))
	env.surface.EXPECT().Show(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, presentation models.Presentation) error {
			require.Equal(t, models.ChannelOrderUpdates, presentation.ChannelID)
			require.Equal(t, models.PriorityMax, presentation.Priority)
			require.False(t, presentation.FullScreen)
			return nil
		},
	)

	state := NewAppState()
	env.handler.HandleForegroundEvent(ctx, statusMessage("m-1", "o1", models.OrderStatusPreparing), models.SourceRealtime, state)

	require.Len(t, state.Feed.List(), 1)
	require.Equal(t, float64(0), testutil.ToFloat64(env.metrics.Popups))
	require.Equal(t, float64(1), testutil.ToFloat64(
		env.metrics.Presentations.WithLabelValues(string(models.ChannelOrderUpdates), metrics.ContextForeground),
	))
}

func TestForegroundEnsuresChannelsOnce(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.surface.EXPECT().CreateChannel(ctx, gomock.Any()).Return(nil).Times(len(router.Channels()))
	env.surface.EXPECT().Show(ctx, gomock.Any()).Return(nil).Times(2)

	state := NewAppState()
	env.handler.HandleForegroundEvent(ctx, RemoteMessage{MessageID: "m-1", Data: map[string]string{"type": "wallet"}}, models.SourcePush, state)
	env.handler.HandleForegroundEvent(ctx, RemoteMessage{MessageID: "m-2", Data: map[string]string{"type": "wallet"}}, models.SourcePush, state)

	require.Len(t, state.Feed.List(), 2)
}

func TestForegroundLowPriorityPresentsOnRoutedChannel(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	state := NewAppState()
	_, cancel := state.Popups.Subscribe()
	defer cancel()

	env.surface.EXPECT().CreateChannel(ctx, gomock.Any()).Return(nil).AnyTimes()
	env.surface.EXPECT().Show(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, presentation models.Presentation) error {
			require.Equal(t, models.ChannelWallet, presentation.ChannelID)
			require.Equal(t, "Wallet credited", presentation.Title)
			return nil
		},
	)

	msg := RemoteMessage{
		MessageID: "w-1",
		Data:      map[string]string{"type": "wallet", "title": "Wallet credited", "body": "+50"},
	}
	env.handler.HandleForegroundEvent(ctx, msg, models.SourcePush, state)

	require.Equal(t, float64(0), testutil.ToFloat64(env.metrics.Popups))
	require.Equal(t, 1, state.Feed.UnreadCount())
}

func TestForegroundPresentationFailureStillAppendsToFeed(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.surface.EXPECT().CreateChannel(ctx, gomock.Any()).Return(nil).AnyTimes()
	env.surface.EXPECT().Show(ctx, gomock.Any()).Return(errors.New("notifications disabled"))

	state := NewAppState()
	env.handler.HandleForegroundEvent(ctx, RemoteMessage{MessageID: "a-1", Data: map[string]string{"type": "announcement"}}, models.SourcePush, state)

	require.Len(t, state.Feed.List(), 1)
	require.Equal(t, float64(1), testutil.ToFloat64(env.metrics.PresentationFailures.WithLabelValues(metrics.ContextForeground)))
}

func TestForegroundMalformedEventIsDropped(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	state := NewAppState()
	env.handler.HandleForegroundEvent(ctx, RemoteMessage{Data: map[string]string{"type": "order"}}, models.SourcePush, state)

	require.Empty(t, state.Feed.List())
	require.Equal(t, float64(1), testutil.ToFloat64(
		env.metrics.EventsMalformed.WithLabelValues(string(models.SourcePush), metrics.ContextForeground),
	))
}

func TestCrossTransportDedup(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	state := NewAppState()
	popups, cancel := state.Popups.Subscribe()
	defer cancel()

	env.handler.HandleForegroundEvent(ctx, statusMessage("push-1", "o1", models.OrderStatusReady), models.SourcePush, state)
	env.handler.HandleForegroundEvent(ctx, statusMessage("rt-9", "o1", models.OrderStatusReady), models.SourceRealtime, state)

	require.Len(t, popups, 1)
	require.Len(t, state.Feed.List(), 1)
	require.Equal(t, float64(1), testutil.ToFloat64(
		env.metrics.EventsDuplicate.WithLabelValues(string(models.SourceRealtime), metrics.ContextForeground),
	))

	// A different status of the same order is a different logical event.
	env.handler.HandleForegroundEvent(ctx, statusMessage("push-2", "o1", models.OrderStatusCompleted), models.SourcePush, state)
	require.Len(t, popups, 2)
}

func TestDedupWindowExpires(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	state := NewAppState()
	popups, cancel := state.Popups.Subscribe()
	defer cancel()

	env.handler.HandleForegroundEvent(ctx, statusMessage("m-1", "o1", models.OrderStatusReady), models.SourcePush, state)
	<-popups

	env.clock.Add(dedup.DefaultTTL + time.Second)

	env.handler.HandleForegroundEvent(ctx, statusMessage("m-2", "o1", models.OrderStatusReady), models.SourcePush, state)
	require.Len(t, popups, 1)
}

func TestBackgroundHighPriorityRaisesAlarm(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	gomock.InOrder(
		env.surface.EXPECT().CreateChannel(ctx, gomock.Any()).Return(nil).Times(len(router.Channels())),
		env.surface.EXPECT().Show(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, presentation models.Presentation) error {
				require.Equal(t, models.ChannelOrderReady, presentation.ChannelID)
				require.Equal(t, models.PriorityMax, presentation.Priority)
				require.True(t, presentation.FullScreen)
				require.Equal(t, models.CategoryAlarm, presentation.Category)
				require.Equal(t, "o1", presentation.Payload[models.PayloadOrderID])
				return nil
			},
		),
	)

	env.handler.HandleBackgroundEvent(ctx, statusMessage("m-1", "o1", models.OrderStatusReady))

	require.Equal(t, float64(1), testutil.ToFloat64(
		env.metrics.Presentations.WithLabelValues(string(models.ChannelOrderReady), metrics.ContextBackground),
	))
}

func TestBackgroundLowPriorityIsNotAnAlarm(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.surface.EXPECT().CreateChannel(ctx, gomock.Any()).Return(nil).Times(len(router.Channels()))
	env.surface.EXPECT().Show(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, presentation models.Presentation) error {
			require.Equal(t, models.ChannelGeneral, presentation.ChannelID)
			require.False(t, presentation.FullScreen)
			require.Empty(t, presentation.Category)
			return nil
		},
	)

	env.handler.HandleBackgroundEvent(ctx, RemoteMessage{
		MessageID: "m-1",
		Data:      map[string]string{"type": "announcement", "title": "Canteen closes early"},
	})
}

func TestBackgroundChannelFailureStillPresents(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.surface.EXPECT().CreateChannel(ctx, gomock.Any()).Return(errors.New("denied")).Times(len(router.Channels()))
	env.surface.EXPECT().Show(ctx, gomock.Any()).Return(nil)

	env.handler.HandleBackgroundEvent(ctx, statusMessage("m-1", "o1", models.OrderStatusCancelled))
}

func TestDispatcher(t *testing.T) {
	ctx := context.Background()

	t.Run("realtime is dropped while detached", func(t *testing.T) {
		env := newTestEnv(t)

		env.dispatcher.DeliverRealtime(ctx, statusMessage("rt-1", "o1", models.OrderStatusReady))

		require.Equal(t, float64(0), testutil.ToFloat64(
			env.metrics.EventsReceived.WithLabelValues(string(models.SourceRealtime), metrics.ContextForeground),
		))
	})

	t.Run("push goes to background while detached", func(t *testing.T) {
		env := newTestEnv(t)

		env.surface.EXPECT().CreateChannel(ctx, gomock.Any()).Return(nil).Times(len(router.Channels()))
		env.surface.EXPECT().Show(ctx, gomock.Any()).Return(nil)

		env.dispatcher.DeliverPush(ctx, statusMessage("m-1", "o1", models.OrderStatusReady))

		require.Equal(t, float64(1), testutil.ToFloat64(
			env.metrics.EventsReceived.WithLabelValues(string(models.SourcePush), metrics.ContextBackground),
		))
	})

	t.Run("attached state receives both transports", func(t *testing.T) {
		env := newTestEnv(t)

		state := NewAppState()
		_, cancel := state.Popups.Subscribe()
		defer cancel()

		env.dispatcher.Attach(state)
		require.Same(t, state, env.dispatcher.State())

		env.dispatcher.DeliverPush(ctx, statusMessage("m-1", "o1", models.OrderStatusReady))
		env.dispatcher.DeliverRealtime(ctx, statusMessage("rt-1", "o2", models.OrderStatusReady))
		require.Len(t, state.Feed.List(), 2)

		env.dispatcher.Detach()
		require.Nil(t, env.dispatcher.State())
	})
}

func TestOrderReadyEndToEnd(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	t0 := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	order := &models.Order{
		OrderUUID:    uuid.New(),
		DisplayToken: "A-17",
		Items: []models.OrderItem{
			{Name: "Dosa", Quantity: 1, UnitPrice: 100},
			{Name: "Coffee", Quantity: 1, UnitPrice: 50},
		},
		Status:    models.OrderStatusPending,
		Total:     150,
		CreatedAt: t0,
	}
	require.NoError(t, order.Validate())

	require.NoError(t, lifecycle.Transition(order, models.OrderStatusPreparing, t0.Add(time.Minute)))
	require.Equal(t, models.OrderStatusPreparing, order.Status)

	changed, err := lifecycle.MarkItemDelivered(order, 0)
	require.NoError(t, err)
	require.True(t, changed)
	require.True(t, order.ItemDelivered(0))
	require.False(t, order.ItemDelivered(1))
	require.Equal(t, models.OrderStatusPreparing, order.Status)

	env.surface.EXPECT().CreateChannel(ctx, gomock.Any()).Return(nil).AnyTimes()
	env.surface.EXPECT().Show(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, presentation models.Presentation) error {
			require.Equal(t, models.ChannelOrderReady, presentation.ChannelID)
			require.Equal(t, models.PriorityMax, presentation.Priority)
			return nil
		},
	).Times(1)

	state := NewAppState()
	env.dispatcher.Attach(state)

	orderID := order.UUID()
	env.dispatcher.DeliverPush(ctx, statusMessage("push-1", orderID, models.OrderStatusReady))
	env.clock.Add(500 * time.Millisecond)
	env.dispatcher.DeliverRealtime(ctx, statusMessage("rt-1", orderID, models.OrderStatusReady))

	require.Len(t, state.Feed.List(), 1)

	require.NoError(t, lifecycle.Transition(order, models.OrderStatusReady, t0.Add(10*time.Minute)))
	require.NoError(t, lifecycle.Transition(order, models.OrderStatusCompleted, t0.Add(12*time.Minute)))
	require.NotNil(t, order.CompletedAt)
	require.True(t, order.ItemDelivered(0))
	require.True(t, order.ItemDelivered(1))
}

func TestRejectedOrderCannotBePrepared(t *testing.T) {
	order := &models.Order{
		OrderUUID: uuid.New(),
		Items:     []models.OrderItem{{Name: "Tea", Quantity: 1, UnitPrice: 20}},
		Status:    models.OrderStatusPending,
		Total:     20,
	}

	require.NoError(t, lifecycle.Transition(order, models.OrderStatusCancelled, time.Now()))

	err := lifecycle.Transition(order, models.OrderStatusPreparing, time.Now())
	require.ErrorIs(t, err, internalErrors.ErrInvalidTransition)
	require.Equal(t, models.OrderStatusCancelled, order.Status)
}
