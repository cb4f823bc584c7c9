package get

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/cache_impl"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/domain/models"
	internalErrors "github.com/tumbleweedd/campus_orders/order_notifier/internal/lib/errors"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/services/order/get/mocks"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/services/order/queue"
	"github.com/tumbleweedd/campus_orders/order_notifier/pkg/logger"
)

func testOrder(status models.OrderStatus, createdAt time.Time) models.Order {
	return models.Order{
		OrderUUID: uuid.New(),
		ShopID:    "canteen-1",
		Items:     []models.OrderItem{{Name: "Dosa", Quantity: 1, UnitPrice: 100}},
		Status:    status,
		Total:     100,
		CreatedAt: createdAt,
	}
}

func TestOrderByUUIDUsesCache(t *testing.T) {
	ctx := context.Background()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	getter := mocks.NewMockorderGetter(ctl)
	cache := cache_impl.NewExpirableCache(logger.NewDiscard(), 8, time.Minute)

	order := testOrder(models.OrderStatusPending, time.Now())
	getter.EXPECT().Order(ctx, order.OrderUUID).Return(&order, nil).Times(1)

	svc := New(logger.NewDiscard(), cache, getter)

	first, err := svc.OrderByUUID(ctx, order.OrderUUID)
	require.NoError(t, err)
	require.Equal(t, order.OrderUUID, first.OrderUUID)

	second, err := svc.OrderByUUID(ctx, order.OrderUUID)
	require.NoError(t, err)
	require.Equal(t, order.OrderUUID, second.OrderUUID)
}

func TestOrderByUUIDNotFound(t *testing.T) {
	ctx := context.Background()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	getter := mocks.NewMockorderGetter(ctl)
	cache := mocks.NewMockorderCache(ctl)

	orderUUID := uuid.New()
	cache.EXPECT().Get(orderUUID).Return(nil, false)
	getter.EXPECT().Order(ctx, orderUUID).Return(nil, internalErrors.ErrOrderNotFound)

	svc := New(logger.NewDiscard(), cache, getter)

	_, err := svc.OrderByUUID(ctx, orderUUID)
	require.ErrorIs(t, err, internalErrors.ErrOrderNotFound)
}

func TestShopOrdersReplacesCache(t *testing.T) {
	ctx := context.Background()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	getter := mocks.NewMockorderGetter(ctl)
	cache := mocks.NewMockorderCache(ctl)

	orders := []models.Order{testOrder(models.OrderStatusPending, time.Now())}
	getter.EXPECT().ShopOrders(ctx, "canteen-1", true).Return(orders, nil)
	cache.EXPECT().Replace("canteen-1", orders)

	svc := New(logger.NewDiscard(), cache, getter)

	got, err := svc.ShopOrders(ctx, "canteen-1")
	require.NoError(t, err)
	require.Equal(t, orders, got)
}

func TestQueue(t *testing.T) {
	ctx := context.Background()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	getter := mocks.NewMockorderGetter(ctl)
	cache := cache_impl.NewExpirableCache(logger.NewDiscard(), 8, time.Minute)

	t0 := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	late := testOrder(models.OrderStatusPreparing, t0.Add(2*time.Minute))
	early := testOrder(models.OrderStatusPending, t0)
	done := testOrder(models.OrderStatusCompleted, t0.Add(-time.Hour))

	getter.EXPECT().ShopOrders(ctx, "canteen-1", true).Return([]models.Order{late, early, done}, nil)

	svc := New(logger.NewDiscard(), cache, getter)

	view, err := svc.Queue(ctx, "canteen-1", queue.FilterActive)
	require.NoError(t, err)
	require.Equal(t, queue.FilterActive, view.Filter)
	require.Len(t, view.Orders, 2)
	require.Equal(t, early.OrderUUID, view.Orders[0].OrderUUID)
	require.Equal(t, late.OrderUUID, view.Orders[1].OrderUUID)
	require.Equal(t, 3, view.Counts[queue.FilterAll])
	require.Equal(t, 2, view.Counts[queue.FilterActive])
	require.Equal(t, 1, view.Counts[queue.StatusFilter(models.OrderStatusCompleted)])

	_, ok := cache.Get(done.OrderUUID)
	require.True(t, ok)
}

func TestQueueBackendError(t *testing.T) {
	ctx := context.Background()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	getter := mocks.NewMockorderGetter(ctl)
	getter.EXPECT().ShopOrders(ctx, "canteen-1", true).Return(nil, errors.New("unavailable"))

	svc := New(logger.NewDiscard(), mocks.NewMockorderCache(ctl), getter)

	_, err := svc.Queue(ctx, "canteen-1", queue.FilterAll)
	require.Error(t, err)
}
