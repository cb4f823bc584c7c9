package get

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/domain/models"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/services/order/queue"
	"github.com/tumbleweedd/campus_orders/order_notifier/pkg/logger"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type orderGetter interface {
	Order(ctx context.Context, orderUUID uuid.UUID) (*models.Order, error)
	ShopOrders(ctx context.Context, shopID string, includeHistory bool) ([]models.Order, error)
}

type orderCache interface {
	Get(key uuid.UUID) (value *models.Order, ok bool)
	Add(key uuid.UUID, value *models.Order) (evicted bool)
	Replace(shopID string, orders []models.Order)
}

type OrderRetrievalService struct {
	log   logger.Logger
	cache orderCache

	orderGetter orderGetter
}

func New(
	log logger.Logger,
	cache orderCache,
	orderGetter orderGetter,
) *OrderRetrievalService {
	return &OrderRetrievalService{
		log:         log,
		cache:       cache,
		orderGetter: orderGetter,
	}
}

// OrderByUUID serves the cached snapshot when there is one.
func (os *OrderRetrievalService) OrderByUUID(ctx context.Context, orderUUID uuid.UUID) (*models.Order, error) {
	const op = "services.order.get.OrderByUUID"

	if order, ok := os.cache.Get(orderUUID); ok {
		os.log.DebugContext(ctx, op, logger.String("order_uuid", orderUUID.String()), logger.Bool("cache", true))
		return order, nil
	}

	order, err := os.orderGetter.Order(ctx, orderUUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	_ = os.cache.Add(order.OrderUUID, order)

	return order, nil
}

// ShopOrders always asks the backend and replaces the cached snapshots, so an
// optimistic local state never outlives a refresh.
func (os *OrderRetrievalService) ShopOrders(ctx context.Context, shopID string) ([]models.Order, error) {
	const op = "services.order.get.ShopOrders"

	orders, err := os.orderGetter.ShopOrders(ctx, shopID, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	os.cache.Replace(shopID, orders)

	os.log.DebugContext(ctx, op, logger.String("shop_id", shopID), logger.Int("orders", len(orders)))

	return orders, nil
}

// Queue is the staff queue view: badge counts for every filter plus the FIFO list for
// the selected one.
func (os *OrderRetrievalService) Queue(ctx context.Context, shopID string, filter queue.Filter) (queue.View, error) {
	const op = "services.order.get.Queue"

	orders, err := os.ShopOrders(ctx, shopID)
	if err != nil {
		return queue.View{}, fmt.Errorf("%s: %w", op, err)
	}

	return queue.Build(orders, filter), nil
}
