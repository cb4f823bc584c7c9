package transition

import (
	"context"
	"errors"
	"fmt"

	"github.com/facebookgo/clock"
	"github.com/google/uuid"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/domain/lifecycle"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/domain/models"
	internalErrors "github.com/tumbleweedd/campus_orders/order_notifier/internal/lib/errors"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/metrics"
	orderRepository "github.com/tumbleweedd/campus_orders/order_notifier/internal/repository/order"
	"github.com/tumbleweedd/campus_orders/order_notifier/pkg/logger"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type orderGetter interface {
	OrderByUUID(ctx context.Context, orderUUID uuid.UUID) (*models.Order, error)
}

type orderTransitioner interface {
	Transition(ctx context.Context, orderUUID uuid.UUID, to models.OrderStatus) (*models.Order, error)
	MarkItemDelivered(ctx context.Context, orderUUID uuid.UUID, index int) (*models.Order, error)
}

type orderCache interface {
	Add(key uuid.UUID, value *models.Order) (evicted bool)
	Remove(key uuid.UUID) (present bool)
}

// ConflictError means the backend is ahead of the local snapshot. Current is what the
// backend holds now, nil when it did not say.
type ConflictError struct {
	Current *models.Order
}

func (e *ConflictError) Error() string {
	if e.Current == nil {
		return internalErrors.ErrTransitionConflict.Error()
	}

	return fmt.Sprintf("%s: order is %s", internalErrors.ErrTransitionConflict, e.Current.Status)
}

func (e *ConflictError) Unwrap() error {
	return internalErrors.ErrTransitionConflict
}

// OrderTransitionService applies staff actions. The local state machine only decides
// whether a request is worth sending; the backend has the final word.
type OrderTransitionService struct {
	log     logger.Logger
	clock   clock.Clock
	metrics *metrics.Metrics
	cache   orderCache

	orderGetter       orderGetter
	orderTransitioner orderTransitioner
}

func New(
	log logger.Logger,
	clk clock.Clock,
	metrics *metrics.Metrics,
	cache orderCache,
	orderGetter orderGetter,
	orderTransitioner orderTransitioner,
) *OrderTransitionService {
	return &OrderTransitionService{
		log:               log,
		clock:             clk,
		metrics:           metrics,
		cache:             cache,
		orderGetter:       orderGetter,
		orderTransitioner: orderTransitioner,
	}
}

func (s *OrderTransitionService) Transition(ctx context.Context, orderUUID uuid.UUID, to models.OrderStatus) (*models.Order, error) {
	const op = "services.order.transition.Transition"

	log := s.log.With(logger.String("op", op), logger.String("order_uuid", orderUUID.String()), logger.String("to", string(to)))

	order, err := s.orderGetter.OrderByUUID(ctx, orderUUID)
	if err != nil {
		s.metrics.Transitions.WithLabelValues(string(to), metrics.ResultError).Inc()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = lifecycle.Transition(order, to, s.clock.Now()); err != nil {
		// Another device may have moved the order; only the backend copy can reject.
		if order, err = s.resync(ctx, orderUUID); err != nil {
			s.metrics.Transitions.WithLabelValues(string(to), metrics.ResultError).Inc()
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		log.InfoContext(ctx, "snapshot resynced", logger.String("status", string(order.Status)))

		if err = lifecycle.Transition(order, to, s.clock.Now()); err != nil {
			s.metrics.Transitions.WithLabelValues(string(to), metrics.ResultInvalid).Inc()
			log.InfoContext(ctx, "rejected locally", logger.Err(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	updated, err := s.orderTransitioner.Transition(ctx, orderUUID, to)
	if err != nil {
		return nil, s.submitError(ctx, log, op, orderUUID, to, err)
	}

	_ = s.cache.Add(orderUUID, updated)
	s.metrics.Transitions.WithLabelValues(string(to), metrics.ResultOK).Inc()

	log.InfoContext(ctx, "order transitioned", logger.String("status", string(updated.Status)))

	return updated, nil
}

// MarkItemDelivered hands over one item. An item that is already delivered is not
// sent to the backend again.
func (s *OrderTransitionService) MarkItemDelivered(ctx context.Context, orderUUID uuid.UUID, index int) (*models.Order, error) {
	const op = "services.order.transition.MarkItemDelivered"

	log := s.log.With(logger.String("op", op), logger.String("order_uuid", orderUUID.String()), logger.Int("index", index))

	order, err := s.orderGetter.OrderByUUID(ctx, orderUUID)
	if err != nil {
		s.metrics.ItemDeliveries.WithLabelValues(metrics.ResultError).Inc()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	changed, err := lifecycle.MarkItemDelivered(order.Clone(), index)
	if errors.Is(err, internalErrors.ErrItemDeliveryNotAllowed) {
		if order, err = s.resync(ctx, orderUUID); err != nil {
			s.metrics.ItemDeliveries.WithLabelValues(metrics.ResultError).Inc()
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		log.InfoContext(ctx, "snapshot resynced", logger.String("status", string(order.Status)))

		changed, err = lifecycle.MarkItemDelivered(order.Clone(), index)
	}
	if err != nil {
		s.metrics.ItemDeliveries.WithLabelValues(metrics.ResultInvalid).Inc()
		log.InfoContext(ctx, "rejected locally", logger.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !changed {
		s.metrics.ItemDeliveries.WithLabelValues(metrics.ResultNoOp).Inc()
		return order, nil
	}

	updated, err := s.orderTransitioner.MarkItemDelivered(ctx, orderUUID, index)
	if err != nil {
		var conflict *orderRepository.ConflictError
		if errors.As(err, &conflict) {
			s.metrics.ItemDeliveries.WithLabelValues(metrics.ResultConflict).Inc()
			s.refreshSnapshot(orderUUID, conflict.Current)
			return nil, &ConflictError{Current: conflict.Current}
		}

		s.metrics.ItemDeliveries.WithLabelValues(metrics.ResultError).Inc()
		log.ErrorContext(ctx, "submit failed", logger.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	_ = s.cache.Add(orderUUID, updated)
	s.metrics.ItemDeliveries.WithLabelValues(metrics.ResultOK).Inc()

	return updated, nil
}

func (s *OrderTransitionService) submitError(
	ctx context.Context,
	log logger.Logger,
	op string,
	orderUUID uuid.UUID,
	to models.OrderStatus,
	err error,
) error {
	var conflict *orderRepository.ConflictError
	switch {
	case errors.As(err, &conflict):
		s.metrics.Transitions.WithLabelValues(string(to), metrics.ResultConflict).Inc()
		s.refreshSnapshot(orderUUID, conflict.Current)
		log.WarnContext(ctx, "backend reported a conflict", logger.Err(err))
		return &ConflictError{Current: conflict.Current}
	case errors.Is(err, internalErrors.ErrInvalidTransition):
		s.metrics.Transitions.WithLabelValues(string(to), metrics.ResultInvalid).Inc()
		// The backend knows a status we do not, so the snapshot is stale.
		_ = s.cache.Remove(orderUUID)
		return fmt.Errorf("%s: %w", op, err)
	default:
		s.metrics.Transitions.WithLabelValues(string(to), metrics.ResultError).Inc()
		log.ErrorContext(ctx, "submit failed", logger.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
}

// resync drops the cached snapshot and reads the order again, which now comes from
// the backend.
func (s *OrderTransitionService) resync(ctx context.Context, orderUUID uuid.UUID) (*models.Order, error) {
	_ = s.cache.Remove(orderUUID)

	return s.orderGetter.OrderByUUID(ctx, orderUUID)
}

func (s *OrderTransitionService) refreshSnapshot(orderUUID uuid.UUID, current *models.Order) {
	if current == nil {
		_ = s.cache.Remove(orderUUID)
		return
	}

	_ = s.cache.Add(orderUUID, current)
}
