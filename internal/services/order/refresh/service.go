package refresh

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/domain/models"
	"github.com/tumbleweedd/campus_orders/order_notifier/pkg/logger"
)

type shopOrdersGetter interface {
	ShopOrders(ctx context.Context, shopID string) ([]models.Order, error)
}

// Service periodically reloads the configured shops so cached snapshots converge on
// the backend even when a notification was missed.
type Service struct {
	log      logger.Logger
	getter   shopOrdersGetter
	shopIDs  []string
	interval time.Duration
}

func New(log logger.Logger, getter shopOrdersGetter, shopIDs []string, interval time.Duration) *Service {
	return &Service{
		log:      log,
		getter:   getter,
		shopIDs:  shopIDs,
		interval: interval,
	}
}

func (s *Service) RefreshAll(ctx context.Context) error {
	const op = "services.order.refresh.RefreshAll"

	var errs []error
	for _, shopID := range s.shopIDs {
		if _, err := s.getter.ShopOrders(ctx, shopID); err != nil {
			errs = append(errs, fmt.Errorf("shop %s: %w", shopID, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s: %w", op, errors.Join(errs...))
	}

	return nil
}

// Run blocks until ctx is done.
func (s *Service) Run(ctx context.Context) error {
	const op = "services.order.refresh.Run"

	if len(s.shopIDs) == 0 {
		s.log.InfoContext(ctx, op+": no shops configured, poller disabled")
		<-ctx.Done()
		return nil
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("%s: new scheduler: %w", op, err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(func() {
			if err := s.RefreshAll(ctx); err != nil {
				s.log.WarnContext(ctx, op, logger.Err(err))
			}
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("%s: new job: %w", op, err)
	}

	scheduler.Start()
	s.log.InfoContext(ctx, op, logger.Int("shops", len(s.shopIDs)), logger.String("interval", s.interval.String()))

	<-ctx.Done()

	return scheduler.Shutdown()
}
