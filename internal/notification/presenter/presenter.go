package presenter

import (
	"context"
	"errors"
	"fmt"

	"github.com/tumbleweedd/campus_orders/order_notifier/internal/domain/models"
	internalErrors "github.com/tumbleweedd/campus_orders/order_notifier/internal/lib/errors"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/notification/router"
	"github.com/tumbleweedd/campus_orders/order_notifier/pkg/logger"
)

//go:generate mockgen -source=presenter.go -destination=mocks/mock_surface.go -package=mocks

// Surface is the device notification surface presentations are rendered on.
type Surface interface {
	CreateChannel(ctx context.Context, channel models.Channel) error
	Show(ctx context.Context, presentation models.Presentation) error
}

type Presenter struct {
	log     logger.Logger
	surface Surface

	channels []models.Channel
}

func New(log logger.Logger, surface Surface) *Presenter {
	return &Presenter{
		log:      log,
		surface:  surface,
		channels: router.Channels(),
	}
}

// EnsureChannels (re)creates the whole channel set. Creating an existing channel is
// harmless, so every execution context calls this before its first presentation.
func (p *Presenter) EnsureChannels(ctx context.Context) error {
	const op = "notification.presenter.EnsureChannels"

	var errs []error
	for _, channel := range p.channels {
		if err := p.surface.CreateChannel(ctx, channel); err != nil {
			p.log.WarnContext(ctx, op, logger.String("channel", string(channel.ID)), logger.Err(err))
			errs = append(errs, fmt.Errorf("channel %s: %w", channel.ID, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s: %w: %w", op, internalErrors.ErrPresentation, errors.Join(errs...))
	}

	return nil
}

// Present renders event on the channel picked by route.
func (p *Presenter) Present(ctx context.Context, event models.NotificationEvent, route router.Route) error {
	return p.show(ctx, router.Presentation(event, route))
}

// PresentAlarm renders a full-screen alarm for a high-priority order status change.
func (p *Presenter) PresentAlarm(ctx context.Context, event models.NotificationEvent, route router.Route) error {
	presentation := router.Presentation(event, route)
	presentation.Priority = models.PriorityMax
	presentation.FullScreen = true
	presentation.Category = models.CategoryAlarm

	return p.show(ctx, presentation)
}

func (p *Presenter) show(ctx context.Context, presentation models.Presentation) error {
	const op = "notification.presenter.show"

	if err := p.surface.Show(ctx, presentation); err != nil {
		return fmt.Errorf("%s: %w: %w", op, internalErrors.ErrPresentation, err)
	}

	p.log.DebugContext(ctx, op,
		logger.String("event_key", presentation.EventKey),
		logger.String("channel", string(presentation.ChannelID)),
		logger.Bool("full_screen", presentation.FullScreen),
	)

	return nil
}
