package presenter

import (
	"context"
	"sync"

	"github.com/tumbleweedd/campus_orders/order_notifier/internal/domain/models"
	"github.com/tumbleweedd/campus_orders/order_notifier/pkg/logger"
)

// LogSurface writes presentations to the agent log. It backs the local environment
// where no display consumer is attached.
type LogSurface struct {
	log logger.Logger

	mu       sync.Mutex
	channels map[models.ChannelID]models.Channel
}

func NewLogSurface(log logger.Logger) *LogSurface {
	return &LogSurface{
		log:      log,
		channels: make(map[models.ChannelID]models.Channel),
	}
}

func (s *LogSurface) CreateChannel(_ context.Context, channel models.Channel) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.channels[channel.ID] = channel

	return nil
}

func (s *LogSurface) Show(ctx context.Context, presentation models.Presentation) error {
	s.mu.Lock()
	channel, ok := s.channels[presentation.ChannelID]
	s.mu.Unlock()

	name := string(presentation.ChannelID)
	if ok {
		name = channel.Name
	}

	s.log.InfoContext(ctx, "notification",
		logger.String("channel", name),
		logger.String("title", presentation.Title),
		logger.String("body", presentation.Body),
		logger.Bool("full_screen", presentation.FullScreen),
		logger.String("event_key", presentation.EventKey),
	)

	return nil
}
