package send

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/domain/models"
	"github.com/tumbleweedd/campus_orders/order_notifier/pkg/logger"
)

const messageSendLimit = 100

type outBoxGetter interface {
	FetchUnsent(ctx context.Context, limit int) ([]models.OutBoxMessage, error)
}

type outBoxMarker interface {
	MarkSent(ctx context.Context, eventUUIDs []uuid.UUID) error
}

// Service flushes the token outbox to Kafka. A row is marked sent only after the
// broker acknowledged it, so a crash in between re-sends rather than loses it.
type Service struct {
	log      logger.Logger
	topic    string
	producer sarama.SyncProducer

	outBoxGetter outBoxGetter
	outBoxMarker outBoxMarker

	mu sync.Mutex
}

func New(
	log logger.Logger,
	topic string,
	producer sarama.SyncProducer,
	outBoxGetter outBoxGetter,
	outBoxMarker outBoxMarker,
) *Service {
	return &Service{
		log:          log,
		topic:        topic,
		producer:     producer,
		outBoxGetter: outBoxGetter,
		outBoxMarker: outBoxMarker,
	}
}

// Send drains the outbox and reports how many rows were published.
func (s *Service) Send(ctx context.Context) (int, error) {
	const op = "services.outBox.send.Send"

	s.mu.Lock()
	defer s.mu.Unlock()

	var sent int
	for {
		n, err := s.sendBatch(ctx)
		sent += n
		if err != nil {
			s.log.ErrorContext(ctx, op, logger.Int("sent", sent), logger.Err(err))
			return sent, fmt.Errorf("%s: %w", op, err)
		}

		if n < messageSendLimit {
			break
		}
	}

	if sent > 0 {
		s.log.InfoContext(ctx, op, logger.Int("sent", sent))
	}

	return sent, nil
}

func (s *Service) sendBatch(ctx context.Context) (int, error) {
	messages, err := s.outBoxGetter.FetchUnsent(ctx, messageSendLimit)
	if err != nil {
		return 0, fmt.Errorf("fetch unsent messages: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil
	}

	saramaMessages := make([]*sarama.ProducerMessage, 0, len(messages))
	eventUUIDs := make([]uuid.UUID, 0, len(messages))

	for _, msg := range messages {
		bytes, err := json.Marshal(msg)
		if err != nil {
			return 0, fmt.Errorf("marshal message %s: %w", msg.EventUUID, err)
		}

		saramaMessages = append(saramaMessages, &sarama.ProducerMessage{
			Topic: s.topic,
			Key:   sarama.StringEncoder(msg.UserID),
			Value: sarama.ByteEncoder(bytes),
		})

		eventUUIDs = append(eventUUIDs, msg.EventUUID)
	}

	if err = s.producer.SendMessages(saramaMessages); err != nil {
		return 0, fmt.Errorf("send messages: %w", err)
	}

	if err = s.outBoxMarker.MarkSent(ctx, eventUUIDs); err != nil {
		return 0, fmt.Errorf("mark messages sent: %w", err)
	}

	return len(messages), nil
}
