package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/ingestion"
	"github.com/tumbleweedd/campus_orders/order_notifier/pkg/logger"
)

type realtimeDeliverer interface {
	DeliverRealtime(ctx context.Context, msg ingestion.RemoteMessage)
}

// Consumer reads the realtime order status feed. The feed is only meaningful while a
// UI is attached, so it starts at the newest offset and never replays history.
type Consumer struct {
	log    logger.Logger
	group  sarama.ConsumerGroup
	topics []string

	handler *claimHandler
}

func ConsumerConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Consumer.Offsets.Initial = sarama.OffsetNewest
	cfg.Consumer.Return.Errors = true
	cfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}

	return cfg
}

func NewConsumerGroup(brokers []string, groupID string) (sarama.ConsumerGroup, error) {
	group, err := sarama.NewConsumerGroup(brokers, groupID, ConsumerConfig())
	if err != nil {
		return nil, fmt.Errorf("start sarama consumer group: %w", err)
	}

	return group, nil
}

func NewConsumer(log logger.Logger, group sarama.ConsumerGroup, topic string, deliverer realtimeDeliverer) *Consumer {
	return &Consumer{
		log:    log,
		group:  group,
		topics: []string{topic},
		handler: &claimHandler{
			log:       log,
			deliverer: deliverer,
		},
	}
}

// Run consumes until ctx is done. Consume returns on every rebalance, hence the loop.
func (c *Consumer) Run(ctx context.Context) error {
	const op = "delivery.kafka.Consumer.Run"

	go func() {
		for err := range c.group.Errors() {
			c.log.WarnContext(ctx, op, logger.Err(err))
		}
	}()

	for {
		if err := c.group.Consume(ctx, c.topics, c.handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		if ctx.Err() != nil {
			return nil
		}
	}
}

func (c *Consumer) Close() error {
	return c.group.Close()
}

type claimHandler struct {
	log       logger.Logger
	deliverer realtimeDeliverer
}

func (h *claimHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *claimHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *claimHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	const op = "delivery.kafka.claimHandler.ConsumeClaim"

	ctx := session.Context()

	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				return nil
			}

			msg, err := decodeMessage(message)
			if err != nil {
				h.log.WarnContext(ctx, op,
					logger.String("topic", message.Topic),
					logger.Int("partition", int(message.Partition)),
					logger.Err(err),
				)
			} else {
				h.deliverer.DeliverRealtime(ctx, msg)
			}

			session.MarkMessage(message, "")
		case <-ctx.Done():
			return nil
		}
	}
}

func decodeMessage(message *sarama.ConsumerMessage) (ingestion.RemoteMessage, error) {
	var msg ingestion.RemoteMessage
	if err := json.Unmarshal(message.Value, &msg); err != nil {
		return ingestion.RemoteMessage{}, fmt.Errorf("decode realtime message: %w", err)
	}

	if msg.MessageID == "" {
		msg.MessageID = fmt.Sprintf("%s/%d/%d", message.Topic, message.Partition, message.Offset)
	}

	if msg.SentAt.IsZero() {
		msg.SentAt = message.Timestamp
	}

	return msg, nil
}
