package producer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/IBM/sarama"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/domain/models"
	"github.com/tumbleweedd/campus_orders/order_notifier/pkg/logger"
)

var ErrProducerClosed = errors.New("producer is closed")

const (
	envelopeChannel      = "channel"
	envelopePresentation = "presentation"
)

type envelope struct {
	Kind         string               `json:"kind"`
	Channel      *models.Channel      `json:"channel,omitempty"`
	Presentation *models.Presentation `json:"presentation,omitempty"`
}

// Producer renders notifications by publishing them to the device notifications topic,
// where the device-side renderer picks them up. It satisfies the presenter surface.
type Producer struct {
	log   logger.Logger
	topic string

	// presentations must not hold up ingestion, so an async producer is used and
	// delivery failures are only logged.
	producer sarama.AsyncProducer

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func Config() *sarama.Config {
	producerConfig := sarama.NewConfig()
	producerConfig.Producer.RequiredAcks = sarama.WaitForLocal
	producerConfig.Producer.Compression = sarama.CompressionNone
	producerConfig.Producer.Return.Successes = true
	producerConfig.Producer.Return.Errors = true

	return producerConfig
}

func NewAsyncProducer(brokerAddress []string) (sarama.AsyncProducer, error) {
	producer, err := sarama.NewAsyncProducer(brokerAddress, Config())
	if err != nil {
		return nil, fmt.Errorf("start sarama async producer: %w", err)
	}

	return producer, nil
}

func NewProducer(log logger.Logger, producer sarama.AsyncProducer, topic string) *Producer {
	p := &Producer{
		log:      log,
		topic:    topic,
		producer: producer,
		done:     make(chan struct{}),
	}

	go p.drain()

	return p
}

func (p *Producer) drain() {
	defer close(p.done)

	successes, errs := p.producer.Successes(), p.producer.Errors()
	for successes != nil || errs != nil {
		select {
		case sendErr, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}

			p.log.Warn("failed to send message", logger.Err(sendErr))
		case success, ok := <-successes:
			if !ok {
				successes = nil
				continue
			}

			p.log.Debug("successfully sent message", logger.String("topic", success.Topic))
		}
	}
}

func (p *Producer) CreateChannel(ctx context.Context, channel models.Channel) error {
	return p.send(ctx, "channel:"+string(channel.ID), envelope{Kind: envelopeChannel, Channel: &channel})
}

func (p *Producer) Show(ctx context.Context, presentation models.Presentation) error {
	return p.send(ctx, presentation.EventKey, envelope{Kind: envelopePresentation, Presentation: &presentation})
}

func (p *Producer) send(ctx context.Context, key string, env envelope) error {
	const op = "brokers.kafka.producer.send"

	bytes, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("%s: marshal %s: %w", op, env.Kind, err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(bytes),
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return fmt.Errorf("%s: %w", op, ErrProducerClosed)
	}

	select {
	case p.producer.Input() <- message:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	}
}

// Close flushes buffered messages and waits for their results to be logged.
func (p *Producer) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.mu.Unlock()

	err := p.producer.Close()
	<-p.done

	return err
}
