package outbox_producer

import (
	"fmt"

	"github.com/IBM/sarama"
)

// NewProducer returns a sync producer that waits for every in-sync replica, since the
// outbox marks rows sent only after the broker acknowledged them.
func NewProducer(brokers []string) (sarama.SyncProducer, error) {
	producer, err := sarama.NewSyncProducer(brokers, Config())
	if err != nil {
		return nil, fmt.Errorf("start sarama sync producer: %w", err)
	}

	return producer, nil
}

func Config() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = true
	cfg.Producer.Retry.Max = 5

	return cfg
}
