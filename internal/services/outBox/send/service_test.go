package send

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/domain/models"
	"github.com/tumbleweedd/campus_orders/order_notifier/pkg/brokers/kafka/outbox_producer"
	"github.com/tumbleweedd/campus_orders/order_notifier/pkg/logger"
)

type fakeOutBox struct {
	unsent []models.OutBoxMessage
	sent   []uuid.UUID
}

func (f *fakeOutBox) FetchUnsent(_ context.Context, limit int) ([]models.OutBoxMessage, error) {
	if len(f.unsent) < limit {
		limit = len(f.unsent)
	}

	return append([]models.OutBoxMessage(nil), f.unsent[:limit]...), nil
}

func (f *fakeOutBox) MarkSent(_ context.Context, eventUUIDs []uuid.UUID) error {
	f.sent = append(f.sent, eventUUIDs...)
	f.unsent = f.unsent[len(eventUUIDs):]

	return nil
}

func outBoxMessages(n int) []models.OutBoxMessage {
	messages := make([]models.OutBoxMessage, 0, n)
	for i := 0; i < n; i++ {
		messages = append(messages, models.OutBoxMessage{
			EventUUID: uuid.New(),
			UserID:    "user-1",
			Token:     "token",
			Action:    models.TokenActionRegister,
			CreatedAt: time.Unix(int64(i), 0).UTC(),
		})
	}

	return messages
}

func TestSend(t *testing.T) {
	producer := mocks.NewSyncProducer(t, outbox_producer.Config())
	defer func() { require.NoError(t, producer.Close()) }()

	outBox := &fakeOutBox{unsent: outBoxMessages(2)}
	first := outBox.unsent[0]

	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != "device_tokens" {
			return errors.New("unexpected topic " + msg.Topic)
		}

		value, err := msg.Value.Encode()
		if err != nil {
			return err
		}

		var got models.OutBoxMessage
		if err = json.Unmarshal(value, &got); err != nil {
			return err
		}
		if got.EventUUID != first.EventUUID {
			return errors.New("messages out of order")
		}

		return nil
	})
	producer.ExpectSendMessageAndSucceed()

	svc := New(logger.NewDiscard(), "device_tokens", producer, outBox, outBox)

	sent, err := svc.Send(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, sent)
	require.Len(t, outBox.sent, 2)
	require.Empty(t, outBox.unsent)
}

func TestSendDrainsInBatches(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	defer func() { require.NoError(t, producer.Close()) }()

	outBox := &fakeOutBox{unsent: outBoxMessages(messageSendLimit + 3)}
	for i := 0; i < messageSendLimit+3; i++ {
		producer.ExpectSendMessageAndSucceed()
	}

	svc := New(logger.NewDiscard(), "device_tokens", producer, outBox, outBox)

	sent, err := svc.Send(context.Background())
	require.NoError(t, err)
	require.Equal(t, messageSendLimit+3, sent)
}

func TestSendEmpty(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	defer func() { require.NoError(t, producer.Close()) }()

	svc := New(logger.NewDiscard(), "device_tokens", producer, &fakeOutBox{}, &fakeOutBox{})

	sent, err := svc.Send(context.Background())
	require.NoError(t, err)
	require.Zero(t, sent)
}

func TestSendBrokerFailureKeepsRows(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	defer func() { require.NoError(t, producer.Close()) }()

	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	outBox := &fakeOutBox{unsent: outBoxMessages(1)}
	svc := New(logger.NewDiscard(), "device_tokens", producer, outBox, outBox)

	_, err := svc.Send(context.Background())
	require.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.Empty(t, outBox.sent)
	require.Len(t, outBox.unsent, 1)
}
