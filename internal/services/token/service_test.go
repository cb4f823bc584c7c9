package token

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/domain/models"
	internalErrors "github.com/tumbleweedd/campus_orders/order_notifier/internal/lib/errors"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/metrics"
	"github.com/tumbleweedd/campus_orders/order_notifier/pkg/logger"
)

type fakeOutBox struct {
	inserted  []models.OutBoxMessage
	insertErr error
	sendErr   error
	flushes   int
}

func (f *fakeOutBox) Insert(_ context.Context, msg models.OutBoxMessage) error {
	if f.insertErr != nil {
		return f.insertErr
	}

	f.inserted = append(f.inserted, msg)
	return nil
}

func (f *fakeOutBox) Send(_ context.Context) (int, error) {
	f.flushes++
	if f.sendErr != nil {
		return 0, f.sendErr
	}

	return 1, nil
}

func TestRegisterAndUnregister(t *testing.T) {
	ctx := context.Background()
	outBox := &fakeOutBox{}
	svc := New(logger.NewDiscard(), metrics.New(prometheus.NewRegistry()), outBox, outBox)

	require.NoError(t, svc.Register(ctx, "user-1", " tok-1 "))
	require.NoError(t, svc.Unregister(ctx, "user-1", "tok-1"))

	require.Len(t, outBox.inserted, 2)
	require.Equal(t, models.TokenActionRegister, outBox.inserted[0].Action)
	require.Equal(t, "tok-1", outBox.inserted[0].Token)
	require.Equal(t, models.TokenActionUnregister, outBox.inserted[1].Action)
	require.Equal(t, 2, outBox.flushes)
}

func TestRegisterValidation(t *testing.T) {
	outBox := &fakeOutBox{}
	svc := New(logger.NewDiscard(), metrics.New(prometheus.NewRegistry()), outBox, outBox)

	err := svc.Register(context.Background(), "", "tok-1")
	require.ErrorIs(t, err, internalErrors.ErrTokenRegistration)
	require.Empty(t, outBox.inserted)
}

func TestRegisterFlushFailureIsNotFatal(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	outBox := &fakeOutBox{sendErr: errors.New("kafka down")}
	svc := New(logger.NewDiscard(), m, outBox, outBox)

	require.NoError(t, svc.Register(context.Background(), "user-1", "tok-1"))
	require.Len(t, outBox.inserted, 1)
	require.Equal(t, float64(1), testutil.ToFloat64(m.TokenRegistrationFailures))
}

func TestRegisterInsertFailure(t *testing.T) {
	outBox := &fakeOutBox{insertErr: errors.New("db down")}
	svc := New(logger.NewDiscard(), metrics.New(prometheus.NewRegistry()), outBox, outBox)

	err := svc.Register(context.Background(), "user-1", "tok-1")
	require.ErrorIs(t, err, internalErrors.ErrTokenRegistration)
	require.Zero(t, outBox.flushes)
}
