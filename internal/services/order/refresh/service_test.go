package refresh

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/domain/models"
	"github.com/tumbleweedd/campus_orders/order_notifier/pkg/logger"
)

type fakeGetter struct {
	mu     sync.Mutex
	calls  map[string]int
	failOn string
}

func (f *fakeGetter) ShopOrders(_ context.Context, shopID string) ([]models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[shopID]++

	if shopID == f.failOn {
		return nil, errors.New("unavailable")
	}

	return nil, nil
}

func (f *fakeGetter) count(shopID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.calls[shopID]
}

func TestRefreshAll(t *testing.T) {
	getter := &fakeGetter{failOn: "b"}
	svc := New(logger.NewDiscard(), getter, []string{"a", "b", "c"}, time.Minute)

	err := svc.RefreshAll(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "shop b")

	require.Equal(t, 1, getter.count("a"))
	require.Equal(t, 1, getter.count("b"))
	require.Equal(t, 1, getter.count("c"))
}

func TestRunPollsUntilCancelled(t *testing.T) {
	getter := &fakeGetter{}
	svc := New(logger.NewDiscard(), getter, []string{"canteen-1"}, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- svc.Run(ctx)
	}()

	require.Eventually(t, func() bool {
		return getter.count("canteen-1") >= 2
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestRunWithoutShops(t *testing.T) {
	svc := New(logger.NewDiscard(), &fakeGetter{}, nil, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, svc.Run(ctx))
}
