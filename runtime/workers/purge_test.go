package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/LdDl/micro-traffic-sim-grpc/mocks"
	"github.com/LdDl/micro-traffic-sim-grpc/observability"
)

func TestPurgeWorker_SweepsOnInterval(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mocks.NewMockISessionStorage(ctrl)
	monitoring := observability.NewMonitoringManager()

	sweeps := 0
	storage.EXPECT().PurgeExpired().DoAndReturn(func() int {
		sweeps++
		return 2
	}).MinTimes(2)
	storage.EXPECT().Len().Return(0).AnyTimes()

	worker := NewPurgeWorker(slog.Default(), storage, monitoring, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := worker.Run(ctx)
	req.ErrorIs(err, context.DeadlineExceeded)

	// Every sweep's eviction count lands on the shared counter
	stats := monitoring.Snapshot(0)
	req.Equal(uint64(sweeps*2), stats.SessionsPurged)
}

func TestPurgeWorker_StopsOnCancel(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mocks.NewMockISessionStorage(ctrl)
	storage.EXPECT().PurgeExpired().Return(0).AnyTimes()
	storage.EXPECT().Len().Return(0).AnyTimes()

	worker := NewPurgeWorker(slog.Default(), storage, observability.NewMonitoringManager(), time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		req.ErrorIs(err, context.Canceled)
	case <-time.After(time.Second):
		req.Fail("purge worker did not stop on context cancellation")
	}
}
