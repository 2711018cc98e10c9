package workers

import (
	"context"
	"log/slog"
	"queue-bot/mocks"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHealthMonitoringWorker_ReportsQueueLength(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	dispatcherMock := mocks.NewMockIDispatcher(ctrl)

	reported := make(chan struct{}, 1)
	dispatcherMock.EXPECT().Len().
		DoAndReturn(func() int {
			select {
			case reported <- struct{}{}:
			default:
			}
			return 3
		}).
		MinTimes(1)

	worker := NewHealthMonitoringWorker(log, dispatcherMock, 5*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	select {
	case <-reported:
	case <-time.After(time.Second):
		req.Fail("Health worker never reported")
	}
	cancel()
	req.NoError(<-done)
}
