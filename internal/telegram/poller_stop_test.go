package telegram_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/central-university-dev/go-reminder-bot/internal/domain/models"
	"github.com/central-university-dev/go-reminder-bot/internal/telegram"
	"github.com/central-university-dev/go-reminder-bot/internal/telegram/mocks"
)

type noopCommandService struct{}

func (noopCommandService) ProcessCommand(_ context.Context, _ *models.Command) (string, error) {
	return "", nil
}

func TestPoller_StopTerminatesStart(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mockClient := mocks.NewClientAPI(t)
	mockClient.On("GetUpdates", mock.Anything, 0).Return(nil, nil)

	poller := telegram.NewPoller(mockClient, noopCommandService{}, logger)

	done := make(chan struct{})

	go func() {
		poller.Start()
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	poller.Stop()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("поллер не остановился после Stop")
	}
}
