package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/central-university-dev/go-reminder-bot/internal/common"
	domainErrors "github.com/central-university-dev/go-reminder-bot/internal/domain/errors"
	"github.com/central-university-dev/go-reminder-bot/internal/domain/models"
	repomocks "github.com/central-university-dev/go-reminder-bot/internal/domain/repositories/mocks"
	"github.com/central-university-dev/go-reminder-bot/internal/service"
	servicemocks "github.com/central-university-dev/go-reminder-bot/internal/service/mocks"
)

func newTestService(
	repo *repomocks.ReminderRepository,
	notifier *servicemocks.ReminderNotifier,
	dlq *servicemocks.DeadLetterSink,
	maxAttempts int,
) *service.ReminderService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return service.NewReminderService(
		repo,
		common.NewTimeExpressionParser(),
		notifier,
		dlq,
		5*time.Second,
		maxAttempts,
		logger,
	)
}

func TestReminderService_CreateReminder(t *testing.T) {
	t.Parallel()

	mockRepo := repomocks.NewReminderRepository(t)
	mockNotifier := servicemocks.NewReminderNotifier(t)
	mockDLQ := servicemocks.NewDeadLetterSink(t)

	reminderService := newTestService(mockRepo, mockNotifier, mockDLQ, 3)

	ctx := context.Background()
	chatID := int64(123)
	userID := int64(456)

	mockRepo.On("Create", ctx, mock.MatchedBy(func(reminder *models.Reminder) bool {
		return reminder.ChatID == chatID &&
			reminder.Text == "Купить молоко" &&
			reminder.How == "in 10m" &&
			reminder.Status == models.StatusPending
	})).Return(nil).Run(func(args mock.Arguments) {
		reminder := args.Get(1).(*models.Reminder)
		reminder.ID = 1
	})

	before := time.Now()

	reminder, err := reminderService.CreateReminder(ctx, chatID, &userID, "in 10m Купить молоко")

	require.NoError(t, err)
	assert.Equal(t, int64(1), reminder.ID)
	assert.Equal(t, "Купить молоко", reminder.Text)
	require.NotNil(t, reminder.UserID)
	assert.Equal(t, userID, *reminder.UserID)

	// Момент доставки лежит в окне [before+10m, now+10m].
	assert.False(t, reminder.DueAt.Before(before.Add(10*time.Minute)))
	assert.False(t, reminder.DueAt.After(time.Now().Add(10*time.Minute)))
}

func TestReminderService_CreateReminder_NoTimeExpression(t *testing.T) {
	t.Parallel()

	mockRepo := repomocks.NewReminderRepository(t)
	mockNotifier := servicemocks.NewReminderNotifier(t)
	mockDLQ := servicemocks.NewDeadLetterSink(t)

	reminderService := newTestService(mockRepo, mockNotifier, mockDLQ, 3)

	reminder, err := reminderService.CreateReminder(context.Background(), 123, nil, "через час позвонить")

	require.Error(t, err)
	assert.ErrorIs(t, err, &domainErrors.ErrNoTimeExpression{})
	assert.Nil(t, reminder)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestReminderService_CreateReminder_EmptyText(t *testing.T) {
	t.Parallel()

	mockRepo := repomocks.NewReminderRepository(t)
	mockNotifier := servicemocks.NewReminderNotifier(t)
	mockDLQ := servicemocks.NewDeadLetterSink(t)

	reminderService := newTestService(mockRepo, mockNotifier, mockDLQ, 3)

	reminder, err := reminderService.CreateReminder(context.Background(), 123, nil, "in 10m ")

	require.Error(t, err)
	assert.ErrorIs(t, err, &domainErrors.ErrEmptyReminderText{})
	assert.Nil(t, reminder)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestReminderService_CreateReminder_PastDue(t *testing.T) {
	t.Parallel()

	mockRepo := repomocks.NewReminderRepository(t)
	mockNotifier := servicemocks.NewReminderNotifier(t)
	mockDLQ := servicemocks.NewDeadLetterSink(t)

	reminderService := newTestService(mockRepo, mockNotifier, mockDLQ, 3)

	reminder, err := reminderService.CreateReminder(context.Background(), 123, nil, "at 2020-01-01 9:30 Встреча")

	require.Error(t, err)
	assert.ErrorIs(t, err, &domainErrors.ErrPastDue{})
	assert.Nil(t, reminder)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestReminderService_ListReminders_SortedByDueAt(t *testing.T) {
	t.Parallel()

	mockRepo := repomocks.NewReminderRepository(t)
	mockNotifier := servicemocks.NewReminderNotifier(t)
	mockDLQ := servicemocks.NewDeadLetterSink(t)

	reminderService := newTestService(mockRepo, mockNotifier, mockDLQ, 3)

	ctx := context.Background()
	now := time.Now()

	mockRepo.On("FindByChat", ctx, int64(123)).Return([]*models.Reminder{
		{ID: 2, ChatID: 123, Text: "поздний", DueAt: now.Add(2 * time.Hour)},
		{ID: 1, ChatID: 123, Text: "ранний", DueAt: now.Add(time.Hour)},
	}, nil)

	reminders, err := reminderService.ListReminders(ctx, 123)

	require.NoError(t, err)
	require.Len(t, reminders, 2)
	assert.Equal(t, int64(1), reminders[0].ID)
	assert.Equal(t, int64(2), reminders[1].ID)
}

func TestReminderService_DeleteReminder(t *testing.T) {
	t.Parallel()

	mockRepo := repomocks.NewReminderRepository(t)
	mockNotifier := servicemocks.NewReminderNotifier(t)
	mockDLQ := servicemocks.NewDeadLetterSink(t)

	reminderService := newTestService(mockRepo, mockNotifier, mockDLQ, 3)

	ctx := context.Background()
	deleted := &models.Reminder{ID: 7, ChatID: 123, Text: "Купить молоко", Status: models.StatusDeleted}

	mockRepo.On("MarkDeleted", ctx, int64(123), int64(7), mock.AnythingOfType("time.Time")).
		Return(deleted, nil)

	reminder, err := reminderService.DeleteReminder(ctx, 123, 7)

	require.NoError(t, err)
	assert.Equal(t, deleted, reminder)
}

func TestReminderService_DeleteReminder_NotFound(t *testing.T) {
	t.Parallel()

	mockRepo := repomocks.NewReminderRepository(t)
	mockNotifier := servicemocks.NewReminderNotifier(t)
	mockDLQ := servicemocks.NewDeadLetterSink(t)

	reminderService := newTestService(mockRepo, mockNotifier, mockDLQ, 3)

	ctx := context.Background()
	notFound := &domainErrors.ErrReminderNotFound{ID: 7, ChatID: 123}

	mockRepo.On("MarkDeleted", ctx, int64(123), int64(7), mock.AnythingOfType("time.Time")).
		Return(nil, notFound)

	reminder, err := reminderService.DeleteReminder(ctx, 123, 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, &domainErrors.ErrReminderNotFound{})
	assert.Nil(t, reminder)
}

func TestReminderService_CheckDue_NoDueReminders(t *testing.T) {
	t.Parallel()

	mockRepo := repomocks.NewReminderRepository(t)
	mockNotifier := servicemocks.NewReminderNotifier(t)
	mockDLQ := servicemocks.NewDeadLetterSink(t)

	reminderService := newTestService(mockRepo, mockNotifier, mockDLQ, 3)

	mockRepo.On("FindDue", mock.Anything, mock.AnythingOfType("time.Time")).
		Return([]*models.Reminder{}, nil)

	err := reminderService.CheckDue(context.Background())

	require.NoError(t, err)
	mockRepo.AssertNotCalled(t, "ApplyDeliveryResults")
	mockNotifier.AssertNotCalled(t, "SendReminder")
}

func TestReminderService_CheckDue_DeliversAndPersistsOnce(t *testing.T) {
	t.Parallel()

	mockRepo := repomocks.NewReminderRepository(t)
	mockNotifier := servicemocks.NewReminderNotifier(t)
	mockDLQ := servicemocks.NewDeadLetterSink(t)

	reminderService := newTestService(mockRepo, mockNotifier, mockDLQ, 3)

	now := time.Now()
	due := []*models.Reminder{
		{ID: 1, ChatID: 123, Text: "первое", DueAt: now.Add(-time.Minute), Status: models.StatusPending},
		{ID: 2, ChatID: 456, Text: "второе", DueAt: now.Add(-time.Second), Status: models.StatusPending},
	}

	mockRepo.On("FindDue", mock.Anything, mock.AnythingOfType("time.Time")).Return(due, nil)
	mockNotifier.On("SendReminder", mock.Anything, due[0]).Return(nil)
	mockNotifier.On("SendReminder", mock.Anything, due[1]).Return(nil)

	mockRepo.On("ApplyDeliveryResults", mock.Anything, mock.MatchedBy(func(results []*models.DeliveryResult) bool {
		return len(results) == 2 &&
			results[0].ReminderID == 1 && results[0].Delivered &&
			results[1].ReminderID == 2 && results[1].Delivered
	})).Return(nil).Once()

	err := reminderService.CheckDue(context.Background())

	require.NoError(t, err)
}

func TestReminderService_CheckDue_FailureLeavesReminderPending(t *testing.T) {
	t.Parallel()

	mockRepo := repomocks.NewReminderRepository(t)
	mockNotifier := servicemocks.NewReminderNotifier(t)
	mockDLQ := servicemocks.NewDeadLetterSink(t)

	reminderService := newTestService(mockRepo, mockNotifier, mockDLQ, 3)

	now := time.Now()
	due := []*models.Reminder{
		{ID: 1, ChatID: 123, Text: "первое", DueAt: now.Add(-time.Minute), Status: models.StatusPending, Attempts: 0},
	}

	sendErr := errors.New("telegram недоступен")

	mockRepo.On("FindDue", mock.Anything, mock.AnythingOfType("time.Time")).Return(due, nil)
	mockNotifier.On("SendReminder", mock.Anything, due[0]).Return(sendErr)

	mockRepo.On("ApplyDeliveryResults", mock.Anything, mock.MatchedBy(func(results []*models.DeliveryResult) bool {
		return len(results) == 1 &&
			results[0].ReminderID == 1 &&
			!results[0].Delivered &&
			!results[0].Exhausted
	})).Return(nil).Once()

	err := reminderService.CheckDue(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, sendErr)

	var deliveryErr *domainErrors.ErrDeliveryFailed

	require.ErrorAs(t, err, &deliveryErr)
	assert.Equal(t, int64(1), deliveryErr.ReminderID)
	mockDLQ.AssertNotCalled(t, "SendToDLQ")
}

func TestReminderService_CheckDue_ExhaustedGoesToDeadLetter(t *testing.T) {
	t.Parallel()

	mockRepo := repomocks.NewReminderRepository(t)
	mockNotifier := servicemocks.NewReminderNotifier(t)
	mockDLQ := servicemocks.NewDeadLetterSink(t)

	reminderService := newTestService(mockRepo, mockNotifier, mockDLQ, 3)

	now := time.Now()
	due := []*models.Reminder{
		{ID: 1, ChatID: 123, Text: "первое", DueAt: now.Add(-time.Minute), Status: models.StatusPending, Attempts: 2},
	}

	sendErr := errors.New("telegram недоступен")

	mockRepo.On("FindDue", mock.Anything, mock.AnythingOfType("time.Time")).Return(due, nil)
	mockNotifier.On("SendReminder", mock.Anything, due[0]).Return(sendErr)
	mockDLQ.On("SendToDLQ", mock.Anything, mock.Anything, sendErr.Error()).Return(nil).Once()

	mockRepo.On("ApplyDeliveryResults", mock.Anything, mock.MatchedBy(func(results []*models.DeliveryResult) bool {
		return len(results) == 1 &&
			results[0].ReminderID == 1 &&
			!results[0].Delivered &&
			results[0].Exhausted
	})).Return(nil).Once()

	err := reminderService.CheckDue(context.Background())

	require.Error(t, err)
}

func TestReminderService_CheckDue_UnlimitedAttemptsNeverExhaust(t *testing.T) {
	t.Parallel()

	mockRepo := repomocks.NewReminderRepository(t)
	mockNotifier := servicemocks.NewReminderNotifier(t)
	mockDLQ := servicemocks.NewDeadLetterSink(t)

	reminderService := newTestService(mockRepo, mockNotifier, mockDLQ, 0)

	now := time.Now()
	due := []*models.Reminder{
		{ID: 1, ChatID: 123, Text: "первое", DueAt: now.Add(-time.Minute), Status: models.StatusPending, Attempts: 99},
	}

	mockRepo.On("FindDue", mock.Anything, mock.AnythingOfType("time.Time")).Return(due, nil)
	mockNotifier.On("SendReminder", mock.Anything, due[0]).Return(errors.New("telegram недоступен"))

	mockRepo.On("ApplyDeliveryResults", mock.Anything, mock.MatchedBy(func(results []*models.DeliveryResult) bool {
		return len(results) == 1 && !results[0].Exhausted
	})).Return(nil).Once()

	err := reminderService.CheckDue(context.Background())

	require.Error(t, err)
	mockDLQ.AssertNotCalled(t, "SendToDLQ")
}

func TestReminderService_CheckDue_CancelledContextSkipsRemaining(t *testing.T) {
	t.Parallel()

	mockRepo := repomocks.NewReminderRepository(t)
	mockNotifier := servicemocks.NewReminderNotifier(t)
	mockDLQ := servicemocks.NewDeadLetterSink(t)

	reminderService := newTestService(mockRepo, mockNotifier, mockDLQ, 3)

	now := time.Now()
	due := []*models.Reminder{
		{ID: 1, ChatID: 123, Text: "первое", DueAt: now.Add(-time.Minute), Status: models.StatusPending},
		{ID: 2, ChatID: 456, Text: "второе", DueAt: now.Add(-time.Second), Status: models.StatusPending},
	}

	ctx, cancel := context.WithCancel(context.Background())

	mockRepo.On("FindDue", mock.Anything, mock.AnythingOfType("time.Time")).Return(due, nil)

	// Первая доставка успевает, после неё контекст отменяется.
	mockNotifier.On("SendReminder", mock.Anything, due[0]).Return(nil).Run(func(mock.Arguments) {
		cancel()
	})

	mockRepo.On("ApplyDeliveryResults", mock.Anything, mock.MatchedBy(func(results []*models.DeliveryResult) bool {
		return len(results) == 1 && results[0].ReminderID == 1 && results[0].Delivered
	})).Return(nil).Once()

	err := reminderService.CheckDue(ctx)

	require.NoError(t, err)
	mockNotifier.AssertNotCalled(t, "SendReminder", mock.Anything, due[1])
}
