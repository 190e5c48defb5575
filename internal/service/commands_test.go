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

	domainErrors "github.com/central-university-dev/go-reminder-bot/internal/domain/errors"
	"github.com/central-university-dev/go-reminder-bot/internal/domain/models"
	"github.com/central-university-dev/go-reminder-bot/internal/service"
	servicemocks "github.com/central-university-dev/go-reminder-bot/internal/service/mocks"
)

func newCommandService(reminders service.ReminderServiceAPI) *service.CommandService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewCommandService(reminders, logger)
}

func TestCommandService_Start(t *testing.T) {
	t.Parallel()

	mockAPI := servicemocks.NewReminderServiceAPI(t)
	commandService := newCommandService(mockAPI)

	reply, err := commandService.ProcessCommand(context.Background(), &models.Command{
		Type:     models.CommandStart,
		ChatID:   123,
		Username: "ivan",
	})

	require.NoError(t, err)
	assert.Contains(t, reply, "ivan")
	assert.Contains(t, reply, "/help")
}

func TestCommandService_Help(t *testing.T) {
	t.Parallel()

	mockAPI := servicemocks.NewReminderServiceAPI(t)
	commandService := newCommandService(mockAPI)

	reply, err := commandService.ProcessCommand(context.Background(), &models.Command{
		Type:   models.CommandHelp,
		ChatID: 123,
	})

	require.NoError(t, err)
	assert.Contains(t, reply, "/remind")
	assert.Contains(t, reply, "/list")
	assert.Contains(t, reply, "/delete")
}

func TestCommandService_UnknownCommand(t *testing.T) {
	t.Parallel()

	mockAPI := servicemocks.NewReminderServiceAPI(t)
	commandService := newCommandService(mockAPI)

	reply, err := commandService.ProcessCommand(context.Background(), &models.Command{
		Type:   models.CommandUnknown,
		ChatID: 123,
	})

	require.NoError(t, err)
	assert.Contains(t, reply, "Неизвестная команда")
}

func TestCommandService_Remind(t *testing.T) {
	t.Parallel()

	mockAPI := servicemocks.NewReminderServiceAPI(t)
	commandService := newCommandService(mockAPI)

	ctx := context.Background()
	userID := int64(456)
	dueAt := time.Date(2026, 9, 1, 9, 30, 0, 0, time.Local)

	mockAPI.On("CreateReminder", ctx, int64(123), &userID, "in 10m Купить молоко").
		Return(&models.Reminder{
			ID:    7,
			Text:  "Купить молоко",
			DueAt: dueAt,
		}, nil)

	reply, err := commandService.ProcessCommand(ctx, &models.Command{
		Type:   models.CommandRemind,
		ChatID: 123,
		UserID: userID,
		Args:   "in 10m Купить молоко",
	})

	require.NoError(t, err)
	assert.Contains(t, reply, "#7")
	assert.Contains(t, reply, "Купить молоко")
}

func TestCommandService_Remind_WithoutSender(t *testing.T) {
	t.Parallel()

	mockAPI := servicemocks.NewReminderServiceAPI(t)
	commandService := newCommandService(mockAPI)

	ctx := context.Background()

	// Сообщение без отправителя: автор не передаётся вовсе,
	// а не как нулевой идентификатор.
	mockAPI.On("CreateReminder", ctx, int64(123), (*int64)(nil), "in 10m Купить молоко").
		Return(&models.Reminder{
			ID:    8,
			Text:  "Купить молоко",
			DueAt: time.Date(2026, 9, 1, 9, 30, 0, 0, time.Local),
		}, nil)

	reply, err := commandService.ProcessCommand(ctx, &models.Command{
		Type:   models.CommandRemind,
		ChatID: 123,
		Args:   "in 10m Купить молоко",
	})

	require.NoError(t, err)
	assert.Contains(t, reply, "#8")
}

func TestCommandService_Remind_NoTimeExpression(t *testing.T) {
	t.Parallel()

	mockAPI := servicemocks.NewReminderServiceAPI(t)
	commandService := newCommandService(mockAPI)

	mockAPI.On("CreateReminder", mock.Anything, int64(123), mock.Anything, "позвонить маме").
		Return(nil, &domainErrors.ErrNoTimeExpression{Raw: "позвонить маме"})

	reply, err := commandService.ProcessCommand(context.Background(), &models.Command{
		Type:   models.CommandRemind,
		ChatID: 123,
		Args:   "позвонить маме",
	})

	require.NoError(t, err)
	assert.Contains(t, reply, "in N[s|m|h|d]")
	assert.Contains(t, reply, "tomorrow")
}

func TestCommandService_Remind_EmptyText(t *testing.T) {
	t.Parallel()

	mockAPI := servicemocks.NewReminderServiceAPI(t)
	commandService := newCommandService(mockAPI)

	mockAPI.On("CreateReminder", mock.Anything, int64(123), mock.Anything, "in 10m ").
		Return(nil, &domainErrors.ErrEmptyReminderText{})

	reply, err := commandService.ProcessCommand(context.Background(), &models.Command{
		Type:   models.CommandRemind,
		ChatID: 123,
		Args:   "in 10m ",
	})

	require.NoError(t, err)
	assert.Contains(t, reply, "не может быть пустым")
}

func TestCommandService_Remind_PastDue(t *testing.T) {
	t.Parallel()

	mockAPI := servicemocks.NewReminderServiceAPI(t)
	commandService := newCommandService(mockAPI)

	mockAPI.On("CreateReminder", mock.Anything, int64(123), mock.Anything, "at 2020-01-01 9:30 Встреча").
		Return(nil, &domainErrors.ErrPastDue{DueAt: "2020-01-01T09:30:00Z"})

	reply, err := commandService.ProcessCommand(context.Background(), &models.Command{
		Type:   models.CommandRemind,
		ChatID: 123,
		Args:   "at 2020-01-01 9:30 Встреча",
	})

	require.NoError(t, err)
	assert.Contains(t, reply, "уже прошло")
}

func TestCommandService_Remind_InfrastructureError(t *testing.T) {
	t.Parallel()

	mockAPI := servicemocks.NewReminderServiceAPI(t)
	commandService := newCommandService(mockAPI)

	storeErr := &domainErrors.ErrStorePersist{Cause: errors.New("диск переполнен")}

	mockAPI.On("CreateReminder", mock.Anything, int64(123), mock.Anything, "in 10m Купить молоко").
		Return(nil, storeErr)

	reply, err := commandService.ProcessCommand(context.Background(), &models.Command{
		Type:   models.CommandRemind,
		ChatID: 123,
		Args:   "in 10m Купить молоко",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.Empty(t, reply)
}

func TestCommandService_List(t *testing.T) {
	t.Parallel()

	mockAPI := servicemocks.NewReminderServiceAPI(t)
	commandService := newCommandService(mockAPI)

	ctx := context.Background()

	mockAPI.On("ListReminders", ctx, int64(123)).Return([]*models.Reminder{
		{ID: 1, Text: "ранний", DueAt: time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local), How: "in 10m"},
		{ID: 2, Text: "поздний", DueAt: time.Date(2026, 9, 2, 9, 0, 0, 0, time.Local)},
	}, nil)

	reply, err := commandService.ProcessCommand(ctx, &models.Command{
		Type:   models.CommandList,
		ChatID: 123,
	})

	require.NoError(t, err)
	assert.Contains(t, reply, "1. #1 — 01.09.2026 09:00 — ранний")
	assert.Contains(t, reply, "Задано: in 10m")
	assert.Contains(t, reply, "2. #2 — 02.09.2026 09:00 — поздний")
}

func TestCommandService_List_Empty(t *testing.T) {
	t.Parallel()

	mockAPI := servicemocks.NewReminderServiceAPI(t)
	commandService := newCommandService(mockAPI)

	mockAPI.On("ListReminders", mock.Anything, int64(123)).Return([]*models.Reminder{}, nil)

	reply, err := commandService.ProcessCommand(context.Background(), &models.Command{
		Type:   models.CommandList,
		ChatID: 123,
	})

	require.NoError(t, err)
	assert.Equal(t, "У вас нет ожидающих напоминаний.", reply)
}

func TestCommandService_Delete(t *testing.T) {
	t.Parallel()

	mockAPI := servicemocks.NewReminderServiceAPI(t)
	commandService := newCommandService(mockAPI)

	ctx := context.Background()

	mockAPI.On("DeleteReminder", ctx, int64(123), int64(7)).
		Return(&models.Reminder{ID: 7, Text: "Купить молоко"}, nil)

	reply, err := commandService.ProcessCommand(ctx, &models.Command{
		Type:   models.CommandDelete,
		ChatID: 123,
		Args:   " 7 ",
	})

	require.NoError(t, err)
	assert.Contains(t, reply, "#7 удалено")
}

func TestCommandService_Delete_InvalidArgument(t *testing.T) {
	t.Parallel()

	mockAPI := servicemocks.NewReminderServiceAPI(t)
	commandService := newCommandService(mockAPI)

	reply, err := commandService.ProcessCommand(context.Background(), &models.Command{
		Type:   models.CommandDelete,
		ChatID: 123,
		Args:   "abc",
	})

	require.NoError(t, err)
	assert.Contains(t, reply, "Укажите номер напоминания")
	mockAPI.AssertNotCalled(t, "DeleteReminder")
}

func TestCommandService_Delete_NotFound(t *testing.T) {
	t.Parallel()

	mockAPI := servicemocks.NewReminderServiceAPI(t)
	commandService := newCommandService(mockAPI)

	mockAPI.On("DeleteReminder", mock.Anything, int64(123), int64(7)).
		Return(nil, &domainErrors.ErrReminderNotFound{ID: 7, ChatID: 123})

	reply, err := commandService.ProcessCommand(context.Background(), &models.Command{
		Type:   models.CommandDelete,
		ChatID: 123,
		Args:   "7",
	})

	require.NoError(t, err)
	assert.Contains(t, reply, "#7 не найдено")
}
