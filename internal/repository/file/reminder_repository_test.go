package file_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/central-university-dev/go-reminder-bot/internal/domain/errors"
	"github.com/central-university-dev/go-reminder-bot/internal/domain/models"
	"github.com/central-university-dev/go-reminder-bot/internal/repository/file"
)

func newTestRepository(t *testing.T) (*file.ReminderRepository, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "reminders.json")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	repo, err := file.NewReminderRepository(path, logger)
	require.NoError(t, err)

	return repo, path
}

func newPendingReminder(chatID int64, text string, dueAt time.Time) *models.Reminder {
	return &models.Reminder{
		ChatID:    chatID,
		Text:      text,
		DueAt:     dueAt,
		CreatedAt: time.Now(),
		Status:    models.StatusPending,
	}
}

func TestReminderRepository_CreateAssignsSequentialIDs(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	ctx := context.Background()
	dueAt := time.Now().Add(time.Hour)

	first := newPendingReminder(123, "первое", dueAt)
	second := newPendingReminder(123, "второе", dueAt)

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}

func TestReminderRepository_PersistsAcrossInstances(t *testing.T) {
	t.Parallel()

	repo, path := newTestRepository(t)
	ctx := context.Background()

	reminder := newPendingReminder(123, "Купить молоко", time.Now().Add(time.Hour))
	require.NoError(t, repo.Create(ctx, reminder))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	reopened, err := file.NewReminderRepository(path, logger)
	require.NoError(t, err)

	found, err := reopened.FindByID(ctx, reminder.ID)
	require.NoError(t, err)
	assert.Equal(t, "Купить молоко", found.Text)
	assert.Equal(t, int64(123), found.ChatID)
}

func TestReminderRepository_MissingFileGivesEmptyStore(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	reminders, err := repo.FindByChat(context.Background(), 123)

	require.NoError(t, err)
	assert.Empty(t, reminders)
}

func TestReminderRepository_CorruptFileGivesEmptyStore(t *testing.T) {
	t.Parallel()

	repo, path := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(path, []byte("{не json"), 0o644))

	reminders, err := repo.FindByChat(ctx, 123)
	require.NoError(t, err)
	assert.Empty(t, reminders)

	// Первая мутация поверх повреждённого файла начинает нумерацию заново.
	reminder := newPendingReminder(123, "Купить молоко", time.Now().Add(time.Hour))
	require.NoError(t, repo.Create(ctx, reminder))
	assert.Equal(t, int64(1), reminder.ID)
}

func TestReminderRepository_IDsNotReusedAfterDelete(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	ctx := context.Background()
	dueAt := time.Now().Add(time.Hour)

	first := newPendingReminder(123, "первое", dueAt)
	require.NoError(t, repo.Create(ctx, first))

	_, err := repo.MarkDeleted(ctx, 123, first.ID, time.Now())
	require.NoError(t, err)

	second := newPendingReminder(123, "второе", dueAt)
	require.NoError(t, repo.Create(ctx, second))

	assert.Equal(t, int64(2), second.ID)
}

func TestReminderRepository_FindByChatReturnsOnlyPending(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	ctx := context.Background()
	dueAt := time.Now().Add(time.Hour)

	pending := newPendingReminder(123, "ожидающее", dueAt)
	deleted := newPendingReminder(123, "удалённое", dueAt)
	foreign := newPendingReminder(456, "чужое", dueAt)

	require.NoError(t, repo.Create(ctx, pending))
	require.NoError(t, repo.Create(ctx, deleted))
	require.NoError(t, repo.Create(ctx, foreign))

	_, err := repo.MarkDeleted(ctx, 123, deleted.ID, time.Now())
	require.NoError(t, err)

	reminders, err := repo.FindByChat(ctx, 123)

	require.NoError(t, err)
	require.Len(t, reminders, 1)
	assert.Equal(t, pending.ID, reminders[0].ID)
}

func TestReminderRepository_FindDue(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	ctx := context.Background()
	now := time.Now()

	overdue := newPendingReminder(123, "просроченное", now.Add(-time.Minute))
	exactly := newPendingReminder(123, "ровно сейчас", now)
	future := newPendingReminder(123, "будущее", now.Add(time.Hour))

	require.NoError(t, repo.Create(ctx, overdue))
	require.NoError(t, repo.Create(ctx, exactly))
	require.NoError(t, repo.Create(ctx, future))

	due, err := repo.FindDue(ctx, now)

	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, overdue.ID, due[0].ID)
	assert.Equal(t, exactly.ID, due[1].ID)
}

func TestReminderRepository_MarkDeleted_WrongChatLooksAbsent(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	ctx := context.Background()

	reminder := newPendingReminder(123, "Купить молоко", time.Now().Add(time.Hour))
	require.NoError(t, repo.Create(ctx, reminder))

	deleted, err := repo.MarkDeleted(ctx, 456, reminder.ID, time.Now())

	require.Error(t, err)
	assert.ErrorIs(t, err, &domainErrors.ErrReminderNotFound{})
	assert.Nil(t, deleted)

	// Напоминание осталось нетронутым.
	found, err := repo.FindByID(ctx, reminder.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, found.Status)
}

func TestReminderRepository_MarkDeleted_TerminalLooksAbsent(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	ctx := context.Background()

	reminder := newPendingReminder(123, "Купить молоко", time.Now().Add(-time.Minute))
	require.NoError(t, repo.Create(ctx, reminder))

	require.NoError(t, repo.ApplyDeliveryResults(ctx, []*models.DeliveryResult{
		{ReminderID: reminder.ID, Delivered: true, At: time.Now()},
	}))

	_, err := repo.MarkDeleted(ctx, 123, reminder.ID, time.Now())

	require.Error(t, err)
	assert.ErrorIs(t, err, &domainErrors.ErrReminderNotFound{})
}

func TestReminderRepository_ApplyDeliveryResults(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	ctx := context.Background()
	now := time.Now()

	delivered := newPendingReminder(123, "доставленное", now.Add(-time.Minute))
	retried := newPendingReminder(123, "повторяемое", now.Add(-time.Minute))
	exhausted := newPendingReminder(123, "исчерпанное", now.Add(-time.Minute))

	require.NoError(t, repo.Create(ctx, delivered))
	require.NoError(t, repo.Create(ctx, retried))
	require.NoError(t, repo.Create(ctx, exhausted))

	require.NoError(t, repo.ApplyDeliveryResults(ctx, []*models.DeliveryResult{
		{ReminderID: delivered.ID, Delivered: true, At: now},
		{ReminderID: retried.ID, At: now},
		{ReminderID: exhausted.ID, Exhausted: true, At: now},
	}))

	deliveredFound, err := repo.FindByID(ctx, delivered.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSent, deliveredFound.Status)
	require.NotNil(t, deliveredFound.SentAt)

	retriedFound, err := repo.FindByID(ctx, retried.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, retriedFound.Status)
	assert.Equal(t, 1, retriedFound.Attempts)

	exhaustedFound, err := repo.FindByID(ctx, exhausted.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFailed, exhaustedFound.Status)
	assert.Equal(t, 1, exhaustedFound.Attempts)
	require.NotNil(t, exhaustedFound.FailedAt)
}

func TestReminderRepository_ApplyDeliveryResults_SkipsTerminalAndUnknown(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	ctx := context.Background()
	now := time.Now()

	reminder := newPendingReminder(123, "Купить молоко", now.Add(-time.Minute))
	require.NoError(t, repo.Create(ctx, reminder))

	require.NoError(t, repo.ApplyDeliveryResults(ctx, []*models.DeliveryResult{
		{ReminderID: reminder.ID, Delivered: true, At: now},
	}))

	// Повторный исход по завершённому напоминанию и исход по неизвестному
	// идентификатору игнорируются.
	require.NoError(t, repo.ApplyDeliveryResults(ctx, []*models.DeliveryResult{
		{ReminderID: reminder.ID, Exhausted: true, At: now},
		{ReminderID: 999, Delivered: true, At: now},
	}))

	found, err := repo.FindByID(ctx, reminder.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSent, found.Status)
	assert.Equal(t, 0, found.Attempts)
}

func TestReminderRepository_ApplyDeliveryResults_EmptyResultsNoWrite(t *testing.T) {
	t.Parallel()

	repo, path := newTestRepository(t)

	require.NoError(t, repo.ApplyDeliveryResults(context.Background(), nil))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
