package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/central-university-dev/go-reminder-bot/internal/domain/errors"
	"github.com/central-university-dev/go-reminder-bot/internal/domain/models"
	"github.com/central-university-dev/go-reminder-bot/internal/repository/memory"
)

func newPendingReminder(chatID int64, text string, dueAt time.Time) *models.Reminder {
	return &models.Reminder{
		ChatID:    chatID,
		Text:      text,
		DueAt:     dueAt,
		CreatedAt: time.Now(),
		Status:    models.StatusPending,
	}
}

func TestReminderRepository_CreateAndFind(t *testing.T) {
	t.Parallel()

	repo := memory.NewReminderRepository()
	ctx := context.Background()

	reminder := newPendingReminder(123, "Купить молоко", time.Now().Add(time.Hour))
	require.NoError(t, repo.Create(ctx, reminder))
	assert.Equal(t, int64(1), reminder.ID)

	found, err := repo.FindByID(ctx, reminder.ID)
	require.NoError(t, err)
	assert.Equal(t, "Купить молоко", found.Text)

	_, err = repo.FindByID(ctx, 999)
	require.Error(t, err)
	assert.ErrorIs(t, err, &domainErrors.ErrReminderNotFound{})
}

func TestReminderRepository_FindDueExcludesTerminal(t *testing.T) {
	t.Parallel()

	repo := memory.NewReminderRepository()
	ctx := context.Background()
	now := time.Now()

	overdue := newPendingReminder(123, "просроченное", now.Add(-time.Minute))
	sent := newPendingReminder(123, "отправленное", now.Add(-time.Minute))

	require.NoError(t, repo.Create(ctx, overdue))
	require.NoError(t, repo.Create(ctx, sent))

	require.NoError(t, repo.ApplyDeliveryResults(ctx, []*models.DeliveryResult{
		{ReminderID: sent.ID, Delivered: true, At: now},
	}))

	due, err := repo.FindDue(ctx, now)

	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, overdue.ID, due[0].ID)
}

func TestReminderRepository_RetryIncrementsAttempts(t *testing.T) {
	t.Parallel()

	repo := memory.NewReminderRepository()
	ctx := context.Background()
	now := time.Now()

	reminder := newPendingReminder(123, "Купить молоко", now.Add(-time.Minute))
	require.NoError(t, repo.Create(ctx, reminder))

	require.NoError(t, repo.ApplyDeliveryResults(ctx, []*models.DeliveryResult{
		{ReminderID: reminder.ID, At: now},
	}))
	require.NoError(t, repo.ApplyDeliveryResults(ctx, []*models.DeliveryResult{
		{ReminderID: reminder.ID, At: now},
	}))

	found, err := repo.FindByID(ctx, reminder.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, found.Status)
	assert.Equal(t, 2, found.Attempts)
}

func TestReminderRepository_MarkDeleted(t *testing.T) {
	t.Parallel()

	repo := memory.NewReminderRepository()
	ctx := context.Background()

	reminder := newPendingReminder(123, "Купить молоко", time.Now().Add(time.Hour))
	require.NoError(t, repo.Create(ctx, reminder))

	deleted, err := repo.MarkDeleted(ctx, 123, reminder.ID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, models.StatusDeleted, deleted.Status)
	require.NotNil(t, deleted.DeletedAt)

	// Повторное удаление выглядит как отсутствие.
	_, err = repo.MarkDeleted(ctx, 123, reminder.ID, time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, &domainErrors.ErrReminderNotFound{})
}
