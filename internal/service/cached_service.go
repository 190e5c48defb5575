package service

import (
	"context"
	"log/slog"

	"github.com/central-university-dev/go-reminder-bot/internal/cache"
	"github.com/central-university-dev/go-reminder-bot/internal/domain/models"
)

// CachedReminderService кэширует списки ожидающих напоминаний в Redis.
// Любая операция, меняющая список чата, сбрасывает его кэш.
type CachedReminderService struct {
	inner         ReminderServiceAPI
	reminderCache cache.ReminderCache
	logger        *slog.Logger
}

func NewCachedReminderService(inner ReminderServiceAPI, reminderCache cache.ReminderCache, logger *slog.Logger) *CachedReminderService {
	return &CachedReminderService{
		inner:         inner,
		reminderCache: reminderCache,
		logger:        logger,
	}
}

func (s *CachedReminderService) CreateReminder(ctx context.Context, chatID int64, userID *int64, raw string) (*models.Reminder, error) {
	reminder, err := s.inner.CreateReminder(ctx, chatID, userID, raw)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, chatID)

	return reminder, nil
}

func (s *CachedReminderService) ListReminders(ctx context.Context, chatID int64) ([]*models.Reminder, error) {
	cached, err := s.reminderCache.GetPending(ctx, chatID)
	if err == nil && cached != nil {
		s.logger.Debug("Напоминания получены из кэша",
			"chatID", chatID,
			"count", len(cached),
		)

		return cached, nil
	}

	reminders, err := s.inner.ListReminders(ctx, chatID)
	if err != nil {
		return nil, err
	}

	if err := s.reminderCache.SetPending(ctx, chatID, reminders); err != nil {
		s.logger.Error("Ошибка при кэшировании напоминаний",
			"error", err,
			"chatID", chatID,
		)
	}

	return reminders, nil
}

func (s *CachedReminderService) DeleteReminder(ctx context.Context, chatID, id int64) (*models.Reminder, error) {
	reminder, err := s.inner.DeleteReminder(ctx, chatID, id)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, chatID)

	return reminder, nil
}

// InvalidateChats сбрасывает кэш чатов, задетых доставкой на тике планировщика.
func (s *CachedReminderService) InvalidateChats(ctx context.Context, chatIDs []int64) {
	for _, chatID := range chatIDs {
		s.invalidate(ctx, chatID)
	}
}

func (s *CachedReminderService) invalidate(ctx context.Context, chatID int64) {
	if err := s.reminderCache.DeletePending(ctx, chatID); err != nil {
		s.logger.Error("Ошибка при инвалидации кэша",
			"error", err,
			"chatID", chatID,
		)
	}
}
