package notify

import (
	"context"
	"log/slog"

	"github.com/central-university-dev/go-reminder-bot/internal/domain/models"
)

type FallbackReminderNotifier struct {
	primary   ReminderNotifier
	secondary ReminderNotifier
	logger    *slog.Logger
}

func NewFallbackReminderNotifier(primary, secondary ReminderNotifier, logger *slog.Logger) *FallbackReminderNotifier {
	return &FallbackReminderNotifier{
		primary:   primary,
		secondary: secondary,
		logger:    logger,
	}
}

func (n *FallbackReminderNotifier) SendReminder(ctx context.Context, reminder *models.Reminder) error {
	err := n.primary.SendReminder(ctx, reminder)
	if err == nil {
		return nil
	}

	n.logger.Warn("Основной транспорт недоступен, переключаемся на резервный",
		"primaryError", err,
		"reminderID", reminder.ID,
	)

	fallbackErr := n.secondary.SendReminder(ctx, reminder)
	if fallbackErr != nil {
		return err
	}

	n.logger.Info("Напоминание успешно отправлено через резервный транспорт",
		"reminderID", reminder.ID,
	)

	return nil
}
