package notify

import (
	"context"
	"fmt"
	"html"
	"log/slog"

	customerrors "github.com/central-university-dev/go-reminder-bot/internal/domain/errors"
	"github.com/central-university-dev/go-reminder-bot/internal/domain/models"
	"github.com/central-university-dev/go-reminder-bot/internal/telegram"
)

type TelegramReminderNotifier struct {
	client telegram.ClientAPI
	logger *slog.Logger
}

func NewTelegramReminderNotifier(client telegram.ClientAPI, logger *slog.Logger) *TelegramReminderNotifier {
	return &TelegramReminderNotifier{
		client: client,
		logger: logger,
	}
}

func (n *TelegramReminderNotifier) SendReminder(ctx context.Context, reminder *models.Reminder) error {
	n.logger.Info("Отправка напоминания в Telegram",
		"reminderID", reminder.ID,
		"chatID", reminder.ChatID,
	)

	err := n.client.SendMessage(ctx, reminder.ChatID, RenderReminderMessage(reminder))
	if err != nil {
		return &customerrors.ErrDeliveryFailed{ReminderID: reminder.ID, Cause: err}
	}

	return nil
}

// HandleDelivery позволяет использовать нотификатор как обработчик событий
// доставки, прочитанных консьюмером Kafka.
func (n *TelegramReminderNotifier) HandleDelivery(ctx context.Context, reminder *models.Reminder) error {
	return n.SendReminder(ctx, reminder)
}

// RenderReminderMessage собирает HTML-текст уведомления. Если известен автор,
// к тексту добавляется упоминание через tg://user.
func RenderReminderMessage(reminder *models.Reminder) string {
	message := fmt.Sprintf("🔔 <b>Напоминание</b>\n\n%s", html.EscapeString(reminder.Text))

	if reminder.UserID != nil {
		message = fmt.Sprintf("%s\n\n<a href=\"tg://user?id=%d\">⏰ Вы просили напомнить</a>", message, *reminder.UserID)
	}

	return message
}
