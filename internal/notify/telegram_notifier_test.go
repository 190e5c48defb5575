package notify_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/central-university-dev/go-reminder-bot/internal/domain/errors"
	"github.com/central-university-dev/go-reminder-bot/internal/domain/models"
	"github.com/central-university-dev/go-reminder-bot/internal/notify"
	telegrammocks "github.com/central-university-dev/go-reminder-bot/internal/telegram/mocks"
)

func TestTelegramReminderNotifier_SendReminder(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	clientMock := telegrammocks.NewClientAPI(t)
	notifier := notify.NewTelegramReminderNotifier(clientMock, logger)

	reminder := testReminder()

	clientMock.On("SendMessage", mock.Anything, reminder.ChatID, notify.RenderReminderMessage(reminder)).
		Return(nil)

	err := notifier.SendReminder(context.Background(), reminder)

	require.NoError(t, err)
}

func TestTelegramReminderNotifier_SendReminder_WrapsClientError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	clientMock := telegrammocks.NewClientAPI(t)
	notifier := notify.NewTelegramReminderNotifier(clientMock, logger)

	reminder := testReminder()
	clientErr := errors.New("telegram API недоступен")

	clientMock.On("SendMessage", mock.Anything, reminder.ChatID, mock.Anything).
		Return(clientErr)

	err := notifier.SendReminder(context.Background(), reminder)

	require.Error(t, err)
	assert.ErrorIs(t, err, clientErr)

	var deliveryErr *domainErrors.ErrDeliveryFailed

	require.ErrorAs(t, err, &deliveryErr)
	assert.Equal(t, reminder.ID, deliveryErr.ReminderID)
}

func TestRenderReminderMessage_EscapesHTML(t *testing.T) {
	reminder := &models.Reminder{
		ID:     1,
		ChatID: 123,
		Text:   "5 < 6 && <b>не жирный</b>",
	}

	message := notify.RenderReminderMessage(reminder)

	assert.Contains(t, message, "<b>Напоминание</b>")
	assert.Contains(t, message, "5 &lt; 6 &amp;&amp; &lt;b&gt;не жирный&lt;/b&gt;")
	assert.NotContains(t, message, "<b>не жирный</b>")
}

func TestRenderReminderMessage_MentionsAuthor(t *testing.T) {
	userID := int64(456)
	reminder := &models.Reminder{
		ID:     1,
		ChatID: 123,
		UserID: &userID,
		Text:   "Купить молоко",
	}

	message := notify.RenderReminderMessage(reminder)

	assert.Contains(t, message, `<a href="tg://user?id=456">`)
}

func TestRenderReminderMessage_NoMentionWithoutAuthor(t *testing.T) {
	reminder := &models.Reminder{
		ID:     1,
		ChatID: 123,
		Text:   "Купить молоко",
	}

	message := notify.RenderReminderMessage(reminder)

	assert.NotContains(t, message, "tg://user")
}
