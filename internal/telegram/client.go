package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

type Client struct {
	bot     *tgbotapi.BotAPI
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewClient создаёт клиент Telegram Bot API. Отправка сообщений ограничена
// лимитером, чтобы не превышать квоты Telegram на рассылку.
func NewClient(token, apiURL string, httpClient *http.Client, sendRate, sendBurst int, logger *slog.Logger) (*Client, error) {
	if apiURL == "" {
		apiURL = tgbotapi.APIEndpoint
	}

	bot, err := tgbotapi.NewBotAPIWithClient(token, apiURL, httpClient)
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании Telegram клиента: %w", err)
	}

	logger.Info("Telegram клиент создан",
		"username", bot.Self.UserName,
	)

	return &Client{
		bot:     bot,
		limiter: rate.NewLimiter(rate.Limit(sendRate), sendBurst),
		logger:  logger,
	}, nil
}

func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("ожидание лимитера отправки прервано: %w", err)
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML

	_, err := c.bot.Send(msg)
	if err != nil {
		return fmt.Errorf("ошибка при отправке сообщения: %w", err)
	}

	return nil
}

func (c *Client) GetUpdates(_ context.Context, offset int) ([]Update, error) {
	updateConfig := tgbotapi.NewUpdate(offset)
	updateConfig.Timeout = 30

	updates, err := c.bot.GetUpdates(updateConfig)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении обновлений: %w", err)
	}

	result := make([]Update, 0, len(updates))

	for _, update := range updates {
		var message *Message
		if update.Message != nil {
			message = &Message{
				MessageID: int64(update.Message.MessageID),
				Text:      update.Message.Text,
				Chat: Chat{
					ID: update.Message.Chat.ID,
				},
			}

			if update.Message.From != nil {
				message.From = User{
					ID:        update.Message.From.ID,
					Username:  update.Message.From.UserName,
					FirstName: update.Message.From.FirstName,
					LastName:  update.Message.From.LastName,
				}
			}
		}

		result = append(result, Update{
			UpdateID: int64(update.UpdateID),
			Message:  message,
		})
	}

	return result, nil
}

func (c *Client) SetMyCommands(_ context.Context, commands []BotCommand) error {
	botAPICommands := make([]tgbotapi.BotCommand, 0, len(commands))
	for _, cmd := range commands {
		botAPICommands = append(botAPICommands, tgbotapi.BotCommand{
			Command:     cmd.Command,
			Description: cmd.Description,
		})
	}

	setCommandsConfig := tgbotapi.NewSetMyCommands(botAPICommands...)

	_, err := c.bot.Request(setCommandsConfig)
	if err != nil {
		return fmt.Errorf("ошибка при установке команд бота: %w", err)
	}

	return nil
}

func (c *Client) GetBot() *tgbotapi.BotAPI {
	return c.bot
}
