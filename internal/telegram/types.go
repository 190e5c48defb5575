package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Chat struct {
	ID int64
}

type User struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
}

type Message struct {
	MessageID int64
	Text      string
	Chat      Chat
	From      User
}

type Update struct {
	UpdateID int64
	Message  *Message
}

type BotCommand struct {
	Command     string
	Description string
}

type ClientAPI interface {
	SendMessage(ctx context.Context, chatID int64, text string) error

	GetUpdates(ctx context.Context, offset int) ([]Update, error)

	SetMyCommands(ctx context.Context, commands []BotCommand) error

	GetBot() *tgbotapi.BotAPI
}
