package telegram

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/central-university-dev/go-reminder-bot/internal/domain/models"
)

type CommandService interface {
	ProcessCommand(ctx context.Context, command *models.Command) (string, error)
}

type Poller struct {
	client         ClientAPI
	commandService CommandService
	logger         *slog.Logger
	offset         int
	stopChan       chan struct{}
}

func NewPoller(client ClientAPI, commandService CommandService, logger *slog.Logger) *Poller {
	return &Poller{
		client:         client,
		commandService: commandService,
		logger:         logger,
		offset:         0,
		stopChan:       make(chan struct{}),
	}
}

func (p *Poller) Start() {
	p.logger.Info("Запуск Telegram поллера")

	for {
		select {
		case <-p.stopChan:
			p.logger.Info("Получен сигнал остановки поллера")
			return
		default:
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		updates, err := p.client.GetUpdates(ctx, p.offset)

		cancel()

		if err != nil {
			p.logger.Error("Ошибка при получении обновлений", "error", err)

			if !p.sleep(5 * time.Second) {
				return
			}

			continue
		}

		for _, update := range updates {
			p.processUpdate(update)
			p.offset = int(update.UpdateID) + 1
		}

		if !p.sleep(1 * time.Second) {
			return
		}
	}
}

func (p *Poller) Stop() {
	p.logger.Info("Остановка Telegram поллера")
	close(p.stopChan)
}

func (p *Poller) sleep(d time.Duration) bool {
	select {
	case <-p.stopChan:
		p.logger.Info("Получен сигнал остановки поллера")
		return false
	case <-time.After(d):
		return true
	}
}

func (p *Poller) processUpdate(update Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	userID := update.Message.From.ID
	text := update.Message.Text
	username := update.Message.From.Username

	p.logger.Info("Получено сообщение",
		"chat_id", chatID,
		"user_id", userID,
		"text", text,
		"username", username,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	command := buildCommand(chatID, userID, text, username)

	response, err := p.commandService.ProcessCommand(ctx, command)
	if err != nil {
		p.logger.Error("Ошибка при обработке сообщения",
			"error", err,
			"chat_id", chatID,
			"text", text,
		)

		response = "Произошла ошибка при обработке вашего сообщения. Пожалуйста, попробуйте позже."
	}

	if response != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := p.client.SendMessage(ctx, chatID, response); err != nil {
			p.logger.Error("Ошибка при отправке ответа",
				"error", err,
				"chat_id", chatID,
				"text", response,
			)
		}
	}
}

func buildCommand(chatID, userID int64, text, username string) *models.Command {
	command := &models.Command{
		ChatID:   chatID,
		UserID:   userID,
		Text:     text,
		Username: username,
	}

	word, args, _ := strings.Cut(text, " ")

	// Суффикс @botname отрезается, чтобы команды работали и в группах.
	word, _, _ = strings.Cut(word, "@")

	switch word {
	case "/start":
		command.Type = models.CommandStart
	case "/help":
		command.Type = models.CommandHelp
	case "/remind":
		command.Type = models.CommandRemind
	case "/list":
		command.Type = models.CommandList
	case "/delete":
		command.Type = models.CommandDelete
	default:
		command.Type = models.CommandUnknown
	}

	command.Args = args

	return command
}
