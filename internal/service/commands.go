package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/central-university-dev/go-reminder-bot/internal/common/metrics"
	customerrors "github.com/central-university-dev/go-reminder-bot/internal/domain/errors"
	"github.com/central-university-dev/go-reminder-bot/internal/domain/models"
)

// ReminderServiceAPI — операции над напоминаниями, доступные обработчику команд.
// Отдельный интерфейс позволяет подменять сервис кэширующим декоратором.
type ReminderServiceAPI interface {
	CreateReminder(ctx context.Context, chatID int64, userID *int64, raw string) (*models.Reminder, error)
	ListReminders(ctx context.Context, chatID int64) ([]*models.Reminder, error)
	DeleteReminder(ctx context.Context, chatID, id int64) (*models.Reminder, error)
}

const helpText = `Доступные команды:
/start - приветствие
/help - список команд
/remind - создать напоминание
/list - показать ожидающие напоминания
/delete - удалить напоминание по номеру

Форматы напоминаний:
/remind in 10m Купить молоко
/remind at 2026-09-01 9:30 Встреча
/remind tomorrow 8:00 Позвонить маме`

const remindUsage = `Не удалось распознать время. Поддерживаемые форматы:
/remind in N[s|m|h|d] текст
/remind at ГГГГ-ММ-ДД Ч:ММ текст
/remind tomorrow Ч:ММ текст`

type CommandService struct {
	reminders ReminderServiceAPI
	logger    *slog.Logger
}

func NewCommandService(reminders ReminderServiceAPI, logger *slog.Logger) *CommandService {
	return &CommandService{
		reminders: reminders,
		logger:    logger,
	}
}

// ProcessCommand выполняет команду и возвращает текст ответа. Ошибки уровня
// пользователя (нераспознанное время, чужое напоминание) превращаются в
// подсказки; ошибкой возврата остаются только отказы инфраструктуры.
func (s *CommandService) ProcessCommand(ctx context.Context, command *models.Command) (string, error) {
	//nolint:exhaustive // CommandUnknown обрабатывается в блоке default
	switch command.Type {
	case models.CommandStart:
		return s.handleStart(command)
	case models.CommandHelp:
		metrics.RecordUserCommand(string(models.CommandHelp), "ok")
		return helpText, nil
	case models.CommandRemind:
		return s.handleRemind(ctx, command)
	case models.CommandList:
		return s.handleList(ctx, command)
	case models.CommandDelete:
		return s.handleDelete(ctx, command)
	default:
		metrics.RecordUserCommand("unknown", "rejected")
		return "Неизвестная команда. Введите /help для просмотра доступных команд.", nil
	}
}

func (s *CommandService) handleStart(command *models.Command) (string, error) {
	metrics.RecordUserCommand(string(models.CommandStart), "ok")

	name := command.Username
	if name == "" {
		name = "друг"
	}

	return fmt.Sprintf("Привет, %s! Я бот-напоминалка. Введите /help для просмотра доступных команд.", name), nil
}

func (s *CommandService) handleRemind(ctx context.Context, command *models.Command) (string, error) {
	// Нулевой идентификатор отправителя означает его отсутствие:
	// напоминание создаётся без автора, без упоминания в сообщении.
	var userID *int64
	if command.UserID != 0 {
		userID = &command.UserID
	}

	reminder, err := s.reminders.CreateReminder(ctx, command.ChatID, userID, command.Args)
	if err != nil {
		return s.remindErrorReply(command, err)
	}

	metrics.RecordUserCommand(string(models.CommandRemind), "ok")

	return fmt.Sprintf("Напоминание #%d создано: %s — %s",
		reminder.ID,
		reminder.DueAt.Format("02.01.2006 15:04"),
		reminder.Text,
	), nil
}

func (s *CommandService) remindErrorReply(command *models.Command, err error) (string, error) {
	switch {
	case errors.Is(err, &customerrors.ErrNoTimeExpression{}):
		metrics.RecordUserCommand(string(models.CommandRemind), "rejected")
		return remindUsage, nil
	case errors.Is(err, &customerrors.ErrEmptyReminderText{}):
		metrics.RecordUserCommand(string(models.CommandRemind), "rejected")
		return "Текст напоминания не может быть пустым.", nil
	case errors.Is(err, &customerrors.ErrPastDue{}):
		metrics.RecordUserCommand(string(models.CommandRemind), "rejected")
		return "Это время уже прошло. Укажите момент в будущем.", nil
	default:
		metrics.RecordUserCommand(string(models.CommandRemind), "error")

		s.logger.Error("Ошибка при создании напоминания",
			"error", err,
			"chatID", command.ChatID,
		)

		return "", err
	}
}

func (s *CommandService) handleList(ctx context.Context, command *models.Command) (string, error) {
	reminders, err := s.reminders.ListReminders(ctx, command.ChatID)
	if err != nil {
		metrics.RecordUserCommand(string(models.CommandList), "error")
		return "", err
	}

	metrics.RecordUserCommand(string(models.CommandList), "ok")

	return FormatReminderList(reminders), nil
}

func (s *CommandService) handleDelete(ctx context.Context, command *models.Command) (string, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(command.Args), 10, 64)
	if err != nil {
		metrics.RecordUserCommand(string(models.CommandDelete), "rejected")
		return "Укажите номер напоминания: /delete 42", nil
	}

	reminder, err := s.reminders.DeleteReminder(ctx, command.ChatID, id)
	if err != nil {
		if errors.Is(err, &customerrors.ErrReminderNotFound{}) {
			metrics.RecordUserCommand(string(models.CommandDelete), "rejected")
			return fmt.Sprintf("Напоминание #%d не найдено.", id), nil
		}

		metrics.RecordUserCommand(string(models.CommandDelete), "error")

		return "", err
	}

	metrics.RecordUserCommand(string(models.CommandDelete), "ok")

	return fmt.Sprintf("Напоминание #%d удалено: %s", reminder.ID, reminder.Text), nil
}

// FormatReminderList выводит ожидающие напоминания, ближайшие первыми.
func FormatReminderList(reminders []*models.Reminder) string {
	if len(reminders) == 0 {
		return "У вас нет ожидающих напоминаний."
	}

	var sb strings.Builder

	sb.WriteString("Ожидающие напоминания:\n\n")

	for i, reminder := range reminders {
		sb.WriteString(fmt.Sprintf("%d. #%d — %s — %s\n",
			i+1,
			reminder.ID,
			reminder.DueAt.Format("02.01.2006 15:04"),
			reminder.Text,
		))

		if reminder.How != "" {
			sb.WriteString(fmt.Sprintf("   Задано: %s\n", reminder.How))
		}
	}

	return sb.String()
}
