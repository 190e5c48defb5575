package notify

import (
	"context"
	"log/slog"
	"strings"

	"github.com/central-university-dev/go-reminder-bot/internal/config"
	customerrors "github.com/central-university-dev/go-reminder-bot/internal/domain/errors"
	"github.com/central-university-dev/go-reminder-bot/internal/domain/models"
	"github.com/central-university-dev/go-reminder-bot/internal/telegram"
)

type NotifierType string

const (
	TelegramNotifier NotifierType = "TELEGRAM"
	KafkaNotifier    NotifierType = "KAFKA"
)

// ReminderNotifier доставляет сработавшее напоминание адресату.
type ReminderNotifier interface {
	SendReminder(ctx context.Context, reminder *models.Reminder) error
}

// DeadLetterSink принимает напоминания, исчерпавшие лимит попыток доставки.
type DeadLetterSink interface {
	SendToDLQ(ctx context.Context, message []byte, errMsg string) error
}

type NotifierFactory struct {
	config         *config.Config
	telegramClient telegram.ClientAPI
	logger         *slog.Logger
}

func NewNotifierFactory(config *config.Config, telegramClient telegram.ClientAPI, logger *slog.Logger) *NotifierFactory {
	return &NotifierFactory{
		config:         config,
		telegramClient: telegramClient,
		logger:         logger,
	}
}

func (f *NotifierFactory) CreateNotifier() (ReminderNotifier, error) {
	primary, err := f.createByType(f.config.MessageTransport)
	if err != nil {
		return nil, err
	}

	if !f.config.FallbackEnabled {
		return primary, nil
	}

	secondary, err := f.createByType(f.config.FallbackTransport)
	if err != nil {
		return nil, err
	}

	f.logger.Info("Резервный транспорт доставки включён",
		"primary", f.config.MessageTransport,
		"fallback", f.config.FallbackTransport,
	)

	return NewFallbackReminderNotifier(primary, secondary, f.logger), nil
}

func (f *NotifierFactory) createByType(transport string) (ReminderNotifier, error) {
	notifierType := NotifierType(strings.ToUpper(transport))

	f.logger.Info("Создание нотификатора",
		"type", notifierType,
	)

	switch notifierType {
	case TelegramNotifier:
		return NewTelegramReminderNotifier(f.telegramClient, f.logger), nil
	case KafkaNotifier:
		brokers := strings.Split(f.config.KafkaBrokers, ",")
		return NewKafkaReminderNotifier(brokers, f.config.TopicReminders, f.config.TopicDeadLetterQueue, f.logger), nil
	default:
		return nil, &customerrors.ErrUnknownNotifierType{Transport: transport}
	}
}

// CreateDeadLetterSink создаёт продюсер DLQ. Очередь мёртвых сообщений нужна
// независимо от основного транспорта доставки; продюсер закрывается
// вызывающей стороной при остановке приложения.
func (f *NotifierFactory) CreateDeadLetterSink() *KafkaDeadLetterSink {
	brokers := strings.Split(f.config.KafkaBrokers, ",")

	return NewKafkaDeadLetterSink(brokers, f.config.TopicDeadLetterQueue, f.logger)
}
