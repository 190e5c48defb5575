package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/central-university-dev/go-reminder-bot/internal/domain/models"
	"github.com/segmentio/kafka-go"
)

// ReminderDeliveryMessage — событие доставки напоминания в топике Kafka.
type ReminderDeliveryMessage struct {
	ID     int64     `json:"id"`
	ChatID int64     `json:"chatId"`
	UserID *int64    `json:"userId,omitempty"`
	Text   string    `json:"text"`
	DueAt  time.Time `json:"dueAt"`
	How    string    `json:"how"`
}

type KafkaReminderNotifier struct {
	producer    *kafka.Writer
	dlqProducer *kafka.Writer
	logger      *slog.Logger
	topic       string
	dlqTopic    string
}

func NewKafkaReminderNotifier(brokers []string, topic, dlqTopic string, logger *slog.Logger) *KafkaReminderNotifier {
	producer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		Logger:       kafka.LoggerFunc(logger.Debug),
		ErrorLogger:  kafka.LoggerFunc(logger.Error),
	}

	dlqProducer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        dlqTopic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		Logger:       kafka.LoggerFunc(logger.Debug),
		ErrorLogger:  kafka.LoggerFunc(logger.Error),
	}

	return &KafkaReminderNotifier{
		producer:    producer,
		dlqProducer: dlqProducer,
		logger:      logger,
		topic:       topic,
		dlqTopic:    dlqTopic,
	}
}

func (n *KafkaReminderNotifier) SendReminder(ctx context.Context, reminder *models.Reminder) error {
	n.logger.Info("Отправка напоминания в Kafka",
		"reminderID", reminder.ID,
		"chatID", reminder.ChatID,
		"topic", n.topic,
	)

	message := ReminderDeliveryMessage{
		ID:     reminder.ID,
		ChatID: reminder.ChatID,
		UserID: reminder.UserID,
		Text:   reminder.Text,
		DueAt:  reminder.DueAt,
		How:    reminder.How,
	}

	value, err := json.Marshal(message)
	if err != nil {
		n.logger.Error("Ошибка при сериализации сообщения",
			"error", err,
		)

		return fmt.Errorf("ошибка при сериализации сообщения: %w", err)
	}

	err = n.producer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(fmt.Sprintf("%d", reminder.ChatID)),
		Value: value,
		Time:  time.Now(),
	})

	if err != nil {
		n.logger.Error("Ошибка при отправке сообщения в Kafka",
			"error", err,
		)

		return fmt.Errorf("ошибка при отправке сообщения в Kafka: %w", err)
	}

	n.logger.Info("Напоминание успешно отправлено в Kafka")

	return nil
}

func (n *KafkaReminderNotifier) SendToDLQ(ctx context.Context, message []byte, errMsg string) error {
	return writeToDLQ(ctx, n.dlqProducer, n.dlqTopic, message, errMsg, n.logger)
}

func (n *KafkaReminderNotifier) Close() error {
	if err := n.producer.Close(); err != nil {
		return err
	}

	return n.dlqProducer.Close()
}

// KafkaDeadLetterSink — отдельный продюсер DLQ для случаев, когда основной
// транспорт доставки не Kafka.
type KafkaDeadLetterSink struct {
	producer *kafka.Writer
	logger   *slog.Logger
	topic    string
}

func NewKafkaDeadLetterSink(brokers []string, topic string, logger *slog.Logger) *KafkaDeadLetterSink {
	producer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		Logger:       kafka.LoggerFunc(logger.Debug),
		ErrorLogger:  kafka.LoggerFunc(logger.Error),
	}

	return &KafkaDeadLetterSink{
		producer: producer,
		logger:   logger,
		topic:    topic,
	}
}

func (s *KafkaDeadLetterSink) SendToDLQ(ctx context.Context, message []byte, errMsg string) error {
	return writeToDLQ(ctx, s.producer, s.topic, message, errMsg, s.logger)
}

func (s *KafkaDeadLetterSink) Close() error {
	return s.producer.Close()
}

func writeToDLQ(ctx context.Context, producer *kafka.Writer, topic string, message []byte, errMsg string, logger *slog.Logger) error {
	logger.Info("Отправка сообщения в DLQ",
		"error", errMsg,
		"topic", topic,
	)

	err := producer.WriteMessages(ctx, kafka.Message{
		Key:   []byte("error"),
		Value: message,
		Headers: []kafka.Header{
			{Key: "error", Value: []byte(errMsg)},
			{Key: "timestamp", Value: []byte(time.Now().Format(time.RFC3339))},
		},
		Time: time.Now(),
	})

	if err != nil {
		logger.Error("Ошибка при отправке сообщения в DLQ",
			"error", err,
		)

		return fmt.Errorf("ошибка при отправке сообщения в DLQ: %w", err)
	}

	logger.Info("Сообщение успешно отправлено в DLQ")

	return nil
}
