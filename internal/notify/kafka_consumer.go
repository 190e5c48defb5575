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

// DeliveryHandler обрабатывает событие доставки, прочитанное из Kafka.
type DeliveryHandler interface {
	HandleDelivery(ctx context.Context, reminder *models.Reminder) error
}

// Consumer читает события доставки из Kafka и передаёт их обработчику.
// Сообщения, которые невозможно разобрать, уходят в DLQ.
type Consumer struct {
	reader   *kafka.Reader
	dlq      *KafkaDeadLetterSink
	handler  DeliveryHandler
	logger   *slog.Logger
	topic    string
	dlqTopic string
}

func NewConsumer(
	brokers []string,
	groupID string,
	topic string,
	dlqTopic string,
	handler DeliveryHandler,
	logger *slog.Logger,
) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		GroupID:        groupID,
		Topic:          topic,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: 1 * time.Second,
		Logger:         kafka.LoggerFunc(logger.Debug),
		ErrorLogger:    kafka.LoggerFunc(logger.Error),
	})

	return &Consumer{
		reader:   reader,
		dlq:      NewKafkaDeadLetterSink(brokers, dlqTopic, logger),
		handler:  handler,
		logger:   logger,
		topic:    topic,
		dlqTopic: dlqTopic,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	c.logger.Info("Запуск потребления событий доставки из Kafka",
		"topic", c.topic,
	)

	go func() {
		for {
			select {
			case <-ctx.Done():
				c.logger.Info("Остановка потребления событий доставки из Kafka")
				return
			default:
				msg, err := c.reader.ReadMessage(ctx)
				if err != nil {
					c.logger.Error("Ошибка при чтении сообщения из Kafka",
						"error", err,
					)

					continue
				}

				c.logger.Info("Получено событие доставки",
					"topic", msg.Topic,
					"partition", msg.Partition,
					"offset", msg.Offset,
				)

				if err := c.processMessage(ctx, &msg); err != nil {
					c.logger.Error("Ошибка при обработке события доставки",
						"error", err,
					)
				}
			}
		}
	}()
}

func (c *Consumer) processMessage(ctx context.Context, msg *kafka.Message) error {
	var deliveryMessage ReminderDeliveryMessage

	if err := json.Unmarshal(msg.Value, &deliveryMessage); err != nil {
		c.logger.Error("Ошибка при десериализации события доставки",
			"error", err,
		)

		if sendErr := c.dlq.SendToDLQ(ctx, msg.Value, fmt.Sprintf("Ошибка десериализации: %s", err)); sendErr != nil {
			c.logger.Error("Ошибка при отправке сообщения в DLQ",
				"error", sendErr,
			)
		}

		return fmt.Errorf("ошибка при десериализации события доставки: %w", err)
	}

	if deliveryMessage.ChatID == 0 {
		errMsg := "отсутствует обязательное поле chatId"
		c.logger.Error(errMsg)

		if sendErr := c.dlq.SendToDLQ(ctx, msg.Value, errMsg); sendErr != nil {
			c.logger.Error("Ошибка при отправке сообщения в DLQ",
				"error", sendErr,
			)
		}

		return fmt.Errorf("%s", errMsg)
	}

	reminder := &models.Reminder{
		ID:     deliveryMessage.ID,
		ChatID: deliveryMessage.ChatID,
		UserID: deliveryMessage.UserID,
		Text:   deliveryMessage.Text,
		DueAt:  deliveryMessage.DueAt,
		How:    deliveryMessage.How,
	}

	if err := c.handler.HandleDelivery(ctx, reminder); err != nil {
		c.logger.Error("Ошибка при доставке напоминания",
			"error", err,
		)

		return fmt.Errorf("ошибка при доставке напоминания: %w", err)
	}

	c.logger.Info("Событие доставки успешно обработано")

	return nil
}

func (c *Consumer) Close() error {
	if err := c.reader.Close(); err != nil {
		return err
	}

	return c.dlq.Close()
}
