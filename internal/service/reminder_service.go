package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"time"

	"go.uber.org/multierr"

	"github.com/central-university-dev/go-reminder-bot/internal/common"
	"github.com/central-university-dev/go-reminder-bot/internal/common/metrics"
	customerrors "github.com/central-university-dev/go-reminder-bot/internal/domain/errors"
	"github.com/central-university-dev/go-reminder-bot/internal/domain/models"
	"github.com/central-university-dev/go-reminder-bot/internal/domain/repositories"
)

// ReminderNotifier доставляет сработавшее напоминание адресату.
type ReminderNotifier interface {
	SendReminder(ctx context.Context, reminder *models.Reminder) error
}

// DeadLetterSink принимает напоминания, исчерпавшие лимит попыток доставки.
type DeadLetterSink interface {
	SendToDLQ(ctx context.Context, message []byte, errMsg string) error
}

// CacheInvalidator сбрасывает кэшированные списки чатов после доставки.
type CacheInvalidator interface {
	InvalidateChats(ctx context.Context, chatIDs []int64)
}

type ReminderService struct {
	repo            repositories.ReminderRepository
	parser          *common.TimeExpressionParser
	notifier        ReminderNotifier
	dlq             DeadLetterSink
	logger          *slog.Logger
	deliveryTimeout time.Duration
	// maxAttempts == 0 отключает лимит: напоминание повторяется на каждом тике.
	maxAttempts int
	invalidator CacheInvalidator
}

// SetCacheInvalidator подключает сброс кэша списков после доставки.
func (s *ReminderService) SetCacheInvalidator(invalidator CacheInvalidator) {
	s.invalidator = invalidator
}

func NewReminderService(
	repo repositories.ReminderRepository,
	parser *common.TimeExpressionParser,
	notifier ReminderNotifier,
	dlq DeadLetterSink,
	deliveryTimeout time.Duration,
	maxAttempts int,
	logger *slog.Logger,
) *ReminderService {
	return &ReminderService{
		repo:            repo,
		parser:          parser,
		notifier:        notifier,
		dlq:             dlq,
		logger:          logger,
		deliveryTimeout: deliveryTimeout,
		maxAttempts:     maxAttempts,
	}
}

// CreateReminder разбирает временное выражение и сохраняет напоминание.
// Текст после временного токена обязателен, момент доставки должен быть в будущем.
func (s *ReminderService) CreateReminder(ctx context.Context, chatID int64, userID *int64, raw string) (*models.Reminder, error) {
	now := time.Now()

	spec, err := s.parser.Parse(raw, now)
	if err != nil {
		return nil, err
	}

	if spec.Text == "" {
		return nil, &customerrors.ErrEmptyReminderText{}
	}

	if !spec.DueAt.After(now) {
		return nil, &customerrors.ErrPastDue{DueAt: spec.DueAt.Format(time.RFC3339)}
	}

	reminder := &models.Reminder{
		ChatID:    chatID,
		UserID:    userID,
		Text:      spec.Text,
		DueAt:     spec.DueAt,
		CreatedAt: now,
		How:       spec.How,
		Status:    models.StatusPending,
	}

	if err := s.repo.Create(ctx, reminder); err != nil {
		return nil, err
	}

	metrics.RecordReminderCreated(string(spec.Kind))

	s.logger.Info("Напоминание создано",
		"reminderID", reminder.ID,
		"chatID", chatID,
		"dueAt", reminder.DueAt,
	)

	return reminder, nil
}

// ListReminders возвращает ожидающие напоминания чата, ближайшие первыми.
func (s *ReminderService) ListReminders(ctx context.Context, chatID int64) ([]*models.Reminder, error) {
	reminders, err := s.repo.FindByChat(ctx, chatID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(reminders, func(i, j int) bool {
		return reminders[i].DueAt.Before(reminders[j].DueAt)
	})

	return reminders, nil
}

// DeleteReminder помечает напоминание удалённым. Чужие и уже завершённые
// напоминания выглядят как отсутствующие.
func (s *ReminderService) DeleteReminder(ctx context.Context, chatID, id int64) (*models.Reminder, error) {
	reminder, err := s.repo.MarkDeleted(ctx, chatID, id, time.Now())
	if err != nil {
		return nil, err
	}

	s.logger.Info("Напоминание удалено",
		"reminderID", id,
		"chatID", chatID,
	)

	return reminder, nil
}

// CheckDue — тело одного тика планировщика: находит просроченные напоминания,
// доставляет их и фиксирует исходы одной записью в хранилище. Напоминание,
// которое не удалось доставить, остаётся ожидающим и повторяется на следующем
// тике, пока не исчерпает лимит попыток.
func (s *ReminderService) CheckDue(ctx context.Context) error {
	start := time.Now()

	due, err := s.repo.FindDue(ctx, start)
	if err != nil {
		metrics.RecordTick("error", time.Since(start))
		return err
	}

	metrics.SetPendingReminders(float64(len(due)))

	if len(due) == 0 {
		metrics.RecordTick("idle", time.Since(start))
		return nil
	}

	s.logger.Info("Найдены просроченные напоминания",
		"count", len(due),
	)

	results := make([]*models.DeliveryResult, 0, len(due))

	var errs error

	for _, reminder := range due {
		// Остановка посреди тика: необработанные напоминания не получают
		// исхода и будут подобраны следующим тиком.
		if ctx.Err() != nil {
			break
		}

		result, err := s.deliver(ctx, reminder)
		if err != nil {
			errs = multierr.Append(errs, &customerrors.ErrDeliveryFailed{ReminderID: reminder.ID, Cause: err})
		}

		results = append(results, result)
	}

	if len(results) > 0 {
		if err := s.repo.ApplyDeliveryResults(ctx, results); err != nil {
			errs = multierr.Append(errs, err)
		}

		s.invalidateDeliveredChats(ctx, due, results)
	}

	if errs != nil {
		metrics.RecordTick("error", time.Since(start))
	} else {
		metrics.RecordTick("ok", time.Since(start))
	}

	return errs
}

func (s *ReminderService) invalidateDeliveredChats(ctx context.Context, due []*models.Reminder, results []*models.DeliveryResult) {
	if s.invalidator == nil {
		return
	}

	chatByID := make(map[int64]int64, len(due))
	for _, reminder := range due {
		chatByID[reminder.ID] = reminder.ChatID
	}

	seen := make(map[int64]bool)

	var chatIDs []int64

	for _, result := range results {
		if !result.Delivered && !result.Exhausted {
			continue
		}

		chatID := chatByID[result.ReminderID]
		if !seen[chatID] {
			seen[chatID] = true

			chatIDs = append(chatIDs, chatID)
		}
	}

	if len(chatIDs) > 0 {
		s.invalidator.InvalidateChats(ctx, chatIDs)
	}
}

func (s *ReminderService) deliver(ctx context.Context, reminder *models.Reminder) (*models.DeliveryResult, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, s.deliveryTimeout)
	defer cancel()

	err := s.notifier.SendReminder(attemptCtx, reminder)
	if err == nil {
		metrics.RecordDelivery()

		s.logger.Info("Напоминание доставлено",
			"reminderID", reminder.ID,
			"chatID", reminder.ChatID,
		)

		return &models.DeliveryResult{
			ReminderID: reminder.ID,
			Delivered:  true,
			At:         time.Now(),
		}, nil
	}

	exhausted := s.maxAttempts > 0 && reminder.Attempts+1 >= s.maxAttempts

	metrics.RecordDeliveryFailure(!exhausted)

	s.logger.Error("Ошибка при доставке напоминания",
		"error", err,
		"reminderID", reminder.ID,
		"attempt", reminder.Attempts+1,
		"exhausted", exhausted,
	)

	if exhausted {
		s.deadLetter(ctx, reminder, err)
	}

	return &models.DeliveryResult{
		ReminderID: reminder.ID,
		Exhausted:  exhausted,
		At:         time.Now(),
	}, err
}

func (s *ReminderService) deadLetter(ctx context.Context, reminder *models.Reminder, cause error) {
	metrics.RecordDeadLettered()

	if s.dlq == nil {
		return
	}

	payload, err := json.Marshal(reminder)
	if err != nil {
		s.logger.Error("Ошибка при сериализации напоминания для DLQ",
			"error", err,
			"reminderID", reminder.ID,
		)

		return
	}

	if err := s.dlq.SendToDLQ(ctx, payload, cause.Error()); err != nil {
		s.logger.Error("Ошибка при отправке напоминания в DLQ",
			"error", err,
			"reminderID", reminder.ID,
		)
	}
}
