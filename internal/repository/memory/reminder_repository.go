package memory

import (
	"context"
	"sync"
	"time"

	customerrors "github.com/central-university-dev/go-reminder-bot/internal/domain/errors"
	"github.com/central-university-dev/go-reminder-bot/internal/domain/models"
)

// ReminderRepository — хранилище напоминаний в памяти. Используется в тестах
// и для эфемерных запусков без персистентности.
type ReminderRepository struct {
	store *models.ReminderStore
	mu    sync.RWMutex
}

func NewReminderRepository() *ReminderRepository {
	return &ReminderRepository{
		store: models.NewReminderStore(),
	}
}

func (r *ReminderRepository) Create(_ context.Context, reminder *models.Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	reminder.ID = r.store.LastID + 1
	if reminder.Status == "" {
		reminder.Status = models.StatusPending
	}

	r.store.LastID = reminder.ID
	r.store.Reminders = append(r.store.Reminders, reminder)

	return nil
}

func (r *ReminderRepository) FindByID(_ context.Context, id int64) (*models.Reminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, reminder := range r.store.Reminders {
		if reminder.ID == id {
			return reminder, nil
		}
	}

	return nil, &customerrors.ErrReminderNotFound{ID: id}
}

func (r *ReminderRepository) FindByChat(_ context.Context, chatID int64) ([]*models.Reminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reminders := []*models.Reminder{}

	for _, reminder := range r.store.Reminders {
		if reminder.ChatID == chatID && reminder.Status == models.StatusPending {
			reminders = append(reminders, reminder)
		}
	}

	return reminders, nil
}

func (r *ReminderRepository) FindDue(_ context.Context, now time.Time) ([]*models.Reminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	due := []*models.Reminder{}

	for _, reminder := range r.store.Reminders {
		if reminder.Status == models.StatusPending && !reminder.DueAt.After(now) {
			due = append(due, reminder)
		}
	}

	return due, nil
}

func (r *ReminderRepository) ApplyDeliveryResults(_ context.Context, results []*models.DeliveryResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, result := range results {
		for _, reminder := range r.store.Reminders {
			if reminder.ID != result.ReminderID || reminder.IsTerminal() {
				continue
			}

			at := result.At

			switch {
			case result.Delivered:
				reminder.Status = models.StatusSent
				reminder.SentAt = &at
			case result.Exhausted:
				reminder.Attempts++
				reminder.Status = models.StatusFailed
				reminder.FailedAt = &at
			default:
				reminder.Attempts++
			}
		}
	}

	return nil
}

func (r *ReminderRepository) MarkDeleted(_ context.Context, chatID, id int64, now time.Time) (*models.Reminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, reminder := range r.store.Reminders {
		if reminder.ID != id {
			continue
		}

		if reminder.ChatID != chatID || reminder.Status != models.StatusPending {
			break
		}

		deletedAt := now
		reminder.Status = models.StatusDeleted
		reminder.DeletedAt = &deletedAt

		return reminder, nil
	}

	return nil, &customerrors.ErrReminderNotFound{ID: id, ChatID: chatID}
}
