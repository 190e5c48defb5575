package file

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	customerrors "github.com/central-university-dev/go-reminder-bot/internal/domain/errors"
	"github.com/central-university-dev/go-reminder-bot/internal/domain/models"
)

// ReminderRepository хранит напоминания в одном JSON-файле. Каждая мутация —
// полный цикл чтение-изменение-запись под мьютексом: ровно один писатель,
// очередь по принципу первым пришёл — первым обслужен.
type ReminderRepository struct {
	path   string
	logger *slog.Logger
	mu     sync.Mutex
}

func NewReminderRepository(path string, logger *slog.Logger) (*ReminderRepository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, &customerrors.ErrStorePersist{Cause: err}
		}
	}

	return &ReminderRepository{
		path:   path,
		logger: logger,
	}, nil
}

// load читает снимок хранилища. Отсутствующий, нечитаемый или семантически
// некорректный файл даёт пустое хранилище по умолчанию — ошибок не бывает.
func (r *ReminderRepository) load() *models.ReminderStore {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.logger.Warn("Файл хранилища нечитаем, используется пустое хранилище",
				"path", r.path,
				"error", err,
			)
		}

		return models.NewReminderStore()
	}

	store := models.NewReminderStore()
	if err := json.Unmarshal(data, store); err != nil {
		r.logger.Warn("Файл хранилища повреждён, используется пустое хранилище",
			"path", r.path,
			"error", err,
		)

		return models.NewReminderStore()
	}

	if !storeIsValid(store) {
		r.logger.Warn("Нарушены инварианты хранилища, используется пустое хранилище",
			"path", r.path,
		)

		return models.NewReminderStore()
	}

	return store
}

func storeIsValid(store *models.ReminderStore) bool {
	var prevID int64

	for _, reminder := range store.Reminders {
		if reminder.ID <= prevID || reminder.ID > store.LastID {
			return false
		}

		prevID = reminder.ID
	}

	return true
}

func (r *ReminderRepository) persist(store *models.ReminderStore) error {
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return &customerrors.ErrStorePersist{Cause: err}
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return &customerrors.ErrStorePersist{Cause: err}
	}

	return nil
}

func (r *ReminderRepository) Create(_ context.Context, reminder *models.Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	store := r.load()

	reminder.ID = store.LastID + 1
	if reminder.Status == "" {
		reminder.Status = models.StatusPending
	}

	store.LastID = reminder.ID
	store.Reminders = append(store.Reminders, reminder)

	if err := r.persist(store); err != nil {
		// Хранилище на диске не изменилось: идентификатор не потреблён.
		reminder.ID = 0
		return err
	}

	return nil
}

func (r *ReminderRepository) FindByID(_ context.Context, id int64) (*models.Reminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, reminder := range r.load().Reminders {
		if reminder.ID == id {
			return reminder, nil
		}
	}

	return nil, &customerrors.ErrReminderNotFound{ID: id}
}

func (r *ReminderRepository) FindByChat(_ context.Context, chatID int64) ([]*models.Reminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reminders := []*models.Reminder{}

	for _, reminder := range r.load().Reminders {
		if reminder.ChatID == chatID && reminder.Status == models.StatusPending {
			reminders = append(reminders, reminder)
		}
	}

	return reminders, nil
}

func (r *ReminderRepository) FindDue(_ context.Context, now time.Time) ([]*models.Reminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	due := []*models.Reminder{}

	for _, reminder := range r.load().Reminders {
		if reminder.Status == models.StatusPending && !reminder.DueAt.After(now) {
			due = append(due, reminder)
		}
	}

	return due, nil
}

func (r *ReminderRepository) ApplyDeliveryResults(_ context.Context, results []*models.DeliveryResult) error {
	if len(results) == 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	store := r.load()

	byID := make(map[int64]*models.Reminder, len(store.Reminders))
	for _, reminder := range store.Reminders {
		byID[reminder.ID] = reminder
	}

	changed := false

	for _, result := range results {
		reminder, exists := byID[result.ReminderID]
		if !exists || reminder.IsTerminal() {
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

		changed = true
	}

	if !changed {
		return nil
	}

	// Один снимок на тик: все исходы фиксируются единственной записью.
	return r.persist(store)
}

func (r *ReminderRepository) MarkDeleted(_ context.Context, chatID, id int64, now time.Time) (*models.Reminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	store := r.load()

	for _, reminder := range store.Reminders {
		if reminder.ID != id {
			continue
		}

		if reminder.ChatID != chatID || reminder.Status != models.StatusPending {
			break
		}

		deletedAt := now
		reminder.Status = models.StatusDeleted
		reminder.DeletedAt = &deletedAt

		if err := r.persist(store); err != nil {
			return nil, err
		}

		return reminder, nil
	}

	return nil, &customerrors.ErrReminderNotFound{ID: id, ChatID: chatID}
}
