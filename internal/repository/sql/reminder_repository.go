package sql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/central-university-dev/go-reminder-bot/internal/database"
	customerrors "github.com/central-university-dev/go-reminder-bot/internal/domain/errors"
	"github.com/central-university-dev/go-reminder-bot/internal/domain/models"
	"github.com/jackc/pgx/v5"
)

const reminderColumns = "id, chat_id, user_id, text, due_at, created_at, how, status, attempts, sent_at, deleted_at, failed_at"

type ReminderRepository struct {
	db *database.PostgresDB
}

func NewReminderRepository(db *database.PostgresDB) *ReminderRepository {
	return &ReminderRepository{db: db}
}

func (r *ReminderRepository) Create(ctx context.Context, reminder *models.Reminder) error {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("ошибка при начале транзакции: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	// Счётчик блокируется на время транзакции: выдача идентификаторов
	// строго последовательна, откат не потребляет идентификатор.
	var lastID int64

	err = tx.QueryRow(ctx, "SELECT last_id FROM reminder_counter FOR UPDATE").Scan(&lastID)
	if err != nil {
		return fmt.Errorf("ошибка при чтении счётчика напоминаний: %w", err)
	}

	newID := lastID + 1

	_, err = tx.Exec(ctx, "UPDATE reminder_counter SET last_id = $1", newID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении счётчика напоминаний: %w", err)
	}

	if reminder.Status == "" {
		reminder.Status = models.StatusPending
	}

	_, err = tx.Exec(ctx,
		"INSERT INTO reminders (id, chat_id, user_id, text, due_at, created_at, how, status, attempts) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)",
		newID, reminder.ChatID, reminder.UserID, reminder.Text, reminder.DueAt, reminder.CreatedAt, reminder.How, reminder.Status, reminder.Attempts)
	if err != nil {
		return fmt.Errorf("ошибка при сохранении напоминания: %w", err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return fmt.Errorf("ошибка при фиксации транзакции: %w", err)
	}

	reminder.ID = newID

	return nil
}

func (r *ReminderRepository) FindByID(ctx context.Context, id int64) (*models.Reminder, error) {
	row := r.db.Pool.QueryRow(ctx,
		"SELECT "+reminderColumns+" FROM reminders WHERE id = $1", id)

	reminder, err := scanReminder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &customerrors.ErrReminderNotFound{ID: id}
		}

		return nil, fmt.Errorf("ошибка при поиске напоминания по ID: %w", err)
	}

	return reminder, nil
}

func (r *ReminderRepository) FindByChat(ctx context.Context, chatID int64) ([]*models.Reminder, error) {
	rows, err := r.db.Pool.Query(ctx,
		"SELECT "+reminderColumns+" FROM reminders WHERE chat_id = $1 AND status = $2 ORDER BY id",
		chatID, models.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("ошибка при поиске напоминаний чата: %w", err)
	}
	defer rows.Close()

	return collectReminders(rows)
}

func (r *ReminderRepository) FindDue(ctx context.Context, now time.Time) ([]*models.Reminder, error) {
	rows, err := r.db.Pool.Query(ctx,
		"SELECT "+reminderColumns+" FROM reminders WHERE status = $1 AND due_at <= $2 ORDER BY id",
		models.StatusPending, now)
	if err != nil {
		return nil, fmt.Errorf("ошибка при поиске просроченных напоминаний: %w", err)
	}
	defer rows.Close()

	return collectReminders(rows)
}

func (r *ReminderRepository) ApplyDeliveryResults(ctx context.Context, results []*models.DeliveryResult) error {
	if len(results) == 0 {
		return nil
	}

	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("ошибка при начале транзакции: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	for _, result := range results {
		switch {
		case result.Delivered:
			_, err = tx.Exec(ctx,
				"UPDATE reminders SET status = $1, sent_at = $2 WHERE id = $3 AND status = $4",
				models.StatusSent, result.At, result.ReminderID, models.StatusPending)
		case result.Exhausted:
			_, err = tx.Exec(ctx,
				"UPDATE reminders SET status = $1, failed_at = $2, attempts = attempts + 1 WHERE id = $3 AND status = $4",
				models.StatusFailed, result.At, result.ReminderID, models.StatusPending)
		default:
			_, err = tx.Exec(ctx,
				"UPDATE reminders SET attempts = attempts + 1 WHERE id = $1 AND status = $2",
				result.ReminderID, models.StatusPending)
		}

		if err != nil {
			return fmt.Errorf("ошибка при применении исхода доставки для напоминания %d: %w", result.ReminderID, err)
		}
	}

	err = tx.Commit(ctx)
	if err != nil {
		return fmt.Errorf("ошибка при фиксации транзакции: %w", err)
	}

	return nil
}

func (r *ReminderRepository) MarkDeleted(ctx context.Context, chatID, id int64, now time.Time) (*models.Reminder, error) {
	row := r.db.Pool.QueryRow(ctx,
		"UPDATE reminders SET status = $1, deleted_at = $2 WHERE id = $3 AND chat_id = $4 AND status = $5 RETURNING "+reminderColumns,
		models.StatusDeleted, now, id, chatID, models.StatusPending)

	reminder, err := scanReminder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &customerrors.ErrReminderNotFound{ID: id, ChatID: chatID}
		}

		return nil, fmt.Errorf("ошибка при удалении напоминания: %w", err)
	}

	return reminder, nil
}

func scanReminder(row pgx.Row) (*models.Reminder, error) {
	reminder := &models.Reminder{}

	err := row.Scan(
		&reminder.ID,
		&reminder.ChatID,
		&reminder.UserID,
		&reminder.Text,
		&reminder.DueAt,
		&reminder.CreatedAt,
		&reminder.How,
		&reminder.Status,
		&reminder.Attempts,
		&reminder.SentAt,
		&reminder.DeletedAt,
		&reminder.FailedAt,
	)
	if err != nil {
		return nil, err
	}

	return reminder, nil
}

func collectReminders(rows pgx.Rows) ([]*models.Reminder, error) {
	reminders := []*models.Reminder{}

	for rows.Next() {
		reminder, err := scanReminder(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка при сканировании напоминания: %w", err)
		}

		reminders = append(reminders, reminder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при чтении результатов запроса: %w", err)
	}

	return reminders, nil
}
