package orm

import (
	"context"
	"errors"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/central-university-dev/go-reminder-bot/internal/database"
	customerrors "github.com/central-university-dev/go-reminder-bot/internal/domain/errors"
	"github.com/central-university-dev/go-reminder-bot/internal/domain/models"
	"github.com/central-university-dev/go-reminder-bot/pkg/txs"
	"github.com/jackc/pgx/v5"
)

var reminderColumns = []string{
	"id", "chat_id", "user_id", "text", "due_at", "created_at",
	"how", "status", "attempts", "sent_at", "deleted_at", "failed_at",
}

type ReminderRepository struct {
	db        *database.PostgresDB
	sq        sq.StatementBuilderType
	txManager *txs.TxManager
}

func NewReminderRepository(db *database.PostgresDB, txManager *txs.TxManager) *ReminderRepository {
	return &ReminderRepository{
		db:        db,
		sq:        sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		txManager: txManager,
	}
}

func (r *ReminderRepository) Create(ctx context.Context, reminder *models.Reminder) error {
	return r.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		querier := txs.GetQuerier(ctx, r.db.Pool)

		var lastID int64

		// Счётчик читается с блокировкой, чтобы идентификаторы выдавались строго по порядку.
		err := querier.QueryRow(ctx, "SELECT last_id FROM reminder_counter FOR UPDATE").Scan(&lastID)
		if err != nil {
			return &customerrors.ErrSQLExecution{Operation: "чтение счётчика напоминаний", Cause: err}
		}

		newID := lastID + 1

		updateQuery := r.sq.Update("reminder_counter").Set("last_id", newID)

		query, args, err := updateQuery.ToSql()
		if err != nil {
			return &customerrors.ErrBuildSQLQuery{Operation: "обновление счётчика напоминаний", Cause: err}
		}

		_, err = querier.Exec(ctx, query, args...)
		if err != nil {
			return &customerrors.ErrSQLExecution{Operation: "обновление счётчика напоминаний", Cause: err}
		}

		if reminder.Status == "" {
			reminder.Status = models.StatusPending
		}

		insertQuery := r.sq.Insert("reminders").
			Columns("id", "chat_id", "user_id", "text", "due_at", "created_at", "how", "status", "attempts").
			Values(newID, reminder.ChatID, reminder.UserID, reminder.Text,
				reminder.DueAt, reminder.CreatedAt, reminder.How, reminder.Status, reminder.Attempts)

		query, args, err = insertQuery.ToSql()
		if err != nil {
			return &customerrors.ErrBuildSQLQuery{Operation: "вставка напоминания", Cause: err}
		}

		_, err = querier.Exec(ctx, query, args...)
		if err != nil {
			return &customerrors.ErrSQLExecution{Operation: "сохранение напоминания", Cause: err}
		}

		reminder.ID = newID

		return nil
	})
}

func (r *ReminderRepository) FindByID(ctx context.Context, id int64) (*models.Reminder, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	selectQuery := r.sq.Select(reminderColumns...).
		From("reminders").
		Where(sq.Eq{"id": id})

	query, args, err := selectQuery.ToSql()
	if err != nil {
		return nil, &customerrors.ErrBuildSQLQuery{Operation: "поиск напоминания по ID", Cause: err}
	}

	reminder, err := scanReminder(querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &customerrors.ErrReminderNotFound{ID: id}
		}

		return nil, &customerrors.ErrSQLScan{Entity: "напоминание", Cause: err}
	}

	return reminder, nil
}

func (r *ReminderRepository) FindByChat(ctx context.Context, chatID int64) ([]*models.Reminder, error) {
	selectQuery := r.sq.Select(reminderColumns...).
		From("reminders").
		Where(sq.And{sq.Eq{"chat_id": chatID}, sq.Eq{"status": models.StatusPending}}).
		OrderBy("id")

	return r.queryReminders(ctx, selectQuery, "поиск напоминаний чата")
}

func (r *ReminderRepository) FindDue(ctx context.Context, now time.Time) ([]*models.Reminder, error) {
	selectQuery := r.sq.Select(reminderColumns...).
		From("reminders").
		Where(sq.And{sq.Eq{"status": models.StatusPending}, sq.LtOrEq{"due_at": now}}).
		OrderBy("id")

	return r.queryReminders(ctx, selectQuery, "поиск просроченных напоминаний")
}

func (r *ReminderRepository) queryReminders(ctx context.Context, selectQuery sq.SelectBuilder, operation string) ([]*models.Reminder, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	query, args, err := selectQuery.ToSql()
	if err != nil {
		return nil, &customerrors.ErrBuildSQLQuery{Operation: operation, Cause: err}
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, &customerrors.ErrSQLExecution{Operation: operation, Cause: err}
	}
	defer rows.Close()

	reminders := []*models.Reminder{}

	for rows.Next() {
		reminder, err := scanReminder(rows)
		if err != nil {
			return nil, &customerrors.ErrSQLScan{Entity: "напоминание", Cause: err}
		}

		reminders = append(reminders, reminder)
	}

	if err = rows.Err(); err != nil {
		return nil, &customerrors.ErrSQLExecution{Operation: "обработка результатов", Cause: err}
	}

	return reminders, nil
}

func (r *ReminderRepository) ApplyDeliveryResults(ctx context.Context, results []*models.DeliveryResult) error {
	if len(results) == 0 {
		return nil
	}

	return r.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		querier := txs.GetQuerier(ctx, r.db.Pool)

		for _, result := range results {
			var updateQuery sq.UpdateBuilder

			switch {
			case result.Delivered:
				updateQuery = r.sq.Update("reminders").
					Set("status", models.StatusSent).
					Set("sent_at", result.At)
			case result.Exhausted:
				updateQuery = r.sq.Update("reminders").
					Set("status", models.StatusFailed).
					Set("failed_at", result.At).
					Set("attempts", sq.Expr("attempts + 1"))
			default:
				updateQuery = r.sq.Update("reminders").
					Set("attempts", sq.Expr("attempts + 1"))
			}

			updateQuery = updateQuery.Where(sq.And{
				sq.Eq{"id": result.ReminderID},
				sq.Eq{"status": models.StatusPending},
			})

			query, args, err := updateQuery.ToSql()
			if err != nil {
				return &customerrors.ErrBuildSQLQuery{Operation: "применение исхода доставки", Cause: err}
			}

			_, err = querier.Exec(ctx, query, args...)
			if err != nil {
				return &customerrors.ErrSQLExecution{Operation: "применение исхода доставки", Cause: err}
			}
		}

		return nil
	})
}

func (r *ReminderRepository) MarkDeleted(ctx context.Context, chatID, id int64, now time.Time) (*models.Reminder, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	updateQuery := r.sq.Update("reminders").
		Set("status", models.StatusDeleted).
		Set("deleted_at", now).
		Where(sq.And{
			sq.Eq{"id": id},
			sq.Eq{"chat_id": chatID},
			sq.Eq{"status": models.StatusPending},
		}).
		Suffix("RETURNING " + strings.Join(reminderColumns, ", "))

	query, args, err := updateQuery.ToSql()
	if err != nil {
		return nil, &customerrors.ErrBuildSQLQuery{Operation: "удаление напоминания", Cause: err}
	}

	reminder, err := scanReminder(querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &customerrors.ErrReminderNotFound{ID: id, ChatID: chatID}
		}

		return nil, &customerrors.ErrSQLExecution{Operation: "удаление напоминания", Cause: err}
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
