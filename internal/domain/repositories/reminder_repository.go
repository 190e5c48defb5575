package repositories

import (
	"context"
	"time"

	"github.com/central-university-dev/go-reminder-bot/internal/domain/models"
)

// ReminderRepository — единственная точка мутации хранилища напоминаний.
// Реализации сериализуют все мутации (один писатель за раз): файловое
// хранилище — через мьютекс вокруг цикла чтение-изменение-запись,
// SQL-хранилища — через транзакции.
type ReminderRepository interface {
	// Create выделяет следующий идентификатор (lastId + 1), добавляет
	// напоминание со статусом pending и сохраняет хранилище. При ошибке
	// сохранения идентификатор не считается использованным.
	Create(ctx context.Context, reminder *models.Reminder) error

	FindByID(ctx context.Context, id int64) (*models.Reminder, error)

	// FindByChat возвращает только pending-напоминания чата.
	FindByChat(ctx context.Context, chatID int64) ([]*models.Reminder, error)

	// FindDue возвращает pending-напоминания с dueAt <= now.
	FindDue(ctx context.Context, now time.Time) ([]*models.Reminder, error)

	// ApplyDeliveryResults применяет исходы доставки одного тика одной
	// записью: доставленные переходят в sent, недоставленные получают
	// инкремент счётчика попыток, исчерпавшие лимит — статус failed.
	// Записи в конечных статусах не затрагиваются.
	ApplyDeliveryResults(ctx context.Context, results []*models.DeliveryResult) error

	// MarkDeleted переводит pending-напоминание в deleted. Напоминание
	// должно принадлежать чату chatID, иначе ErrReminderNotFound.
	MarkDeleted(ctx context.Context, chatID, id int64, now time.Time) (*models.Reminder, error)
}
