package repository

import (
	"log/slog"

	"github.com/central-university-dev/go-reminder-bot/internal/config"
	"github.com/central-university-dev/go-reminder-bot/internal/database"
	"github.com/central-university-dev/go-reminder-bot/internal/domain/errors"
	"github.com/central-university-dev/go-reminder-bot/internal/domain/repositories"
	"github.com/central-university-dev/go-reminder-bot/internal/repository/file"
	"github.com/central-university-dev/go-reminder-bot/internal/repository/memory"
	"github.com/central-university-dev/go-reminder-bot/internal/repository/orm"
	sqlrepo "github.com/central-university-dev/go-reminder-bot/internal/repository/sql"
	"github.com/central-university-dev/go-reminder-bot/pkg/txs"
)

type Factory struct {
	db     *database.PostgresDB
	config *config.Config
	logger *slog.Logger
}

func NewFactory(db *database.PostgresDB, config *config.Config, logger *slog.Logger) *Factory {
	return &Factory{
		db:     db,
		config: config,
		logger: logger,
	}
}

func (f *Factory) CreateReminderRepository() (repositories.ReminderRepository, error) {
	switch f.config.StorageType {
	case config.FileStorage:
		f.logger.Info("Создание файлового репозитория напоминаний",
			"path", f.config.StoreFilePath)

		return file.NewReminderRepository(f.config.StoreFilePath, f.logger)
	case config.MemoryStorage:
		f.logger.Info("Создание репозитория напоминаний в памяти")

		return memory.NewReminderRepository(), nil
	case config.SQLStorage:
		f.logger.Info("Создание SQL репозитория напоминаний")

		return sqlrepo.NewReminderRepository(f.db), nil
	case config.SquirrelStorage:
		f.logger.Info("Создание ORM (Squirrel) репозитория напоминаний")

		return orm.NewReminderRepository(f.db, txs.NewTxManager(f.db.Pool, f.logger)), nil
	default:
		return nil, &errors.ErrUnknownStorageType{StorageType: string(f.config.StorageType)}
	}
}
