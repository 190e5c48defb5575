package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"log/slog"

	"github.com/central-university-dev/go-reminder-bot/internal/cache"
	"github.com/central-university-dev/go-reminder-bot/internal/common"
	"github.com/central-university-dev/go-reminder-bot/internal/common/httputil"
	"github.com/central-university-dev/go-reminder-bot/internal/common/metrics"
	"github.com/central-university-dev/go-reminder-bot/internal/config"
	"github.com/central-university-dev/go-reminder-bot/internal/database"
	"github.com/central-university-dev/go-reminder-bot/internal/notify"
	"github.com/central-university-dev/go-reminder-bot/internal/repository"
	"github.com/central-university-dev/go-reminder-bot/internal/scheduler"
	"github.com/central-university-dev/go-reminder-bot/internal/service"
	"github.com/central-university-dev/go-reminder-bot/internal/telegram"
	"github.com/central-university-dev/go-reminder-bot/pkg"
)

func gracefulShutdown(
	cancel context.CancelFunc,
	poller *telegram.Poller,
	reminderScheduler *scheduler.Scheduler,
	kafkaConsumer *notify.Consumer,
	dlqSink *notify.KafkaDeadLetterSink,
	redisCache *cache.RedisReminderCache,
	stopCh <-chan struct{},
	appLogger *slog.Logger,
) {
	<-stopCh
	appLogger.Info("Получен сигнал завершения")

	poller.Stop()
	reminderScheduler.Stop()
	cancel()

	if kafkaConsumer != nil {
		if err := kafkaConsumer.Close(); err != nil {
			appLogger.Error("Ошибка при закрытии Kafka консьюмера",
				"error", err,
			)
		}
	}

	if err := dlqSink.Close(); err != nil {
		appLogger.Error("Ошибка при закрытии продюсера DLQ",
			"error", err,
		)
	}

	if redisCache != nil {
		if err := redisCache.Close(); err != nil {
			appLogger.Error("Ошибка при закрытии соединения с Redis",
				"error", err,
			)
		}
	}

	appLogger.Info("Сервис успешно остановлен")
}

func setupTelegramCommands(telegramClient telegram.ClientAPI, appLogger *slog.Logger) {
	botCommands := []telegram.BotCommand{
		{Command: "start", Description: "Начать работу с ботом"},
		{Command: "help", Description: "Получить справку о командах"},
		{Command: "remind", Description: "Создать напоминание"},
		{Command: "list", Description: "Список ожидающих напоминаний"},
		{Command: "delete", Description: "Удалить напоминание по номеру"},
	}

	ctx := context.Background()
	if err := telegramClient.SetMyCommands(ctx, botCommands); err != nil {
		appLogger.Error("Ошибка при регистрации команд бота",
			"error", err,
		)
	} else {
		appLogger.Info("Команды бота успешно зарегистрированы")
	}
}

func watchSignals(stopCh chan<- struct{}, appLogger *slog.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		appLogger.Info("Получен системный сигнал",
			"signal", sig.String(),
		)
		close(stopCh)
	}()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка запуска сервиса: %v\n", err)
		os.Exit(1)
	}
}

//nolint:funlen // Длина функции обусловлена необходимостью последовательной инициализации всех компонентов.
func run() error {
	appLogger := pkg.NewLogger(os.Stdout)

	cfg := config.LoadConfig()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var db *database.PostgresDB

	if cfg.StorageType == config.SQLStorage || cfg.StorageType == config.SquirrelStorage {
		if err := database.RunMigrations(cfg.DatabaseURL, "migrations", appLogger); err != nil {
			appLogger.Error("Ошибка при применении миграций",
				"error", err,
			)

			return fmt.Errorf("ошибка применения миграций: %w", err)
		}

		var err error

		db, err = database.NewPostgresDB(ctx, cfg, appLogger)
		if err != nil {
			appLogger.Error("Ошибка при подключении к базе данных",
				"error", err,
			)

			return fmt.Errorf("ошибка подключения к базе данных: %w", err)
		}

		defer db.Close()
	}

	repoFactory := repository.NewFactory(db, cfg, appLogger)

	reminderRepo, err := repoFactory.CreateReminderRepository()
	if err != nil {
		appLogger.Error("Ошибка при создании репозитория напоминаний",
			"error", err,
		)

		return fmt.Errorf("ошибка создания репозитория напоминаний: %w", err)
	}

	httpClient := httputil.CreateResilientHTTPClient(cfg, appLogger, "telegram").GetClient()

	telegramClient, err := telegram.NewClient(
		cfg.TelegramBotToken,
		cfg.TelegramAPIURL,
		httpClient,
		cfg.TelegramSendRate,
		cfg.TelegramSendBurst,
		appLogger,
	)
	if err != nil {
		appLogger.Error("Ошибка при создании Telegram клиента",
			"error", err,
		)

		return fmt.Errorf("ошибка создания Telegram клиента: %w", err)
	}

	setupTelegramCommands(telegramClient, appLogger)

	notifierFactory := notify.NewNotifierFactory(cfg, telegramClient, appLogger)

	notifier, err := notifierFactory.CreateNotifier()
	if err != nil {
		appLogger.Error("Ошибка при создании нотификатора",
			"error", err,
		)

		return fmt.Errorf("ошибка создания нотификатора: %w", err)
	}

	dlqSink := notifierFactory.CreateDeadLetterSink()

	parser := common.NewTimeExpressionParser()

	reminderService := service.NewReminderService(
		reminderRepo,
		parser,
		notifier,
		dlqSink,
		cfg.DeliveryTimeout,
		cfg.MaxDeliveryAttempts,
		appLogger,
	)

	var reminderAPI service.ReminderServiceAPI = reminderService

	var redisCache *cache.RedisReminderCache

	if cfg.RedisURL != "" {
		cacheTTL := cfg.RedisCacheTTL
		if cacheTTL <= 0 {
			cacheTTL = 30 * time.Minute
		}

		redisCache, err = cache.NewRedisReminderCache(cfg.RedisURL, cfg.RedisPassword, cfg.RedisDB, cacheTTL, appLogger)
		if err != nil {
			appLogger.Error("Ошибка при подключении к Redis",
				"error", err,
			)
		} else {
			appLogger.Info("Кэш Redis успешно инициализирован")

			cachedService := service.NewCachedReminderService(reminderService, redisCache, appLogger)
			reminderAPI = cachedService

			reminderService.SetCacheInvalidator(cachedService)
		}
	}

	var kafkaConsumer *notify.Consumer

	if strings.EqualFold(cfg.MessageTransport, string(notify.KafkaNotifier)) {
		brokers := strings.Split(cfg.KafkaBrokers, ",")
		kafkaConsumer = notify.NewConsumer(
			brokers,
			cfg.KafkaConsumerGroupID,
			cfg.TopicReminders,
			cfg.TopicDeadLetterQueue,
			notify.NewTelegramReminderNotifier(telegramClient, appLogger),
			appLogger,
		)

		kafkaConsumer.Start(ctx)
		appLogger.Info("Kafka консьюмер успешно запущен")
	}

	commandService := service.NewCommandService(reminderAPI, appLogger)

	poller := telegram.NewPoller(telegramClient, commandService, appLogger)
	go poller.Start()

	reminderScheduler := scheduler.NewScheduler(reminderService, cfg.SchedulerCheckInterval, appLogger)
	reminderScheduler.Start()

	metricsServer := metrics.NewMetricsServer(cfg.MetricsPort, appLogger)

	go func() {
		if err := metricsServer.Start(ctx); err != nil {
			appLogger.Error("Ошибка при запуске сервера метрик",
				"error", err,
			)
		}
	}()

	stopCh := make(chan struct{})

	watchSignals(stopCh, appLogger)
	gracefulShutdown(cancel, poller, reminderScheduler, kafkaConsumer, dlqSink, redisCache, stopCh, appLogger)

	return nil
}
