package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
)

// DueChecker — тело одного тика: поиск и доставка просроченных напоминаний.
type DueChecker interface {
	CheckDue(ctx context.Context) error
}

type Scheduler struct {
	scheduler  *gocron.Scheduler
	dueChecker DueChecker
	logger     *slog.Logger
	interval   time.Duration
}

func NewScheduler(dueChecker DueChecker, interval time.Duration, logger *slog.Logger) *Scheduler {
	scheduler := gocron.NewScheduler(time.UTC)

	return &Scheduler{
		scheduler:  scheduler,
		dueChecker: dueChecker,
		logger:     logger,
		interval:   interval,
	}
}

func (s *Scheduler) Start() {
	s.logger.Info("Запуск планировщика напоминаний",
		"interval", s.interval.String(),
	)

	// SingletonMode исключает перекрытие тиков: пока тик обрабатывает
	// доставку, следующий запуск пропускается.
	_, err := s.scheduler.Every(s.interval).SingletonMode().Do(func() {
		ctx := context.Background()

		if err := s.dueChecker.CheckDue(ctx); err != nil {
			s.logger.Error("Ошибка при проверке просроченных напоминаний",
				"error", err,
			)
		}
	})

	if err != nil {
		s.logger.Error("Ошибка при настройке планировщика",
			"error", err,
		)

		return
	}

	s.scheduler.StartAsync()
}

func (s *Scheduler) Stop() {
	s.logger.Info("Остановка планировщика")
	s.scheduler.Stop()
}
