package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	Namespace = "reminder_bot"

	SchedulerSubsystem = "scheduler"
)

// Метрики жизненного цикла напоминаний.
var (
	RemindersCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "reminders_created_total",
			Help:      "Total number of reminders created",
		},
		[]string{"kind"},
	)

	RemindersDeliveredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "reminders_delivered_total",
			Help:      "Total number of reminders delivered",
		},
	)

	DeliveryFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "delivery_failures_total",
			Help:      "Total number of failed delivery attempts",
		},
		[]string{"retryable"},
	)

	RemindersDeadLetteredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "reminders_dead_lettered_total",
			Help:      "Total number of reminders moved to the dead letter queue",
		},
	)

	PendingReminders = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "pending_reminders",
			Help:      "Number of reminders awaiting delivery",
		},
	)
)

// Метрики планировщика.
var (
	TickDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: SchedulerSubsystem,
			Name:      "tick_duration_seconds",
			Help:      "Scheduler tick duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	TicksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: SchedulerSubsystem,
			Name:      "ticks_total",
			Help:      "Total number of scheduler ticks",
		},
		[]string{"status"},
	)

	UserCommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "user_commands_total",
			Help:      "Total number of user commands processed",
		},
		[]string{"command", "status"},
	)
)

func RecordReminderCreated(kind string) {
	RemindersCreatedTotal.WithLabelValues(kind).Inc()
}

func RecordDelivery() {
	RemindersDeliveredTotal.Inc()
}

func RecordDeliveryFailure(retryable bool) {
	DeliveryFailuresTotal.WithLabelValues(strconv.FormatBool(retryable)).Inc()
}

func RecordDeadLettered() {
	RemindersDeadLetteredTotal.Inc()
}

func SetPendingReminders(count float64) {
	PendingReminders.Set(count)
}

func RecordTick(status string, duration time.Duration) {
	TicksTotal.WithLabelValues(status).Inc()
	TickDuration.Observe(duration.Seconds())
}

func RecordUserCommand(command, status string) {
	UserCommandsTotal.WithLabelValues(command, status).Inc()
}
