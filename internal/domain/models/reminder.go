package models

import (
	"time"
)

type ReminderStatus string

const (
	StatusPending ReminderStatus = "pending"
	StatusSent    ReminderStatus = "sent"
	StatusDeleted ReminderStatus = "deleted"
	StatusFailed  ReminderStatus = "failed"
)

type Reminder struct {
	ID        int64          `json:"id"`
	ChatID    int64          `json:"chatId"`
	UserID    *int64         `json:"userId,omitempty"`
	Text      string         `json:"text"`
	DueAt     time.Time      `json:"dueAt"`
	CreatedAt time.Time      `json:"createdAt"`
	How       string         `json:"how"`
	Status    ReminderStatus `json:"status"`
	Attempts  int            `json:"attempts,omitempty"`
	SentAt    *time.Time     `json:"sentAt,omitempty"`
	DeletedAt *time.Time     `json:"deletedAt,omitempty"`
	FailedAt  *time.Time     `json:"failedAt,omitempty"`
}

// IsTerminal сообщает, достигло ли напоминание конечного статуса.
// Конечный статус не пересматривается ни планировщиком, ни удалением.
func (r *Reminder) IsTerminal() bool {
	return r.Status != StatusPending
}

// ReminderStore — полный снимок хранилища: счётчик последнего выданного
// идентификатора и упорядоченный список напоминаний.
type ReminderStore struct {
	LastID    int64       `json:"lastId"`
	Reminders []*Reminder `json:"reminders"`
}

func NewReminderStore() *ReminderStore {
	return &ReminderStore{
		LastID:    0,
		Reminders: []*Reminder{},
	}
}

type DeliveryResult struct {
	ReminderID int64
	Delivered  bool
	// Exhausted выставляется сервисом, когда исчерпан лимит попыток доставки.
	Exhausted bool
	At        time.Time
}
