package models

import (
	"time"
)

// SpecKind различает три грамматики временных выражений.
type SpecKind string

const (
	SpecRelative SpecKind = "relative"
	SpecAbsolute SpecKind = "absolute"
	SpecNextDay  SpecKind = "next_day"
)

// ParsedSpec — результат разбора временного выражения: абсолютный момент
// доставки, текст напоминания и исходное выражение для отображения.
type ParsedSpec struct {
	Kind  SpecKind
	DueAt time.Time
	Text  string
	How   string
}
