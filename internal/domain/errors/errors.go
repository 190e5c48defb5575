package errors

import (
	"fmt"
)

type ErrNoTimeExpression struct {
	Raw string
}

func (e *ErrNoTimeExpression) Error() string {
	return "не удалось распознать временное выражение: " + e.Raw
}

func (e *ErrNoTimeExpression) Is(target error) bool {
	_, ok := target.(*ErrNoTimeExpression)
	return ok
}

type ErrEmptyReminderText struct{}

func (e *ErrEmptyReminderText) Error() string {
	return "текст напоминания не может быть пустым"
}

func (e *ErrEmptyReminderText) Is(target error) bool {
	_, ok := target.(*ErrEmptyReminderText)
	return ok
}

type ErrPastDue struct {
	DueAt string
}

func (e *ErrPastDue) Error() string {
	return "время напоминания уже прошло: " + e.DueAt
}

func (e *ErrPastDue) Is(target error) bool {
	_, ok := target.(*ErrPastDue)
	return ok
}

type ErrReminderNotFound struct {
	ID     int64
	ChatID int64
}

func (e *ErrReminderNotFound) Error() string {
	return fmt.Sprintf("напоминание с ID %d не найдено в чате %d", e.ID, e.ChatID)
}

func (e *ErrReminderNotFound) Is(target error) bool {
	_, ok := target.(*ErrReminderNotFound)
	return ok
}

type ErrStorePersist struct {
	Cause error
}

func (e *ErrStorePersist) Error() string {
	return fmt.Sprintf("ошибка при сохранении хранилища напоминаний: %v", e.Cause)
}

func (e *ErrStorePersist) Unwrap() error {
	return e.Cause
}

func (e *ErrStorePersist) Is(target error) bool {
	_, ok := target.(*ErrStorePersist)
	return ok
}

type ErrDeliveryFailed struct {
	ReminderID int64
	Cause      error
}

func (e *ErrDeliveryFailed) Error() string {
	return fmt.Sprintf("ошибка при доставке напоминания %d: %v", e.ReminderID, e.Cause)
}

func (e *ErrDeliveryFailed) Unwrap() error {
	return e.Cause
}

type ErrUnknownCommand struct {
	Command string
}

func (e *ErrUnknownCommand) Error() string {
	return "неизвестная команда: " + e.Command
}

type ErrInvalidArgument struct {
	Message string
}

func (e *ErrInvalidArgument) Error() string {
	return fmt.Sprintf("некорректный аргумент: %s", e.Message)
}

type ErrUnknownStorageType struct {
	StorageType string
}

func (e *ErrUnknownStorageType) Error() string {
	return fmt.Sprintf("неизвестный тип хранилища напоминаний: %s", e.StorageType)
}

type ErrUnknownNotifierType struct {
	Transport string
}

func (e *ErrUnknownNotifierType) Error() string {
	return fmt.Sprintf("неизвестный тип транспорта доставки: %s", e.Transport)
}

func (e *ErrUnknownNotifierType) Is(target error) bool {
	_, ok := target.(*ErrUnknownNotifierType)
	return ok
}

type ErrBeginTransaction struct {
	Cause error
}

func (e *ErrBeginTransaction) Error() string {
	return fmt.Sprintf("ошибка при начале транзакции: %v", e.Cause)
}

func (e *ErrBeginTransaction) Unwrap() error {
	return e.Cause
}

type ErrBuildSQLQuery struct {
	Operation string
	Cause     error
}

func (e *ErrBuildSQLQuery) Error() string {
	return fmt.Sprintf("ошибка при построении SQL запроса для %s: %v", e.Operation, e.Cause)
}

func (e *ErrBuildSQLQuery) Unwrap() error {
	return e.Cause
}

type ErrSQLExecution struct {
	Operation string
	Cause     error
}

func (e *ErrSQLExecution) Error() string {
	return fmt.Sprintf("ошибка при выполнении SQL запроса для %s: %v", e.Operation, e.Cause)
}

func (e *ErrSQLExecution) Unwrap() error {
	return e.Cause
}

type ErrSQLScan struct {
	Entity string
	Cause  error
}

func (e *ErrSQLScan) Error() string {
	return fmt.Sprintf("ошибка при сканировании %s: %v", e.Entity, e.Cause)
}

func (e *ErrSQLScan) Unwrap() error {
	return e.Cause
}

type ErrCommitTransaction struct {
	Cause error
}

func (e *ErrCommitTransaction) Error() string {
	return fmt.Sprintf("ошибка при фиксации транзакции: %v", e.Cause)
}

func (e *ErrCommitTransaction) Unwrap() error {
	return e.Cause
}

type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error: %d", e.StatusCode)
}
