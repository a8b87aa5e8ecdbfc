package domain

import "fmt"

// ValidationError: кривой ввод (артикул, количество, время). Не фатально,
// показывается пользователю прямо в форме.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Msg)
}

func Invalid(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}

// DuplicateError: артикул уже занят другой нормой.
type DuplicateError struct {
	Article string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate article %q", e.Article)
}

// NotFoundError: по id ничего не нашли. Для delete-команд снаружи не
// возвращается (удаление идемпотентно), для update-команд — возвращается.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func NotFound(kind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}
