package usecase

import (
	"errors"
	"fmt"
	"strings"
)

// Определение ошибок сервиса
var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// FieldError describes one failed input constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every failed constraint of a single input.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	messages := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		messages[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return strings.Join(messages, "; ")
}
