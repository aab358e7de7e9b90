package apperrors

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects one message per violated field.
type ValidationError struct {
	Fields []FieldError
}

func NewValidationError() *ValidationError {
	return &ValidationError{}
}

func (e *ValidationError) Add(field, message string) {
	for _, f := range e.Fields {
		if f.Field == field {
			return
		}
	}
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) != 0
}

// ErrOrNil returns nil when nothing was added, so callers can return it directly.
func (e *ValidationError) ErrOrNil() error {
	if e == nil || !e.HasErrors() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

type RelationNotFoundError struct {
	Table string
}

func (e *RelationNotFoundError) Error() string {
	return fmt.Sprintf("relation %q does not exist", e.Table)
}

type PersistenceError struct {
	Op  string
	Err error
}

func NewPersistenceError(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

type NotFoundError struct {
	Entity string
	ID     string
}

func NewNotFoundError(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

// PartialWriteError is returned when the second of two correlated writes failed.
// Err is the original failure, RollbackErr is set when the compensating action failed too.
type PartialWriteError struct {
	Err         error
	RollbackErr error
	OrphanID    string
}

func (e *PartialWriteError) Error() string {
	if e.RollbackErr != nil {
		return fmt.Sprintf("partial write, rollback of %s failed (%v): %v", e.OrphanID, e.RollbackErr, e.Err)
	}
	return fmt.Sprintf("partial write rolled back: %v", e.Err)
}

func (e *PartialWriteError) Unwrap() error {
	return e.Err
}

type ConfigurationError struct {
	Msg string
	Err error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func IsValidation(err error) (*ValidationError, bool) {
	var target *ValidationError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsPartialWrite(err error) bool {
	var target *PartialWriteError
	return errors.As(err, &target)
}

func IsPersistence(err error) bool {
	var target *PersistenceError
	return errors.As(err, &target)
}

func IsRelationNotFound(err error) bool {
	var target *RelationNotFoundError
	return errors.As(err, &target)
}

func IsConfiguration(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}
