package usecase

import (
	"errors"
	"fmt"
)

// ValidationError is surfaced inline to the user; it never aborts more
// than the current action.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// ImportRowError describes a single skipped spreadsheet row. Row errors
// are collected into the import summary and are never fatal.
type ImportRowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

func (e ImportRowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
}

// StorageError wraps an I/O failure on the local store. Fatal to the
// current action only.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
