package ledger_core

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrSkipTransaction   = errors.New("skip transaction")
	ErrAccountNotFound   = errors.New("bank account not found")
	ErrReferenceNotFound = errors.New("referenced record not found")
	ErrRecordNotFound    = errors.New("record not found")
	ErrSameAccount       = errors.New("source and destination account must differ")
)

// ValidationError rejects a payload before anything is written.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (v *ValidationError) Error() string {
	if v.Field == "" {
		return v.Message
	}
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

func (v *ValidationError) Unwrap() error {
	return v.Err
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// NotFound converts a missing row into ErrRecordNotFound and passes other
// errors through.
func NotFound(err error, kind string, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s %s", ErrRecordNotFound, kind, id)
	}
	return err
}
