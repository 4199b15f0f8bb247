package application

import (
	"errors"
	"fmt"

	"rnamap/internal/domain"
)

// Sentinel errors for common conditions
var (
	ErrNotFound   = errors.New("not found")
	ErrFormat     = domain.ErrFormat
	ErrUnbalanced = domain.ErrUnbalanced
	ErrMismatch   = errors.New("mapping distance mismatch")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConversionError ties a failed conversion to the input it was reading
type ConversionError struct {
	Input string
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %s: %v", e.Input, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// MismatchError reports a mapping file whose recorded distance disagrees
// with its entries
type MismatchError struct {
	Recorded int
	Computed int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("recorded DISTANCE %d but entries give %d", e.Recorded, e.Computed)
}

func (e *MismatchError) Is(target error) bool {
	return target == ErrMismatch
}
