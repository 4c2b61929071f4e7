package shared

import (
	"errors"
	"fmt"
)

// Error taxonomy for the scoring engine. Callers branch on these with
// errors.Is; everything else is treated as an internal error.
var (
	// ErrInvalidInput marks malformed caller input (bad score arrays,
	// negative values, invalid course data). Rejected before any mutation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks a referenced entity missing from the store.
	ErrNotFound = errors.New("not found")

	// ErrFailedPrecondition marks an attempt to mutate state the lock
	// discipline has frozen (locked match day, inactive season).
	ErrFailedPrecondition = errors.New("failed precondition")

	// ErrConflict marks concurrent processing detected for the same season.
	// Retryable once the in-flight operation completes.
	ErrConflict = errors.New("conflict")
)

func InvalidInputf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func FailedPreconditionf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrFailedPrecondition, fmt.Sprintf(format, args...))
}

func Conflictf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

func IsInvalidInput(err error) bool       { return errors.Is(err, ErrInvalidInput) }
func IsNotFound(err error) bool           { return errors.Is(err, ErrNotFound) }
func IsFailedPrecondition(err error) bool { return errors.Is(err, ErrFailedPrecondition) }
func IsConflict(err error) bool           { return errors.Is(err, ErrConflict) }
