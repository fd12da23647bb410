package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest = 4000
	CodeForbidden      = 4030
	CodeNotFound       = 4040
	CodeAlreadyExists  = 4090

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodeInconsistency  = 5001
)

// Base error kinds. The set is closed: every error crossing the service
// boundary wraps exactly one of these so callers can branch with errors.Is.
var (
	// ErrNotFound is returned when a referenced entity is absent
	ErrNotFound = errors.New("entity not found")

	// ErrForbidden is returned when the caller is not the owning identity
	ErrForbidden = errors.New("caller is not the owner")

	// ErrExists is returned when a creation would violate a uniqueness
	// invariant that already holds
	ErrExists = errors.New("entity already exists")

	// ErrInconsistency is returned when an entity expected present was
	// unexpectedly absent during a compound operation
	ErrInconsistency = errors.New("internal consistency violation")

	// ErrInvalidRequest is returned when the request payload is malformed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrRecordTooLarge is returned when a record exceeds the serialized
	// size ceiling; this is a caller-side contract violation
	ErrRecordTooLarge = errors.New("record exceeds maximum serialized size")

	// ErrCounterUpdate is returned when an id counter could not be
	// persisted; the surrounding operation aborts and rolls back
	ErrCounterUpdate = errors.New("id counter update failed")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns the standardized code for known error kinds
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrExists):
		return CodeAlreadyExists
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrInconsistency):
		return CodeInconsistency
	default:
		return CodeInternalServer
	}
}

// EntityError carries the entity kind, id and operation an error occurred in,
// wrapping one of the base kinds so callers branch programmatically instead
// of parsing messages.
type EntityError struct {
	Entity string // "user" or "workout_plan"
	ID     uint64
	Op     string // service operation, e.g. "delete_user"
	Err    error
}

// Error implements the error interface for EntityError
func (e *EntityError) Error() string {
	return fmt.Sprintf("%s: %s with id=%d: %v", e.Op, e.Entity, e.ID, e.Err)
}

// Unwrap returns the wrapped error kind
func (e *EntityError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *EntityError) LogFields() map[string]any {
	return map[string]any{
		"entity":     e.Entity,
		"entity_id":  e.ID,
		"operation":  e.Op,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewNotFound creates an EntityError wrapping ErrNotFound
func NewNotFound(entity string, id uint64, op string) error {
	return &EntityError{Entity: entity, ID: id, Op: op, Err: ErrNotFound}
}

// NewForbidden creates an EntityError wrapping ErrForbidden
func NewForbidden(entity string, id uint64, op string) error {
	return &EntityError{Entity: entity, ID: id, Op: op, Err: ErrForbidden}
}

// NewExists creates an EntityError wrapping ErrExists
func NewExists(entity string, id uint64, op string) error {
	return &EntityError{Entity: entity, ID: id, Op: op, Err: ErrExists}
}

// NewInconsistency creates an EntityError wrapping ErrInconsistency
func NewInconsistency(entity string, id uint64, op string) error {
	return &EntityError{Entity: entity, ID: id, Op: op, Err: ErrInconsistency}
}

// IsNotFound checks if the error is a not-found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsForbidden checks if the error is an ownership failure
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsExists checks if the error is a uniqueness conflict
func IsExists(err error) bool {
	return errors.Is(err, ErrExists)
}

// IsInconsistency checks if the error is an internal consistency violation
func IsInconsistency(err error) bool {
	return errors.Is(err, ErrInconsistency)
}
