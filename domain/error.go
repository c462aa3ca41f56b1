package domain

import "fmt"

// AppError is a categorised error carrying the HTTP status it maps to.
type AppError struct {
	Message string
	Code    int
}

func (e *AppError) Error() string {
	return e.Message
}

// Error categories. Concrete errors wrap one of these so callers can branch
// with errors.Is and handlers can recover the status code with errors.As.
var (
	ErrInvalidArgument = &AppError{
		Message: "invalid argument",
		Code:    400, // StatusBadRequest
	}
	ErrNotFound = &AppError{
		Message: "not found",
		Code:    404, // StatusNotFound
	}
	ErrConflict = &AppError{
		Message: "already exists",
		Code:    409, // StatusConflict
	}
	ErrUnexpected = &AppError{
		Message: "unexpected store failure",
		Code:    500, // StatusInternalServerError
	}
)

// Request errors raised before the store is reached.
var (
	ErrInvalidID = &AppError{
		Message: "invalid id",
		Code:    400, // StatusBadRequest
	}
	ErrIDMismatch = &AppError{
		Message: "id in path does not match id in body",
		Code:    400, // StatusBadRequest
	}
)

// NilEntity reports an absent input entity.
func NilEntity(entity string) error {
	return fmt.Errorf("%w: %s must not be nil", ErrInvalidArgument, entity)
}

// InvalidArgument reports a malformed request for entity.
func InvalidArgument(entity, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidArgument, entity, reason)
}

// NotFound reports that no entity is stored under key.
func NotFound(entity string, key any) error {
	return fmt.Errorf("%w: %s %v", ErrNotFound, entity, key)
}

// Conflict reports that an entity is already stored under key.
func Conflict(entity string, key any) error {
	return fmt.Errorf("%w: %s %v", ErrConflict, entity, key)
}

// Unexpected wraps a store failure raised while performing op.
func Unexpected(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrUnexpected, op, err)
}
