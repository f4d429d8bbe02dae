package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
// Callers check them with errors.Is; the API layer maps them to HTTP status codes.
var (
	// ErrNilEngine indicates a service was constructed without a prediction engine.
	ErrNilEngine = errors.New("cycle engine is required")
)

// ServiceError wraps an error returned by a service operation with the
// service and operation names.
type ServiceError struct {
	Service string
	Op      string
	Err     error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s service %s operation failed", e.Service, e.Op)
	}
	return fmt.Sprintf("%s service %s operation failed: %v", e.Service, e.Op, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

func trackerError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &ServiceError{Service: "tracker", Op: op, Err: err}
}
