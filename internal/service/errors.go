package service

import "fmt"

// ServiceError wraps a failure inside a service with the operation that caused it.
// Errors returned from request paths wrap domain sentinels instead, so callers
// can map them with errors.Is.
type ServiceError struct {
	// Service is the name of the service, e.g. "study"
	Service string
	// Operation is the operation that failed, e.g. "create_service"
	Operation string
	// Err is the underlying error
	Err error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s operation failed: %v", e.Service, e.Operation, e.Err)
	}
	return fmt.Sprintf("%s service %s operation failed", e.Service, e.Operation)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}
