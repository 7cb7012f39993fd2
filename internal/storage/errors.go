package storage

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by lookups that require the row to exist.
var ErrNotFound = errors.New("record not found")

// QueryError wraps a driver error with the operation that failed.
type QueryError struct {
	Op    string
	Cause error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Cause)
}

func (e *QueryError) Unwrap() error {
	return e.Cause
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &QueryError{Op: op, Cause: err}
}
