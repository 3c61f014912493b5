package types

import (
	"errors"
	"fmt"
)

// Validation and lookup errors shared by every backend.
var (
	ErrEmptyName           = errors.New("tea name must not be empty")
	ErrSteepTimeOutOfRange = errors.New("steep time must be between 1 second and 30 minutes")
	ErrSteepTimeParse      = errors.New("invalid steep time")
	ErrNotFound            = errors.New("tea variety not found")
	ErrLastVariety         = errors.New("cannot delete the last remaining tea variety")
)

// StorageError wraps a failure from the embedded store, preserving the
// engine's primary and extended result codes for diagnosis.
type StorageError struct {
	Code         int    // primary result code
	ExtendedCode int    // extended result code, 0 if none
	Message      string
	Err          error
}

func (e *StorageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("storage: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("storage: %s", e.Message)
}

func (e *StorageError) Unwrap() error { return e.Err }

// TransportError wraps a failure from a remote backend. StatusCode is
// the HTTP status when the server answered, 0 for transport-level
// failures that never produced a response.
type TransportError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("transport: %d %s", e.StatusCode, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("transport: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("transport: %s", e.Message)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ArgumentError reports an invalid argument to a contract operation,
// such as an empty locator or a non-positive identifier.
type ArgumentError struct {
	Param   string
	Message string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Param, e.Message)
}
