package taskstore

import (
	"errors"
	"fmt"
)

// Error types for Store operations.
var (
	// ErrNotFound is returned when no record exists under the given filename.
	ErrNotFound = errors.New("task not found")

	// ErrDecode is returned when a record file exists but its metadata
	// block cannot be parsed.
	ErrDecode = errors.New("task file malformed")
)

// NotFoundError wraps ErrNotFound with the filename that was not found.
type NotFoundError struct {
	Filename string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task not found: %s", e.Filename)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// DecodeError wraps ErrDecode with the offending file and parser error.
type DecodeError struct {
	Filename string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("task file %s is malformed: %v", e.Filename, e.Err)
}

func (e *DecodeError) Unwrap() []error {
	return []error{ErrDecode, e.Err}
}

// Store defines the interface for task persistence and retrieval.
// Records are addressed by filename only.
type Store interface {
	// Get retrieves a record by filename.
	// Returns NotFoundError if the file does not exist.
	Get(filename string) (*Record, error)

	// List retrieves every well-formed record. Malformed files are skipped.
	List() ([]*Record, error)

	// Save writes content as the full text of filename, replacing any
	// previous content atomically.
	Save(filename, content string) error

	// Create stores a new record document and returns the filename it was
	// given. Existing records are never overwritten.
	Create(content string) (string, error)

	// UpdateStatus rewrites the status of an existing record.
	// Returns NotFoundError if the record does not exist.
	UpdateStatus(filename, status string) error

	// Archive marks an existing record as archived.
	// Returns NotFoundError if the record does not exist.
	Archive(filename string) error

	// Delete removes a record by filename.
	// Returns NotFoundError if the record does not exist.
	Delete(filename string) error
}
