package repository

import (
	"errors"
	"fmt"
)

// ErrStorageUnavailable is returned when the repository has no usable
// connection to its backing store.
var ErrStorageUnavailable = errors.New("storage unavailable")

// StorageError wraps a failure of the persistence medium. Callers should
// treat it as non-recoverable for the current request.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// IsStorageError reports whether err (or anything it wraps) is a StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
