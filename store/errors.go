package store

import (
	"errors"
	"fmt"
)

// ErrBackupNotFound is returned when a restore names an unknown backup.
var ErrBackupNotFound = errors.New("backup not found")

// StorageError is any I/O or parse failure while loading or saving the
// task document or restoring a backup. It always carries the
// underlying cause.
type StorageError struct {
	// Op is the operation that failed: "load", "save", "restore", or
	// "list-backups".
	Op string

	// Path is the file the operation targeted.
	Path string

	// Err is the underlying cause.
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (s *Store) loadError(err error) error {
	return &StorageError{Op: "load", Path: s.path, Err: err}
}

func (s *Store) saveError(err error) error {
	return &StorageError{Op: "save", Path: s.path, Err: err}
}

func (s *Store) restoreError(err error) error {
	return &StorageError{Op: "restore", Path: s.path, Err: err}
}

func (s *Store) listBackupsError(err error) error {
	return &StorageError{Op: "list-backups", Path: s.path, Err: err}
}
