// Package store provides durable, crash-safe persistence for a task
// list: a single JSON document written with a temp-file-plus-rename
// atomic replace, plus timestamped rotating backups.
//
// A crash mid-write never corrupts the live file: the previous content
// stays untouched until the atomic rename succeeds. Backups give a
// recovery window beyond the in-process undo log.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/amonks/todo/task"
)

const (
	// SchemaVersion tags every persisted document.
	SchemaVersion = "1.0.0"

	// BackupDirName is the backup subdirectory next to the tasks file.
	BackupDirName = "backups"

	// maxBackups bounds how many backups are retained per file.
	maxBackups = 10

	// backupTimestampLayout names backups with one-second resolution.
	// Lexical order of these names is chronological order.
	backupTimestampLayout = "2006-01-02_15-04-05"
)

// Document is the persisted form of a task list.
type Document struct {
	Version      string      `json:"version"`
	LastModified time.Time   `json:"last_modified"`
	NextID       int         `json:"next_id"`
	Tasks        []task.Task `json:"tasks"`
}

// Store persists a task list to a single file.
type Store struct {
	path      string
	backupDir string
	backups   bool
	now       func() time.Time
}

// Options configures a Store.
type Options struct {
	// DisableBackups skips the backup-before-write step on save.
	DisableBackups bool
}

// New returns a store for the tasks file at path. Backups live in a
// "backups" directory next to the file.
func New(path string, opts Options) *Store {
	return &Store{
		path:      path,
		backupDir: filepath.Join(filepath.Dir(path), BackupDirName),
		backups:   !opts.DisableBackups,
		now:       time.Now,
	}
}

// Path returns the tasks file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the task list from disk. A missing file is not an error:
// it loads as a fresh empty list. A file that exists but cannot be
// parsed or fails schema validation surfaces a StorageError carrying
// the cause; Load never returns a partially-populated list.
func (s *Store) Load() (*task.List, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return task.NewList(), nil
	}
	if err != nil {
		return nil, s.loadError(err)
	}

	if err := validateDocument(data); err != nil {
		return nil, s.loadError(err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, s.loadError(fmt.Errorf("decode document: %w", err))
	}

	list := &task.List{Tasks: doc.Tasks, NextID: doc.NextID}
	if list.NextID < 1 {
		list.NextID = 1
	}
	return list, nil
}

// Save writes the task list to disk. When backups are enabled and a
// current file exists, it is first copied into the backup directory and
// old backups are pruned to the 10 most recent. The document is then
// written to a temp file in the target's directory and atomically
// renamed over the target, so no reader ever observes a partial file.
func (s *Store) Save(list *task.List) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return s.saveError(fmt.Errorf("create data dir: %w", err))
	}

	now := s.now()
	if s.backups {
		if err := s.createBackup(now); err != nil {
			return s.saveError(err)
		}
	}

	doc := Document{
		Version:      SchemaVersion,
		LastModified: now,
		NextID:       list.NextID,
		Tasks:        list.All(),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return s.saveError(fmt.Errorf("encode document: %w", err))
	}

	if err := writeFileAtomic(s.path, data); err != nil {
		return s.saveError(err)
	}
	return nil
}

// ListBackups returns the backup timestamps for the tasks file in
// chronological order. A missing backup directory means no backups.
func (s *Store) ListBackups() ([]string, error) {
	names, err := s.backupNames()
	if err != nil {
		return nil, s.listBackupsError(err)
	}

	prefix := filepath.Base(s.path) + "."
	stamps := make([]string, 0, len(names))
	for _, name := range names {
		stamps = append(stamps, strings.TrimPrefix(name, prefix))
	}
	return stamps, nil
}

// RestoreBackup copies the backup with the given timestamp over the
// live tasks file. Restoring does not back up the pre-restore state;
// callers who need that must save first.
func (s *Store) RestoreBackup(timestamp string) error {
	src := filepath.Join(s.backupDir, filepath.Base(s.path)+"."+timestamp)
	data, err := os.ReadFile(src)
	if errors.Is(err, os.ErrNotExist) {
		return s.restoreError(fmt.Errorf("%w: %s", ErrBackupNotFound, timestamp))
	}
	if err != nil {
		return s.restoreError(err)
	}

	if err := writeFileAtomic(s.path, data); err != nil {
		return s.restoreError(err)
	}
	return nil
}

// createBackup copies the current file into the backup directory under
// a timestamped name, then prunes old backups. A missing current file
// means there is nothing to back up.
func (s *Store) createBackup(now time.Time) error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read current file: %w", err)
	}

	if err := os.MkdirAll(s.backupDir, 0o755); err != nil {
		return fmt.Errorf("create backup dir: %w", err)
	}

	name := filepath.Base(s.path) + "." + now.Format(backupTimestampLayout)
	if err := os.WriteFile(filepath.Join(s.backupDir, name), data, 0o644); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}

	return s.pruneBackups()
}

// pruneBackups deletes the oldest backups until at most maxBackups
// remain for this file.
func (s *Store) pruneBackups() error {
	names, err := s.backupNames()
	if err != nil {
		return err
	}

	for len(names) > maxBackups {
		if err := os.Remove(filepath.Join(s.backupDir, names[0])); err != nil {
			return fmt.Errorf("prune backup: %w", err)
		}
		names = names[1:]
	}
	return nil
}

// backupNames returns this file's backup names sorted oldest first.
func (s *Store) backupNames() ([]string, error) {
	entries, err := os.ReadDir(s.backupDir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read backup dir: %w", err)
	}

	prefix := filepath.Base(s.path) + "."
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// writeFileAtomic writes data to a temp file in the target's directory
// (same filesystem, so the rename is atomic), then renames it over the
// target. The temp file is removed on every failure path.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
