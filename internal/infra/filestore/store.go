// Package filestore provides a file-based implementation of DocumentStore.
package filestore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"
	"unicode/utf8"

	"github.com/runoshun/tasksplit/internal/domain"
)

// Ensure Store implements domain.DocumentStore.
var _ domain.DocumentStore = (*Store)(nil)

// Store reads and writes whole documents on the local filesystem.
// Writes hold an exclusive flock on the target file until the new
// content is flushed.
type Store struct {
	perm os.FileMode
}

// New creates a new Store.
func New() *Store {
	return &Store{perm: 0o644}
}

// Read returns the full text of the document at path.
func (s *Store) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", domain.ErrSourceNotFound, path)
		}
		return "", fmt.Errorf("read document: %w", err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidEncoding, path)
	}
	return string(data), nil
}

// Write replaces the document at path with text, creating parent directories.
func (s *Store) Write(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create document directory: %w", err)
	}

	return s.withLockWrite(path, func(f *os.File) error {
		if err := f.Truncate(0); err != nil {
			return fmt.Errorf("truncate %s: %w", path, err)
		}
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return fmt.Errorf("seek %s: %w", path, err)
		}
		if _, err := io.WriteString(f, text); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		if err := f.Sync(); err != nil {
			return fmt.Errorf("sync %s: %w", path, err)
		}
		return nil
	})
}

func (s *Store) withLockWrite(path string, fn func(f *os.File) error) error {
	// The file is opened without O_TRUNC so its content is only cleared once the lock is held.
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, s.perm) //nolint:gosec // Path comes from user configuration
	if err != nil {
		return fmt.Errorf("open document: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer func() { _ = syscall.Flock(int(f.Fd()), syscall.LOCK_UN) }()

	return fn(f)
}
