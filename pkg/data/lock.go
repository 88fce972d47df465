package data

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

var ErrLibraryLocked = errors.New("library is in use by another bookshelf session")

// LibraryLock keeps one process in charge of a library file for the length
// of a session.
type LibraryLock struct {
	lock *flock.Flock
}

// LockLibrary takes an exclusive lock on "<path>.lock" without blocking.
func LockLibrary(path string) (*LibraryLock, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create library directory: %w", err)
		}
	}

	lock := flock.New(path + ".lock")

	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire library lock: %w", err)
	}
	if !ok {
		return nil, ErrLibraryLocked
	}
	return &LibraryLock{lock: lock}, nil
}

func (l *LibraryLock) Path() string {
	return l.lock.Path()
}

func (l *LibraryLock) Unlock() error {
	return l.lock.Unlock()
}
