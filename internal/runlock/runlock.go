// Package runlock prevents two collections from writing the same word list at
// once.
package runlock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another process holds the lock for an output.
var ErrLocked = errors.New("another collection is writing this output")

// Lock is an advisory lock held on <output>.lock.
type Lock struct {
	path string
	lock *flock.Flock
}

// PathFor returns the lock file path guarding outputPath.
func PathFor(outputPath string) string {
	return outputPath + ".lock"
}

// Acquire takes the lock for outputPath without blocking.
func Acquire(outputPath string) (*Lock, error) {
	lockPath := PathFor(outputPath)
	if dir := filepath.Dir(lockPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure lock dir: %w", err)
		}
	}

	fl := flock.New(lockPath)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, lockPath)
	}
	return &Lock{path: lockPath, lock: fl}, nil
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Release unlocks the lock. The lock file stays on disk so every process
// locks the same inode. It is safe to call more than once.
func (l *Lock) Release() error {
	if l == nil || l.lock == nil || !l.lock.Locked() {
		return nil
	}
	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("release lock: %w", err)
	}
	return nil
}
