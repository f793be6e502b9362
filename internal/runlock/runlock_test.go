package runlock_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"wordlist/internal/runlock"
)

func TestAcquireExclusive(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out", "word_list.txt")

	first, err := runlock.Acquire(output)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if first.Path() != output+".lock" {
		t.Fatalf("lock path = %q", first.Path())
	}

	if _, err := runlock.Acquire(output); !errors.Is(err, runlock.ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}

	if err := first.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if err := first.Release(); err != nil {
		t.Fatalf("second Release: %v", err)
	}
	if _, err := os.Stat(first.Path()); err != nil {
		t.Fatalf("expected lock file kept after release: %v", err)
	}

	second, err := runlock.Acquire(output)
	if err != nil {
		t.Fatalf("Acquire after release: %v", err)
	}
	defer second.Release()
}

func TestNilLockRelease(t *testing.T) {
	var l *runlock.Lock
	if err := l.Release(); err != nil {
		t.Fatalf("nil Release: %v", err)
	}
	if l.Path() != "" {
		t.Fatal("nil lock should have empty path")
	}
}
