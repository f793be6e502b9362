package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"wordlist/internal/config"
	"wordlist/internal/wordlist"
)

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteBooks writes each name/content pair into the config's sources directory.
func WriteBooks(t testing.TB, cfg *config.Config, books map[string]string) {
	t.Helper()

	for name, content := range books {
		WriteFile(t, cfg.SourcePath(name), content)
	}
}

// WriteDefaultBooks writes every book in wordlist.DefaultBooks. Book i contains
// "Shared words" plus one word unique to it, so a full collection yields
// "shared", "words" and one extra word per book.
func WriteDefaultBooks(t testing.TB, cfg *config.Config) []string {
	t.Helper()

	books := wordlist.Books()
	for i, name := range books {
		WriteFile(t, cfg.SourcePath(name), fmt.Sprintf("Shared words. Book-%s!\n", bookWord(i)))
	}
	return books
}

func bookWord(i int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	return string(letters[i%len(letters)]) + "x"
}
