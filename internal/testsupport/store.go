package testsupport

import (
	"testing"

	"wordlist/internal/config"
	"wordlist/internal/history"
)

// MustOpenStore opens the history database named by cfg and closes it when
// the test finishes.
func MustOpenStore(t testing.TB, cfg *config.Config) *history.Store {
	t.Helper()

	store, err := history.Open(cfg.History.Path)
	if err != nil {
		t.Fatalf("history.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}
