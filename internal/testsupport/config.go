package testsupport

import (
	"path/filepath"
	"testing"

	"wordlist/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// Sources live in <base>/books, the output in <base>/out and the history
// database in <base>/state. Logging goes to the console only.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Sources.Dir = filepath.Join(base, "books")
	cfgVal.Output.Path = filepath.Join(base, "out", "word_list.txt")
	cfgVal.History.Path = filepath.Join(base, "state", "history.db")
	cfgVal.Logging.Dir = ""

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithoutHistory disables the run ledger on the test config.
func WithoutHistory() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.History.Enabled = false
	}
}

// WithEncoding sets the source encoding on the test config.
func WithEncoding(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Sources.Encoding = name
	}
}

// WithLogDir enables the JSON log file under <base>/logs.
func WithLogDir() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.Dir = filepath.Join(b.baseDir, "logs")
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Sources.Dir)
}
