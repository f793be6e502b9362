package workflow

import (
	"log/slog"

	"wordlist/internal/config"
	"wordlist/internal/history"
	"wordlist/internal/logging"
)

// Manager coordinates a single collect invocation.
type Manager struct {
	cfg    *config.Config
	store  *history.Store
	base   *slog.Logger
	logger *slog.Logger
}

// NewManager constructs a Manager. store may be nil, in which case no history
// is recorded.
func NewManager(cfg *config.Config, store *history.Store, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Manager{
		cfg:    cfg,
		store:  store,
		base:   logger,
		logger: logging.NewComponentLogger(logger, "workflow"),
	}
}

// Request describes the sources and output of one collection.
type Request struct {
	Books  []string
	Output string
	Sorted bool
}

// RequestFromConfig builds a Request for books using the configured output.
func RequestFromConfig(cfg *config.Config, books []string) Request {
	return Request{
		Books:  books,
		Output: cfg.Output.Path,
		Sorted: cfg.Output.Sorted,
	}
}
