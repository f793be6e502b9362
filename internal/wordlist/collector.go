package wordlist

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding"

	"wordlist/internal/logging"
	"wordlist/internal/textutil"
)

// SourceStats summarizes what one source contributed.
type SourceStats struct {
	Path        string
	Bytes       int64
	Tokens      int
	UniqueWords int
	NewWords    int
}

// Result is the outcome of a successful Collect.
type Result struct {
	Words   Set
	Sources []SourceStats
}

// Tokens returns the number of raw tokens seen across all sources.
func (r *Result) Tokens() int {
	total := 0
	for _, s := range r.Sources {
		total += s.Tokens
	}
	return total
}

// Collector reads sources sequentially and accumulates their words.
type Collector struct {
	logger   *slog.Logger
	encoding encoding.Encoding
	baseDir  string
}

// Option configures a Collector.
type Option func(*Collector)

// WithLogger sets the logger used for per-source progress.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Collector) {
		c.logger = logger
	}
}

// WithEncoding sets the text encoding of the sources. The default is UTF-8.
func WithEncoding(enc encoding.Encoding) Option {
	return func(c *Collector) {
		c.encoding = enc
	}
}

// WithBaseDir resolves relative source names against dir.
func WithBaseDir(dir string) Option {
	return func(c *Collector) {
		c.baseDir = dir
	}
}

// NewCollector constructs a Collector.
func NewCollector(opts ...Option) *Collector {
	c := &Collector{}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = logging.NewComponentLogger(c.logger, "collector")
	return c
}

func (c *Collector) resolve(name string) string {
	if c.baseDir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.baseDir, name)
}

// CollectFile reads a single source and returns its normalized words.
func (c *Collector) CollectFile(ctx context.Context, name string) (Set, SourceStats, error) {
	path := c.resolve(name)
	stats := SourceStats{Path: path}

	if err := ctx.Err(); err != nil {
		return nil, stats, err
	}

	data, err := readAll(path)
	if err != nil {
		return nil, stats, err
	}
	stats.Bytes = int64(len(data))

	text, err := textutil.Decode(c.encoding, data)
	if err != nil {
		return nil, stats, &SourceError{Path: path, Op: "decode", Err: err}
	}

	normalized := Words(text)
	stats.Tokens = len(normalized)
	words := make(Set, len(normalized))
	for _, word := range normalized {
		words.Add(word)
	}
	stats.UniqueWords = words.Len()

	logging.WithContext(ctx, c.logger).Debug("source read",
		logging.String(logging.FieldSource, path),
		logging.Int64("bytes", stats.Bytes),
		logging.Int("tokens", stats.Tokens),
		logging.Int("unique_words", stats.UniqueWords),
	)
	return words, stats, nil
}

// readAll opens, reads, and closes path. The handle is released on every return.
func readAll(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceError{Path: path, Op: "open", Err: err}
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, &SourceError{Path: path, Op: "read", Err: err}
	}
	return data, nil
}

// Collect reads every filename in order and unions their words. It stops at
// the first failure and returns no partial result.
func (c *Collector) Collect(ctx context.Context, filenames []string) (*Result, error) {
	if len(filenames) == 0 {
		return nil, ErrNoSources
	}

	result := &Result{
		Words:   make(Set),
		Sources: make([]SourceStats, 0, len(filenames)),
	}
	for _, name := range filenames {
		words, stats, err := c.CollectFile(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("collect words: %w", err)
		}
		stats.NewWords = result.Words.Union(words)
		result.Sources = append(result.Sources, stats)
	}

	logging.WithContext(ctx, c.logger).Info("collected word list",
		logging.Int("sources", len(result.Sources)),
		logging.Int("tokens", result.Tokens()),
		logging.Int("words", result.Words.Len()),
	)
	return result, nil
}
