package wordlist

import (
	"context"
	"fmt"

	"wordlist/internal/fileutil"
)

// Job describes one collect-then-write pass.
type Job struct {
	Sources []string
	Output  string
	Sorted  bool
}

// Run collects every source of job and writes the word list to job.Output.
// The output is only touched once every source has been read.
func (c *Collector) Run(ctx context.Context, job Job) (*Result, error) {
	if job.Output == "" {
		return nil, fmt.Errorf("output path is required")
	}
	result, err := c.Collect(ctx, job.Sources)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := WriteList(job.Output, result.Words.Words(job.Sorted)); err != nil {
		return nil, err
	}
	return result, nil
}

// WriteList writes one word per line, each followed by a newline, replacing
// path atomically.
func WriteList(path string, words []string) error {
	if err := fileutil.WriteLinesAtomic(path, words, 0o644); err != nil {
		return fmt.Errorf("write word list: %w", err)
	}
	return nil
}
