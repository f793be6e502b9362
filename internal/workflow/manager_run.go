package workflow

import (
	"context"
	"fmt"
	"time"

	"wordlist/internal/history"
	"wordlist/internal/logging"
	"wordlist/internal/runlock"
	"wordlist/internal/textutil"
	"wordlist/internal/wordlist"
)

// Collect runs req to completion. The output file is only replaced when every
// source was read successfully.
func (m *Manager) Collect(ctx context.Context, req Request) (*Summary, error) {
	started := time.Now()

	if err := m.cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}
	enc, err := textutil.LookupEncoding(m.cfg.Sources.Encoding)
	if err != nil {
		return nil, err
	}

	lock, err := runlock.Acquire(req.Output)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			m.logger.Warn("failed to release output lock", logging.Error(err))
		}
	}()

	sources := make([]string, 0, len(req.Books))
	for _, name := range req.Books {
		sources = append(sources, m.cfg.SourcePath(name))
	}

	var run *history.Run
	if m.store != nil {
		run, err = m.store.Begin(ctx, req.Output, sources)
		if err != nil {
			return nil, err
		}
		ctx = logging.WithRunID(ctx, run.ID)
	}
	logger := logging.WithContext(ctx, m.logger)
	logger.Info("collection started",
		logging.String("output", req.Output),
		logging.Int("sources", len(sources)),
	)

	collector := wordlist.NewCollector(
		wordlist.WithLogger(m.base),
		wordlist.WithEncoding(enc),
	)
	result, err := collector.Run(ctx, wordlist.Job{
		Sources: sources,
		Output:  req.Output,
		Sorted:  req.Sorted,
	})
	if err != nil {
		m.recordFailure(ctx, run, err)
		return nil, err
	}

	summary := &Summary{
		Output:   req.Output,
		Words:    result.Words.Len(),
		Tokens:   result.Tokens(),
		Sources:  result.Sources,
		Duration: time.Since(started),
	}
	if run != nil {
		summary.RunID = run.ID
		if err := m.store.Finish(ctx, run, sourceStats(result.Sources), summary.Words); err != nil {
			return nil, err
		}
		m.prune(ctx)
	}

	logger.Info("collection finished",
		logging.String("output", req.Output),
		logging.Int("words", summary.Words),
		logging.Duration("duration", summary.Duration),
	)
	return summary, nil
}

func (m *Manager) prune(ctx context.Context) {
	keep := m.cfg.History.KeepRuns
	if keep <= 0 {
		return
	}
	removed, err := m.store.Prune(ctx, keep)
	if err != nil {
		logging.WithContext(ctx, m.logger).Warn("history prune failed", logging.Error(err))
		return
	}
	if removed > 0 {
		logging.WithContext(ctx, m.logger).Debug("history pruned", logging.Int64("removed", removed))
	}
}
