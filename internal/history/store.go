package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Begin records a new running run for the given output and source paths.
func (s *Store) Begin(ctx context.Context, outputPath string, sources []string) (*Run, error) {
	run := &Run{
		ID:          uuid.NewString(),
		Status:      StatusRunning,
		OutputPath:  outputPath,
		SourceCount: len(sources),
		StartedAt:   s.clock.Now().UTC(),
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO runs (id, status, output_path, source_count, started_at) VALUES (?, ?, ?, ?, ?)`,
			run.ID, string(run.Status), run.OutputPath, run.SourceCount, formatTime(run.StartedAt),
		); err != nil {
			return err
		}
		for i, path := range sources {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO run_sources (run_id, position, path) VALUES (?, ?, ?)`,
				run.ID, i, path,
			); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("begin run: %w", err)
	}
	return run, nil
}

// Finish marks the run as succeeded and stores per-source statistics. Stats
// are matched to the sources recorded by Begin through their Position.
func (s *Store) Finish(ctx context.Context, run *Run, stats []SourceStat, wordCount int) error {
	if run == nil {
		return errors.New("finish run: nil run")
	}
	finished := s.clock.Now().UTC()
	tokens := 0
	for _, stat := range stats {
		tokens += stat.Tokens
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE runs SET status = ?, token_count = ?, word_count = ?, error_message = NULL, finished_at = ? WHERE id = ?`,
			string(StatusSucceeded), tokens, wordCount, formatTime(finished), run.ID,
		)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return ErrNotFound
		}
		for _, stat := range stats {
			if _, err := tx.ExecContext(ctx,
				`UPDATE run_sources SET bytes = ?, tokens = ?, unique_words = ?, new_words = ? WHERE run_id = ? AND position = ?`,
				stat.Bytes, stat.Tokens, stat.UniqueWords, stat.NewWords, run.ID, stat.Position,
			); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("finish run %s: %w", run.ID, err)
	}

	run.Status = StatusSucceeded
	run.TokenCount = tokens
	run.WordCount = wordCount
	run.ErrorMessage = ""
	run.FinishedAt = &finished
	return nil
}

// Fail marks the run as failed with the message of cause.
func (s *Store) Fail(ctx context.Context, run *Run, cause error) error {
	if run == nil {
		return errors.New("fail run: nil run")
	}
	message := "unknown error"
	if cause != nil {
		message = cause.Error()
	}
	finished := s.clock.Now().UTC()

	res, err := s.execWithRetry(ctx,
		`UPDATE runs SET status = ?, error_message = ?, finished_at = ? WHERE id = ?`,
		string(StatusFailed), nullableString(message), formatTime(finished), run.ID,
	)
	if err != nil {
		return fmt.Errorf("fail run %s: %w", run.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("fail run %s: %w", run.ID, ErrNotFound)
	}

	run.Status = StatusFailed
	run.ErrorMessage = message
	run.FinishedAt = &finished
	return nil
}

// Get fetches a run by its full identifier.
func (s *Store) Get(ctx context.Context, id string) (*Run, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get run %s: %w", id, err)
	}
	return run, nil
}

// Resolve fetches a run by a full identifier or a unique prefix of one.
func (s *Store) Resolve(ctx context.Context, prefix string) (*Run, error) {
	ctx = ensureContext(ctx)
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return nil, ErrNotFound
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+runColumns+` FROM runs WHERE substr(id, 1, ?) = ? ORDER BY started_at DESC LIMIT 2`,
		len(prefix), prefix,
	)
	if err != nil {
		return nil, fmt.Errorf("resolve run %s: %w", prefix, err)
	}
	defer rows.Close()

	var matches []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	switch len(matches) {
	case 0:
		return nil, ErrNotFound
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrAmbiguousID, prefix)
	}
}

// List returns the most recent runs, newest first. A limit of zero or less
// returns every run.
func (s *Store) List(ctx context.Context, limit int) ([]*Run, error) {
	ctx = ensureContext(ctx)
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+runColumns+` FROM runs ORDER BY started_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Sources returns the per-source statistics of a run in collection order.
func (s *Store) Sources(ctx context.Context, id string) ([]SourceStat, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx,
		`SELECT position, path, bytes, tokens, unique_words, new_words FROM run_sources WHERE run_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("list run sources: %w", err)
	}
	defer rows.Close()

	var stats []SourceStat
	for rows.Next() {
		var stat SourceStat
		if err := rows.Scan(&stat.Position, &stat.Path, &stat.Bytes, &stat.Tokens, &stat.UniqueWords, &stat.NewWords); err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}
	return stats, rows.Err()
}

// Prune deletes all but the keep most recent runs and returns how many were
// removed. Running runs are never pruned.
func (s *Store) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		return 0, fmt.Errorf("prune runs: keep must be >= 0, got %d", keep)
	}
	var removed int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		const victims = `SELECT id FROM runs WHERE status != ? AND id NOT IN (
			SELECT id FROM runs ORDER BY started_at DESC, rowid DESC LIMIT ?)`
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM run_sources WHERE run_id IN (`+victims+`)`, string(StatusRunning), keep); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx,
			`DELETE FROM runs WHERE id IN (`+victims+`)`, string(StatusRunning), keep)
		if err != nil {
			return err
		}
		removed, _ = res.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("prune runs: %w", err)
	}
	return removed, nil
}
