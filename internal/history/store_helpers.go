package history

import (
	"database/sql"
	"time"
)

const runColumns = "id, status, output_path, source_count, token_count, word_count, error_message, started_at, finished_at"

func scanRun(scanner interface{ Scan(dest ...any) error }) (*Run, error) {
	var (
		id           string
		statusStr    string
		outputPath   string
		sourceCount  int
		tokenCount   int
		wordCount    int
		errorMessage sql.NullString
		startedRaw   string
		finishedRaw  sql.NullString
	)
	if err := scanner.Scan(
		&id,
		&statusStr,
		&outputPath,
		&sourceCount,
		&tokenCount,
		&wordCount,
		&errorMessage,
		&startedRaw,
		&finishedRaw,
	); err != nil {
		return nil, err
	}

	run := &Run{
		ID:           id,
		Status:       Status(statusStr),
		OutputPath:   outputPath,
		SourceCount:  sourceCount,
		TokenCount:   tokenCount,
		WordCount:    wordCount,
		ErrorMessage: errorMessage.String,
	}
	if started, err := parseTimeString(startedRaw); err == nil {
		run.StartedAt = started
	}
	if finishedRaw.Valid {
		if finished, err := parseTimeString(finishedRaw.String); err == nil {
			run.FinishedAt = &finished
		}
	}
	return run, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func formatTime(value time.Time) string {
	return value.UTC().Format(time.RFC3339Nano)
}

func parseTimeString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if ts, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return ts, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}
