package history

import "time"

// Status is the lifecycle state of a run.
type Status string

const (
	StatusRunning   Status = "running"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Run is one collection attempt.
type Run struct {
	ID           string
	Status       Status
	OutputPath   string
	SourceCount  int
	TokenCount   int
	WordCount    int
	ErrorMessage string
	StartedAt    time.Time
	FinishedAt   *time.Time
}

// Duration returns how long the run took, or zero while it is still running.
func (r *Run) Duration() time.Duration {
	if r == nil || r.FinishedAt == nil {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// SourceStat is what one source contributed to a run.
type SourceStat struct {
	Position    int
	Path        string
	Bytes       int64
	Tokens      int
	UniqueWords int
	NewWords    int
}
