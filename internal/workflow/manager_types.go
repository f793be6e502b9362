package workflow

import (
	"time"

	"wordlist/internal/history"
	"wordlist/internal/wordlist"
)

// Summary describes a completed collection.
type Summary struct {
	RunID    string
	Output   string
	Words    int
	Tokens   int
	Sources  []wordlist.SourceStats
	Duration time.Duration
}

func sourceStats(stats []wordlist.SourceStats) []history.SourceStat {
	out := make([]history.SourceStat, 0, len(stats))
	for i, s := range stats {
		out = append(out, history.SourceStat{
			Position:    i,
			Path:        s.Path,
			Bytes:       s.Bytes,
			Tokens:      s.Tokens,
			UniqueWords: s.UniqueWords,
			NewWords:    s.NewWords,
		})
	}
	return out
}
