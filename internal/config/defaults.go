package config

const (
	defaultSourcesDir      = "."
	defaultSourceEncoding  = "utf-8"
	defaultOutputPath      = "word_list.txt"
	defaultOutputSorted    = true
	defaultHistoryEnabled  = true
	defaultHistoryPath     = "~/.local/share/wordlist/history.db"
	defaultHistoryKeepRuns = 200
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Sources: Sources{
			Dir:      defaultSourcesDir,
			Encoding: defaultSourceEncoding,
		},
		Output: Output{
			Path:   defaultOutputPath,
			Sorted: defaultOutputSorted,
		},
		History: History{
			Enabled:  defaultHistoryEnabled,
			Path:     defaultHistoryPath,
			KeepRuns: defaultHistoryKeepRuns,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
