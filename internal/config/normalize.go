package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeSources(); err != nil {
		return err
	}
	if err := c.normalizeOutput(); err != nil {
		return err
	}
	if err := c.normalizeHistory(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

// applyEnv replaces built-in defaults with environment values. It runs before
// the config file is decoded so that any value present in the file wins.
func (c *Config) applyEnv() {
	if value := strings.TrimSpace(os.Getenv("WORDLIST_SOURCES_DIR")); value != "" {
		c.Sources.Dir = value
	}
	if value := strings.TrimSpace(os.Getenv("WORDLIST_OUTPUT")); value != "" {
		c.Output.Path = value
	}
	if value := strings.TrimSpace(os.Getenv("WORDLIST_LOG_LEVEL")); value != "" {
		c.Logging.Level = value
	}
}

func (c *Config) normalizeSources() error {
	var err error
	if strings.TrimSpace(c.Sources.Dir) == "" {
		c.Sources.Dir = defaultSourcesDir
	}
	if c.Sources.Dir, err = expandPath(strings.TrimSpace(c.Sources.Dir)); err != nil {
		return fmt.Errorf("sources.dir: %w", err)
	}
	c.Sources.Encoding = strings.ToLower(strings.TrimSpace(c.Sources.Encoding))
	if c.Sources.Encoding == "" {
		c.Sources.Encoding = defaultSourceEncoding
	}
	return nil
}

func (c *Config) normalizeOutput() error {
	var err error
	if c.Output.Path, err = expandPath(strings.TrimSpace(c.Output.Path)); err != nil {
		return fmt.Errorf("output.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeHistory() error {
	var err error
	if strings.TrimSpace(c.History.Path) == "" {
		c.History.Path = defaultHistoryPath
	}
	if c.History.Path, err = expandPath(strings.TrimSpace(c.History.Path)); err != nil {
		return fmt.Errorf("history.path: %w", err)
	}
	if c.History.KeepRuns <= 0 {
		c.History.KeepRuns = defaultHistoryKeepRuns
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.Dir) != "" {
		var err error
		if c.Logging.Dir, err = expandPath(strings.TrimSpace(c.Logging.Dir)); err != nil {
			return fmt.Errorf("logging.dir: %w", err)
		}
	}
	return nil
}
