package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"wordlist/internal/textutil"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSources(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateHistory(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateSources() error {
	if strings.TrimSpace(c.Sources.Dir) == "" {
		return errors.New("sources.dir must be set")
	}
	if _, err := textutil.LookupEncoding(c.Sources.Encoding); err != nil {
		return fmt.Errorf("sources.encoding: %w", err)
	}
	return nil
}

func (c *Config) validateOutput() error {
	if strings.TrimSpace(c.Output.Path) == "" {
		return errors.New("output.path must be set")
	}
	if info, err := os.Stat(c.Output.Path); err == nil && info.IsDir() {
		return fmt.Errorf("output.path %s is a directory", c.Output.Path)
	}
	return nil
}

func (c *Config) validateHistory() error {
	if !c.History.Enabled {
		return nil
	}
	if strings.TrimSpace(c.History.Path) == "" {
		return errors.New("history.path must be set when history.enabled is true")
	}
	if c.History.Path == c.Output.Path {
		return errors.New("history.path must differ from output.path")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q (use debug, info, warn, or error)", c.Logging.Level)
	}
}
