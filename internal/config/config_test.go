package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"wordlist/internal/config"
)

func isolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("WORDLIST_SOURCES_DIR", "")
	t.Setenv("WORDLIST_OUTPUT", "")
	t.Setenv("WORDLIST_LOG_LEVEL", "")
	return home
}

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	home := isolateEnv(t)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved != filepath.Join(home, ".config", "wordlist", "config.toml") {
		t.Fatalf("unexpected resolved path %q", resolved)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if cfg.Sources.Dir != cwd {
		t.Fatalf("unexpected sources dir: got %q want %q", cfg.Sources.Dir, cwd)
	}
	if cfg.Output.Path != filepath.Join(cwd, "word_list.txt") {
		t.Fatalf("unexpected output path: %q", cfg.Output.Path)
	}
	if !cfg.Output.Sorted {
		t.Fatal("expected sorted output by default")
	}
	if cfg.Sources.Encoding != "utf-8" {
		t.Fatalf("unexpected encoding %q", cfg.Sources.Encoding)
	}
	wantHistory := filepath.Join(home, ".local", "share", "wordlist", "history.db")
	if cfg.History.Path != wantHistory {
		t.Fatalf("unexpected history path: got %q want %q", cfg.History.Path, wantHistory)
	}
	if cfg.History.KeepRuns != config.Default().History.KeepRuns {
		t.Fatalf("unexpected keep runs %d", cfg.History.KeepRuns)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolateEnv(t)
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "wordlist.toml")

	custom := config.Default()
	custom.Sources.Dir = filepath.Join(tempDir, "books")
	custom.Sources.Encoding = "Latin1"
	custom.Output.Path = filepath.Join(tempDir, "out", "words.txt")
	custom.Output.Sorted = false
	custom.History.Enabled = false
	custom.Logging.Format = "JSON"
	custom.Logging.Level = "DEBUG"

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected custom path to be used, got %q (exists=%v)", resolved, exists)
	}
	if cfg.Sources.Dir != filepath.Join(tempDir, "books") {
		t.Fatalf("unexpected sources dir %q", cfg.Sources.Dir)
	}
	if cfg.Sources.Encoding != "latin1" {
		t.Fatalf("expected encoding to be lowercased, got %q", cfg.Sources.Encoding)
	}
	if cfg.Output.Sorted {
		t.Fatal("expected sorted=false from file")
	}
	if cfg.History.Enabled {
		t.Fatal("expected history disabled from file")
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging: %+v", cfg.Logging)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	if info, err := os.Stat(filepath.Join(tempDir, "out")); err != nil || !info.IsDir() {
		t.Fatalf("expected output directory to be created: %v", err)
	}
	if _, err := os.Stat(filepath.Join(tempDir, "books")); !os.IsNotExist(err) {
		t.Fatalf("sources directory must not be created, stat err=%v", err)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	isolateEnv(t)
	configPath := filepath.Join(t.TempDir(), "wordlist.toml")
	if err := os.WriteFile(configPath, []byte("[sources]\nfiles = [\"a.txt\"]\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected unknown key to be rejected")
	}
}

func TestEnvironmentFillsDefaults(t *testing.T) {
	isolateEnv(t)
	base := t.TempDir()
	t.Setenv("WORDLIST_SOURCES_DIR", filepath.Join(base, "books"))
	t.Setenv("WORDLIST_OUTPUT", filepath.Join(base, "words.txt"))
	t.Setenv("WORDLIST_LOG_LEVEL", "warn")

	cfg, _, _, err := config.Load(filepath.Join(base, "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Sources.Dir != filepath.Join(base, "books") {
		t.Fatalf("unexpected sources dir %q", cfg.Sources.Dir)
	}
	if cfg.Output.Path != filepath.Join(base, "words.txt") {
		t.Fatalf("unexpected output %q", cfg.Output.Path)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("unexpected level %q", cfg.Logging.Level)
	}
}

func TestEnvironmentDoesNotOverrideFile(t *testing.T) {
	base := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	fileOutput := filepath.Join(base, "from-file.txt")

	tests := []struct {
		name      string
		content   string
		wantOut   string
		wantLevel string
	}{
		{
			name:      "custom file value",
			content:   "[output]\npath = \"" + filepath.ToSlash(fileOutput) + "\"\n",
			wantOut:   fileOutput,
			wantLevel: "warn",
		},
		{
			name:      "file value equal to default",
			content:   "[output]\npath = \"word_list.txt\"\n[logging]\nlevel = \"info\"\n",
			wantOut:   filepath.Join(cwd, "word_list.txt"),
			wantLevel: "info",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)
			configPath := filepath.Join(t.TempDir(), "wordlist.toml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			t.Setenv("WORDLIST_OUTPUT", filepath.Join(base, "from-env.txt"))
			t.Setenv("WORDLIST_LOG_LEVEL", "warn")

			cfg, _, _, err := config.Load(configPath)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if cfg.Output.Path != tt.wantOut {
				t.Fatalf("expected file value to win, got %q want %q", cfg.Output.Path, tt.wantOut)
			}
			if cfg.Logging.Level != tt.wantLevel {
				t.Fatalf("unexpected level %q want %q", cfg.Logging.Level, tt.wantLevel)
			}
		})
	}
}

func TestValidateErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{
			name:    "empty output",
			mutate:  func(c *config.Config) { c.Output.Path = "" },
			wantErr: "output.path must be set",
		},
		{
			name:    "output is directory",
			mutate:  func(c *config.Config) { c.Output.Path = dir },
			wantErr: "is a directory",
		},
		{
			name:    "unknown encoding",
			mutate:  func(c *config.Config) { c.Sources.Encoding = "ebcdic" },
			wantErr: "sources.encoding",
		},
		{
			name:    "history collides with output",
			mutate:  func(c *config.Config) { c.History.Path = c.Output.Path },
			wantErr: "history.path must differ",
		},
		{
			name:    "unknown level",
			mutate:  func(c *config.Config) { c.Logging.Level = "verbose" },
			wantErr: "logging.level",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Sources.Dir = dir
			cfg.Output.Path = filepath.Join(dir, "words.txt")
			cfg.History.Path = filepath.Join(dir, "history.db")
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected error containing %q", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestSourcePath(t *testing.T) {
	cfg := config.Default()
	cfg.Sources.Dir = filepath.Join(string(filepath.Separator), "srv", "books")

	if got := cfg.SourcePath("Frankenstein.txt"); got != filepath.Join(cfg.Sources.Dir, "Frankenstein.txt") {
		t.Fatalf("unexpected relative resolution %q", got)
	}
	abs := filepath.Join(string(filepath.Separator), "tmp", "x.txt")
	if got := cfg.SourcePath(abs); got != abs {
		t.Fatalf("absolute path should be unchanged, got %q", got)
	}
}

func TestCreateSampleLoads(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config should load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if !strings.HasSuffix(cfg.Output.Path, "word_list.txt") {
		t.Fatalf("unexpected sample output path %q", cfg.Output.Path)
	}
}
