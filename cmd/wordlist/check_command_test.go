package main

import (
	"testing"

	"wordlist/internal/testsupport"
)

func TestCheckReportsMissingBooks(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteBooks(t, env.cfg, map[string]string{"alice.txt": "Alice"})

	out, _, err := runCLI(t, []string{"check"}, env.configPath)
	if err == nil {
		t.Fatal("expected check to fail with missing books")
	}
	requireContains(t, out, "does not exist")
	requireContains(t, out, "[ERROR]")
}

func TestCheckPasses(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteDefaultBooks(t, env.cfg)

	out, _, err := runCLI(t, []string{"check"}, env.configPath)
	if err != nil {
		t.Fatalf("check: %v\n%s", err, out)
	}
	requireContains(t, out, "[OK] all 14 checks passed")
}
