package preflight

import (
	"wordlist/internal/config"
	"wordlist/internal/textutil"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every applicable check for cfg and the given source
// filenames, in a stable order: encoding, sources directory, each source,
// output location, then history location when history is enabled.
func RunAll(cfg *config.Config, filenames []string) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	if _, err := textutil.LookupEncoding(cfg.Sources.Encoding); err != nil {
		results = append(results, Result{Name: "Source encoding", Detail: err.Error()})
	} else {
		results = append(results, Result{Name: "Source encoding", Passed: true, Detail: cfg.Sources.Encoding})
	}

	results = append(results, CheckReadableDirectory("Sources directory", cfg.Sources.Dir))
	for _, name := range filenames {
		results = append(results, CheckSourceFile(name, cfg.SourcePath(name)))
	}

	results = append(results, CheckWritableTarget("Output", cfg.Output.Path))
	if cfg.History.Enabled {
		results = append(results, CheckWritableTarget("History database", cfg.History.Path))
	}

	return results
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}
