package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"wordlist/internal/config"
	"wordlist/internal/history"
	"wordlist/internal/logging"
	"wordlist/internal/wordlist"
	"wordlist/internal/workflow"
)

type collectOptions struct {
	output    string
	dir       string
	unsorted  bool
	noHistory bool
}

func newCollectCommand(ctx *commandContext) *cobra.Command {
	var opts collectOptions

	cmd := &cobra.Command{
		Use:   "collect",
		Short: "Read every book and write the word list",
		Long: "Read the fixed list of books from the sources directory, extract and\n" +
			"normalize their words, and replace the output file with the union.\n" +
			"Nothing is written if any book is missing or unreadable.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			cfg, err := applyCollectOverrides(*base, opts)
			if err != nil {
				return err
			}

			logger, closeLog, err := ctx.logger()
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			var store *history.Store
			if cfg.History.Enabled {
				store, err = history.Open(cfg.History.Path)
				if err != nil {
					return err
				}
				defer func() {
					if err := store.Close(); err != nil {
						logger.Warn("failed to close history", logging.Error(err))
					}
				}()
			}

			mgr := workflow.NewManager(cfg, store, logger)
			summary, err := mgr.Collect(cmd.Context(), workflow.RequestFromConfig(cfg, wordlist.Books()))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			fmt.Fprintln(out, renderStatusLine("Collect", statusOK, "word list written", colorize))
			fmt.Fprintln(out, renderField("Output", summary.Output))
			fmt.Fprintln(out, renderField("Sources", strconv.Itoa(len(summary.Sources))))
			fmt.Fprintln(out, renderField("Tokens", strconv.Itoa(summary.Tokens)))
			fmt.Fprintln(out, renderField("Words", strconv.Itoa(summary.Words)))
			fmt.Fprintln(out, renderField("Duration", formatDuration(summary.Duration)))
			if summary.RunID != "" {
				fmt.Fprintln(out, renderField("Run ID", summary.RunID))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the word list here instead of output.path")
	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "", "Read books from this directory instead of sources.dir")
	cmd.Flags().BoolVar(&opts.unsorted, "unsorted", false, "Write words in set order instead of sorted")
	cmd.Flags().BoolVar(&opts.noHistory, "no-history", false, "Do not record this run in history")
	return cmd
}

// applyCollectOverrides returns a copy of cfg with the collect flags applied.
func applyCollectOverrides(cfg config.Config, opts collectOptions) (*config.Config, error) {
	if value := strings.TrimSpace(opts.output); value != "" {
		expanded, err := config.ExpandPath(value)
		if err != nil {
			return nil, fmt.Errorf("--output: %w", err)
		}
		cfg.Output.Path = expanded
	}
	if value := strings.TrimSpace(opts.dir); value != "" {
		expanded, err := config.ExpandPath(value)
		if err != nil {
			return nil, fmt.Errorf("--dir: %w", err)
		}
		cfg.Sources.Dir = expanded
	}
	if opts.unsorted {
		cfg.Output.Sorted = false
	}
	if opts.noHistory {
		cfg.History.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
