package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"wordlist/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect and prune recorded collection runs",
	}

	historyCmd.AddCommand(newHistoryListCommand(ctx))
	historyCmd.AddCommand(newHistoryShowCommand(ctx))
	historyCmd.AddCommand(newHistoryPruneCommand(ctx))

	return historyCmd
}

func newHistoryListCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openHistory()
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					shortID(run.ID),
					formatTimestamp(run.StartedAt),
					string(run.Status),
					strconv.Itoa(run.SourceCount),
					strconv.Itoa(run.WordCount),
					formatDuration(run.Duration()),
					run.OutputPath,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Run", "Started", "Status", "Sources", "Words", "Duration", "Output"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft},
				shouldColorize(out),
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to show (0 for all)")
	return cmd
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show RUN_ID",
		Short: "Show one run and its per-source statistics",
		Long:  "Show one run. RUN_ID may be the full identifier or any unique prefix of it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openHistory()
			if err != nil {
				return err
			}
			defer store.Close()

			run, err := store.Resolve(cmd.Context(), args[0])
			if errors.Is(err, history.ErrNotFound) {
				return fmt.Errorf("run %s not found", args[0])
			}
			if err != nil {
				return err
			}
			sources, err := store.Sources(cmd.Context(), run.ID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			for _, line := range renderSectionHeader("Run "+run.ID, colorize) {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out, renderStatusLine("Status", runStatusKind(run.Status), string(run.Status), colorize))
			fmt.Fprintln(out, renderField("Started", formatTimestamp(run.StartedAt)))
			if run.FinishedAt != nil {
				fmt.Fprintln(out, renderField("Finished", formatTimestamp(*run.FinishedAt)))
			}
			fmt.Fprintln(out, renderField("Duration", formatDuration(run.Duration())))
			fmt.Fprintln(out, renderField("Output", run.OutputPath))
			fmt.Fprintln(out, renderField("Tokens", strconv.Itoa(run.TokenCount)))
			fmt.Fprintln(out, renderField("Words", strconv.Itoa(run.WordCount)))
			if run.ErrorMessage != "" {
				fmt.Fprintln(out, renderField("Error", run.ErrorMessage))
			}

			if len(sources) == 0 {
				return nil
			}
			fmt.Fprintln(out)
			for _, line := range renderSectionHeader("Sources", colorize) {
				fmt.Fprintln(out, line)
			}
			rows := make([][]string, 0, len(sources))
			for _, s := range sources {
				rows = append(rows, []string{
					s.Path,
					strconv.FormatInt(s.Bytes, 10),
					strconv.Itoa(s.Tokens),
					strconv.Itoa(s.UniqueWords),
					strconv.Itoa(s.NewWords),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Source", "Bytes", "Tokens", "Unique", "New"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight},
				colorize,
			))
			return nil
		},
	}
}

func newHistoryPruneCommand(ctx *commandContext) *cobra.Command {
	var keep int

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete all but the most recent finished runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("keep") {
				keep = cfg.History.KeepRuns
			}
			store, err := ctx.openHistory()
			if err != nil {
				return err
			}
			defer store.Close()

			removed, err := store.Prune(cmd.Context(), keep)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Pruned %d run(s), keeping the %d most recent\n", removed, keep)
			return nil
		},
	}

	cmd.Flags().IntVar(&keep, "keep", 0, "Number of runs to keep (default history.keep_runs)")
	return cmd
}

func runStatusKind(status history.Status) statusKind {
	switch status {
	case history.StatusSucceeded:
		return statusOK
	case history.StatusFailed:
		return statusError
	case history.StatusRunning:
		return statusWarn
	default:
		return statusInfo
	}
}
