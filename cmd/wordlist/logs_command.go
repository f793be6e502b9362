package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"wordlist/internal/logging"
	"wordlist/internal/logs"
)

func newLogsCommand(ctx *commandContext) *cobra.Command {
	var lines int
	var runID string
	var raw bool

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show recent entries from the JSON log file",
		Long: "Show recent entries from <logging.dir>/wordlist.log. With --run, only\n" +
			"entries logged during that collection run are shown.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path := logging.FilePath(cfg.Logging.Dir)
			if path == "" {
				return errors.New("no log file configured (set logging.dir)")
			}

			limit := lines
			if runID != "" {
				// The run's entries may be anywhere in the file.
				limit = 0
			}
			entries, err := logs.Tail(path, limit)
			if err != nil {
				return err
			}
			entries = logs.FilterRun(entries, runID)
			if runID != "" && lines > 0 && len(entries) > lines {
				entries = entries[len(entries)-lines:]
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No log entries")
				return nil
			}
			for _, line := range entries {
				if raw {
					fmt.Fprintln(out, line)
					continue
				}
				fmt.Fprintln(out, logs.Format(line))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "Number of entries to show (0 for all)")
	cmd.Flags().StringVar(&runID, "run", "", "Only show entries for this run id or prefix")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print JSON lines unchanged")
	return cmd
}
