package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wordlist/internal/preflight"
	"wordlist/internal/wordlist"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that every book is readable and the output is writable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			results := preflight.RunAll(cfg, wordlist.Books())
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			rows := make([][]string, 0, len(results))
			for _, r := range results {
				kind := statusOK
				if !r.Passed {
					kind = statusError
				}
				rows = append(rows, []string{r.Name, statusKindLabel(kind), r.Detail})
			}
			fmt.Fprintln(out, renderTable([]string{"Check", "Status", "Detail"}, rows, nil, colorize))

			failed := preflight.Failed(results)
			if len(failed) > 0 {
				fmt.Fprintln(out, renderStatusLine("Preflight", statusError,
					fmt.Sprintf("%d of %d checks failed", len(failed), len(results)), colorize))
				return fmt.Errorf("preflight failed: %d of %d checks failed", len(failed), len(results))
			}
			fmt.Fprintln(out, renderStatusLine("Preflight", statusOK,
				fmt.Sprintf("all %d checks passed", len(results)), colorize))
			return nil
		},
	}
}
