package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rnamap/internal/adapters/format"
	"rnamap/internal/application/commands"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recorded conversions",
	Long: `Every successful conversion is recorded with its input hash, counts and
mapping unless history is disabled (--no-history or history.enabled: false).

Examples:
  rnamap-cli history list --limit 5
  rnamap-cli history show 5f0c1e2d
  rnamap-cli history show 5f0c1e2d --format json
  rnamap-cli history delete 5f0c1e2d`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded conversions, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		hist, err := requireHistory()
		if err != nil {
			return err
		}

		runs, err := commands.NewHistoryListCommand(hist, historyLimit).Execute(context.Background())
		if err != nil {
			return err
		}
		return format.WriteRuns(cmd.OutOrStdout(), runs)
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show a recorded conversion and emit its mapping",
	Long: `Show a recorded conversion. The run ID may be abbreviated to any unique
prefix. With the text format the run header is followed by the mapping;
with json or yaml only the mapping document is written.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outputFormat, err := outputFormat()
		if err != nil {
			return err
		}
		enc, err := format.NewEncoder(outputFormat)
		if err != nil {
			return err
		}
		hist, err := requireHistory()
		if err != nil {
			return err
		}

		run, err := commands.NewHistoryShowCommand(hist, args[0]).Execute(context.Background())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if _, ok := enc.(format.TextCodec); ok {
			if err := format.WriteRun(out, run); err != nil {
				return err
			}
			if _, err := out.Write([]byte("\n")); err != nil {
				return err
			}
		}
		return enc.Encode(out, run.Mapping())
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <run-id>",
	Short: "Delete a recorded conversion",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hist, err := requireHistory()
		if err != nil {
			return err
		}

		run, err := commands.NewHistoryDeleteCommand(hist, args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted run %s (%s)\n", format.ShortID(run.ID), run.SequenceName)
		return nil
	},
}

func init() {
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", commands.DefaultHistoryLimit, "number of runs to list (0 for all)")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	rootCmd.AddCommand(historyCmd)
}
