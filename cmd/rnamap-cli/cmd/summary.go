package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rnamap/internal/adapters/format"
	"rnamap/internal/application/commands"
)

var summaryMapping string

var summaryCmd = &cobra.Command{
	Use:   "summary --mapping FILE",
	Short: "Summarise an existing mapping file",
	Long: `Read a mapping file written by convert and report matched, deleted and
inserted nodes. Fails when the DISTANCE line disagrees with the entries.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewSummaryCommand(files, format.TextCodec{}, summaryMapping).Execute(context.Background())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, format.SummaryLine(result.Mapping))
		fmt.Fprintf(out, "deleted template nodes: %v\n", result.Deleted)
		fmt.Fprintf(out, "inserted target nodes:  %v\n", result.Inserted)
		return nil
	},
}

func init() {
	summaryCmd.Flags().StringVarP(&summaryMapping, "mapping", "m", "", "mapping file (required)")
	summaryCmd.MarkFlagRequired("mapping")
	rootCmd.AddCommand(summaryCmd)
}
