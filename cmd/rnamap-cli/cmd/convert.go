package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"rnamap/internal/adapters/format"
	"rnamap/internal/adapters/watcher"
	"rnamap/internal/application/commands"
	"rnamap/internal/ports"
)

var (
	convertInput  string
	convertOutput string
	convertWatch  bool
)

var convertCmd = &cobra.Command{
	Use:   "convert --input FILE [--output FILE]",
	Short: "Convert an alignment into a node mapping",
	Long: `Convert an Infernal alignment into a template-to-target node mapping.

The mapping goes to standard output unless --output is given. Nothing is
written when the alignment is malformed or its structure is unbalanced.

Examples:
  rnamap-cli convert --input hairpin.afa
  rnamap-cli convert --input hairpin.afa --output hairpin.map
  rnamap-cli convert --input hairpin.afa --format json
  rnamap-cli convert --input hairpin.afa --output hairpin.map --watch`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		outputFormat, err := outputFormat()
		if err != nil {
			return err
		}
		enc, err := format.NewEncoder(outputFormat)
		if err != nil {
			return err
		}
		hist := openHistory()

		ctx := context.Background()
		if !convertWatch {
			return runConvert(ctx, enc, hist)
		}

		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := runConvert(ctx, enc, hist); err != nil {
			logger.Error("conversion failed", "input", convertInput, "error", err)
		}
		w := watcher.New(convertInput, 0, logger)
		return w.Run(ctx, func() {
			if err := runConvert(ctx, enc, hist); err != nil {
				logger.Error("conversion failed", "input", convertInput, "error", err)
			}
		})
	},
}

func runConvert(ctx context.Context, enc ports.MappingEncoder, hist ports.HistoryStore) error {
	convert := commands.NewConvertCommand(files, hist, logger, convertInput)
	convert.OutputPath = convertOutput
	convert.Encoder = enc

	result, err := convert.Execute(ctx)
	if err != nil {
		return err
	}

	logger.Info("converted",
		"input", convertInput,
		"output", outputName(convertOutput),
		"distance", result.Conversion.Mapping.Distance,
		"entries", len(result.Conversion.Mapping.Entries),
		"run", format.ShortID(result.Run.ID),
		"recorded", result.Recorded)
	if len(result.Previous) > 0 {
		logger.Info("same input converted before",
			"run", format.ShortID(result.Previous[0].ID),
			"at", result.Previous[0].CreatedAt.Local().Format(time.DateTime),
			"times", len(result.Previous))
	}
	return nil
}

func outputName(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}

func init() {
	convertCmd.Flags().StringVarP(&convertInput, "input", "i", "", "alignment file (required)")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "mapping file (default standard output)")
	convertCmd.Flags().BoolVarP(&convertWatch, "watch", "w", false, "convert again whenever the input changes")
	convertCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(convertCmd)
}
