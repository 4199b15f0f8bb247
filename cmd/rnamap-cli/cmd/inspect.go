package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"rnamap/internal/adapters/format"
	"rnamap/internal/adapters/tui/styles"
	"rnamap/internal/application/commands"
	"rnamap/internal/domain"
)

var (
	inspectInput string
	inspectPlain bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect --input FILE",
	Short: "Show both variants, their nodes and the mapping summary",
	Long: `Show the template and target variants of an alignment, the nodes each
structure decomposes into (U(i) unpaired, P(i,j) paired, by alignment
column) and how many nodes were matched, deleted and inserted.

Output is styled on a terminal and plain otherwise.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewInspectCommand(files, inspectInput).Execute(context.Background())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if inspectPlain || !isTerminal(out) {
			return format.WriteReport(out, result.Conversion)
		}
		_, err = io.WriteString(out, renderStyled(result))
		return err
	},
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func renderStyled(r *commands.InspectResult) string {
	conv := r.Conversion
	a := conv.Alignment
	label := styles.InputLabel.Width(11)

	var b strings.Builder
	b.WriteString(styles.Title.Render(a.SequenceName))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%s, %d columns", a.StructureName, a.Columns())))
	b.WriteString("\n\n")

	for _, v := range []struct {
		variant domain.ParsedVariant
		nodes   domain.NodeList
	}{
		{a.Template, conv.TemplateNodes},
		{a.Target, conv.TargetNodes},
	} {
		unpaired, paired := v.nodes.Count()
		b.WriteString(label.Render(v.variant.Variant.String()))
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("%d positions, %d unpaired, %d pairs", v.variant.Len(), unpaired, paired)))
		b.WriteString("\n")
		b.WriteString(label.Render(""))
		b.WriteString(styles.Sequence.Render(v.variant.Sequence))
		b.WriteString("\n")
		b.WriteString(label.Render(""))
		b.WriteString(styles.Structure.Render(v.variant.Structure))
		b.WriteString("\n")
		b.WriteString(label.Render(""))
		b.WriteString(renderNodes(v.nodes))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		styles.Distance.Render(fmt.Sprintf("DISTANCE %d", conv.Mapping.Distance)),
		" ",
		styles.EntryMatched.Render(fmt.Sprintf("matched %d", r.Matched)),
		"  ",
		styles.EntryDeleted.Render(fmt.Sprintf("deleted %d", len(r.Deleted))),
		"  ",
		styles.EntryInserted.Render(fmt.Sprintf("inserted %d", len(r.Inserted))),
	))
	b.WriteString("\n")
	return b.String()
}

func renderNodes(nodes domain.NodeList) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		if n.Kind == domain.NodePaired {
			parts[i] = styles.NodePaired.Render(n.String())
		} else {
			parts[i] = styles.NodeUnpaired.Render(n.String())
		}
	}
	return strings.Join(parts, " ")
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectInput, "input", "i", "", "alignment file (required)")
	inspectCmd.Flags().BoolVar(&inspectPlain, "plain", false, "never style the output")
	inspectCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(inspectCmd)
}
