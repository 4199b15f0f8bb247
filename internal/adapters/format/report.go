package format

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"rnamap/internal/domain"
)

// WriteReport writes a plain-text description of a conversion: both
// variants, their node lists and the mapping summary
func WriteReport(w io.Writer, c *domain.Conversion) error {
	bw := bufio.NewWriter(w)
	a := c.Alignment

	fmt.Fprintf(bw, "sequence   %s (%d columns)\n", orDash(a.SequenceName), a.Columns())
	fmt.Fprintf(bw, "structure  %s\n", orDash(a.StructureName))

	writeVariant(bw, a.Template, c.TemplateNodes)
	writeVariant(bw, a.Target, c.TargetNodes)

	fmt.Fprintf(bw, "\n%s\n", SummaryLine(c.Mapping))
	return bw.Flush()
}

func writeVariant(w io.Writer, v domain.ParsedVariant, nodes domain.NodeList) {
	unpaired, paired := nodes.Count()
	fmt.Fprintf(w, "\n%s (%d positions, %d unpaired, %d pairs)\n", v.Variant, v.Len(), unpaired, paired)
	fmt.Fprintf(w, "  sequence   %s\n", v.Sequence)
	fmt.Fprintf(w, "  structure  %s\n", v.Structure)
	fmt.Fprintf(w, "  nodes      %s\n", nodes)
}

// SummaryLine renders the matched/deleted/inserted counts and distance
func SummaryLine(m *domain.Mapping) string {
	return fmt.Sprintf("matched %d  deleted %d  inserted %d  distance %d",
		len(m.Matched()), len(m.Deleted()), len(m.Inserted()), m.Distance)
}

// WriteRuns writes one line per history run
func WriteRuns(w io.Writer, runs []domain.Run) error {
	bw := bufio.NewWriter(w)
	if len(runs) == 0 {
		fmt.Fprintln(bw, "No conversions recorded.")
		return bw.Flush()
	}
	for _, r := range runs {
		fmt.Fprintf(bw, "%s  %s  %-20s  d=%-4d %s\n",
			ShortID(r.ID), r.CreatedAt.Local().Format(time.DateTime), truncate(orDash(r.SequenceName), 20), r.Distance, orDash(r.InputPath))
	}
	return bw.Flush()
}

// WriteRun writes the header of one history run
func WriteRun(w io.Writer, r *domain.Run) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "run        %s\n", r.ID)
	fmt.Fprintf(bw, "created    %s\n", r.CreatedAt.Local().Format(time.RFC3339))
	fmt.Fprintf(bw, "input      %s\n", orDash(r.InputPath))
	fmt.Fprintf(bw, "sha256     %s\n", r.InputHash)
	fmt.Fprintf(bw, "sequence   %s (%d columns)\n", orDash(r.SequenceName), r.Columns)
	fmt.Fprintf(bw, "template   %d positions, %d nodes\n", r.TemplateLen, r.TemplateNodes)
	fmt.Fprintf(bw, "target     %d positions, %d nodes\n", r.TargetLen, r.TargetNodes)
	fmt.Fprintf(bw, "%s\n", SummaryLine(r.Mapping()))
	return bw.Flush()
}

// ShortID returns the first eight characters of a run ID
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
