package domain

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Variant identifies one of the two molecules described by an alignment
type Variant int

const (
	VariantTemplate Variant = iota
	VariantTarget
)

func (v Variant) String() string {
	switch v {
	case VariantTemplate:
		return "template"
	case VariantTarget:
		return "target"
	default:
		return "unknown"
	}
}

const (
	// GapMarker marks a template position that is deleted in the target
	GapMarker = '-'

	// InsertionMarkers are the structure symbols that fill columns which exist
	// only to hold target insertions. They never belong to the template.
	InsertionMarkers = ".~"

	// blockLines is the number of lines in one alignment block:
	// header, sequence, header, structure
	blockLines = 4

	maxLineSize = 16 * 1024 * 1024
)

// ParsedVariant is the template or target view of an alignment.
// Positions[k] is the raw alignment column of Sequence[k] and Structure[k].
type ParsedVariant struct {
	Variant   Variant
	Sequence  string
	Structure string
	Positions []int
}

// Len returns the number of positions retained by the variant
func (v ParsedVariant) Len() int {
	return len(v.Positions)
}

// Alignment is one parsed alignment block
type Alignment struct {
	SequenceName  string
	StructureName string

	// Raw sequence and structure lines, both of length Columns()
	Sequence  string
	Structure string

	Template ParsedVariant
	Target   ParsedVariant
}

// Columns returns the length of the aligned lines
func (a *Alignment) Columns() int {
	return len(a.Sequence)
}

// ReadAlignment reads a four line alignment block (header, sequence line,
// header, structure line) and splits it into template and target variants.
// Blank lines after the block are ignored; any other trailing content is a
// FormatError.
func ReadAlignment(r io.Reader) (*Alignment, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lines := make([]string, 0, blockLines)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if len(lines) == blockLines {
			if strings.TrimSpace(line) != "" {
				return nil, &FormatError{Line: lineNo, Reason: "unexpected content after the structure line"}
			}
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading alignment: %w", err)
	}
	if len(lines) < blockLines {
		return nil, &FormatError{
			Line:   len(lines) + 1,
			Reason: fmt.Sprintf("truncated block: expected %d lines, got %d", blockLines, len(lines)),
		}
	}

	for _, i := range []int{0, 2} {
		if !strings.HasPrefix(strings.TrimSpace(lines[i]), ">") {
			return nil, &FormatError{Line: i + 1, Reason: "header line must start with '>'"}
		}
	}

	template, target, err := SplitVariants(lines[1], lines[3])
	if err != nil {
		return nil, err
	}

	return &Alignment{
		SequenceName:  headerName(lines[0]),
		StructureName: headerName(lines[2]),
		Sequence:      lines[1],
		Structure:     lines[3],
		Template:      template,
		Target:        target,
	}, nil
}

// SplitVariants derives the template and target variants from an aligned
// sequence line and its structure line.
//
// Uppercase letters are shared by both molecules, lowercase letters are
// target-only insertions and GapMarker is a template position deleted in
// the target. The target keeps every non-gap column; the template keeps
// every column that is not lowercase, and its structure is the structure
// line with the InsertionMarkers removed.
func SplitVariants(sequence, structure string) (template, target ParsedVariant, err error) {
	if len(sequence) != len(structure) {
		return template, target, &FormatError{
			Reason: fmt.Sprintf("sequence line has %d columns, structure line has %d",
				len(sequence), len(structure)),
		}
	}

	for i := 0; i < len(sequence); i++ {
		if c := sequence[i]; c != GapMarker && !isLetter(c) {
			return template, target, &FormatError{
				Line:   2,
				Reason: fmt.Sprintf("invalid sequence symbol %q at column %d", c, i),
			}
		}
	}

	var tmplSeq, tgtSeq, tgtStr strings.Builder
	tmplSeq.Grow(len(sequence))
	tgtSeq.Grow(len(sequence))
	tgtStr.Grow(len(sequence))

	template.Variant = VariantTemplate
	target.Variant = VariantTarget

	for i := 0; i < len(sequence); i++ {
		c := sequence[i]
		if c != GapMarker {
			tgtSeq.WriteByte(c)
			tgtStr.WriteByte(structure[i])
			target.Positions = append(target.Positions, i)
		}
		if !isLower(c) {
			tmplSeq.WriteByte(c)
			template.Positions = append(template.Positions, i)
		}
	}

	target.Sequence = tgtSeq.String()
	target.Structure = tgtStr.String()
	template.Sequence = tmplSeq.String()
	template.Structure = stripInsertionMarkers(structure)

	if len(template.Structure) != len(template.Positions) {
		return template, target, &FormatError{
			Line: 4,
			Reason: fmt.Sprintf("insertion markers do not line up with target-only columns: "+
				"template has %d positions but %d structure symbols",
				len(template.Positions), len(template.Structure)),
		}
	}

	return template, target, nil
}

func stripInsertionMarkers(structure string) string {
	var b strings.Builder
	b.Grow(len(structure))
	for i := 0; i < len(structure); i++ {
		if strings.IndexByte(InsertionMarkers, structure[i]) < 0 {
			b.WriteByte(structure[i])
		}
	}
	return b.String()
}

func isLower(c byte) bool {
	return 'a' <= c && c <= 'z'
}

func isLetter(c byte) bool {
	return isLower(c) || ('A' <= c && c <= 'Z')
}

// headerName strips the FASTA '>' marker from a header line
// e.g., "> 5S_rRNA template" -> "5S_rRNA template"
func headerName(line string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), ">"))
}
