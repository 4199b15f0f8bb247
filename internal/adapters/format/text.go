package format

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"rnamap/internal/domain"
	"rnamap/internal/ports"
)

const distancePrefix = "DISTANCE:"

// TextCodec reads and writes the two-column mapping format:
//
//	DISTANCE: <d>
//	<template node> <target node>
//	...
type TextCodec struct{}

// Ensure TextCodec implements both directions
var (
	_ ports.MappingEncoder = TextCodec{}
	_ ports.MappingDecoder = TextCodec{}
)

// Encode writes the distance line followed by one line per entry
func (TextCodec) Encode(w io.Writer, m *domain.Mapping) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s %d\n", distancePrefix, m.Distance)
	for _, e := range m.Entries {
		fmt.Fprintf(bw, "%d %d\n", e.Template, e.Target)
	}
	return bw.Flush()
}

// Decode parses a mapping written by Encode. The recorded distance is kept
// as is; callers compare it with domain.Distance(entries) when they care.
func (TextCodec) Decode(r io.Reader) (*domain.Mapping, error) {
	scanner := bufio.NewScanner(r)
	m := &domain.Mapping{}
	lineNo := 0
	sawHeader := false

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if !sawHeader {
			rest, ok := strings.CutPrefix(line, distancePrefix)
			if !ok {
				return nil, &domain.FormatError{Line: lineNo, Reason: "expected DISTANCE header"}
			}
			d, err := strconv.Atoi(strings.TrimSpace(rest))
			if err != nil || d < 0 {
				return nil, &domain.FormatError{Line: lineNo, Reason: fmt.Sprintf("invalid distance %q", strings.TrimSpace(rest))}
			}
			m.Distance = d
			sawHeader = true
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, &domain.FormatError{Line: lineNo, Reason: fmt.Sprintf("expected two node numbers, got %q", line)}
		}
		tmpl, err1 := strconv.Atoi(fields[0])
		tgt, err2 := strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil || tmpl < 0 || tgt < 0 {
			return nil, &domain.FormatError{Line: lineNo, Reason: fmt.Sprintf("invalid node numbers %q", line)}
		}
		if tmpl == 0 && tgt == 0 {
			return nil, &domain.FormatError{Line: lineNo, Reason: "entry maps nothing to nothing"}
		}
		m.Entries = append(m.Entries, domain.Entry{Template: tmpl, Target: tgt})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading mapping: %w", err)
	}
	if !sawHeader {
		return nil, &domain.FormatError{Line: lineNo + 1, Reason: "empty mapping"}
	}

	return m, nil
}
