package format

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"rnamap/internal/domain"
)

func TestWriteReport(t *testing.T) {
	a, err := domain.ReadAlignment(strings.NewReader(">hairpin\nAAaaAA\n>SS_cons\n((..))\n"))
	if err != nil {
		t.Fatalf("ReadAlignment failed: %v", err)
	}
	conv, err := domain.Convert(a)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteReport(&buf, conv); err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"sequence   hairpin (6 columns)",
		"template (4 positions, 0 unpaired, 2 pairs)",
		"nodes      [P(1,4) P(0,5)]",
		"target (6 positions, 2 unpaired, 2 pairs)",
		"nodes      [U(2) U(3) P(1,4) P(0,5)]",
		"matched 2  deleted 0  inserted 2  distance 2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestWriteRuns(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRuns(&buf, nil); err != nil {
		t.Fatalf("WriteRuns failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No conversions recorded") {
		t.Errorf("unexpected empty listing %q", buf.String())
	}

	buf.Reset()
	runs := []domain.Run{{
		ID:           "0123456789abcdef",
		SequenceName: "a-very-long-sequence-name-indeed",
		Distance:     3,
		CreatedAt:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}}
	if err := WriteRuns(&buf, runs); err != nil {
		t.Fatalf("WriteRuns failed: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "01234567  ") {
		t.Errorf("expected short id prefix, got %q", out)
	}
	if !strings.Contains(out, "a-very-long-sequenc…") || !strings.Contains(out, "d=3") {
		t.Errorf("unexpected listing %q", out)
	}
}

func TestWriteRun(t *testing.T) {
	var buf bytes.Buffer
	r := &domain.Run{
		ID:      "abc",
		Entries: []domain.Entry{{Template: 1, Target: 0}},
	}
	r.Distance = domain.Distance(r.Entries)

	if err := WriteRun(&buf, r); err != nil {
		t.Fatalf("WriteRun failed: %v", err)
	}
	if !strings.Contains(buf.String(), "matched 0  deleted 1  inserted 0  distance 1") {
		t.Errorf("unexpected run header %q", buf.String())
	}
}
