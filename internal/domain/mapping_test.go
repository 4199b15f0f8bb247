package domain

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestAlign(t *testing.T) {
	tests := []struct {
		name     string
		template NodeList
		target   NodeList
		want     []Entry
	}{
		{
			name: "both empty",
			want: []Entry{},
		},
		{
			name:     "identical",
			template: NodeList{Unpaired(1), Paired(0, 2)},
			target:   NodeList{Unpaired(1), Paired(0, 2)},
			want:     []Entry{{1, 1}, {2, 2}},
		},
		{
			name:     "deleted template pair",
			template: NodeList{Paired(1, 4), Paired(0, 5)},
			target:   NodeList{Paired(0, 5)},
			want:     []Entry{{1, 0}, {2, 1}},
		},
		{
			name:     "inserted target nodes listed after template in ascending order",
			template: NodeList{Paired(1, 4), Paired(0, 5)},
			target:   NodeList{Unpaired(2), Unpaired(3), Paired(1, 4), Paired(0, 5)},
			want:     []Entry{{1, 3}, {2, 4}, {0, 1}, {0, 2}},
		},
		{
			name:     "shape must match",
			template: NodeList{Paired(0, 3)},
			target:   NodeList{Unpaired(0), Unpaired(3)},
			want:     []Entry{{1, 0}, {0, 1}, {0, 2}},
		},
		{
			name:     "pair with a different partner is not a match",
			template: NodeList{Paired(0, 3)},
			target:   NodeList{Paired(0, 4)},
			want:     []Entry{{1, 0}, {0, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Align(tt.template, tt.target)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
			if wantLen := len(tt.template) + len(tt.target) - len(matchedOf(got)); len(got) != wantLen {
				t.Errorf("expected %d entries, got %d", wantLen, len(got))
			}
		})
	}
}

func matchedOf(entries []Entry) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.IsMatch() {
			out = append(out, e)
		}
	}
	return out
}

func TestAlign_SelfIsIdentity(t *testing.T) {
	nodes, err := DecomposeStructure("((((,,<<____>>,<<<____>>>))))::", identity(31))
	if err != nil {
		t.Fatalf("DecomposeStructure failed: %v", err)
	}

	m := NewMapping(nodes, nodes)
	if m.Distance != 0 {
		t.Errorf("expected distance 0, got %d", m.Distance)
	}
	if len(m.Entries) != len(nodes) {
		t.Fatalf("expected %d entries, got %d", len(nodes), len(m.Entries))
	}
	for i, e := range m.Entries {
		if e.Template != i+1 || e.Target != i+1 {
			t.Errorf("entry %d: expected (%d, %d), got (%d, %d)", i, i+1, i+1, e.Template, e.Target)
		}
	}
}

func TestAlign_TotalCoverage(t *testing.T) {
	a := mustRead(t, ">t\nGGa-cUUAgg-CC\n>s\n((.:~<:>..:))\n")
	conv, err := Convert(a)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	templateSeen := make(map[int]int)
	targetSeen := make(map[int]int)
	for _, e := range conv.Mapping.Entries {
		if e.Template != 0 {
			templateSeen[e.Template]++
		}
		if e.Target != 0 {
			targetSeen[e.Target]++
		}
	}
	for i := 1; i <= len(conv.TemplateNodes); i++ {
		if templateSeen[i] != 1 {
			t.Errorf("template node %d appears %d times", i, templateSeen[i])
		}
	}
	for i := 1; i <= len(conv.TargetNodes); i++ {
		if targetSeen[i] != 1 {
			t.Errorf("target node %d appears %d times", i, targetSeen[i])
		}
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		want    int
	}{
		{"empty", nil, 0},
		{"all matched", []Entry{{1, 1}, {2, 2}}, 0},
		{"deletion", []Entry{{1, 0}, {2, 1}}, 1},
		{"insertions and deletions", []Entry{{1, 0}, {2, 2}, {0, 1}, {0, 3}}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.entries); got != tt.want {
				t.Errorf("expected distance %d, got %d", tt.want, got)
			}
		})
	}
}

func TestMapping_Summary(t *testing.T) {
	m := &Mapping{Entries: []Entry{{1, 0}, {2, 2}, {3, 1}, {0, 3}, {0, 4}}}
	m.Distance = Distance(m.Entries)

	if got := m.Deleted(); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("expected deleted [1], got %v", got)
	}
	if got := m.Inserted(); !reflect.DeepEqual(got, []int{3, 4}) {
		t.Errorf("expected inserted [3 4], got %v", got)
	}
	if got := len(m.Matched()); got != 2 {
		t.Errorf("expected 2 matched, got %d", got)
	}
	if m.Distance != len(m.Deleted())+len(m.Inserted()) {
		t.Errorf("distance %d != deleted + inserted", m.Distance)
	}
}

func TestConvert_HairpinWithInsertions(t *testing.T) {
	a := mustRead(t, ">t\nAAaaAA\n>s\n((..))\n")

	conv, err := Convert(a)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	wantTemplate := NodeList{Paired(1, 4), Paired(0, 5)}
	if !reflect.DeepEqual(conv.TemplateNodes, wantTemplate) {
		t.Errorf("template nodes: expected %s, got %s", wantTemplate, conv.TemplateNodes)
	}
	wantTarget := NodeList{Unpaired(2), Unpaired(3), Paired(1, 4), Paired(0, 5)}
	if !reflect.DeepEqual(conv.TargetNodes, wantTarget) {
		t.Errorf("target nodes: expected %s, got %s", wantTarget, conv.TargetNodes)
	}

	// Both pairs survive; the two inserted loop positions are new in the target
	wantEntries := []Entry{{1, 3}, {2, 4}, {0, 1}, {0, 2}}
	if !reflect.DeepEqual(conv.Mapping.Entries, wantEntries) {
		t.Errorf("expected entries %v, got %v", wantEntries, conv.Mapping.Entries)
	}
	if conv.Mapping.Distance != 2 {
		t.Errorf("expected distance 2, got %d", conv.Mapping.Distance)
	}
}

func TestConvert_DeletedPair(t *testing.T) {
	// Deleting only one side of a pair leaves the target unbalanced
	a := mustRead(t, ">t\nG-AGC\n>s\n(<:>)\n")
	_, err := Convert(a)
	if !errors.Is(err, ErrUnbalanced) {
		t.Fatalf("expected ErrUnbalanced, got %v", err)
	}

	a = mustRead(t, ">t\nGG--CC\n>s\n((<>))\n")
	conv, err := Convert(a)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	// template: P(2,3) P(1,4) P(0,5); target keeps columns 0,1,4,5: P(1,4) P(0,5)
	wantEntries := []Entry{{1, 0}, {2, 1}, {3, 2}}
	if !reflect.DeepEqual(conv.Mapping.Entries, wantEntries) {
		t.Errorf("expected entries %v, got %v", wantEntries, conv.Mapping.Entries)
	}
	if conv.Mapping.Distance != 1 {
		t.Errorf("expected distance 1, got %d", conv.Mapping.Distance)
	}

	if n, ok := conv.TemplateNode(1); !ok || n != Paired(2, 3) {
		t.Errorf("expected template node 1 P(2,3), got %s", n)
	}
	if _, ok := conv.TargetNode(3); ok {
		t.Error("expected no target node 3")
	}
}

func mustRead(t *testing.T, input string) *Alignment {
	t.Helper()
	a, err := ReadAlignment(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadAlignment failed: %v", err)
	}
	return a
}
