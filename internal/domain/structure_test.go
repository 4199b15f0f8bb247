package domain

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestDecomposeStructure(t *testing.T) {
	tests := []struct {
		name      string
		structure string
		positions []int
		want      NodeList
	}{
		{
			name:      "empty",
			structure: "",
			positions: nil,
			want:      NodeList{},
		},
		{
			name:      "unpaired only",
			structure: ":,_",
			positions: []int{3, 7, 9},
			want:      NodeList{Unpaired(3), Unpaired(7), Unpaired(9)},
		},
		{
			name:      "hairpin emits pair at closing bracket",
			structure: "(..)",
			positions: identity(4),
			want:      NodeList{Unpaired(1), Unpaired(2), Paired(0, 3)},
		},
		{
			name:      "nested pairs close inner first",
			structure: "(())",
			positions: []int{0, 1, 4, 5},
			want:      NodeList{Paired(1, 4), Paired(0, 5)},
		},
		{
			name:      "classes nest independently",
			structure: "(<)>",
			positions: identity(4),
			want:      NodeList{Paired(0, 2), Paired(1, 3)},
		},
		{
			name:      "all four classes",
			structure: "[{<(:)>}]",
			positions: identity(9),
			want: NodeList{
				Unpaired(4), Paired(3, 5), Paired(2, 6), Paired(1, 7), Paired(0, 8),
			},
		},
		{
			name:      "raw positions are used, not local indices",
			structure: "(:)",
			positions: []int{2, 5, 11},
			want:      NodeList{Unpaired(5), Paired(2, 11)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecomposeStructure(tt.structure, tt.positions)
			if err != nil {
				t.Fatalf("DecomposeStructure failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestDecomposeStructure_Unbalanced(t *testing.T) {
	tests := []struct {
		name         string
		structure    string
		wantIndex    int
		wantClass    BracketClass
		wantUnclosed bool
	}{
		{
			name:      "close without open",
			structure: ".)",
			wantIndex: 1,
			wantClass: ClassRound,
		},
		{
			name:      "close of another class",
			structure: "(]",
			wantIndex: 1,
			wantClass: ClassSquare,
		},
		{
			name:         "unclosed open",
			structure:    "((.)",
			wantIndex:    0,
			wantClass:    ClassRound,
			wantUnclosed: true,
		},
		{
			name:         "leftmost unclosed across classes",
			structure:    ".{<(.)",
			wantIndex:    1,
			wantClass:    ClassCurly,
			wantUnclosed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecomposeStructure(tt.structure, identity(len(tt.structure)))
			if !errors.Is(err, ErrUnbalanced) {
				t.Fatalf("expected ErrUnbalanced, got %v", err)
			}
			var unbalanced *UnbalancedStructureError
			if !errors.As(err, &unbalanced) {
				t.Fatalf("expected UnbalancedStructureError, got %T", err)
			}
			if unbalanced.Index != tt.wantIndex {
				t.Errorf("expected index %d, got %d", tt.wantIndex, unbalanced.Index)
			}
			if unbalanced.Class != tt.wantClass {
				t.Errorf("expected class %s, got %s", tt.wantClass, unbalanced.Class)
			}
			if unbalanced.Unclosed != tt.wantUnclosed {
				t.Errorf("expected unclosed=%v, got %v", tt.wantUnclosed, unbalanced.Unclosed)
			}
		})
	}
}

func TestDecomposeStructure_LengthMismatch(t *testing.T) {
	_, err := DecomposeStructure("(.)", []int{0, 1})
	if !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}
}

func TestDecompose_NodeCountAndUniqueness(t *testing.T) {
	structures := []string{
		"((((,,<<____>>,<<<____>>>))))::",
		"[[..((..]]..))",
		"{<(:)>}:{<(:)>}",
		"..........",
	}

	for _, s := range structures {
		t.Run(s, func(t *testing.T) {
			nodes, err := DecomposeStructure(s, identity(len(s)))
			if err != nil {
				t.Fatalf("DecomposeStructure failed: %v", err)
			}

			brackets := 0
			for i := 0; i < len(s); i++ {
				if strings.IndexByte("()[]{}<>", s[i]) >= 0 {
					brackets++
				}
			}
			wantLen := len(s) - brackets + brackets/2
			if len(nodes) != wantLen {
				t.Errorf("expected %d nodes, got %d", wantLen, len(nodes))
			}

			unpaired, paired := nodes.Count()
			if paired != brackets/2 || unpaired != len(s)-brackets {
				t.Errorf("unexpected counts: unpaired=%d paired=%d", unpaired, paired)
			}

			seen := make(map[int]bool)
			for _, n := range nodes {
				for _, p := range n.Positions() {
					if seen[p] {
						t.Errorf("raw index %d appears in more than one node", p)
					}
					seen[p] = true
				}
			}
			if len(seen) != len(s) {
				t.Errorf("expected every column covered once, covered %d of %d", len(seen), len(s))
			}
		})
	}
}

func TestNodeString(t *testing.T) {
	if got := Unpaired(3).String(); got != "U(3)" {
		t.Errorf("expected U(3), got %s", got)
	}
	if got := Paired(0, 5).String(); got != "P(0,5)" {
		t.Errorf("expected P(0,5), got %s", got)
	}
	if got := (NodeList{Unpaired(1), Paired(0, 2)}).String(); got != "[U(1) P(0,2)]" {
		t.Errorf("unexpected list rendering: %s", got)
	}
	if ClassAngle.String() != "<>" {
		t.Errorf("expected <>, got %s", ClassAngle)
	}
}

func TestNodeEquality_ShapeMatters(t *testing.T) {
	if Unpaired(4) == Paired(4, 4) {
		t.Error("unpaired and paired nodes over the same column must differ")
	}
	if Paired(1, 4) == Paired(4, 1) {
		t.Error("pair order must matter")
	}
}
