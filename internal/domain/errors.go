package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by the typed errors below
var (
	ErrFormat     = errors.New("malformed alignment")
	ErrUnbalanced = errors.New("unbalanced structure")
)

// FormatError reports a malformed or truncated alignment block.
// Line is the 1-based line of the block the problem was found on, or 0
// when the problem is not tied to a single line.
type FormatError struct {
	Line   int
	Reason string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed alignment at line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("malformed alignment: %s", e.Reason)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// UnbalancedStructureError reports a bracket that has no partner in its
// nesting class: a closing symbol met with an empty stack, or an opening
// symbol still on its stack when the scan ends.
type UnbalancedStructureError struct {
	Class    BracketClass
	Symbol   byte
	Index    int // index into the variant's structure string
	Position int // raw alignment index
	Unclosed bool
}

func (e *UnbalancedStructureError) Error() string {
	if e.Unclosed {
		return fmt.Sprintf("unbalanced structure: unclosed %q at %d (alignment column %d)",
			e.Symbol, e.Index, e.Position)
	}
	return fmt.Sprintf("unbalanced structure: unmatched %q at %d (alignment column %d)",
		e.Symbol, e.Index, e.Position)
}

func (e *UnbalancedStructureError) Is(target error) bool {
	return target == ErrUnbalanced
}
