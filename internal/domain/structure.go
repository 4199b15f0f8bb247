package domain

import (
	"fmt"
	"strings"
)

// BracketClass is one of the independent nesting alphabets of a
// secondary-structure string. Brackets only pair within their own class.
type BracketClass int

const (
	ClassRound  BracketClass = iota // ()
	ClassSquare                     // []
	ClassCurly                      // {}
	ClassAngle                      // <>

	numBracketClasses
)

var bracketSymbols = [numBracketClasses][2]byte{
	ClassRound:  {'(', ')'},
	ClassSquare: {'[', ']'},
	ClassCurly:  {'{', '}'},
	ClassAngle:  {'<', '>'},
}

func (c BracketClass) String() string {
	if c < 0 || c >= numBracketClasses {
		return "unknown"
	}
	return string(bracketSymbols[c][:])
}

// classifySymbol reports whether c is a bracket, and if so its class and
// whether it opens a pair
func classifySymbol(c byte) (class BracketClass, opening, ok bool) {
	for i, pair := range bracketSymbols {
		switch c {
		case pair[0]:
			return BracketClass(i), true, true
		case pair[1]:
			return BracketClass(i), false, true
		}
	}
	return 0, false, false
}

// NodeKind distinguishes unpaired positions from base pairs
type NodeKind int

const (
	NodeUnpaired NodeKind = iota
	NodePaired
)

func (k NodeKind) String() string {
	switch k {
	case NodeUnpaired:
		return "unpaired"
	case NodePaired:
		return "paired"
	default:
		return "unknown"
	}
}

// Node is a structural unit of a secondary structure expressed in raw
// alignment columns. An unpaired node has Open == Close.
// Nodes are comparable: two nodes are the same unit iff they are ==.
type Node struct {
	Kind  NodeKind
	Open  int
	Close int
}

// Unpaired returns the node of a single unpaired column
func Unpaired(pos int) Node {
	return Node{Kind: NodeUnpaired, Open: pos, Close: pos}
}

// Paired returns the node of a base pair between two columns
func Paired(i, j int) Node {
	return Node{Kind: NodePaired, Open: i, Close: j}
}

// Positions returns the raw alignment columns wrapped by the node
func (n Node) Positions() []int {
	if n.Kind == NodePaired {
		return []int{n.Open, n.Close}
	}
	return []int{n.Open}
}

func (n Node) String() string {
	if n.Kind == NodePaired {
		return fmt.Sprintf("P(%d,%d)", n.Open, n.Close)
	}
	return fmt.Sprintf("U(%d)", n.Open)
}

// NodeList is the decomposition of one variant's structure, in scan order:
// unpaired nodes where they occur, pairs at their closing bracket.
type NodeList []Node

// Count returns how many nodes of each kind the list holds
func (l NodeList) Count() (unpaired, paired int) {
	for _, n := range l {
		if n.Kind == NodePaired {
			paired++
		} else {
			unpaired++
		}
	}
	return unpaired, paired
}

func (l NodeList) String() string {
	parts := make([]string, len(l))
	for i, n := range l {
		parts[i] = n.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Decompose splits a variant's structure into its node list
func Decompose(v ParsedVariant) (NodeList, error) {
	return DecomposeStructure(v.Structure, v.Positions)
}

// DecomposeStructure scans structure left to right keeping one stack of
// open brackets per class. Non-bracket symbols become unpaired nodes, a
// closing bracket pops its class's stack and becomes a paired node.
// positions maps each structure index to its raw alignment column.
func DecomposeStructure(structure string, positions []int) (NodeList, error) {
	if len(structure) != len(positions) {
		return nil, &FormatError{
			Reason: fmt.Sprintf("structure has %d symbols but %d positions", len(structure), len(positions)),
		}
	}

	var stacks [numBracketClasses][]int
	nodes := make(NodeList, 0, len(structure))

	for ix := 0; ix < len(structure); ix++ {
		class, opening, ok := classifySymbol(structure[ix])
		switch {
		case !ok:
			nodes = append(nodes, Unpaired(positions[ix]))

		case opening:
			stacks[class] = append(stacks[class], ix)

		default:
			stack := stacks[class]
			if len(stack) == 0 {
				return nil, &UnbalancedStructureError{
					Class:    class,
					Symbol:   structure[ix],
					Index:    ix,
					Position: positions[ix],
				}
			}
			ix0 := stack[len(stack)-1]
			stacks[class] = stack[:len(stack)-1]
			nodes = append(nodes, Paired(positions[ix0], positions[ix]))
		}
	}

	// Report the leftmost opening bracket that was never closed
	unclosed := -1
	var unclosedClass BracketClass
	for class, stack := range stacks {
		if len(stack) > 0 && (unclosed < 0 || stack[0] < unclosed) {
			unclosed = stack[0]
			unclosedClass = BracketClass(class)
		}
	}
	if unclosed >= 0 {
		return nil, &UnbalancedStructureError{
			Class:    unclosedClass,
			Symbol:   structure[unclosed],
			Index:    unclosed,
			Position: positions[unclosed],
			Unclosed: true,
		}
	}

	return nodes, nil
}
