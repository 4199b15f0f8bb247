package domain

// Conversion holds every intermediate value of one alignment-to-mapping run
type Conversion struct {
	Alignment     *Alignment
	TemplateNodes NodeList
	TargetNodes   NodeList
	Mapping       *Mapping
}

// Convert decomposes both variants of an alignment and maps template
// nodes onto target nodes
func Convert(a *Alignment) (*Conversion, error) {
	templateNodes, err := Decompose(a.Template)
	if err != nil {
		return nil, err
	}
	targetNodes, err := Decompose(a.Target)
	if err != nil {
		return nil, err
	}

	return &Conversion{
		Alignment:     a,
		TemplateNodes: templateNodes,
		TargetNodes:   targetNodes,
		Mapping:       NewMapping(templateNodes, targetNodes),
	}, nil
}

// TemplateNode returns the template node with the given 1-based number
func (c *Conversion) TemplateNode(n int) (Node, bool) {
	return nodeAt(c.TemplateNodes, n)
}

// TargetNode returns the target node with the given 1-based number
func (c *Conversion) TargetNode(n int) (Node, bool) {
	return nodeAt(c.TargetNodes, n)
}

func nodeAt(l NodeList, n int) (Node, bool) {
	if n < 1 || n > len(l) {
		return Node{}, false
	}
	return l[n-1], true
}
