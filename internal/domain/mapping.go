package domain

// Entry pairs a template node number with a target node number. Both are
// 1-based; 0 means the node has no counterpart on that side.
//
//	(n, 0)  template node n is deleted in the target
//	(0, m)  target node m is inserted with respect to the template
type Entry struct {
	Template int
	Target   int
}

// IsMatch reports whether the entry links two existing nodes
func (e Entry) IsMatch() bool {
	return e.Template != 0 && e.Target != 0
}

// Mapping is the node correspondence between a template and a target
type Mapping struct {
	Entries  []Entry
	Distance int
}

// NewMapping aligns two node lists and computes their distance
func NewMapping(template, target NodeList) *Mapping {
	entries := Align(template, target)
	return &Mapping{
		Entries:  entries,
		Distance: Distance(entries),
	}
}

// Align matches every template node to the target node wrapping exactly
// the same raw columns. Template entries come first in template order,
// followed by unclaimed target nodes in ascending order.
func Align(template, target NodeList) []Entry {
	// Raw columns are unique within a list, so a node occurs at most once
	// in target; keeping the first occurrence mirrors a linear scan.
	index := make(map[Node]int, len(target))
	for i, n := range target {
		if _, ok := index[n]; !ok {
			index[n] = i + 1
		}
	}

	claimed := make([]bool, len(target)+1)
	entries := make([]Entry, 0, len(template)+len(target))

	for i, n := range template {
		match := index[n]
		if match != 0 {
			claimed[match] = true
		}
		entries = append(entries, Entry{Template: i + 1, Target: match})
	}

	for m := 1; m <= len(target); m++ {
		if !claimed[m] {
			entries = append(entries, Entry{Template: 0, Target: m})
		}
	}

	return entries
}

// Distance counts entries that denote an insertion or a deletion
func Distance(entries []Entry) int {
	d := 0
	for _, e := range entries {
		if !e.IsMatch() {
			d++
		}
	}
	return d
}

// Matched returns the entries linking two nodes
func (m *Mapping) Matched() []Entry {
	var out []Entry
	for _, e := range m.Entries {
		if e.IsMatch() {
			out = append(out, e)
		}
	}
	return out
}

// Deleted returns the template node numbers with no target counterpart
func (m *Mapping) Deleted() []int {
	var out []int
	for _, e := range m.Entries {
		if e.Template != 0 && e.Target == 0 {
			out = append(out, e.Template)
		}
	}
	return out
}

// Inserted returns the target node numbers with no template counterpart
func (m *Mapping) Inserted() []int {
	var out []int
	for _, e := range m.Entries {
		if e.Template == 0 && e.Target != 0 {
			out = append(out, e.Target)
		}
	}
	return out
}
