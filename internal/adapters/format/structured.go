package format

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"rnamap/internal/domain"
)

type mappingDoc struct {
	Distance int        `json:"distance" yaml:"distance"`
	Matched  int        `json:"matched" yaml:"matched"`
	Deleted  []int      `json:"deleted" yaml:"deleted"`
	Inserted []int      `json:"inserted" yaml:"inserted"`
	Entries  []entryDoc `json:"entries" yaml:"entries"`
}

type entryDoc struct {
	Template int `json:"template" yaml:"template"`
	Target   int `json:"target" yaml:"target"`
}

func newMappingDoc(m *domain.Mapping) mappingDoc {
	doc := mappingDoc{
		Distance: m.Distance,
		Matched:  len(m.Matched()),
		Deleted:  m.Deleted(),
		Inserted: m.Inserted(),
		Entries:  make([]entryDoc, len(m.Entries)),
	}
	if doc.Deleted == nil {
		doc.Deleted = []int{}
	}
	if doc.Inserted == nil {
		doc.Inserted = []int{}
	}
	for i, e := range m.Entries {
		doc.Entries[i] = entryDoc{Template: e.Template, Target: e.Target}
	}
	return doc
}

// JSONEncoder writes a mapping as a JSON document
type JSONEncoder struct {
	indent bool
}

// NewJSONEncoder creates an indenting JSON encoder
func NewJSONEncoder() *JSONEncoder {
	return &JSONEncoder{indent: true}
}

// NewJSONEncoderCompact creates a JSON encoder without indentation
func NewJSONEncoderCompact() *JSONEncoder {
	return &JSONEncoder{indent: false}
}

// Encode writes the mapping document
func (e *JSONEncoder) Encode(w io.Writer, m *domain.Mapping) error {
	enc := json.NewEncoder(w)
	if e.indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(newMappingDoc(m))
}

// YAMLEncoder writes a mapping as a YAML document
type YAMLEncoder struct{}

// Encode writes the mapping document
func (YAMLEncoder) Encode(w io.Writer, m *domain.Mapping) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newMappingDoc(m)); err != nil {
		return err
	}
	return enc.Close()
}
