package application

import "rnamap/internal/domain"

// Re-export domain types for use by adapters
type (
	Alignment     = domain.Alignment
	ParsedVariant = domain.ParsedVariant
	Node          = domain.Node
	NodeList      = domain.NodeList
	Entry         = domain.Entry
	Mapping       = domain.Mapping
	Conversion    = domain.Conversion
)

// Re-export node kinds
const (
	NodeUnpaired = domain.NodeUnpaired
	NodePaired   = domain.NodePaired
)

// OutputFormat names a mapping serialization
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// OutputFormats lists the supported formats, default first
var OutputFormats = []OutputFormat{FormatText, FormatJSON, FormatYAML}
