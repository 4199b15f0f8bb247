// Package format serializes mappings. The text format is the one read by
// layout tools; JSON and YAML add the matched/deleted/inserted summary.
package format

import (
	"fmt"

	"rnamap/internal/application"
	"rnamap/internal/ports"
)

// NewEncoder returns the encoder for an output format
func NewEncoder(f application.OutputFormat) (ports.MappingEncoder, error) {
	switch f {
	case application.FormatText, "":
		return TextCodec{}, nil
	case application.FormatJSON:
		return NewJSONEncoder(), nil
	case application.FormatYAML:
		return YAMLEncoder{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", f)
	}
}
