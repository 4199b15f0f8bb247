package ports

import (
	"io"

	"rnamap/internal/domain"
)

// MappingEncoder serializes a mapping
type MappingEncoder interface {
	Encode(w io.Writer, m *domain.Mapping) error
}

// MappingDecoder reads a serialized mapping back
type MappingDecoder interface {
	Decode(r io.Reader) (*domain.Mapping, error)
}
