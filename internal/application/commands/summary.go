package commands

import (
	"bytes"
	"context"
	"fmt"

	"rnamap/internal/application"
	"rnamap/internal/domain"
	"rnamap/internal/ports"
)

// SummaryResult describes an existing mapping file
type SummaryResult struct {
	Mapping  *domain.Mapping
	Matched  int
	Deleted  []int
	Inserted []int
}

// SummaryCommand reads a mapping file back and checks its distance
type SummaryCommand struct {
	files       ports.FileStore
	decoder     ports.MappingDecoder
	MappingPath string
}

// NewSummaryCommand creates a new SummaryCommand
func NewSummaryCommand(files ports.FileStore, decoder ports.MappingDecoder, mappingPath string) *SummaryCommand {
	return &SummaryCommand{
		files:       files,
		decoder:     decoder,
		MappingPath: mappingPath,
	}
}

// Validate checks that a mapping path is set
func (c *SummaryCommand) Validate() error {
	return application.ValidateRequired("mappingPath", c.MappingPath)
}

// Execute runs the summary command. A file whose DISTANCE line disagrees
// with its entries fails with a MismatchError.
func (c *SummaryCommand) Execute(ctx context.Context) (*SummaryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := c.files.ReadFile(c.MappingPath)
	if err != nil {
		return nil, err
	}

	m, err := c.decoder.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.MappingPath, err)
	}

	if computed := domain.Distance(m.Entries); computed != m.Distance {
		return nil, &application.MismatchError{Recorded: m.Distance, Computed: computed}
	}

	return &SummaryResult{
		Mapping:  m,
		Matched:  len(m.Matched()),
		Deleted:  m.Deleted(),
		Inserted: m.Inserted(),
	}, nil
}
