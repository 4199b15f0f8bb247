package commands

import (
	"bytes"
	"context"

	"rnamap/internal/application"
	"rnamap/internal/domain"
	"rnamap/internal/ports"
)

// InspectResult holds both decomposed variants and a summary of their
// mapping
type InspectResult struct {
	Conversion *domain.Conversion
	Matched    int
	Deleted    []int
	Inserted   []int
}

// InspectCommand converts an alignment without writing or recording it
type InspectCommand struct {
	files     ports.FileStore
	InputPath string
	Alignment string // inline alignment text, used instead of InputPath
}

// NewInspectCommand creates a new InspectCommand
func NewInspectCommand(files ports.FileStore, inputPath string) *InspectCommand {
	return &InspectCommand{
		files:     files,
		InputPath: inputPath,
	}
}

// Validate checks that an input is set
func (c *InspectCommand) Validate() error {
	if c.Alignment != "" {
		return nil
	}
	return application.ValidateRequired("inputPath", c.InputPath)
}

// Execute runs the inspect command
func (c *InspectCommand) Execute(ctx context.Context) (*InspectResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	input := "inline alignment"
	data := []byte(c.Alignment)
	if c.Alignment == "" {
		var err error
		input = c.InputPath
		if data, err = c.files.ReadFile(c.InputPath); err != nil {
			return nil, err
		}
	}

	alignment, err := domain.ReadAlignment(bytes.NewReader(data))
	if err != nil {
		return nil, &application.ConversionError{Input: input, Err: err}
	}
	conv, err := domain.Convert(alignment)
	if err != nil {
		return nil, &application.ConversionError{Input: input, Err: err}
	}

	return &InspectResult{
		Conversion: conv,
		Matched:    len(conv.Mapping.Matched()),
		Deleted:    conv.Mapping.Deleted(),
		Inserted:   conv.Mapping.Inserted(),
	}, nil
}
