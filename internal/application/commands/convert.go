package commands

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"rnamap/internal/application"
	"rnamap/internal/domain"
	"rnamap/internal/ports"
)

// ConvertResult contains the result of a conversion
type ConvertResult struct {
	Conversion *domain.Conversion
	Run        *domain.Run
	Recorded   bool
	Previous   []domain.Run // earlier runs of the identical alignment text, newest first
}

// ConvertCommand turns one alignment into a node mapping, writes it and
// records it in the history
type ConvertCommand struct {
	files   ports.FileStore
	history ports.HistoryStore
	logger  *slog.Logger

	InputPath  string
	Alignment  string // inline alignment text, used instead of InputPath
	OutputPath string // empty writes to standard output
	Encoder    ports.MappingEncoder

	newID func() string
	now   func() time.Time
}

// NewConvertCommand creates a new ConvertCommand. history may be nil to
// skip recording; logger may be nil to use slog.Default().
func NewConvertCommand(files ports.FileStore, history ports.HistoryStore, logger *slog.Logger, inputPath string) *ConvertCommand {
	if logger == nil {
		logger = slog.Default()
	}
	return &ConvertCommand{
		files:     files,
		history:   history,
		logger:    logger,
		InputPath: inputPath,
		newID:     uuid.NewString,
		now:       time.Now,
	}
}

// Validate checks that exactly one input source is set
func (c *ConvertCommand) Validate() error {
	hasPath := strings.TrimSpace(c.InputPath) != ""
	hasText := strings.TrimSpace(c.Alignment) != ""

	switch {
	case hasPath && hasText:
		return &application.ValidationError{
			Field:   "inputPath",
			Message: "give either an input path or inline alignment text, not both",
		}
	case !hasPath && !hasText:
		return application.ValidateRequired("inputPath", c.InputPath)
	}
	return nil
}

// Execute reads, converts, writes and records. Nothing is written when
// the alignment cannot be converted.
func (c *ConvertCommand) Execute(ctx context.Context) (*ConvertResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, input, err := c.readInput()
	if err != nil {
		return nil, err
	}

	alignment, err := domain.ReadAlignment(bytes.NewReader(data))
	if err != nil {
		return nil, &application.ConversionError{Input: input, Err: err}
	}
	c.logger.Debug("alignment read",
		"input", input,
		"columns", alignment.Columns(),
		"template_len", alignment.Template.Len(),
		"target_len", alignment.Target.Len())

	conv, err := domain.Convert(alignment)
	if err != nil {
		return nil, &application.ConversionError{Input: input, Err: err}
	}
	c.logger.Debug("structures decomposed",
		"template_nodes", len(conv.TemplateNodes),
		"target_nodes", len(conv.TargetNodes),
		"distance", conv.Mapping.Distance)

	if c.Encoder != nil {
		if err := c.write(conv.Mapping); err != nil {
			return nil, err
		}
	}

	result := &ConvertResult{
		Conversion: conv,
		Run:        domain.NewRun(c.newID(), c.InputPath, HashInput(data), conv, c.now().UTC()),
	}

	if c.history != nil {
		previous, err := c.history.FindByHash(result.Run.InputHash)
		if err != nil {
			c.logger.Warn("failed to look up earlier conversions", "error", err)
		}
		result.Previous = previous

		if err := c.history.Record(result.Run); err != nil {
			// The mapping is already written; a history failure is not fatal
			c.logger.Warn("failed to record conversion", "run", result.Run.ID, "error", err)
		} else {
			result.Recorded = true
			c.logger.Debug("conversion recorded", "run", result.Run.ID)
		}
	}

	return result, nil
}

func (c *ConvertCommand) readInput() ([]byte, string, error) {
	if strings.TrimSpace(c.Alignment) != "" {
		return []byte(c.Alignment), "inline alignment", nil
	}
	data, err := c.files.ReadFile(c.InputPath)
	if err != nil {
		return nil, c.InputPath, err
	}
	return data, c.InputPath, nil
}

func (c *ConvertCommand) write(m *domain.Mapping) error {
	return WriteMapping(c.files, c.Encoder, c.OutputPath, m)
}

// WriteMapping encodes m in memory and then writes it to path, so an
// encoding failure never leaves a partial file
func WriteMapping(files ports.FileStore, enc ports.MappingEncoder, path string, m *domain.Mapping) error {
	var buf bytes.Buffer
	if err := enc.Encode(&buf, m); err != nil {
		return fmt.Errorf("failed to encode mapping: %w", err)
	}

	w, err := files.Create(path)
	if err != nil {
		return err
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		if a, ok := w.(ports.Aborter); ok {
			a.Abort()
		} else {
			w.Close()
		}
		return fmt.Errorf("failed to write mapping: %w", err)
	}
	return w.Close()
}

// HashInput returns the hex SHA-256 of an alignment text
func HashInput(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
