package commands

import (
	"context"
	"fmt"

	"rnamap/internal/application"
	"rnamap/internal/domain"
	"rnamap/internal/ports"
)

// DefaultHistoryLimit is the number of runs listed when no limit is given
const DefaultHistoryLimit = 20

// HistoryListCommand lists recorded conversions, newest first
type HistoryListCommand struct {
	history ports.HistoryStore
	Limit   int
}

// NewHistoryListCommand creates a new HistoryListCommand
func NewHistoryListCommand(history ports.HistoryStore, limit int) *HistoryListCommand {
	return &HistoryListCommand{
		history: history,
		Limit:   limit,
	}
}

// Validate checks the limit
func (c *HistoryListCommand) Validate() error {
	if c.Limit < 0 {
		return &application.ValidationError{
			Field:   "limit",
			Message: "limit must not be negative",
		}
	}
	return nil
}

// Execute runs the list command. A zero limit lists every run.
func (c *HistoryListCommand) Execute(ctx context.Context) ([]domain.Run, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	runs, err := c.history.List(c.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return runs, nil
}

// HistoryShowCommand loads one recorded conversion with its entries
type HistoryShowCommand struct {
	history ports.HistoryStore
	RunID   string
}

// NewHistoryShowCommand creates a new HistoryShowCommand
func NewHistoryShowCommand(history ports.HistoryStore, runID string) *HistoryShowCommand {
	return &HistoryShowCommand{
		history: history,
		RunID:   runID,
	}
}

// Validate checks that a run ID is set
func (c *HistoryShowCommand) Validate() error {
	return application.ValidateRequired("runID", c.RunID)
}

// Execute runs the show command
func (c *HistoryShowCommand) Execute(ctx context.Context) (*domain.Run, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return c.history.Get(c.RunID)
}

// HistoryDeleteCommand removes one recorded conversion and its entries
type HistoryDeleteCommand struct {
	history ports.HistoryStore
	RunID   string
}

// NewHistoryDeleteCommand creates a new HistoryDeleteCommand
func NewHistoryDeleteCommand(history ports.HistoryStore, runID string) *HistoryDeleteCommand {
	return &HistoryDeleteCommand{
		history: history,
		RunID:   runID,
	}
}

// Validate checks that a run ID is set
func (c *HistoryDeleteCommand) Validate() error {
	return application.ValidateRequired("runID", c.RunID)
}

// Execute resolves the run ID, which may be a unique prefix, and deletes
// the run. It returns the deleted run.
func (c *HistoryDeleteCommand) Execute(ctx context.Context) (*domain.Run, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	run, err := c.history.Get(c.RunID)
	if err != nil {
		return nil, err
	}

	tx, err := c.history.BeginTx()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := tx.DeleteRun(run.ID); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to delete run %s: %w", run.ID, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to delete run %s: %w", run.ID, err)
	}
	return run, nil
}
