package domain

import "time"

// Run is a recorded conversion
type Run struct {
	ID            string
	InputPath     string // empty for alignments passed inline
	InputHash     string // hex SHA-256 of the alignment text
	SequenceName  string
	Columns       int
	TemplateLen   int
	TargetLen     int
	TemplateNodes int
	TargetNodes   int
	Distance      int
	CreatedAt     time.Time
	Entries       []Entry // only loaded for a single run
}

// NewRun summarises a conversion for the history
func NewRun(id, inputPath, inputHash string, c *Conversion, at time.Time) *Run {
	return &Run{
		ID:            id,
		InputPath:     inputPath,
		InputHash:     inputHash,
		SequenceName:  c.Alignment.SequenceName,
		Columns:       c.Alignment.Columns(),
		TemplateLen:   c.Alignment.Template.Len(),
		TargetLen:     c.Alignment.Target.Len(),
		TemplateNodes: len(c.TemplateNodes),
		TargetNodes:   len(c.TargetNodes),
		Distance:      c.Mapping.Distance,
		CreatedAt:     at,
		Entries:       c.Mapping.Entries,
	}
}

// Mapping rebuilds the recorded mapping
func (r *Run) Mapping() *Mapping {
	return &Mapping{Entries: r.Entries, Distance: r.Distance}
}
