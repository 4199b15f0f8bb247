package ports

import "rnamap/internal/domain"

// HistoryStore records conversions so they can be listed and replayed
type HistoryStore interface {
	Close() error

	// Record stores a run and its entries atomically
	Record(run *domain.Run) error

	// Queries. List returns runs newest first without entries; Get loads
	// one run with its entries by full ID or unique ID prefix.
	List(limit int) ([]domain.Run, error)
	Get(id string) (*domain.Run, error)
	FindByHash(inputHash string) ([]domain.Run, error)

	// BeginTx starts a transaction for changes spanning both tables
	BeginTx() (HistoryTx, error)
}

// HistoryTx represents a transaction over the history tables
type HistoryTx interface {
	InsertRun(run *domain.Run) error
	InsertEntries(runID string, entries []domain.Entry) error
	DeleteRun(id string) error

	// Transaction control
	Commit() error
	Rollback() error
}
