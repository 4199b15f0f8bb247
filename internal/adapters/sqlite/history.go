package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"rnamap/internal/application"
	"rnamap/internal/domain"
	"rnamap/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// History implements ports.HistoryStore using SQLite
type History struct {
	db     *sql.DB
	dbPath string
}

// Ensure History implements HistoryStore
var _ ports.HistoryStore = (*History)(nil)

// NewHistory creates a new SQLite history store
func NewHistory() *History {
	return &History{}
}

// Open opens or creates the history database. An empty path selects
// DefaultPath.
func (h *History) Open(path string) error {
	if path == "" {
		path = DefaultPath()
	}

	// Expand ~ in path
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	h.dbPath = path

	if err := os.MkdirAll(filepath.Dir(h.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", h.dbPath+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	h.db = db

	// Pragmas + schema in a single batch
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;
		PRAGMA foreign_keys = ON;

		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			input_path TEXT NOT NULL,
			input_hash TEXT NOT NULL,
			sequence_name TEXT NOT NULL,
			columns INTEGER NOT NULL,
			template_len INTEGER NOT NULL,
			target_len INTEGER NOT NULL,
			template_nodes INTEGER NOT NULL,
			target_nodes INTEGER NOT NULL,
			distance INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS entries (
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			template_node INTEGER NOT NULL,
			target_node INTEGER NOT NULL,
			PRIMARY KEY (run_id, seq)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
		CREATE INDEX IF NOT EXISTS idx_runs_hash ON runs(input_hash);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if err := h.checkSchema(); err != nil {
		db.Close()
		return err
	}

	return nil
}

// Close closes the database connection
func (h *History) Close() error {
	if h.db != nil {
		return h.db.Close()
	}
	return nil
}

// Path returns the database file in use
func (h *History) Path() string {
	return h.dbPath
}

// DefaultPath returns the history database under the XDG data directory
func DefaultPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "rnamap", "history.db")
}

// checkSchema stamps a fresh database and refuses one written by a
// different schema version
func (h *History) checkSchema() error {
	var version string
	err := h.db.QueryRow("SELECT value FROM meta WHERE key = 'schema_version'").Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		_, err = h.db.Exec(`INSERT INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion)
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to read metadata: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("history schema version %s is not supported (want %s)", version, schemaVersion)
	}
	return nil
}

// Record stores a run and its entries in one transaction
func (h *History) Record(run *domain.Run) error {
	tx, err := h.BeginTx()
	if err != nil {
		return err
	}

	if err := tx.InsertRun(run); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to insert run: %w", err)
	}
	if err := tx.InsertEntries(run.ID, run.Entries); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to insert entries: %w", err)
	}

	return tx.Commit()
}

const runColumns = `id, input_path, input_hash, sequence_name, columns,
	template_len, target_len, template_nodes, target_nodes, distance, created_at`

// List returns the most recent runs first. A limit of zero or less
// returns every run.
func (h *History) List(limit int) ([]domain.Run, error) {
	query := `SELECT ` + runColumns + ` FROM runs ORDER BY created_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	return h.queryRuns(query, args...)
}

// FindByHash returns every run of an identical alignment text
func (h *History) FindByHash(inputHash string) ([]domain.Run, error) {
	return h.queryRuns(`SELECT `+runColumns+` FROM runs WHERE input_hash = ? ORDER BY created_at DESC, id`, inputHash)
}

// Get loads a run and its entries by full ID or unique prefix
func (h *History) Get(id string) (*domain.Run, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, application.ErrNotFound
	}

	runs, err := h.queryRuns(`SELECT `+runColumns+` FROM runs WHERE id = ? OR id LIKE ? ESCAPE '\' LIMIT 2`,
		id, escapeLike(id)+"%")
	if err != nil {
		return nil, err
	}

	switch {
	case len(runs) == 0:
		return nil, fmt.Errorf("run %s: %w", id, application.ErrNotFound)
	case len(runs) > 1 && runs[0].ID != id && runs[1].ID != id:
		return nil, &application.ValidationError{Field: "runID", Message: fmt.Sprintf("prefix %q matches more than one run", id)}
	}

	run := runs[0]
	if len(runs) > 1 && runs[1].ID == id {
		run = runs[1]
	}

	entries, err := h.loadEntries(run.ID)
	if err != nil {
		return nil, err
	}
	run.Entries = entries

	return &run, nil
}

func (h *History) queryRuns(query string, args ...any) ([]domain.Run, error) {
	rows, err := h.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []domain.Run
	for rows.Next() {
		var r domain.Run
		var created int64
		if err := rows.Scan(&r.ID, &r.InputPath, &r.InputHash, &r.SequenceName, &r.Columns,
			&r.TemplateLen, &r.TargetLen, &r.TemplateNodes, &r.TargetNodes, &r.Distance, &created); err != nil {
			return nil, err
		}
		r.CreatedAt = time.Unix(0, created).UTC()
		runs = append(runs, r)
	}

	return runs, rows.Err()
}

func (h *History) loadEntries(runID string) ([]domain.Entry, error) {
	rows, err := h.db.Query(`
		SELECT template_node, target_node
		FROM entries WHERE run_id = ? ORDER BY seq
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []domain.Entry{}
	for rows.Next() {
		var e domain.Entry
		if err := rows.Scan(&e.Template, &e.Target); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// BeginTx starts a new transaction
func (h *History) BeginTx() (ports.HistoryTx, error) {
	tx, err := h.db.Begin()
	if err != nil {
		return nil, err
	}
	return &historyTx{tx: tx}, nil
}
