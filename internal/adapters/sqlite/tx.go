package sqlite

import (
	"database/sql"

	"rnamap/internal/domain"
	"rnamap/internal/ports"
)

// historyTx implements ports.HistoryTx
type historyTx struct {
	tx *sql.Tx
}

// Ensure historyTx implements HistoryTx
var _ ports.HistoryTx = (*historyTx)(nil)

// InsertRun adds a run row
func (t *historyTx) InsertRun(run *domain.Run) error {
	_, err := t.tx.Exec(`
		INSERT INTO runs (`+runColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.InputPath, run.InputHash, run.SequenceName, run.Columns,
		run.TemplateLen, run.TargetLen, run.TemplateNodes, run.TargetNodes, run.Distance,
		run.CreatedAt.UnixNano())
	return err
}

// InsertEntries adds the entries of a run in mapping order
func (t *historyTx) InsertEntries(runID string, entries []domain.Entry) error {
	stmt, err := t.tx.Prepare(`
		INSERT INTO entries (run_id, seq, template_node, target_node)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, e := range entries {
		if _, err := stmt.Exec(runID, i, e.Template, e.Target); err != nil {
			return err
		}
	}
	return nil
}

// DeleteRun removes a run and its entries
func (t *historyTx) DeleteRun(id string) error {
	if _, err := t.tx.Exec(`DELETE FROM entries WHERE run_id = ?`, id); err != nil {
		return err
	}
	_, err := t.tx.Exec(`DELETE FROM runs WHERE id = ?`, id)
	return err
}

// Commit commits the transaction
func (t *historyTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *historyTx) Rollback() error {
	return t.tx.Rollback()
}
