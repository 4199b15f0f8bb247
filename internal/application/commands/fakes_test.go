package commands

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sort"
	"strings"

	"rnamap/internal/application"
	"rnamap/internal/domain"
	"rnamap/internal/ports"
)

// memFiles is an in-memory ports.FileStore
type memFiles struct {
	files    map[string]string
	stdout   bytes.Buffer
	writeErr error
	aborted  []string
}

func newMemFiles(files map[string]string) *memFiles {
	if files == nil {
		files = make(map[string]string)
	}
	return &memFiles{files: files}
}

func (m *memFiles) ReadFile(path string) ([]byte, error) {
	content, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("failed to read %s: %w", path, fs.ErrNotExist)
	}
	return []byte(content), nil
}

func (m *memFiles) Create(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopWriteCloser{&m.stdout}, nil
	}
	return &memFile{store: m, path: path}, nil
}

type memFile struct {
	store *memFiles
	path  string
	buf   bytes.Buffer
}

func (f *memFile) Write(p []byte) (int, error) {
	if f.store.writeErr != nil {
		n, _ := f.buf.Write(p[:len(p)/2])
		return n, f.store.writeErr
	}
	return f.buf.Write(p)
}

func (f *memFile) Abort() error {
	f.store.aborted = append(f.store.aborted, f.path)
	return nil
}

func (f *memFile) Close() error {
	f.store.files[f.path] = f.buf.String()
	return nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// memHistory is an in-memory ports.HistoryStore
type memHistory struct {
	runs      map[string]domain.Run
	recordErr error
}

func newMemHistory() *memHistory {
	return &memHistory{runs: make(map[string]domain.Run)}
}

func (h *memHistory) Close() error { return nil }

func (h *memHistory) Record(run *domain.Run) error {
	if h.recordErr != nil {
		return h.recordErr
	}
	h.runs[run.ID] = *run
	return nil
}

func (h *memHistory) List(limit int) ([]domain.Run, error) {
	var out []domain.Run
	for _, r := range h.runs {
		r.Entries = nil
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (h *memHistory) Get(id string) (*domain.Run, error) {
	var found []domain.Run
	for k, r := range h.runs {
		if strings.HasPrefix(k, id) {
			found = append(found, r)
		}
	}
	if len(found) != 1 {
		return nil, fmt.Errorf("run %s: %w", id, application.ErrNotFound)
	}
	return &found[0], nil
}

func (h *memHistory) FindByHash(hash string) ([]domain.Run, error) {
	var out []domain.Run
	for _, r := range h.runs {
		if r.InputHash == hash {
			out = append(out, r)
		}
	}
	return out, nil
}

func (h *memHistory) BeginTx() (ports.HistoryTx, error) {
	return &memTx{history: h}, nil
}

// memTx buffers deletions until Commit; inserts go through Record
type memTx struct {
	history *memHistory
	deletes []string
}

func (t *memTx) InsertRun(run *domain.Run) error {
	return errors.New("insert through Record")
}

func (t *memTx) InsertEntries(string, []domain.Entry) error {
	return errors.New("insert through Record")
}

func (t *memTx) DeleteRun(id string) error {
	t.deletes = append(t.deletes, id)
	return nil
}

func (t *memTx) Commit() error {
	for _, id := range t.deletes {
		delete(t.history.runs, id)
	}
	return nil
}

func (t *memTx) Rollback() error {
	t.deletes = nil
	return nil
}

// failingEncoder always fails
type failingEncoder struct{}

func (failingEncoder) Encode(io.Writer, *domain.Mapping) error {
	return errors.New("encoder broke")
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
