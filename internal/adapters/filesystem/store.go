package filesystem

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"rnamap/internal/ports"
)

// Store implements ports.FileStore on the local filesystem
type Store struct {
	stdout io.Writer
}

// Ensure Store implements FileStore
var _ ports.FileStore = (*Store)(nil)

// NewStore creates a store that writes unnamed outputs to os.Stdout
func NewStore() *Store {
	return &Store{stdout: os.Stdout}
}

// NewStoreWithStdout creates a store that writes unnamed outputs to w
func NewStoreWithStdout(w io.Writer) *Store {
	return &Store{stdout: w}
}

// ReadFile reads the whole file at path
func (s *Store) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(ExpandPath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// Create truncates path for writing. The file only replaces an existing
// one when it is closed, so a failed conversion leaves the old output.
func (s *Store) Create(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{s.stdout}, nil
	}

	path = ExpandPath(path)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return &atomicFile{File: tmp, target: path}, nil
}

// ExpandPath replaces a leading ~ with the user's home directory
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// atomicFile renames its temporary file over the target on Close, or
// removes it on Abort
type atomicFile struct {
	*os.File
	target string
}

// Abort discards the temporary file and leaves the target untouched
func (f *atomicFile) Abort() error {
	tmp := f.File.Name()
	f.File.Close()
	if err := os.Remove(tmp); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (f *atomicFile) Close() error {
	tmp := f.File.Name()
	if err := f.File.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, f.target); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write %s: %w", f.target, err)
	}
	return nil
}
