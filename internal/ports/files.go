package ports

import "io"

// FileStore reads alignment and mapping files and creates output files
type FileStore interface {
	// ReadFile returns the content of the file at path. A leading ~ is
	// expanded to the user's home directory.
	ReadFile(path string) ([]byte, error)

	// Create opens path for writing, truncating it. An empty path writes
	// to standard output; closing it then leaves stdout open.
	Create(path string) (io.WriteCloser, error)
}

// Aborter is implemented by writers from FileStore.Create that can discard
// what was written instead of committing it on Close
type Aborter interface {
	Abort() error
}
