package storage

import (
	"io"
)

// BlobStore accepts named byte payloads scoped by project id. The
// application persists only the returned path reference; the store owns
// the bytes.
type BlobStore interface {
	// Save writes the payload and returns the path reference to persist.
	Save(projectID, name string, r io.Reader) (path string, size int64, err error)
	// Open returns a reader for a previously saved payload.
	Open(path string) (io.ReadCloser, error)
	// Delete removes a payload. Deleting a missing path is not an error.
	Delete(path string) error
}
