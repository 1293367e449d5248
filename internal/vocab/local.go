package vocab

import (
	"context"
	"io"
	"os"
)

// LocalSource reads the vocabulary CSV from local disk.
type LocalSource struct {
	path string
}

// NewLocalSource creates a local-file vocabulary source.
func NewLocalSource(path string) *LocalSource {
	return &LocalSource{path: path}
}

// Fetch opens the vocabulary file.
func (s *LocalSource) Fetch(ctx context.Context) (io.ReadCloser, error) {
	return os.Open(s.path)
}

// Location returns the file path.
func (s *LocalSource) Location() string {
	return s.path
}
