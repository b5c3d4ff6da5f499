package filesystem

import (
	"context"
	"fmt"
	"os"

	"github.com/woodenlobby/storefront/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.Source = (*Source)(nil)

// Source reads one local CSV file on every Fetch.
type Source struct {
	path string
}

// New creates a source for the file at path.
// Relative paths resolve against the working directory.
func New(path string) *Source {
	return &Source{path: path}
}

// Name returns the source name used in logs.
func (s *Source) Name() string {
	return "local-file"
}

// Path returns the file path.
func (s *Source) Path() string {
	return s.path
}

// Fetch reads the whole file.
func (s *Source) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return data, nil
}
