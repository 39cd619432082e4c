package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/automaton/pkg/domain"
)

// Source implements ports.DefinitionSource over the local filesystem.
type Source struct {
	Path string
}

// NewSource creates a Source reading path.
func NewSource(path string) *Source {
	return &Source{Path: path}
}

// Name returns the file name; its extension selects the definition format.
func (s *Source) Name() string {
	return filepath.Base(s.Path)
}

// Read returns the file content. Failures wrap domain.ErrRead.
func (s *Source) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.Path == "" {
		return nil, fmt.Errorf("%w: empty path", domain.ErrRead)
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRead, err)
	}
	return data, nil
}
