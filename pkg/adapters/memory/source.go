package memory

import (
	"context"
)

// Source implements ports.DefinitionSource over an in-memory definition.
type Source struct {
	name string
	data []byte
}

// NewSource creates a Source; name selects the format like a file name would.
func NewSource(name, definition string) *Source {
	return &Source{name: name, data: []byte(definition)}
}

// Name returns the definition name.
func (s *Source) Name() string {
	return s.name
}

// Read returns a copy of the definition.
func (s *Source) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]byte(nil), s.data...), nil
}
