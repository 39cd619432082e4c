package ports

import "context"

// DefinitionSource defines where an automaton definition comes from.
// This allows the storage layer (filesystem, memory) to be decoupled from parsing.
type DefinitionSource interface {
	// Name identifies the definition. Its extension selects the format
	// (".yaml", ".yml", ".json", anything else is the line format).
	Name() string

	// Read returns the whole definition. Loading is a one-shot batch,
	// no partial read is exposed.
	Read(ctx context.Context) ([]byte, error)
}
