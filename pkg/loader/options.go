package loader

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/aretw0/automaton/internal/logging"
)

// Format identifies a definition syntax.
type Format string

const (
	FormatLines Format = "lines"
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
)

// FormatOf picks the format from a definition name's extension.
func FormatOf(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatLines
	}
}

// Loader parses definitions. It holds no per-load state and can be reused.
type Loader struct {
	logger   *slog.Logger
	deferred bool
}

// Option defines a functional option for configuring the Loader.
type Option func(*Loader)

// WithLogger sets the logger diagnostics are reported to.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithDeferredResolution resolves transitions after every state record has
// been read, so declaration order no longer matters.
func WithDeferredResolution() Option {
	return func(l *Loader) {
		l.deferred = true
	}
}

// New creates a Loader. By default it logs nothing and requires
// declare-before-use.
func New(opts ...Option) *Loader {
	l := &Loader{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}
