package loader

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/automaton/pkg/adapters/file"
	"github.com/aretw0/automaton/pkg/domain"
	"github.com/aretw0/automaton/pkg/ports"
)

const (
	recordState      = "state"
	recordTransition = "transition"
)

// pendingTransition is a transition whose resolution is postponed to the
// end of the input (deferred mode).
type pendingTransition struct {
	line   int
	text   string
	from   string
	symbol rune
	to     string
}

// Load reads a line-format definition with a Loader built from opts.
func Load(r io.Reader, opts ...Option) *domain.Automaton {
	return New(opts...).Load(r)
}

// LoadFile reads a definition from path; the extension selects the format.
func LoadFile(path string, opts ...Option) *domain.Automaton {
	return New(opts...).LoadSource(context.Background(), file.NewSource(path))
}

// LoadSource reads a definition from src. A read failure yields an invalid
// automaton with a single io diagnostic.
func (l *Loader) LoadSource(ctx context.Context, src ports.DefinitionSource) *domain.Automaton {
	logger := l.logger.With("source", src.Name())

	data, err := src.Read(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrRead) {
			err = fmt.Errorf("%w: %w", domain.ErrRead, err)
		}
		b := domain.NewBuilder()
		l.note(logger, b, domain.Diagnostic{Kind: domain.KindIO, Err: err})
		return l.finish(logger, b)
	}

	switch format := FormatOf(src.Name()); format {
	case FormatYAML, FormatJSON:
		return l.loadDocument(logger, data, format)
	default:
		return l.loadLines(logger, bytes.NewReader(data))
	}
}

// Load reads a line-format definition.
func (l *Loader) Load(r io.Reader) *domain.Automaton {
	return l.loadLines(l.logger, r)
}

func (l *Loader) loadLines(logger *slog.Logger, r io.Reader) *domain.Automaton {
	b := domain.NewBuilder()
	var pending []pendingTransition

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := scanner.Text()
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		var err error
		switch fields[0] {
		case recordState:
			err = addState(b, fields)
		case recordTransition:
			var p pendingTransition
			p, err = parseTransition(fields)
			if err == nil {
				if l.deferred {
					p.line, p.text = lineNo, text
					pending = append(pending, p)
				} else {
					err = b.AddTransition(p.from, p.symbol, p.to)
				}
			}
		default:
			err = domain.ErrUnrecognizedRecord
		}

		if err != nil {
			l.note(logger, b, domain.Diagnostic{Kind: domain.KindOf(err), Line: lineNo, Text: text, Err: err})
			if b.Aborted() {
				return l.finish(logger, b)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		l.note(logger, b, domain.Diagnostic{Kind: domain.KindIO, Line: lineNo + 1, Err: fmt.Errorf("%w: %w", domain.ErrRead, err)})
		return l.finish(logger, b)
	}

	for _, p := range pending {
		if err := b.AddTransition(p.from, p.symbol, p.to); err != nil {
			l.note(logger, b, domain.Diagnostic{Kind: domain.KindOf(err), Line: p.line, Text: p.text, Err: err})
		}
	}

	return l.finish(logger, b)
}

func addState(b *domain.Builder, fields []string) error {
	if len(fields) != 4 {
		return fmt.Errorf("%w: want 'state <name> <isFinal> <isInitial>'", domain.ErrMalformedRecord)
	}
	final, err := parseFlag(fields[2])
	if err != nil {
		return err
	}
	initial, err := parseFlag(fields[3])
	if err != nil {
		return err
	}
	_, err = b.AddState(fields[1], final, initial)
	return err
}

func parseTransition(fields []string) (pendingTransition, error) {
	if len(fields) != 4 {
		return pendingTransition{}, fmt.Errorf("%w: want 'transition <from> <symbol> <to>'", domain.ErrMalformedRecord)
	}
	symbol, err := parseSymbol(fields[2])
	if err != nil {
		return pendingTransition{}, err
	}
	return pendingTransition{from: fields[1], symbol: symbol, to: fields[3]}, nil
}

func parseFlag(s string) (bool, error) {
	switch s {
	case "0":
		return false, nil
	case "1":
		return true, nil
	default:
		return false, fmt.Errorf("%w: flag %q must be 0 or 1", domain.ErrMalformedRecord, s)
	}
}

func parseSymbol(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: symbol %q must be a single character", domain.ErrMalformedRecord, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// note records d on the builder and reports it.
func (l *Loader) note(logger *slog.Logger, b *domain.Builder, d domain.Diagnostic) {
	b.Note(d)

	attrs := []any{"kind", d.Kind, "error", d.Err}
	if d.Line > 0 {
		attrs = append(attrs, "line", d.Line)
	}
	if d.Text != "" {
		attrs = append(attrs, "record", d.Text)
	}
	if d.Kind.Fatal() {
		logger.Error("definition rejected", attrs...)
		return
	}
	logger.Warn("record skipped", attrs...)
}

func (l *Loader) finish(logger *slog.Logger, b *domain.Builder) *domain.Automaton {
	a := b.Build()
	if a.Valid() {
		logger.Info("automaton loaded", "states", a.Len(), "diagnostics", len(a.Diagnostics()))
		return a
	}
	logger.Error("automaton invalid", "error", a.Err())
	return a
}
