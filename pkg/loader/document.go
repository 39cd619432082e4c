package loader

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/aretw0/automaton/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Document is the structured (YAML/JSON) form of a definition.
// It uses "mapstructure" tags so loosely typed values (e.g. `final: 1`,
// `symbol: 0`) are accepted.
type Document struct {
	States      []StateRecord      `json:"states" yaml:"states" mapstructure:"states"`
	Transitions []TransitionRecord `json:"transitions" yaml:"transitions" mapstructure:"transitions"`
}

// StateRecord declares a state.
type StateRecord struct {
	Name    string `json:"name" yaml:"name" mapstructure:"name"`
	Final   bool   `json:"final,omitempty" yaml:"final,omitempty" mapstructure:"final"`
	Initial bool   `json:"initial,omitempty" yaml:"initial,omitempty" mapstructure:"initial"`
}

// TransitionRecord declares a transition.
type TransitionRecord struct {
	From   string `json:"from" yaml:"from" mapstructure:"from"`
	Symbol string `json:"symbol" yaml:"symbol" mapstructure:"symbol"`
	To     string `json:"to" yaml:"to" mapstructure:"to"`
}

// DecodeDocument parses a structured definition.
func DecodeDocument(data []byte, format Format) (*Document, error) {
	var raw map[string]any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrMalformedRecord, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrMalformedRecord, err)
		}
	default:
		return nil, fmt.Errorf("unsupported document format %q", format)
	}

	var doc Document
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &doc,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedRecord, err)
	}
	return &doc, nil
}

// LoadDocument builds an automaton from a structured definition.
func (l *Loader) LoadDocument(data []byte, format Format) *domain.Automaton {
	return l.loadDocument(l.logger, data, format)
}

func (l *Loader) loadDocument(logger *slog.Logger, data []byte, format Format) *domain.Automaton {
	b := domain.NewBuilder()

	doc, err := DecodeDocument(data, format)
	if err != nil {
		// Nothing usable was decoded: the empty builder fails with ErrNoStates.
		l.note(logger, b, domain.Diagnostic{Kind: domain.KindFormat, Err: err})
		return l.finish(logger, b)
	}

	for i, s := range doc.States {
		ref := fmt.Sprintf("states[%d]", i)
		var err error
		if s.Name == "" {
			err = fmt.Errorf("%w: state without name", domain.ErrMalformedRecord)
		} else {
			_, err = b.AddState(s.Name, s.Final, s.Initial)
		}
		if err != nil {
			l.note(logger, b, domain.Diagnostic{Kind: domain.KindOf(err), Text: ref, Err: err})
			if b.Aborted() {
				return l.finish(logger, b)
			}
		}
	}

	for i, t := range doc.Transitions {
		ref := fmt.Sprintf("transitions[%d]", i)
		symbol, err := parseSymbol(t.Symbol)
		if err == nil {
			err = b.AddTransition(t.From, symbol, t.To)
		}
		if err != nil {
			l.note(logger, b, domain.Diagnostic{Kind: domain.KindOf(err), Text: ref, Err: err})
		}
	}

	return l.finish(logger, b)
}
