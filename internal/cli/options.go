package cli

import (
	"github.com/aretw0/automaton/internal/config"
	"github.com/aretw0/automaton/pkg/domain"
)

// Options carries the settings shared by every command that loads an
// automaton.
type Options struct {
	Alphabet string
	Deferred bool
	Debug    bool
	// Hooks are fired in addition to the debug hooks.
	Hooks []domain.LifecycleHooks
}

// OptionsFromConfig maps the configuration file onto CLI options.
func OptionsFromConfig(cfg config.Config, debug bool) Options {
	return Options{
		Alphabet: cfg.Alphabet,
		Deferred: cfg.Deferred,
		Debug:    debug,
	}
}
