package automaton

import (
	"fmt"
	"os"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/aretw0/automaton/pkg/domain"
)

var (
	// DefaultMaxInputSize is 4KB (conservative default)
	DefaultMaxInputSize = 4096
	// EnvMaxInputSize is the environment variable to override the default
	EnvMaxInputSize = "AUTOMATON_MAX_INPUT_SIZE"
)

// SanitizeInput enforces the input policy: a size limit (in bytes), valid
// UTF-8 and no control characters. Inputs are rejected rather than cleaned,
// since removing a symbol would change the verdict.
// A limit of zero or less selects the default, which EnvMaxInputSize overrides.
func SanitizeInput(input string, limit int) error {
	if limit <= 0 {
		limit = maxInputSize()
	}
	if len(input) > limit {
		return fmt.Errorf("%w: %w: size=%d limit=%d", domain.ErrInvalidInput, domain.ErrInputTooLarge, len(input), limit)
	}

	if !utf8.ValidString(input) {
		return fmt.Errorf("%w: %w", domain.ErrInvalidInput, domain.ErrInvalidUTF8)
	}

	// ANSI escapes, NULL, BEL and friends would poison logs and terminals.
	for i, r := range input {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: %w: %U at byte %d", domain.ErrInvalidInput, domain.ErrControlCharacter, r, i)
		}
	}
	return nil
}

func maxInputSize() int {
	if val := os.Getenv(EnvMaxInputSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxInputSize
}
