package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/automaton/pkg/domain"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)
	if err != nil {
		return func(markdown string) (string, error) {
			return "", err
		}
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// Markdown describes the automaton as a markdown table, one row per state.
func Markdown(name string, a *domain.Automaton) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", name)

	initial := domain.UndefinedInitial
	if s, ok := a.Initial(); ok {
		initial = s.Name
	}
	fmt.Fprintf(&sb, "Initial state: `%s`\n\n", initial)

	sb.WriteString("| State | Initial | Final | Transitions |\n")
	sb.WriteString("|---|---|---|---|\n")
	for _, s := range a.States() {
		edges := make([]string, 0, len(s.Transitions))
		for _, t := range s.Transitions {
			edges = append(edges, fmt.Sprintf("`%c` → %s", t.Symbol, t.To))
		}
		transitions := strings.Join(edges, "<br>")
		if transitions == "" {
			transitions = domain.NoTransitionsPlaceholder
		}
		fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n", s.Name, mark(a.IsInitial(s.ID)), mark(s.Final), transitions)
	}
	return sb.String()
}

func mark(v bool) string {
	if v {
		return "✓"
	}
	return ""
}

// PrintVerdict writes the accept/reject line for a run, green or red when
// the terminal supports color.
func PrintVerdict(w io.Writer, res domain.Result, opts ...termenv.OutputOption) {
	out := termenv.NewOutput(w, opts...)
	if res.Accepted {
		fmt.Fprintln(w, out.String("Accepted").Foreground(out.Color("#22c55e")).Bold())
		return
	}

	detail := string(res.Reason)
	switch res.Reason {
	case domain.ReasonNoTransition:
		detail = fmt.Sprintf("no transition from %s on %q", res.FinalState, res.Offending)
	case domain.ReasonNotFinal:
		detail = fmt.Sprintf("stopped in non-final state %s", res.FinalState)
	}
	fmt.Fprintf(w, "%s (%s)\n", out.String("Rejected").Foreground(out.Color("#ef4444")).Bold(), detail)
}
