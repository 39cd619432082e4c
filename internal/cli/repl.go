package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/automaton"
	"github.com/aretw0/automaton/internal/presentation/tui"
	"github.com/aretw0/automaton/pkg/domain"
	"golang.org/x/term"
)

const menu = `Menu:
1. Load an automaton file
2. Show the automaton
3. Validate an input string
4. Quit
`

// REPL is the interactive menu loop: load a definition, show it, validate
// inputs against it.
type REPL struct {
	in     *bufio.Scanner
	out    io.Writer
	opts   Options
	logger *slog.Logger
	engine *automaton.Engine

	// Interactive enables the banner, the menu and the prompts. It defaults
	// to whether the input is a terminal.
	Interactive bool
}

// NewREPL creates a menu loop reading from in and writing to out.
func NewREPL(in io.Reader, out io.Writer, opts Options, logger *slog.Logger) *REPL {
	return &REPL{
		in:          bufio.NewScanner(in),
		out:         out,
		opts:        opts,
		logger:      logger,
		Interactive: IsTerminal(in),
	}
}

// IsTerminal reports whether r is an interactive terminal.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Engine returns the currently loaded engine, or nil.
func (r *REPL) Engine() *automaton.Engine {
	return r.engine
}

// Run loops until the user quits, the input ends or ctx is cancelled.
func (r *REPL) Run(ctx context.Context) error {
	if r.Interactive {
		tui.PrintBanner(r.out, automaton.Version)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if r.Interactive {
			fmt.Fprint(r.out, "\n"+menu)
		}
		choice, ok := r.ask("Choose an option: ")
		if !ok {
			return r.in.Err()
		}

		switch choice {
		case "1":
			r.load()
		case "2":
			r.show()
		case "3":
			if err := r.validate(ctx); err != nil {
				return err
			}
		case "4":
			printSystemMessage(r.out, "Goodbye.")
			return nil
		default:
			printSystemMessage(r.out, "Invalid option %q. Try again.", choice)
		}
	}
}

// ask prompts (when interactive) and reads one trimmed line. ok is false at
// end of input.
func (r *REPL) ask(prompt string) (string, bool) {
	if r.Interactive {
		fmt.Fprint(r.out, prompt)
	}
	if !r.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(r.in.Text()), true
}

func (r *REPL) load() {
	path, ok := r.ask("Path to the automaton file: ")
	if !ok || path == "" {
		printSystemMessage(r.out, "No path given.")
		return
	}

	engine, err := NewEngine(path, r.opts, r.logger)
	if err != nil {
		r.engine = nil
		if errors.Is(err, domain.ErrRead) {
			printSystemMessage(r.out, "Failed to load: %v", err)
			return
		}
		if errors.Is(err, domain.ErrInvalidAutomaton) {
			printSystemMessage(r.out, "Invalid automaton, it cannot be used: %v", err)
			return
		}
		printSystemMessage(r.out, "Failed to load: %v", err)
		return
	}

	r.engine = engine
	a := engine.Automaton()
	printSystemMessage(r.out, "Automaton loaded (%d states).", a.Len())
	for _, d := range a.Diagnostics() {
		printSystemMessage(r.out, "Skipped %v", d)
	}
}

func (r *REPL) show() {
	if r.engine == nil {
		printSystemMessage(r.out, "No automaton loaded. Load one first.")
		return
	}
	fmt.Fprintln(r.out, "Automaton structure:")
	fmt.Fprint(r.out, r.engine.Render())
}

func (r *REPL) validate(ctx context.Context) error {
	if r.engine == nil {
		printSystemMessage(r.out, "No automaton loaded. Load one first.")
		return nil
	}

	prompt := "Enter an input string (or 'exit' to return to the menu): "
	if alphabet := r.engine.Alphabet(); alphabet != "" {
		prompt = fmt.Sprintf("Enter a string over {%s} (or 'exit' to return to the menu): ", strings.Join(strings.Split(alphabet, ""), ","))
	}

	for {
		input, ok := r.ask(prompt)
		if !ok || strings.EqualFold(input, "exit") {
			return nil
		}

		run, err := r.engine.Validate(ctx, input)
		if errors.Is(err, domain.ErrInvalidInput) {
			printSystemMessage(r.out, "%v", err)
			continue
		}
		if err != nil {
			return err
		}

		for _, step := range run.Steps {
			fmt.Fprintf(r.out, "  %s --%s--> %s\n", step.From, step.Symbol, step.To)
		}
		tui.PrintVerdict(r.out, run.Result)
	}
}
