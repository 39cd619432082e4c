package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner writes the ASCII art banner followed by the version line.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	lines := []struct {
		text  string
		color string
	}{
		{`    ___         __                        __`, "#818cf8"},
		{`   /   | __  __/ /_____  ____ ___  ____ _/ /_____  ____`, "#a78bfa"},
		{`  / /| |/ / / / __/ __ \/ __ ` + "`" + `__ \/ __ ` + "`" + `/ __/ __ \/ __ \`, "#c084fc"},
		{` / ___ / /_/ / /_/ /_/ / / / / / / /_/ / /_/ /_/ / / / /`, "#e879f9"},
		{`/_/  |_\__,_/\__/\____/_/ /_/ /_/\__,_/\__/\____/_/ /_/`, "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w, out.String("  v"+strings.TrimSpace(version)).Faint())
	fmt.Fprintln(w)
}
