package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/automaton/pkg/domain"
)

// GraphOverlay contains run data to visualize on the graph.
type GraphOverlay struct {
	VisitedStates []string
	CurrentState  string
	Accepted      bool
}

// OverlayFromResult builds an overlay highlighting the path taken by a run.
func OverlayFromResult(res domain.Result) *GraphOverlay {
	o := &GraphOverlay{CurrentState: res.FinalState, Accepted: res.Accepted}
	for _, s := range res.Steps {
		o.VisitedStates = append(o.VisitedStates, s.From)
	}
	return o
}

// GenerateMermaid produces a left-to-right Mermaid flowchart of the automaton.
// Shapes:
// - Final: (((Double circle)))
// - Other: ((Circle))
// The initial state receives an edge from an unlabeled start point.
// Parallel transitions between the same pair of states share one edge whose
// label lists every symbol.
func GenerateMermaid(a *domain.Automaton, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	states := a.States()
	for _, s := range states {
		opener, closer := "((", "))"
		if s.Final {
			opener, closer = "(((", ")))"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", nodeID(s.ID), opener, escape(s.Name), closer)
	}

	if init, ok := a.Initial(); ok {
		sb.WriteString("    start((\" \")) --> " + nodeID(init.ID) + "\n")
		sb.WriteString("    style start fill:#000,stroke:#000\n")
	}

	for _, s := range states {
		var order []domain.StateID
		labels := make(map[domain.StateID][]string)
		for _, t := range s.Transitions {
			if _, ok := labels[t.Target]; !ok {
				order = append(order, t.Target)
			}
			labels[t.Target] = append(labels[t.Target], escape(string(t.Symbol)))
		}
		for _, to := range order {
			fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", nodeID(s.ID), strings.Join(labels[to], ", "), nodeID(to))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds.
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef accepted fill:#c8e6c9,stroke:#2e7d32,stroke-width:4px,color:#000;\n")
		sb.WriteString("    classDef rejected fill:#ffcdd2,stroke:#c62828,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, name := range overlay.VisitedStates {
			s, ok := a.Lookup(name)
			if !ok || seen[name] || name == overlay.CurrentState {
				continue
			}
			seen[name] = true
			fmt.Fprintf(&sb, "    class %s visited;\n", nodeID(s.ID))
		}

		if s, ok := a.Lookup(overlay.CurrentState); ok {
			class := "rejected"
			if overlay.Accepted {
				class = "accepted"
			}
			fmt.Fprintf(&sb, "    class %s %s;\n", nodeID(s.ID), class)
		}
	}

	return sb.String()
}

// State names may hold any non-blank characters, so node IDs come from the
// arena index and names only appear inside quoted labels.
func nodeID(id domain.StateID) string {
	return fmt.Sprintf("s%d", id)
}

func escape(label string) string {
	return strings.ReplaceAll(label, "\"", "#quot;")
}
