package ui

import (
	"strings"

	"torus-life/pkg/core"
)

// panelLines lays out a parameter snapshot as text rows: a title, then each
// group name followed by indented "label: value" rows.
func panelLines(title string, snap core.ParameterSnapshot) []string {
	lines := []string{title}
	for _, g := range snap.Groups {
		lines = append(lines, "", g.Name)
		for _, p := range g.Params {
			label := p.Label
			if label == "" {
				label = p.Key
			}
			lines = append(lines, "  "+label+": "+p.Value)
		}
		if g.Summary != "" {
			lines = append(lines, "  "+g.Summary)
		}
	}
	return lines
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Parameters"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:] + " Parameters"
}
