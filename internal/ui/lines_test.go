package ui

import (
	"slices"
	"testing"

	"torus-life/pkg/core"
)

func TestPanelLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Grid", Params: []core.Parameter{{Key: "w", Label: "Width", Value: "64"}}},
		{Name: "Run", Params: []core.Parameter{{Key: "generation", Value: "3"}}, Summary: "running"},
	}}
	got := panelLines("Life Parameters", snap)
	want := []string{
		"Life Parameters",
		"", "Grid", "  Width: 64",
		"", "Run", "  generation: 3", "  running",
	}
	if !slices.Equal(got, want) {
		t.Fatalf("panelLines = %q, want %q", got, want)
	}
}

func TestBuildTitle(t *testing.T) {
	if got := buildTitle(nil); got != "Parameters" {
		t.Fatalf("buildTitle(nil) = %q", got)
	}
}
