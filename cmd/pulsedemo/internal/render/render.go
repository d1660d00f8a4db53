// Package render prints a scenario's graph activity to the terminal:
// section headers and status lines via pterm, value/event highlighting
// via lipgloss.
package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"

	"github.com/pulsegraph/pulse"
)

var (
	styleValue = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#17A2B8"))
	styleNode  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C757D"))
)

// Scenario prints a scenario's section header.
func Scenario(name string) {
	pterm.DefaultSection.Println(name)
}

// Step logs one step of a scenario's narration.
func Step(format string, args ...any) {
	pterm.Info.Println(fmt.Sprintf(format, args...))
}

// Value highlights a computed or signal value in a step's output.
func Value(v any) string {
	return styleValue.Render(fmt.Sprint(v))
}

// TraceEvents prints a node's recent instrumentation history, if tracing
// is enabled.
func TraceEvents(trace *pulse.Trace, id pulse.NodeID) {
	if trace == nil {
		return
	}
	events := trace.Recent(id)
	if len(events) == 0 {
		return
	}
	row := styleNode.Render(fmt.Sprintf("  node %s:", id))
	for _, ev := range events {
		row += fmt.Sprintf(" %s", ev.Kind)
	}
	fmt.Println(row)
}

// Error prints a reported kernel error (compute/effect/listener isolation
// failure) without aborting the process — the whole point of the demo's
// error scenario is that the graph keeps running around it.
func Error(label string, err error) {
	pterm.Error.Printfln("%s: %v", label, err)
}
