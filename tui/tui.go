// Package tui provides an interactive browser for self-check results.
package tui

import (
	"github.com/biiclasses/bii/harness"
	tea "github.com/charmbracelet/bubbletea"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	// Harness selects the checks to run. Its OnResult callback is replaced.
	Harness *harness.Options

	// Save persists a report and returns where it went. Saving is disabled when nil.
	Save func(*harness.Report) (string, error)
}

// Run executes the checks while showing their progress, then lets the user browse the results.
// The returned report is nil if the program exited before the run finished.
func Run(options *Options) (*harness.Report, error) {
	bubble := newBubble(options)
	bubble.setState(runningState)

	if _, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run(); err != nil {
		return nil, err
	}

	return bubble.report, bubble.lastError
}
