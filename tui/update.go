package tui

import (
	"github.com/biiclasses/bii/harness"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (b *statefulBubble) Init() tea.Cmd {
	return tea.Batch(b.spinnerC.Tick, b.runChecks(), b.waitForResult())
}

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// notifications arrive as plain strings
	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmd = uiCmd
	}

	switch msg := msg.(type) {
	case error:
		b.raiseError(msg)
		return b, cmd
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	}

	switch b.state {
	case runningState:
		return b.updateRunning(msg, cmd)
	case sectionsState:
		return b.updateSections(msg, cmd)
	case checksState:
		return b.updateChecks(msg, cmd)
	case errorState:
		return b.updateError(msg, cmd)
	default:
		return b, cmd
	}
}

func (b *statefulBubble) updateRunning(msg tea.Msg, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case *harness.Result:
		b.onResult(msg)
		return b, tea.Batch(cmd, b.waitForResult())
	case *harness.Report:
		return b, tea.Batch(cmd, b.onReport(msg))
	case spinner.TickMsg:
		var tick tea.Cmd
		b.spinnerC, tick = b.spinnerC.Update(msg)
		return b, tea.Batch(cmd, tick)
	}

	return b, cmd
}

// listKey handles the keys shared by both result lists and reports whether it consumed msg.
func (b *statefulBubble) listKey(l *list.Model, msg tea.KeyMsg) (tea.Cmd, bool) {
	if l.FilterState() == list.Filtering {
		return nil, false
	}

	switch {
	case bubblesKey.Matches(msg, b.keymap.save):
		return b.saveReport(), true
	case bubblesKey.Matches(msg, b.keymap.failedOnly):
		return b.toggleFailedOnly(), true
	case bubblesKey.Matches(msg, b.keymap.back) && l.FilterState() == list.Unfiltered:
		if !b.previousState() {
			return tea.Quit, true
		}
		return nil, true
	}

	return nil, false
}

func (b *statefulBubble) updateSections(msg tea.Msg, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if c, handled := b.listKey(&b.sectionsC, msg); handled {
			return b, tea.Batch(cmd, c)
		}

		if bubblesKey.Matches(msg, b.keymap.confirm) && b.sectionsC.FilterState() != list.Filtering {
			if item, ok := b.sectionsC.SelectedItem().(*listItem); ok {
				return b, tea.Batch(cmd, b.openSection(item.internal.(*sectionSummary)))
			}
			return b, cmd
		}
	}

	var listCmd tea.Cmd
	b.sectionsC, listCmd = b.sectionsC.Update(msg)
	return b, tea.Batch(cmd, listCmd)
}

func (b *statefulBubble) updateChecks(msg tea.Msg, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if c, handled := b.listKey(&b.checksC, msg); handled {
			return b, tea.Batch(cmd, c)
		}
	}

	var listCmd tea.Cmd
	b.checksC, listCmd = b.checksC.Update(msg)
	return b, tea.Batch(cmd, listCmd)
}

func (b *statefulBubble) updateError(msg tea.Msg, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && bubblesKey.Matches(msg, b.keymap.quit, b.keymap.back) {
		return b, tea.Quit
	}
	return b, cmd
}
