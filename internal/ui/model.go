// Package ui renders short-lived notifications on top of a bubbletea view.
package ui

import (
	"strings"
	"time"

	"github.com/biiclasses/bii/style"
	tea "github.com/charmbracelet/bubbletea"
)

// Lifetime is how long a notification stays visible.
const Lifetime = 3 * time.Second

// Model holds the notification currently shown, if any.
type Model struct {
	notification string
}

// ClearNotificationMsg resets the notification.
type ClearNotificationMsg struct{}

// Notify returns a command delivering text as a notification.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return text
	}
}

// ClearNotification returns a command that clears the notification after Lifetime.
func ClearNotification() tea.Cmd {
	return tea.Tick(Lifetime, func(time.Time) tea.Msg {
		return ClearNotificationMsg{}
	})
}

// Update shows string messages and clears them on ClearNotificationMsg.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case string:
		m.notification = msg
		return ClearNotification()
	case ClearNotificationMsg:
		m.notification = ""
	}
	return nil
}

// View appends the notification to the last line of mainContent.
func (m *Model) View(mainContent string) string {
	if m.notification == "" {
		return mainContent
	}

	lines := strings.Split(mainContent, "\n")
	lines[len(lines)-1] += "  " + style.Faint(m.notification)
	return strings.Join(lines, "\n")
}
