package tui

import (
	"fmt"
	"strings"

	"github.com/biiclasses/bii/color"
	"github.com/biiclasses/bii/icon"
	"github.com/biiclasses/bii/style"
	"github.com/biiclasses/bii/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case runningState:
		output = b.viewRunning()
	case sectionsState:
		output = listExtraPaddingStyle.Render(b.sectionsC.View())
	case checksState:
		output = listExtraPaddingStyle.Render(b.checksC.View())
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewRunning() string {
	status := "starting"
	if r := b.lastResult; r != nil {
		status = fmt.Sprintf("%s %s. %s", util.Capitalize(r.Suite), r.Section, r.Title)
	}

	return b.renderLines(
		true,
		[]string{
			style.Title("Checking"),
			"",
			b.spinnerC.View() + " " + status,
			"",
			b.progressC.ViewAs(b.percent()),
			"",
			style.Faint(util.Quantify(b.checked, "check", "checks") + " done"),
		},
	)
}

func (b *statefulBubble) viewError() string {
	body := style.New().Foreground(color.Red).Bold(true).Render(b.lastError.Error())

	return b.renderLines(
		true,
		[]string{
			style.Title("Error"),
			"",
			icon.Get(icon.Fail) + " The run could not start:",
			"",
			wrap.String(body, max(b.width, 1)),
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
