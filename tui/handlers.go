package tui

import (
	"fmt"

	"github.com/biiclasses/bii/harness"
	"github.com/biiclasses/bii/log"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
)

// runChecks runs the harness off the UI loop, streaming each result through resultChannel.
func (b *statefulBubble) runChecks() tea.Cmd {
	options := *b.options.Harness
	options.OnResult = func(r *harness.Result) {
		b.resultChannel <- r
	}

	return func() tea.Msg {
		report, err := harness.Run(&options)
		if err != nil {
			return err
		}

		return report
	}
}

func (b *statefulBubble) waitForResult() tea.Cmd {
	return func() tea.Msg {
		return <-b.resultChannel
	}
}

func (b *statefulBubble) onResult(r *harness.Result) {
	b.checked++
	b.lastResult = r
	b.seenSections[r.Suite+r.Section] = struct{}{}
}

func (b *statefulBubble) percent() float64 {
	if b.totalSections == 0 {
		return 0
	}
	return min(1, float64(len(b.seenSections))/float64(b.totalSections))
}

func (b *statefulBubble) onReport(report *harness.Report) tea.Cmd {
	b.report = report
	b.summaries = summarize(report)
	log.Infof("interactive check finished: %d passed, %d failed", report.Passed, report.Failed)

	b.newState(sectionsState)
	return b.setSections()
}

func (b *statefulBubble) setSections() tea.Cmd {
	summaries := b.summaries
	if b.failedOnly {
		summaries = lo.Filter(summaries, func(s *sectionSummary, _ int) bool { return s.failed > 0 })
	}

	items := lo.Map(summaries, func(s *sectionSummary, _ int) list.Item {
		return &listItem{internal: s}
	})
	return b.sectionsC.SetItems(items)
}

func (b *statefulBubble) openSection(s *sectionSummary) tea.Cmd {
	b.selected = s
	b.checksC.Title = fmt.Sprintf("%s %s. %s", s.suite, s.letter, s.title)
	b.checksC.ResetSelected()
	b.newState(checksState)
	return b.setChecks()
}

func (b *statefulBubble) setChecks() tea.Cmd {
	if b.selected == nil {
		return nil
	}

	results := b.selected.results
	if b.failedOnly {
		results = lo.Filter(results, func(r *harness.Result, _ int) bool { return !r.Passed })
	}

	items := lo.Map(results, func(r *harness.Result, _ int) list.Item {
		return &listItem{internal: r}
	})
	return b.checksC.SetItems(items)
}

func (b *statefulBubble) toggleFailedOnly() tea.Cmd {
	b.failedOnly = !b.failedOnly
	return tea.Batch(b.setSections(), b.setChecks())
}

// saveReport returns a notification naming where the report went.
func (b *statefulBubble) saveReport() tea.Cmd {
	if b.options.Save == nil || b.report == nil {
		return nil
	}

	return func() tea.Msg {
		path, err := b.options.Save(b.report)
		if err != nil {
			log.Error(err)
			return "Saving failed: " + err.Error()
		}
		return "Saved to " + path
	}
}
