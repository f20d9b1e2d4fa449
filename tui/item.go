package tui

import (
	"fmt"

	"github.com/biiclasses/bii/harness"
	"github.com/biiclasses/bii/icon"
	"github.com/biiclasses/bii/style"
	"github.com/biiclasses/bii/util"
)

// sectionSummary groups the results of one section in run order.
type sectionSummary struct {
	suite, letter, title string
	results              []*harness.Result
	failed               int
}

// summarize groups report results by section, keeping the order sections ran in.
func summarize(report *harness.Report) []*sectionSummary {
	var (
		summaries []*sectionSummary
		current   *sectionSummary
	)

	for _, r := range report.Results {
		if current == nil || current.suite != r.Suite || current.letter != r.Section {
			current = &sectionSummary{suite: r.Suite, letter: r.Section, title: r.Title}
			summaries = append(summaries, current)
		}

		current.results = append(current.results, r)
		if !r.Passed {
			current.failed++
		}
	}

	return summaries
}

// listItem implements list.Item for sections and single checks.
type listItem struct {
	internal any
}

func (t *listItem) Title() string {
	switch e := t.internal.(type) {
	case *sectionSummary:
		suiteIcon := icon.Get(icon.Vector)
		if e.suite == harness.StackSuite {
			suiteIcon = icon.Get(icon.Stack)
		}
		return fmt.Sprintf("%s %s %s %s. %s", verdict(e.failed == 0), suiteIcon, util.Capitalize(e.suite), e.letter, e.title)
	case *harness.Result:
		return fmt.Sprintf("%s %s", verdict(e.Passed), e.Name)
	default:
		return t.FilterValue()
	}
}

func (t *listItem) Description() string {
	switch e := t.internal.(type) {
	case *sectionSummary:
		passed := len(e.results) - e.failed
		return style.Faint(fmt.Sprintf("%s, %d passed, %d failed",
			util.Quantify(len(e.results), "check", "checks"), passed, e.failed))
	case *harness.Result:
		if e.Passed {
			return style.Faint("passed")
		}
		return e.Detail
	default:
		return ""
	}
}

func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case *sectionSummary:
		return e.suite + " " + e.letter + " " + e.title
	case *harness.Result:
		return e.Name
	default:
		return ""
	}
}

func verdict(passed bool) string {
	if passed {
		return style.Passed(icon.Get(icon.Success))
	}
	return style.Failed(icon.Get(icon.Fail))
}
