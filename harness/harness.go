// Package harness runs the bii self-check suites against the vector and stack packages.
//
// Each suite is split into lettered sections (vector A–I, stack A–G). Which
// sections run, and how many elements each check fills its containers with, are
// plain options so the CLI can source them from configuration.
package harness

import (
	"fmt"
	"strings"

	"github.com/biiclasses/bii/container"
	"github.com/biiclasses/bii/log"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// Suite names.
const (
	VectorSuite = "vector"
	StackSuite  = "stack"
)

// Result is the outcome of a single named check.
type Result struct {
	Suite   string `json:"suite" jsonschema:"enum=vector,enum=stack,description=Container suite the check belongs to."`
	Section string `json:"section" jsonschema:"description=Section letter within the suite."`
	Title   string `json:"title" jsonschema:"description=Human readable section title."`
	Name    string `json:"name" jsonschema:"description=What the check verified."`
	Passed  bool   `json:"passed"`
	Detail  string `json:"detail,omitempty" jsonschema:"description=Expected and actual values of a failed check."`
}

// Report aggregates the results of one run.
type Report struct {
	Size    int       `json:"size" jsonschema:"minimum=1,description=Number of elements the checks filled containers with."`
	Passed  int       `json:"passed"`
	Failed  int       `json:"failed"`
	Results []*Result `json:"results"`
}

// Ok reports whether every check passed.
func (r *Report) Ok() bool {
	return r.Failed == 0
}

// Options selects what a run covers.
type Options struct {
	// Size is the number of elements checks fill containers with. Must be at least 1.
	Size int

	Vector         bool
	Stack          bool
	VectorSections []string
	StackSections  []string

	// OnResult, when set, is called after every check.
	OnResult func(*Result)
}

type section struct {
	letter string
	title  string
	run    func(size int, t *tally)
}

type tally struct {
	suite   string
	section section
	emit    func(*Result)
}

// expect records a check; format and args describe the failure and are ignored on success.
func (t *tally) expect(name string, ok bool, format string, args ...any) {
	r := &Result{
		Suite:   t.suite,
		Section: t.section.letter,
		Title:   t.section.title,
		Name:    name,
		Passed:  ok,
	}
	if !ok {
		r.Detail = fmt.Sprintf(format, args...)
	}
	t.emit(r)
}

// Sections returns the letters and titles of a suite in run order.
func Sections(suite string) []lo.Tuple2[string, string] {
	return lo.Map(sectionsOf(suite), func(s section, _ int) lo.Tuple2[string, string] {
		return lo.T2(s.letter, s.title)
	})
}

func sectionsOf(suite string) []section {
	switch suite {
	case VectorSuite:
		return vectorSections
	case StackSuite:
		return stackSections
	default:
		return nil
	}
}

func selectSections(suite string, wanted []string) ([]section, error) {
	all := sectionsOf(suite)
	letters := lo.Map(all, func(s section, _ int) string { return s.letter })
	wanted = lo.Compact(lo.Uniq(lo.Map(wanted, func(w string, _ int) string {
		return strings.ToUpper(strings.TrimSpace(w))
	})))

	if len(wanted) == 0 {
		return nil, fmt.Errorf(
			"%w: no %s sections selected, available: %s",
			container.ErrInvalidArgument, suite, strings.Join(letters, ", "),
		)
	}

	if unknown := lo.Without(wanted, letters...); len(unknown) > 0 {
		return nil, fmt.Errorf(
			"%w: unknown %s section %s, available: %s",
			container.ErrInvalidArgument, suite, strings.Join(unknown, ", "), strings.Join(letters, ", "),
		)
	}

	return lo.Filter(all, func(s section, _ int) bool {
		return lo.Contains(wanted, s.letter)
	}), nil
}

// Run executes the selected sections and returns the aggregated report.
func Run(options *Options) (*Report, error) {
	if options.Size < 1 {
		return nil, fmt.Errorf("%w: size %d must be at least 1", container.ErrInvalidArgument, options.Size)
	}

	type plan struct {
		suite    string
		sections []section
	}

	var plans []plan
	for _, p := range []struct {
		suite   string
		enabled bool
		wanted  []string
	}{
		{VectorSuite, options.Vector, options.VectorSections},
		{StackSuite, options.Stack, options.StackSections},
	} {
		if !p.enabled {
			continue
		}

		sections, err := selectSections(p.suite, p.wanted)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan{p.suite, sections})
	}

	report := &Report{Size: options.Size}
	emit := func(r *Result) {
		report.Results = append(report.Results, r)
		if r.Passed {
			report.Passed++
		} else {
			report.Failed++
		}

		log.WithFields(logrus.Fields{
			"suite":   r.Suite,
			"section": r.Section,
			"check":   r.Name,
			"passed":  r.Passed,
		}).Debug(r.Detail)

		if options.OnResult != nil {
			options.OnResult(r)
		}
	}

	for _, p := range plans {
		for _, s := range p.sections {
			runSection(&tally{suite: p.suite, section: s, emit: emit}, options.Size)
		}
	}

	log.Infof("self-check finished: %d passed, %d failed", report.Passed, report.Failed)
	return report, nil
}

// runSection turns a panic inside a section into a failed result so later sections still run.
func runSection(t *tally, size int) {
	defer func() {
		if r := recover(); r != nil {
			t.expect(t.section.title, false, "panic: %v", r)
		}
	}()

	t.section.run(size, t)
}
