// Package history records a summary of every self-check run.
package history

import (
	"time"

	"github.com/biiclasses/bii/filesystem"
	"github.com/biiclasses/bii/harness"
	"github.com/biiclasses/bii/where"
	"github.com/metafates/gache"
	"github.com/samber/lo"
)

// Limit is the number of runs kept; older runs are dropped first.
const Limit = 50

// Run summarizes one self-check run.
type Run struct {
	At       time.Time `json:"at"`
	Size     int       `json:"size"`
	Suites   []string  `json:"suites"`
	Passed   int       `json:"passed"`
	Failed   int       `json:"failed"`
	Failures []string  `json:"failures,omitempty"`
}

// Ok reports whether the run had no failures.
func (r *Run) Ok() bool {
	return r.Failed == 0
}

func cacher() *gache.Cache[[]*Run] {
	return gache.New[[]*Run](&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	})
}

// Get returns the recorded runs, oldest first.
func Get() ([]*Run, error) {
	runs, expired, err := cacher().Get()
	if err != nil {
		return nil, err
	}
	if expired || runs == nil {
		return []*Run{}, nil
	}
	return runs, nil
}

// Last returns the most recent run, if any.
func Last() (*Run, bool, error) {
	runs, err := Get()
	if err != nil || len(runs) == 0 {
		return nil, false, err
	}
	return runs[len(runs)-1], true, nil
}

// Save appends a summary of report taken at at.
func Save(report *harness.Report, at time.Time) error {
	runs, err := Get()
	if err != nil {
		return err
	}

	runs = append(runs, summarize(report, at))
	if len(runs) > Limit {
		runs = runs[len(runs)-Limit:]
	}

	return cacher().Set(runs)
}

func summarize(report *harness.Report, at time.Time) *Run {
	failures := lo.FilterMap(report.Results, func(r *harness.Result, _ int) (string, bool) {
		return r.Suite + " " + r.Section + ": " + r.Name, !r.Passed
	})

	return &Run{
		At:       at,
		Size:     report.Size,
		Suites:   lo.Uniq(lo.Map(report.Results, func(r *harness.Result, _ int) string { return r.Suite })),
		Passed:   report.Passed,
		Failed:   report.Failed,
		Failures: failures,
	}
}
