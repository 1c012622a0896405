package loadtest

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fatih/color"
)

// ScenarioResult holds the metrics gathered for one scenario.
type ScenarioResult struct {
	Scenario Scenario
	Trend    *Trend
	Errors   *Rate

	mu       sync.Mutex
	firstErr error
}

func (r *ScenarioResult) record(d time.Duration, err error) {
	r.Trend.Add(d)
	r.Errors.Add(err != nil)
	if err != nil {
		r.mu.Lock()
		if r.firstErr == nil {
			r.firstErr = err
		}
		r.mu.Unlock()
	}
}

// FirstError returns the first failed check, if any.
func (r *ScenarioResult) FirstError() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.firstErr
}

// ThresholdOK reports whether the scenario's p95 stays under the limit.
// Scenarios without a threshold always pass.
func (r *ScenarioResult) ThresholdOK(limit time.Duration) bool {
	if !r.Scenario.Thresholded || limit <= 0 {
		return true
	}
	return r.Trend.Percentile(95) < limit
}

// Report is the outcome of a load test run.
type Report struct {
	Results   []*ScenarioResult
	Threshold time.Duration
	Elapsed   time.Duration
}

func newReport(scenarios []Scenario, threshold time.Duration) *Report {
	r := &Report{Threshold: threshold}
	for _, sc := range scenarios {
		r.Results = append(r.Results, &ScenarioResult{
			Scenario: sc,
			Trend:    &Trend{},
			Errors:   &Rate{},
		})
	}
	return r
}

// Result looks a scenario up by name.
func (r *Report) Result(name string) *ScenarioResult {
	for _, res := range r.Results {
		if res.Scenario.Name == name {
			return res
		}
	}
	return nil
}

// Passed is true when every threshold holds and no check failed.
func (r *Report) Passed() bool {
	for _, res := range r.Results {
		if !res.ThresholdOK(r.Threshold) || res.Errors.Failed() > 0 {
			return false
		}
	}
	return true
}

// WriteText prints a per-scenario summary to w.
func (r *Report) WriteText(w io.Writer) error {
	ok := color.New(color.FgGreen).SprintFunc()
	bad := color.New(color.FgRed).SprintFunc()
	head := color.New(color.Bold).SprintFunc()

	mark := func(pass bool) string {
		if pass {
			return ok("✓")
		}
		return bad("✗")
	}

	if _, err := fmt.Fprintf(w, "%s (elapsed %s)\n", head("load test summary"), r.Elapsed.Round(time.Millisecond)); err != nil {
		return err
	}
	for _, res := range r.Results {
		t := res.Trend
		if _, err := fmt.Fprintf(w, "  %s %-14s count=%d min=%s avg=%s p(95)=%s max=%s\n",
			mark(res.ThresholdOK(r.Threshold)), res.Scenario.Name, t.Count(),
			t.Min(), t.Avg(), t.Percentile(95), t.Max()); err != nil {
			return err
		}
		if res.Scenario.Thresholded && r.Threshold > 0 {
			if _, err := fmt.Fprintf(w, "      threshold p(95)<%s\n", r.Threshold); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "  %s %-14s rate=%.2f%%\n",
			mark(res.Errors.Failed() == 0), res.Scenario.ErrorMetric, res.Errors.Value()*100); err != nil {
			return err
		}
		if err := res.FirstError(); err != nil {
			if _, err := fmt.Fprintf(w, "      first failure: %v\n", err); err != nil {
				return err
			}
		}
	}
	return nil
}
