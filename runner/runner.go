// Package runner executes registered test cases sequentially and collects
// their results. It is the only place that recovers assertion aborts, so a
// failed assertion stops its own case and nothing else.
package runner

import (
	"time"

	"mtr/assert"
	"mtr/domain"
	"mtr/registry"
)

// Progress receives live updates while a run is in flight.
type Progress interface {
	Update(done, passed, failed int)
	Finish()
}

// Runner executes test cases one at a time, in registration order.
type Runner struct {
	progress Progress
}

// New creates a Runner.
func New() *Runner {
	return &Runner{}
}

// SetProgress sets the progress reporter for subsequent runs.
func (r *Runner) SetProgress(progress Progress) {
	r.progress = progress
}

// Run executes the given entries and returns one result per executed case
// plus the total wall time. With failFast set, no further cases are started
// after the first Failed result.
func (r *Runner) Run(entries []registry.Entry, failFast bool) ([]domain.Result, time.Duration, error) {
	if len(entries) == 0 {
		return nil, 0, nil
	}

	startTime := time.Now()
	var results []domain.Result
	var passed, failed int

	for _, entry := range entries {
		result := r.runCase(entry)
		results = append(results, result)
		if result.Passed() {
			passed++
		} else {
			failed++
		}
		if r.progress != nil {
			r.progress.Update(len(results), passed, failed)
		}
		if failFast && !result.Passed() {
			break
		}
	}

	if r.progress != nil {
		r.progress.Finish()
	}
	return results, time.Since(startTime), nil
}

// runCase executes a single test body inside a recover scope. An assertion
// abort marks the case Failed with the failures already recorded on the
// context; any other panic is recorded as a panic failure. Nothing raised
// by the body propagates past this function.
func (r *Runner) runCase(entry registry.Entry) domain.Result {
	result := domain.Result{
		GroupName: entry.GroupName,
		TestName:  entry.TestName,
		Status:    domain.StatusRunning,
	}
	c := assert.NewContext(entry.GroupName, entry.TestName)
	startTime := time.Now()

	func() {
		defer func() {
			if v := recover(); v != nil && !assert.IsAbort(v) {
				c.RecordPanic(v)
			}
		}()
		entry.Body(c)
	}()

	result.Duration = time.Since(startTime)
	result.Failures = c.Failures()
	if len(result.Failures) == 0 {
		result.Status = domain.StatusPassed
	} else {
		result.Status = domain.StatusFailed
	}
	return result
}

// Summarize aggregates per-case results into the persisted run shape.
func Summarize(results []domain.Result, duration time.Duration) *domain.RunOutput {
	passed := 0
	failed := 0
	var failures []domain.AssertionFailure
	for _, result := range results {
		if result.Passed() {
			passed++
		} else {
			failed++
			failures = append(failures, result.Failures...)
		}
	}

	return &domain.RunOutput{
		Meta: domain.RunMeta{
			TotalTests:      len(results),
			PassedTests:     passed,
			FailedTests:     failed,
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Details: failures,
	}
}
