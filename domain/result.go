package domain

import "time"

// Status is the execution state of a test case.
// A case moves NotStarted -> Running -> {Passed, Failed}; the terminal
// states are final (no retries, no re-entrancy).
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusRunning    Status = "running"
	StatusPassed     Status = "passed"
	StatusFailed     Status = "failed"
)

// Result represents the outcome of executing one test case
type Result struct {
	GroupName string        // Group the case belongs to
	TestName  string        // Case name within the group
	Status    Status        // Terminal status after execution
	Failures  []AssertionFailure
	Duration  time.Duration // Time taken to execute the body
}

// Passed reports whether the case reached the Passed state.
func (r Result) Passed() bool {
	return r.Status == StatusPassed
}

// RunMeta contains metadata about a whole run
type RunMeta struct {
	TotalTests      int     `json:"total_tests"`
	PassedTests     int     `json:"passed_tests"`
	FailedTests     int     `json:"failed_tests"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// RunOutput is the complete persisted structure for a run
type RunOutput struct {
	Meta    RunMeta            `json:"meta"`
	Details []AssertionFailure `json:"details"`
}
