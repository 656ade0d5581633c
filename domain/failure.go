package domain

import "fmt"

// FailureKind identifies which assertion produced a failure.
type FailureKind string

const (
	// KindStringEquality is a failed string content comparison.
	KindStringEquality FailureKind = "string-equality"
	// KindInequality is a failed not-equal check.
	KindInequality FailureKind = "inequality"
	// KindBooleanTrue is a failed boolean condition check.
	KindBooleanTrue FailureKind = "boolean-true"
	// KindPanic is a test body panic that was not an assertion abort.
	KindPanic FailureKind = "panic"
)

// AssertionFailure records a single failed assertion within a test case
type AssertionFailure struct {
	GroupName string      `json:"group_name"`
	TestName  string      `json:"test_name"`
	Kind      FailureKind `json:"kind"`
	Expected  string      `json:"expected,omitempty"` // Stringified expected value, if the kind has one
	Actual    string      `json:"actual,omitempty"`   // Stringified actual value, if the kind has one
	Location  string      `json:"location"`           // file.go:line of the failing assertion
	Message   string      `json:"message"`
	Resolved  bool        `json:"resolved,omitempty"` // Track if the failure is marked as resolved in the viewer
}

// String renders the one-line report form of the failure.
func (f AssertionFailure) String() string {
	if f.Expected != "" || f.Actual != "" {
		return fmt.Sprintf("%s.%s: expected %q but was %q at %s",
			f.GroupName, f.TestName, f.Expected, f.Actual, f.Location)
	}
	return fmt.Sprintf("%s.%s: %s at %s", f.GroupName, f.TestName, f.Message, f.Location)
}
