// Package assert provides the assertion primitives used inside test case
// bodies. A failed assertion records a structured failure on the current
// case's context and aborts the rest of the body; the runner recovers the
// abort at the case boundary, so no failure ever escapes its owning case.
package assert

import (
	"fmt"
	"path/filepath"
	"runtime"

	"mtr/domain"
)

// abortSignal is the sentinel panicked with to stop a test body after a
// failed assertion. Only the runner's recover scope consumes it.
type abortSignal struct{}

// IsAbort reports whether a recovered panic value is an assertion abort.
func IsAbort(v any) bool {
	_, ok := v.(abortSignal)
	return ok
}

// C is the per-execution assertion context handed to a test body. One C is
// created for each case execution, so failure state is never shared between
// cases.
type C struct {
	groupName string
	testName  string
	failures  []domain.AssertionFailure
}

// NewContext creates a context for one execution of group/test.
func NewContext(groupName, testName string) *C {
	return &C{groupName: groupName, testName: testName}
}

// Failures returns the failures recorded so far (at most one under the
// fail-on-first policy, plus a possible panic record added by the runner).
func (c *C) Failures() []domain.AssertionFailure {
	return c.failures
}

// StringEqual checks that two strings have identical content. Comparison is
// by byte sequence, never by backing storage, so a literal and a freshly
// built buffer holding the same bytes compare equal.
func (c *C) StringEqual(actual, expected string) {
	if actual == expected {
		return
	}
	c.fail(domain.AssertionFailure{
		Kind:     domain.KindStringEquality,
		Expected: expected,
		Actual:   actual,
		Message:  fmt.Sprintf("expected %q but was %q", expected, actual),
	})
}

// True checks that the condition holds.
func (c *C) True(condition bool) {
	if condition {
		return
	}
	c.fail(domain.AssertionFailure{
		Kind:    domain.KindBooleanTrue,
		Message: "expected condition to be true",
	})
}

// NotEqual checks that a and b differ.
func (c *C) NotEqual(a, b any) {
	if a != b {
		return
	}
	c.fail(domain.AssertionFailure{
		Kind:    domain.KindInequality,
		Message: fmt.Sprintf("expected values to differ, both were %v", a),
	})
}

// RecordPanic records a non-assertion panic as a failure. Called by the
// runner's recover scope, never from assertion methods.
func (c *C) RecordPanic(v any) {
	c.failures = append(c.failures, domain.AssertionFailure{
		GroupName: c.groupName,
		TestName:  c.testName,
		Kind:      domain.KindPanic,
		Location:  "unknown",
		Message:   fmt.Sprintf("test body panicked: %v", v),
	})
}

// fail records the failure with the caller's location and aborts the body.
func (c *C) fail(f domain.AssertionFailure) {
	f.GroupName = c.groupName
	f.TestName = c.testName
	f.Location = caller(3) // skip caller, fail, and the assertion method
	c.failures = append(c.failures, f)
	panic(abortSignal{})
}

// caller returns "file.go:line" for the frame skip levels up the stack.
func caller(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}
