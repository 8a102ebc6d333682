package framework

import (
	"strings"
)

// Status is the outcome of a single test.
type Status string

const (
	StatusPass Status = "PASS"
	StatusFail Status = "FAIL"
)

// Results is the outcome of a test run. Tests lists every test that was executed, in the order
// they finished; Failures is the subset that failed. Tests excluded by a filter appear in neither.
type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

// TestResult is the outcome of one test. For a failed test, Details is the failure messages
// joined together; for a passed test, it is whatever the test set with Context.Notef.
type TestResult struct {
	TestID  TestID
	Status  Status
	Details string
	Errors  []error
}

// OK returns true if no test failed.
func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// TestsRun returns the number of tests that were executed.
func (r Results) TestsRun() int {
	return len(r.Tests)
}

// TestsPassed returns the number of executed tests that passed.
func (r Results) TestsPassed() int {
	n := 0
	for _, t := range r.Tests {
		if t.Status == StatusPass {
			n++
		}
	}
	return n
}

// Passed returns true if the test passed.
func (r TestResult) Passed() bool {
	return r.Status == StatusPass
}

// TestID identifies a test by its name and the names of its parent tests.
type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

func joinErrors(errs []error) string {
	ss := make([]string, 0, len(errs))
	for _, e := range errs {
		ss = append(ss, e.Error())
	}
	return strings.Join(ss, "; ")
}
