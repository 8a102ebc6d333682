package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context is the state of one test (or of the root of a test run). It is used similarly to
// *testing.T and implements the require.TestingT interface.
type Context struct {
	env         *environment
	id          TestID
	debugLogger CapturingLogger
	failed      bool
	details     string
	errors      []error
}

// Run executes a test run. Only tests started with Context.Run are recorded in the results; the
// root context passed to action is just a container.
func Run(
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	c := &Context{env: env}
	c.run(action)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	defer func() {
		if r := recover(); r != nil {
			c.failed = true
			var addError error
			if _, ok := r.(*Context); ok {
				if len(c.errors) == 0 {
					addError = errors.New("test failed with no failure message")
				}
			} else {
				addError = fmt.Errorf("unexpected panic in test: %+v", r)
				c.debugLogger.Printf("%s", debug.Stack())
			}
			if addError != nil {
				c.errors = append(c.errors, addError)
				c.env.testLogger.TestError(c.id, addError)
			}
		}
		if len(c.id.Path) == 0 {
			return
		}
		result := TestResult{TestID: c.id, Status: StatusPass, Details: c.details, Errors: c.errors}
		if c.failed {
			result.Status = StatusFail
			if len(c.errors) > 0 {
				result.Details = joinErrors(c.errors)
			}
			c.env.results.Failures = append(c.env.results.Failures, result)
		}
		c.env.results.Tests = append(c.env.results.Tests, result)
		c.env.testLogger.TestFinished(result, c.debugLogger.Output())
	}()

	action(c)
}

// Run starts a named subtest, unless the filter excludes it. A failure or panic in the subtest
// does not affect the caller.
func (c *Context) Run(name string, action func(*Context)) {
	id := TestID{Path: append(append([]string(nil), c.id.Path...), name)}

	if c.env.filter != nil && !c.env.filter(id) {
		c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
		return
	}
	c.env.testLogger.TestStarted(id)
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action)
}

// Errorf marks the test as failed and records a failure message. Messages produced by the assert
// and require packages are reduced to their essential text first; see reformatError.
func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := reformatError(fmt.Errorf(format, args...))
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
}

// Notef sets the details string that is reported if the test passes.
func (c *Context) Notef(format string, args ...interface{}) {
	c.details = fmt.Sprintf(format, args...)
}

// FailNow ends the test immediately. It should be called after Errorf.
func (c *Context) FailNow() {
	panic(c)
}

// Debug adds a message to the test's debug output.
func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

// DebugLogger returns a Logger that writes to the test's debug output.
func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}
