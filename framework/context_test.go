package framework

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTestLogger struct {
	started  []string
	finished []TestResult
	skipped  []string
	errors   []string
}

func (r *recordingTestLogger) TestStarted(id TestID) { r.started = append(r.started, id.String()) }

func (r *recordingTestLogger) TestError(id TestID, err error) {
	r.errors = append(r.errors, err.Error())
}

func (r *recordingTestLogger) TestFinished(result TestResult, debugOutput CapturedOutput) {
	r.finished = append(r.finished, result)
}

func (r *recordingTestLogger) TestSkipped(id TestID, reason string) {
	r.skipped = append(r.skipped, id.String())
}

func TestPassingTestIsRecorded(t *testing.T) {
	logger := &recordingTestLogger{}
	results := Run(nil, logger, func(c *Context) {
		c.Run("a", func(c *Context) {
			c.Notef("found %d things", 3)
		})
	})

	require.Len(t, results.Tests, 1)
	assert.Equal(t, "a", results.Tests[0].TestID.String())
	assert.Equal(t, StatusPass, results.Tests[0].Status)
	assert.Equal(t, "found 3 things", results.Tests[0].Details)
	assert.Len(t, results.Failures, 0)
	assert.True(t, results.OK())
	assert.Equal(t, []string{"a"}, logger.started)
	assert.Len(t, logger.finished, 1)
}

func TestFailedTestIsRecordedWithErrors(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("a", func(c *Context) {
			c.Notef("this is not shown")
			c.Errorf("Status: %d", 500)
			c.Errorf("second problem")
		})
	})

	require.Len(t, results.Failures, 1)
	f := results.Failures[0]
	assert.Equal(t, StatusFail, f.Status)
	assert.Equal(t, "Status: 500; second problem", f.Details)
	assert.Len(t, f.Errors, 2)
	assert.False(t, results.OK())
}

func TestFailNowStopsOnlyTheCurrentTest(t *testing.T) {
	reachedEnd := false
	results := Run(nil, nil, func(c *Context) {
		c.Run("a", func(c *Context) {
			c.Errorf("bad")
			c.FailNow()
			reachedEnd = true
		})
		c.Run("b", func(c *Context) {})
	})

	assert.False(t, reachedEnd)
	require.Len(t, results.Tests, 2)
	assert.Equal(t, StatusFail, results.Tests[0].Status)
	assert.Equal(t, StatusPass, results.Tests[1].Status)
}

func TestFailNowWithoutMessage(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("a", func(c *Context) { c.FailNow() })
	})

	require.Len(t, results.Failures, 1)
	assert.Equal(t, "test failed with no failure message", results.Failures[0].Details)
}

func TestPanicIsRecordedAsFailure(t *testing.T) {
	logger := &recordingTestLogger{}
	results := Run(nil, logger, func(c *Context) {
		c.Run("a", func(c *Context) { panic(errors.New("boom")) })
		c.Run("b", func(c *Context) {})
	})

	require.Len(t, results.Tests, 2)
	assert.Equal(t, StatusFail, results.Tests[0].Status)
	assert.Contains(t, results.Tests[0].Details, "unexpected panic in test: boom")
	assert.Equal(t, StatusPass, results.Tests[1].Status)
	assert.Len(t, logger.errors, 1)
}

func TestFilteredTestIsNotRun(t *testing.T) {
	var ran []string
	logger := &recordingTestLogger{}
	filter := func(id TestID) bool { return id.String() != "b" }
	results := Run(filter, logger, func(c *Context) {
		for _, name := range []string{"a", "b", "c"} {
			n := name
			c.Run(n, func(c *Context) { ran = append(ran, n) })
		}
	})

	assert.Equal(t, []string{"a", "c"}, ran)
	assert.Equal(t, 2, results.TestsRun())
	assert.Equal(t, []string{"b"}, logger.skipped)
	assert.Equal(t, []string{"a", "c"}, logger.started)
}

func TestNestedTestIDs(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("outer", func(c *Context) {
			c.Run("inner", func(c *Context) {})
		})
	})

	require.Len(t, results.Tests, 2)
	assert.Equal(t, "outer/inner", results.Tests[0].TestID.String())
	assert.Equal(t, "outer", results.Tests[1].TestID.String())
}

func TestCountersAreConsistent(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("a", func(c *Context) {})
		c.Run("b", func(c *Context) { c.Errorf("no") })
		c.Run("c", func(c *Context) { panic("no") })
		c.Run("d", func(c *Context) {})
	})

	assert.Equal(t, 4, results.TestsRun())
	assert.Equal(t, 2, results.TestsPassed())
	assert.LessOrEqual(t, results.TestsPassed(), results.TestsRun())
	assert.Len(t, results.Tests, results.TestsRun())
	assert.Len(t, results.Failures, results.TestsRun()-results.TestsPassed())
}

func TestDebugOutputIsPassedToLogger(t *testing.T) {
	var output CapturedOutput
	logger := &debugOutputLogger{recordingTestLogger{}, &output}
	Run(nil, logger, func(c *Context) {
		c.Run("a", func(c *Context) {
			c.Debug("hello %s", "world")
			c.DebugLogger().Printf("second")
		})
	})

	require.Len(t, output, 2)
	assert.Equal(t, "hello world", output[0].Message)
	assert.Equal(t, "second", output[1].Message)
}

type debugOutputLogger struct {
	recordingTestLogger
	output *CapturedOutput
}

func (d *debugOutputLogger) TestFinished(result TestResult, debugOutput CapturedOutput) {
	*d.output = debugOutput
}

func TestRequireFailureStopsTestWithItsMessage(t *testing.T) {
	reachedEnd := false
	results := Run(nil, nil, func(c *Context) {
		c.Run("a", func(c *Context) {
			require.Equal(c, 200, 500, "Status: %d", 500)
			reachedEnd = true
		})
	})

	assert.False(t, reachedEnd)
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "Status: 500", results.Failures[0].Details)
}

func TestAssertFailureWithoutMessageKeepsAssertionText(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("a", func(c *Context) {
			assert.True(c, false)
		})
	})

	require.Len(t, results.Failures, 1)
	assert.Equal(t, "Should be true", results.Failures[0].Details)
	assert.NotContains(t, results.Failures[0].Details, "Error Trace")
}
