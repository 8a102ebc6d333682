package main

import (
	"fmt"
	"io"

	"github.com/tribalxperience/api-smoke-tests/framework"

	"github.com/fatih/color"
)

var (
	passColor = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
)

// ConsoleTestLogger prints one line per finished test.
type ConsoleTestLogger struct {
	Out                  io.Writer
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
	ShowSkipped          bool
}

func (c *ConsoleTestLogger) TestStarted(id framework.TestID) {}

func (c *ConsoleTestLogger) TestError(id framework.TestID, err error) {}

func (c *ConsoleTestLogger) TestFinished(result framework.TestResult, debugOutput framework.CapturedOutput) {
	failed := !result.Passed()
	if failed {
		failColor.Fprintf(c.Out, "❌ %s - %s\n", result.TestID, result.Details)
	} else {
		passColor.Fprintf(c.Out, "✅ %s\n", result.TestID)
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(c.Out, "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id framework.TestID, reason string) {
	if !c.ShowSkipped {
		return
	}
	if reason == "" {
		fmt.Fprintf(c.Out, "  SKIPPED: %s\n", id)
	} else {
		fmt.Fprintf(c.Out, "  SKIPPED: %s (%s)\n", id, reason)
	}
}
