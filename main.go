package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/tribalxperience/api-smoke-tests/apitests"
	"github.com/tribalxperience/api-smoke-tests/framework"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var errTestsFailed = errors.New("some tests failed")

func main() {
	err := newRootCommand(os.Stdout).Execute()
	if err != nil {
		if !errors.Is(err, errTestsFailed) {
			fmt.Fprintf(os.Stderr, "Invalid parameters: %s\n", err)
		}
		os.Exit(1)
	}
}

func newRootCommand(out io.Writer) *cobra.Command {
	var params commandParams
	cmd := &cobra.Command{
		Use:           "tribal-smoke-tests",
		Short:         "Smoke tests for the Tribal Xperience booking and contact API",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), out, &params)
		},
	}
	params.addFlags(cmd)
	return cmd
}

func run(ctx context.Context, out io.Writer, params *commandParams) error {
	if ctx == nil {
		ctx = context.Background()
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = log.New(out, "", log.LstdFlags)
	}
	client := framework.NewAPIClient(params.baseURL, framework.DefaultRequestTimeout, mainDebugLogger)

	fmt.Fprintln(out, "🚀 Starting Tribal Xperience API Tests")
	fmt.Fprintf(out, "Testing endpoint: %s\n", client.BaseURL())
	fmt.Fprintln(out, strings.Repeat("-", 50))
	framework.PrintFilterDescription(out, params.filters)

	testLogger := &ConsoleTestLogger{
		Out:                  out,
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
		ShowSkipped:          params.filters.MustMatch.IsDefined() || params.filters.MustNotMatch.IsDefined(),
	}

	results := apitests.RunTestSuite(ctx, client, params.filters.AsFilter, testLogger)

	printResults(out, results)
	if !results.OK() {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "To run only the failed tests again:")
		fmt.Fprintf(out, "  %s\n", params.rerunCommand(os.Args[0], results))
		return errTestsFailed
	}
	return nil
}

func printResults(out io.Writer, results framework.Results) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, strings.Repeat("=", 50))
	fmt.Fprintf(out, "📊 Test Results: %d/%d passed\n", results.TestsPassed(), results.TestsRun())
	if results.OK() {
		color.New(color.FgGreen, color.Bold).Fprintln(out, "🎉 All tests passed!")
	} else {
		color.New(color.FgYellow, color.Bold).Fprintln(out, "⚠️  Some tests failed")
	}
}
