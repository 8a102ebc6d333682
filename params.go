package main

import (
	"strings"

	"github.com/tribalxperience/api-smoke-tests/framework"

	"github.com/alessio/shellescape"
	"github.com/spf13/cobra"
)

const defaultBaseURL = "https://off-road-arena.preview.emergentagent.com/api"

type commandParams struct {
	baseURL  string
	filters  framework.RegexFilters
	debug    bool
	debugAll bool
}

func (c *commandParams) addFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&c.baseURL, "url", defaultBaseURL, "base URL of the API, including the /api prefix")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")
}

// rerunCommand builds a command line that runs only the failed tests again, with the same
// base URL.
func (c *commandParams) rerunCommand(program string, results framework.Results) string {
	var b commandBuilder
	b.add(program)
	if c.baseURL != defaultBaseURL {
		b.add("--url", c.baseURL)
	}
	for _, f := range results.Failures {
		b.add("--run", framework.ExactNamePattern(f.TestID))
	}
	if c.debug || c.debugAll {
		b.add("--debug")
	}
	return b.String()
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
