package framework

import (
	"errors"
	"regexp"
	"strings"
)

var (
	assertionLabelRegex        = regexp.MustCompile(`^\t([A-Za-z ]+):\s*\t(.*)$`)
	assertionContinuationRegex = regexp.MustCompile(`^\t +\t(.*)$`)
)

// reformatError takes the multi-line text that the assert and require packages produce, which
// looks like this:
//
//	Error Trace:	file.go:12
//	Error:      	Not equal: ...
//	Messages:   	Status: 500
//
// and returns only the "Messages" section, or the "Error" section if no message was given. The
// source location is not useful outside of a Go test run. Any other error is returned unchanged.
func reformatError(err error) error {
	sections := make(map[string][]string)
	var current string
	for _, line := range strings.Split(err.Error(), "\n") {
		if m := assertionLabelRegex.FindStringSubmatch(line); m != nil {
			current = m[1]
			sections[current] = append(sections[current], m[2])
			continue
		}
		if m := assertionContinuationRegex.FindStringSubmatch(line); m != nil && current != "" {
			sections[current] = append(sections[current], m[1])
		}
	}
	for _, label := range []string{"Messages", "Error"} {
		if lines, ok := sections[label]; ok {
			return errors.New(strings.Join(lines, "\n"))
		}
	}
	return err
}
