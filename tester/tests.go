package tester

import (
	"fmt"
	"strings"
	"testing"
)

type LineTest = func(input []string) any

type FuncTest = func(input Input) any

func CheckInput(t *testing.T, testdata string, fn FuncTest) []RunOutput {
	t.Helper()
	return NewRunner(t, testdata, funcTestRunner{fn}).Run()
}

// CheckLines runs lineFunc over the lines of each input file.
func CheckLines(t *testing.T, testdata string, lineFunc LineTest) []RunOutput {
	t.Helper()
	return CheckInput(t, testdata, func(input Input) any {
		return lineFunc(input.Lines())
	})
}

// CheckEach maps every input line to one output line.
func CheckEach(t *testing.T, testdata string, fn func(line string) string) []RunOutput {
	t.Helper()
	return CheckLines(t, testdata, func(input []string) any {
		out := make([]string, 0, len(input))
		for _, it := range input {
			out = append(out, fn(it))
		}
		return out
	})
}

type funcTestRunner struct {
	fn FuncTest
}

func (runner funcTestRunner) Run(input Input) (out Output) {
	switch v := runner.fn(input).(type) {
	case string:
		out.StdOut = v
	case []string:
		out.StdOut = strings.Join(v, "\n")
	case error:
		out.Error = v
	case nil:
		out.Error = fmt.Errorf("the test generated no output")
	default:
		out.StdOut = fmt.Sprint(v)
	}
	return
}
