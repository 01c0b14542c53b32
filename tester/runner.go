package tester

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"axlab.dev/lessons/util"
	"github.com/pmezard/go-difflib/difflib"
)

// Rewrite regenerates every `.out` file from the actual output. Set by
// TESTER_REWRITE=1 in the environment.
var Rewrite = os.Getenv("TESTER_REWRITE") == "1"

// Generic interface for a test runner.
type TestRunner interface {
	Run(input Input) (out Output)
}

// Output from a TestRunner.
type Output struct {
	Error  error
	StdOut string
}

// Input to a TestRunner.
type Input struct {
	path string
	name string
}

func (input Input) Name() string {
	return input.name
}

func (input Input) Path() string {
	return filepath.Join(input.path, input.name)
}

// Lines returns the non-blank lines of the input with `#` comments removed.
// Lines are trimmed on the right only so leading spaces stay significant.
func (input Input) Lines() (out []string) {
	for _, it := range util.TrimLines(util.Lines(input.Text())) {
		if strings.TrimSpace(it) == "" || strings.HasPrefix(it, "#") {
			continue
		}
		out = append(out, it)
	}
	return out
}

func (input Input) Text() string {
	return string(util.Try(os.ReadFile(input.Path())))
}

// Run tests in a directory based on a file glob.
type Runner struct {
	t       *testing.T
	inner   TestRunner
	rootDir string
	glob    string
}

func NewRunner(t *testing.T, dir string, runner TestRunner) Runner {
	return Runner{
		t:       t,
		inner:   runner,
		rootDir: util.Try(filepath.Abs(dir)),
		glob:    "*.in",
	}
}

func (runner Runner) Run() (out []RunOutput) {
	files := util.Glob(runner.rootDir, runner.glob)
	if len(files) == 0 {
		runner.t.Fatalf("no test inputs matching %s in %s", runner.glob, runner.rootDir)
	}

	failed := 0
	for _, it := range files {
		run := RunOutput{
			root:  runner.rootDir,
			Name:  util.WithExtension(path.Base(it), ""),
			File:  it,
			Input: Input{path: runner.rootDir, name: it},
		}
		run.runSingle(runner.inner)
		out = append(out, run)

		if !run.Success {
			failed += 1
			runner.t.Errorf("%s: %s", run.Name, run.Details())
		}
	}

	if failed > 0 {
		runner.t.Logf("Failed %d out of %d tests", failed, len(out))
	}
	return out
}

type RunOutput struct {
	root string

	Name    string
	File    string
	Success bool

	Input  Input
	Output Output

	ExpectOutput []string
	ActualOutput []string
}

func (run *RunOutput) outFile() string {
	return filepath.Join(run.root, util.WithExtension(run.File, ".out"))
}

func (run *RunOutput) runSingle(runner TestRunner) {
	run.Output = runner.Run(run.Input)
	run.ExpectOutput = util.TrimLines(util.Lines(util.ReadText(run.outFile())))
	run.ActualOutput = util.TrimLines(util.Lines(run.Output.StdOut))
	run.checkResult()
}

func (run *RunOutput) checkResult() {
	run.Success = run.Output.Error == nil
	if !run.Success {
		return
	}

	if len(run.ExpectOutput) == 0 || Rewrite {
		if len(run.ActualOutput) > 0 {
			util.WriteText(run.outFile(), strings.Join(run.ActualOutput, "\n"))
		}
		return
	}

	run.Success = len(run.ExpectOutput) == len(run.ActualOutput)
	for i := 0; run.Success && i < len(run.ActualOutput); i++ {
		run.Success = run.ExpectOutput[i] == run.ActualOutput[i]
	}
}

// Details describes why a run failed.
func (run RunOutput) Details() string {
	if run.Output.Error != nil {
		return fmt.Sprintf("error: %v", run.Output.Error)
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(strings.Join(run.ExpectOutput, "\n")),
		B:        difflib.SplitLines(strings.Join(run.ActualOutput, "\n")),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  2,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return fmt.Sprintf("output mismatch (diff failed: %v)", err)
	}
	return "output mismatch\n" + text
}
