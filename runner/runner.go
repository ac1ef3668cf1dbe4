/*
File    : wisp/runner/runner.go
*/

// Package runner implements the file-execution host path: read a Wisp
// source file, run the scan → parse → interpret pipeline once, and report
// which of the two error flags (if either) ended the run. The caller
// turns that into an exit code (0 clean, 65 static error, 70 runtime
// error, runtime taking precedence only when no static error occurred).
//
// Split out of the `main` package so it is unit-testable without a
// process exit.
package runner

import (
	"io"
	"os"

	"github.com/wisplang/wisp/diag"
	"github.com/wisplang/wisp/interpreter"
	"github.com/wisplang/wisp/lexer"
	"github.com/wisplang/wisp/parser"
)

// Result reports which error flags were set after a Run.
type Result struct {
	HadError        bool
	HadRuntimeError bool
}

// ExitCode maps the result flags to a process exit code.
func (r Result) ExitCode() int {
	switch {
	case r.HadError:
		return 65
	case r.HadRuntimeError:
		return 70
	default:
		return 0
	}
}

// Run executes source once against a fresh interpreter, writing program
// output and diagnostics to out.
func Run(source string, out io.Writer) Result {
	reporter := diag.New(out)

	tokens := lexer.New(source, reporter).ScanTokens()
	statements := parser.New(tokens, reporter).Parse()
	if reporter.HadError {
		return Result{HadError: true}
	}

	interp := interpreter.New(reporter, out)
	interp.Interpret(statements)

	return Result{HadError: reporter.HadError, HadRuntimeError: reporter.HadRuntimeError}
}

// RunFile reads path and runs its contents. A file read failure is
// reported to stderr and reported back as a static error so the caller
// exits non-zero without needing its own os.Exit call.
func RunFile(path string, out io.Writer) Result {
	source, err := os.ReadFile(path)
	if err != nil {
		io.WriteString(os.Stderr, "Could not read file '"+path+"': "+err.Error()+"\n")
		return Result{HadError: true}
	}
	return Run(string(source), out)
}
