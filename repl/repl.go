/*
File    : wisp/repl/repl.go
*/

// Package repl implements the interactive Read-Eval-Print Loop for Wisp.
// It runs the full scan → parse → interpret pipeline on each line the user
// enters, resetting the lexer/parser error flag between lines while
// leaving the runtime-error flag untouched.
//
// Unlike a REPL that auto-echoes the value of each typed expression, Wisp
// requires an explicit `print` statement, so a line that evaluates to a
// value without printing it produces no output.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/wisplang/wisp/diag"
	"github.com/wisplang/wisp/environment"
	"github.com/wisplang/wisp/interpreter"
	"github.com/wisplang/wisp/lexer"
	"github.com/wisplang/wisp/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl bundles the cosmetic configuration for one interactive session.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string
}

// New creates a Repl with the given banner, version string, separator
// line, and prompt.
func New(banner, version, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

// printBanner writes the welcome banner and usage hints to writer.
func (r *Repl) printBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintln(writer, "Wisp "+r.Version)
	cyanColor.Fprintln(writer, "Type code and press enter. ';exit' quits.")
	cyanColor.Fprintln(writer, "Results are not auto-printed; use 'print expr;'.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL main loop against reader/writer until the user exits
// or EOF is reached. Each interpreter instance it creates is independent —
// no state is shared across Start invocations.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.Prompt,
		Stdin:  readline.NewCancelableStdin(reader),
		Stdout: writer,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	reporter := diag.New(&redWriter{w: writer})
	interp := interpreter.New(reporter, writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Goodbye.\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ";exit" {
			writer.Write([]byte("Goodbye.\n"))
			return
		}
		rl.SaveHistory(line)

		r.run(line, reporter, interp)
	}
}

// run executes one line of source against the session's shared
// interpreter, resetting the static-error flag before each run.
func (r *Repl) run(source string, reporter *diag.Reporter, interp *interpreter.Interpreter) {
	reporter.ResetError()

	tokens := lexer.New(source, reporter).ScanTokens()
	statements := parser.New(tokens, reporter).Parse()
	if reporter.HadError {
		return
	}
	interp.Interpret(statements)
}

// NewInterpreterEnvironment returns a fresh global environment that shares
// no bindings with any REPL session.
func NewInterpreterEnvironment() *environment.Environment {
	return environment.New(nil)
}

// redWriter renders every diagnostic line in red, coloring error output
// distinctly from ordinary program output.
type redWriter struct {
	w io.Writer
}

func (rw *redWriter) Write(p []byte) (int, error) {
	redColor.Fprint(rw.w, string(p))
	return len(p), nil
}
