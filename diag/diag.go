/*
File    : wisp/diag/diag.go
*/

// Package diag implements the error-reporting contract shared by the
// lexer, parser, and interpreter. Rather than process-global booleans,
// diagnostics are collected on a Reporter handle that the host owns and
// passes down through the pipeline, which keeps interpreter instances
// independently testable.
package diag

import (
	"fmt"
	"io"

	"github.com/wisplang/wisp/token"
)

// Reporter is the diagnostic sink for one interpreter run. It tracks the
// two error flags the host inspects after each pipeline invocation:
// HadError (a lexer or parse failure occurred) and HadRuntimeError (a
// runtime failure aborted evaluation).
type Reporter struct {
	Out             io.Writer
	HadError        bool
	HadRuntimeError bool
}

// New creates a Reporter that writes diagnostics to out.
func New(out io.Writer) *Reporter {
	return &Reporter{Out: out}
}

// Line reports a line-scoped lexer or parse error: "[line N] Error: MESSAGE".
// This is the channel used for unexpected characters and unterminated
// strings, where no single offending token exists.
func (r *Reporter) Line(line int, message string) {
	r.report(line, "", message)
}

// Token reports a parse error anchored to a specific token. If tok is EOF
// the location reads " at end"; otherwise " at 'LEXEME'".
func (r *Reporter) Token(tok token.Token, message string) {
	if tok.IsEOF() {
		r.report(tok.Line, " at end", message)
	} else {
		r.report(tok.Line, fmt.Sprintf(" at '%s'", tok.Lexeme), message)
	}
}

// report is the shared formatter for the two static-error channels; both
// set HadError, never HadRuntimeError.
func (r *Reporter) report(line int, where, message string) {
	fmt.Fprintf(r.Out, "[line %d] Error%s: %s\n", line, where, message)
	r.HadError = true
}

// Runtime reports a runtime error at the line of its offending token and
// sets HadRuntimeError. Runtime errors use a separate flag from static
// errors so the host can distinguish exit code 65 from 70.
func (r *Reporter) Runtime(tok token.Token, message string) {
	fmt.Fprintf(r.Out, "[line %d] %s\n", tok.Line, message)
	r.HadRuntimeError = true
}

// ResetError clears HadError only. The interactive host calls this between
// prompt lines; HadRuntimeError is deliberately never reset by this
// method, since a runtime failure should still be visible in the
// session's final exit status.
func (r *Reporter) ResetError() {
	r.HadError = false
}
