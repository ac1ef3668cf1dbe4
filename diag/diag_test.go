/*
File    : wisp/diag/diag_test.go
*/
package diag

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wisplang/wisp/token"
)

func TestLine_FormatsAndSetsHadError(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	r.Line(3, "Unexpected character")

	assert.Equal(t, "[line 3] Error: Unexpected character\n", buf.String())
	assert.True(t, r.HadError)
	assert.False(t, r.HadRuntimeError)
}

func TestToken_AtEndForEOF(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	r.Token(token.New(token.EOF, "", 5), "Expect expression.")

	assert.Equal(t, "[line 5] Error at end: Expect expression.\n", buf.String())
}

func TestToken_AtLexemeForNonEOF(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	r.Token(token.New(token.PLUS, "+", 2), "Expect expression.")

	assert.Equal(t, "[line 2] Error at '+': Expect expression.\n", buf.String())
}

func TestRuntime_SetsRuntimeFlagOnly(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	r.Runtime(token.New(token.IDENTIFIER, "x", 7), "Undefined variable 'x'.")

	assert.Equal(t, "[line 7] Undefined variable 'x'.\n", buf.String())
	assert.True(t, r.HadRuntimeError)
	assert.False(t, r.HadError)
}

func TestResetError_LeavesRuntimeErrorAlone(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.Line(1, "bad")
	r.Runtime(token.New(token.EOF, "", 1), "boom")

	r.ResetError()

	assert.False(t, r.HadError)
	assert.True(t, r.HadRuntimeError, "ResetError must not clear HadRuntimeError")
}
