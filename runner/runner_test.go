/*
File    : wisp/runner/runner_test.go
*/
package runner

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_CleanProgramExitsZero(t *testing.T) {
	var out bytes.Buffer
	result := Run("print 1 + 1;", &out)

	assert.Equal(t, 0, result.ExitCode())
	assert.False(t, result.HadError)
	assert.False(t, result.HadRuntimeError)
	assert.Equal(t, "2\n", out.String())
}

func TestRun_ParseErrorExits65AndSkipsInterpretation(t *testing.T) {
	var out bytes.Buffer
	result := Run("var a = ;", &out)

	assert.Equal(t, 65, result.ExitCode())
	assert.True(t, result.HadError)
	assert.False(t, result.HadRuntimeError)
}

func TestRun_RuntimeErrorExits70(t *testing.T) {
	var out bytes.Buffer
	result := Run(`print 1 + "a";`, &out)

	assert.Equal(t, 70, result.ExitCode())
	assert.False(t, result.HadError)
	assert.True(t, result.HadRuntimeError)
}

func TestResult_ExitCode_StaticErrorTakesPrecedenceOverRuntime(t *testing.T) {
	result := Result{HadError: true, HadRuntimeError: true}
	assert.Equal(t, 65, result.ExitCode())
}

func TestRunFile_ReadsAndRunsSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clean.wisp")
	require.NoError(t, os.WriteFile(path, []byte(`print "hello";`), 0o644))

	var out bytes.Buffer
	result := RunFile(path, &out)

	assert.Equal(t, 0, result.ExitCode())
	assert.Equal(t, "hello\n", out.String())
}

func TestRunFile_MissingFileReportsStaticError(t *testing.T) {
	var out bytes.Buffer
	result := RunFile(filepath.Join(t.TempDir(), "missing.wisp"), &out)

	assert.True(t, result.HadError)
	assert.Equal(t, 65, result.ExitCode())
	assert.Equal(t, "", out.String(), "read failures are reported to stderr, not out")
}
