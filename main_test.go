package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lambda/eval"
)

func runApp(t *testing.T, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	app := newApp(&stdout, &stderr)
	err := app.Run(append([]string{"lambda", "--config", "", "--no-color"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestRunFile(t *testing.T) {
	stdout, _, err := runApp(t, "run", "testdata/basics.lambda")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"Executing: 2 + 3",
		"5",
		"Executing: 3 + 4 * 2",
		"11",
		"Executing: 10 % 3",
		"1",
		"Executing: True && False",
		"False",
		"Executing: !False",
		"True",
		"Executing: 3 <= 3",
		"True",
		"Executing: if False: 1 else: 0",
		"0",
		"",
	}, "\n"), stdout)
}

func TestRunFileKeepsDefinitions(t *testing.T) {
	stdout, _, err := runApp(t, "run", "testdata/functions.lambda")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"Executing: def fact(n): if n <= 1: 1 else: n * fact(n - 1)",
		"<function fact(n)>",
		"Executing: fact(5)",
		"120",
		"Executing: def adder(n): lambda x: x + n",
		"<function adder(n)>",
		"Executing: adder(3)(4)",
		"7",
		"Executing: (lambda x: (lambda y: x + y)(2))(3)",
		"5",
		"",
	}, "\n"), stdout)
}

func TestRunFileContinuesPastErrors(t *testing.T) {
	stdout, stderr, err := runApp(t, "run", "testdata/errors.lambda")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "testdata/errors.lambda: 4 line(s) failed")

	// every line ran, and only the last produced a value
	assert.Equal(t, 5, strings.Count(stdout, "Executing: "))
	assert.True(t, strings.HasSuffix(stdout, "Executing: 1 + 1\n2\n"))

	assert.Contains(t, stderr, "DivisionByZero: division by zero")
	assert.Contains(t, stderr, "ArityError: <lambda x, y> expected 2 arguments but got 1")
	assert.Contains(t, stderr, "NameError: name 'unknown_function' is not defined")
	assert.Contains(t, stderr, "testdata/errors.lambda:1:9: expected :, found NUMBER \"1\"")
}

func TestRunMissingFile(t *testing.T) {
	_, _, err := runApp(t, "run", "testdata/does-not-exist.lambda")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open testdata/does-not-exist.lambda")

	_, _, err = runApp(t, "run")
	require.Error(t, err)
}

func TestMaxDepthFlag(t *testing.T) {
	_, _, err := runApp(t, "--max-depth", "0", "run", "testdata/basics.lambda")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--max-depth must be between 1 and 100000, got 0")

	_, _, err = runApp(t, "--max-depth", "10000000", "run", "testdata/basics.lambda")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--max-depth must be between 1 and 100000, got 10000000")

	_, stderr, err := runApp(t, "--max-depth", "3", "run", "testdata/functions.lambda")
	require.Error(t, err)
	assert.Contains(t, stderr, "RecursionLimitExceeded")
}

func TestTokensCommand(t *testing.T) {
	stdout, _, err := runApp(t, "tokens", "lambda x: x <= 10")
	require.NoError(t, err)
	for _, s := range []string{"KEYWORD", "IDENTIFIER", "COLON", "COMPARE_OP", "NUMBER", "<=", "10"} {
		assert.Contains(t, stdout, s)
	}
	assert.NotContains(t, stdout, "EOF")

	_, _, err = runApp(t, "tokens", "1 = 2")
	require.Error(t, err)
}

func TestAstCommand(t *testing.T) {
	stdout, _, err := runApp(t, "ast", "3 + 4 * 2")
	require.NoError(t, err)
	assert.Equal(t, "(3 + (4 * 2))\n", stdout)

	stdout, _, err = runApp(t, "ast", "--dump", "!False")
	require.NoError(t, err)
	assert.Contains(t, stdout, "parser.UnaryOp")
	assert.Contains(t, stdout, "parser.BooleanLiteral")

	_, _, err = runApp(t, "ast", "if True 1 else 0")
	require.Error(t, err)
}

func TestHandleLine(t *testing.T) {
	color.NoColor = true
	s, err := eval.NewSession(eval.Options{})
	require.NoError(t, err)

	var out, errOut bytes.Buffer
	assert.True(t, handleLine(s, "def sq(x): x * x", &out, &errOut))
	assert.True(t, handleLine(s, "  sq(4)  ", &out, &errOut))
	assert.True(t, handleLine(s, "", &out, &errOut))
	assert.True(t, handleLine(s, "# nothing", &out, &errOut))
	assert.True(t, handleLine(s, "sq(True)", &out, &errOut))
	assert.True(t, handleLine(s, ":env", &out, &errOut))
	assert.Equal(t, "<function sq(x)>\n16\nsq = <function sq(x)>\n", out.String())
	assert.Equal(t, "TypeMismatch: unsupported operand kinds for *: Boolean and Boolean\n", errOut.String())

	assert.False(t, handleLine(s, ":quit", &out, &errOut))
	assert.False(t, handleLine(s, ":q", &out, &errOut))
}

func TestSliceVersion(t *testing.T) {
	assert.Equal(t, "dev", sliceVersion(""))
	assert.Equal(t, "v1.2", sliceVersion("v1.2"))
	assert.Equal(t, "0123456789", sliceVersion("0123456789abcdef"))
}
