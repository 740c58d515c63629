package root

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestDemoWithValidNumber(t *testing.T) {
	out, _, err := execute(t, "demo", "--number", "5", "--configs", t.TempDir())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 1)
	total, perr := strconv.ParseFloat(lines[0], 64)
	require.NoError(t, perr)
	require.GreaterOrEqual(t, total, 5.0)
	require.Less(t, total, 6.0)
}

func TestDemoWithDecimalNumber(t *testing.T) {
	out, _, err := execute(t, "demo", "--number", "-3.5", "--configs", t.TempDir())
	require.NoError(t, err)

	total, perr := strconv.ParseFloat(strings.TrimSpace(out), 64)
	require.NoError(t, perr)
	require.GreaterOrEqual(t, total, -3.5)
	require.Less(t, total, -2.5)
}

func TestDemoWithNonNumericArgument(t *testing.T) {
	cmd := NewRootCmd()
	var combined bytes.Buffer
	cmd.SetOut(&combined)
	cmd.SetErr(&combined)
	cmd.SetArgs([]string{"demo", "--number", "abc", "--configs", t.TempDir()})

	err := cmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "abc")
	// Usage is shown for argument errors; no result line is printed.
	require.Contains(t, combined.String(), "Usage:")
	for _, line := range strings.Split(combined.String(), "\n") {
		_, perr := strconv.ParseFloat(strings.TrimSpace(line), 64)
		require.Error(t, perr, "unexpected numeric line %q", line)
	}
}

func TestDemoWithMissingNumberShowsUsage(t *testing.T) {
	out, errOut, err := execute(t, "demo", "--configs", t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "number")
	// The required-flag error happens before the command runs, so usage
	// must still be printed.
	require.Contains(t, out+errOut, "Usage:")
}

func TestDemoFlagStateIsFreshPerExecution(t *testing.T) {
	_, _, err := execute(t, "demo", "--number", "5", "--configs", t.TempDir())
	require.NoError(t, err)

	// A second root built afterwards must not remember the earlier
	// --number value: omitting it still fails the required-flag check.
	_, _, err = execute(t, "demo", "--configs", t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "number")
}

func TestBareInvocationShowsHelp(t *testing.T) {
	out, _, err := execute(t)
	require.NoError(t, err)
	require.Contains(t, out, "Usage:")
	require.Contains(t, out, "demo")
	require.Contains(t, out, "version")
}

func TestUnknownCommandFails(t *testing.T) {
	_, _, err := execute(t, "frobnicate")
	require.Error(t, err)
}
