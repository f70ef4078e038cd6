package executor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExecuteCapturesStdout(t *testing.T) {
	res, err := Execute(context.Background(), []string{"echo", "hello"}, 10*time.Second)
	require.NoError(t, err)
	require.True(t, res.Succeeded)
	require.Equal(t, 0, res.ExitCode)
	require.Equal(t, "hello\n", res.Stdout)
	require.False(t, res.TimedOut)
}

func TestExecuteNonZeroExit(t *testing.T) {
	res, err := Execute(context.Background(), []string{"false"}, 10*time.Second)
	require.NoError(t, err)
	require.False(t, res.Succeeded)
	require.Equal(t, 1, res.ExitCode)
	require.False(t, res.TimedOut)
}

func TestExecuteTimeout(t *testing.T) {
	start := time.Now()
	res, err := Execute(context.Background(), []string{"sleep", "5"}, 1*time.Second)
	elapsed := time.Since(start)

	require.NoError(t, err)
	require.True(t, res.TimedOut)
	require.False(t, res.Succeeded)
	require.Equal(t, -1, res.ExitCode)
	require.Less(t, elapsed, 2*time.Second)
}

func TestExecuteMissingExecutable(t *testing.T) {
	_, err := Execute(context.Background(), []string{"definitely-not-a-real-binary-xyz"}, time.Second)

	var startErr *StartError
	require.True(t, errors.As(err, &startErr))
	require.Equal(t, "definitely-not-a-real-binary-xyz", startErr.Command)
}

func TestExecuteEmptyArgv(t *testing.T) {
	_, err := Execute(context.Background(), nil, time.Second)

	var startErr *StartError
	require.True(t, errors.As(err, &startErr))
}

func TestExecuteCapturesStderr(t *testing.T) {
	res, err := Execute(context.Background(), []string{"sh", "-c", "echo oops >&2; exit 3"}, 10*time.Second)
	require.NoError(t, err)
	require.False(t, res.Succeeded)
	require.Equal(t, 3, res.ExitCode)
	require.Equal(t, "oops\n", res.Stderr)
}

func TestDecodeReplacesInvalidBytes(t *testing.T) {
	got := decode([]byte{'o', 'k', 0xff, 0xfe})
	require.Equal(t, "ok��", got)
}
