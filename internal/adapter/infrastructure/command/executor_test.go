//go:build unit

package command

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"golang-netswitch/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping test")
	}
}

func TestExecutorAdapter_Output(t *testing.T) {
	requireShell(t)
	ctx := context.Background()

	t.Run("TrimsStdout", func(t *testing.T) {
		var out bytes.Buffer
		adapter := NewExecutorAdapter(&out)

		stdout, err := adapter.Output(ctx, "sh", "-c", "printf '  eth-lab:enp0s3\\n\\n'")
		require.NoError(t, err)
		assert.Equal(t, "eth-lab:enp0s3", stdout)
		assert.Empty(t, out.String())
	})

	t.Run("ArgumentsAreNotShellExpanded", func(t *testing.T) {
		adapter := NewExecutorAdapter(&bytes.Buffer{})

		stdout, err := adapter.Output(ctx, "sh", "-c", `printf %s "$1"`, "sh", "a; echo injected")
		require.NoError(t, err)
		assert.Equal(t, "a; echo injected", stdout)
	})

	t.Run("NonZeroExitReportsStderr", func(t *testing.T) {
		var out bytes.Buffer
		adapter := NewExecutorAdapter(&out)

		_, err := adapter.Output(ctx, "sh", "-c", "echo 'Error: unknown connection' >&2; exit 10")
		require.Error(t, err)

		var cmdErr *types.CommandError
		require.True(t, errors.As(err, &cmdErr))
		assert.Equal(t, 10, cmdErr.ExitCode)
		assert.Equal(t, "Error: unknown connection", cmdErr.Stderr)
		assert.Contains(t, out.String(), "Error running command: 'sh -c")
		assert.Contains(t, out.String(), "Error message: Error: unknown connection")
	})

	t.Run("NonZeroExitWithoutStderr", func(t *testing.T) {
		var out bytes.Buffer
		adapter := NewExecutorAdapter(&out)

		_, err := adapter.Output(ctx, "sh", "-c", "exit 1")
		require.Error(t, err)
		assert.Contains(t, out.String(), "Error message: no error output")
	})

	t.Run("CommandNotFound", func(t *testing.T) {
		var out bytes.Buffer
		adapter := NewExecutorAdapter(&out)

		_, err := adapter.Output(ctx, "netswitch-no-such-binary", "--version")
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrCommandNotFound)

		var cmdErr *types.CommandError
		assert.False(t, errors.As(err, &cmdErr))
		assert.Contains(t, out.String(), "command 'netswitch-no-such-binary' not found")
	})
}

func TestExecutorAdapter_Run(t *testing.T) {
	requireShell(t)
	ctx := context.Background()

	t.Run("StreamsOutput", func(t *testing.T) {
		var out bytes.Buffer
		adapter := NewExecutorAdapter(&out)

		err := adapter.Run(ctx, "sh", "-c", "echo connected; echo '* Trying' >&2")
		require.NoError(t, err)
		assert.Contains(t, out.String(), "connected")
		assert.Contains(t, out.String(), "* Trying")
	})

	t.Run("InterleavedStreamsKeepEveryLine", func(t *testing.T) {
		var out bytes.Buffer
		adapter := NewExecutorAdapter(&out)

		script := "i=0; while [ $i -lt 200 ]; do echo out-line; echo err-line >&2; i=$((i+1)); done"
		err := adapter.Run(ctx, "sh", "-c", script)
		require.NoError(t, err)
		assert.Equal(t, 200, strings.Count(out.String(), "out-line\n"))
		assert.Equal(t, 200, strings.Count(out.String(), "err-line\n"))
	})

	t.Run("FailureRepeatsOnlyLastStderrLine", func(t *testing.T) {
		var out bytes.Buffer
		adapter := NewExecutorAdapter(&out)

		err := adapter.Run(ctx, "sh", "-c", "echo '* Trying 192.168.56.1:8080...' >&2; echo 'curl: (7) Failed to connect' >&2; exit 7")

		var cmdErr *types.CommandError
		require.True(t, errors.As(err, &cmdErr))
		assert.Equal(t, 7, cmdErr.ExitCode)
		assert.Contains(t, cmdErr.Stderr, "* Trying")
		assert.Contains(t, out.String(), "Error message: curl: (7) Failed to connect")
		assert.Equal(t, 1, strings.Count(out.String(), "* Trying 192.168.56.1:8080...\n"))
	})

	t.Run("Failure", func(t *testing.T) {
		var out bytes.Buffer
		adapter := NewExecutorAdapter(&out)

		err := adapter.Run(ctx, "sh", "-c", "exit 4")
		var cmdErr *types.CommandError
		require.True(t, errors.As(err, &cmdErr))
		assert.Equal(t, 4, cmdErr.ExitCode)
	})

	t.Run("CancelledContext", func(t *testing.T) {
		adapter := NewExecutorAdapter(&bytes.Buffer{})

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		err := adapter.Run(cancelled, "sh", "-c", "sleep 5")
		assert.Error(t, err)
	})
}

func TestLastLine(t *testing.T) {
	assert.Equal(t, "", lastLine(""))
	assert.Equal(t, "only", lastLine("only"))
	assert.Equal(t, "second", lastLine("first\nsecond"))
}

func TestFormatCommand(t *testing.T) {
	assert.Equal(t, "nmcli connection down lab", FormatCommand("nmcli", "connection", "down", "lab"))
	assert.Equal(t, `nmcli connection modify "Wired connection 1" ipv4.dns ""`,
		FormatCommand("nmcli", "connection", "modify", "Wired connection 1", "ipv4.dns", ""))
}
