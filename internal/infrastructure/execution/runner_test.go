package execution

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestRunner_Success(t *testing.T) {
	requireShell(t)

	output, err := NewRunner(0).Run(context.Background(), "sh", "-c", "echo hello")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(output))
}

func TestRunner_ArgumentsAreNotResplit(t *testing.T) {
	requireShell(t)

	output, err := NewRunner(0).Run(context.Background(), "sh", "-c", `printf '%s|' "$@"`, "sh", "My Report.pdf", "a;b")
	require.NoError(t, err)
	assert.Equal(t, "My Report.pdf|a;b|", string(output))
}

func TestRunner_NonZeroExit(t *testing.T) {
	requireShell(t)

	_, err := NewRunner(0).Run(context.Background(), "sh", "-c", "echo broken >&2; exit 3")
	require.Error(t, err)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.ExitCode)
	assert.Equal(t, "broken", exitErr.Output)
	assert.Contains(t, err.Error(), "broken")
}

func TestRunner_MissingBinary(t *testing.T) {
	_, err := NewRunner(0).Run(context.Background(), "definitely-not-a-real-binary-4f2c")
	require.Error(t, err)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, -1, exitErr.ExitCode)
	assert.True(t, errors.Is(err, exec.ErrNotFound))
}

func TestRunner_Timeout(t *testing.T) {
	requireShell(t)

	_, err := NewRunner(50*time.Millisecond).Run(context.Background(), "sh", "-c", "sleep 5")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestRunner_Canceled(t *testing.T) {
	requireShell(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(0).Run(ctx, "sh", "-c", "sleep 5")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestTail(t *testing.T) {
	assert.Equal(t, "abc", tail("  abc\n", 10))
	assert.Equal(t, "...def", tail("abcdef", 3))
}
