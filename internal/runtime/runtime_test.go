package runtime

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/countdown/internal/errors"
	"github.com/manav03panchal/countdown/internal/logging"
	"github.com/manav03panchal/countdown/internal/output"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newTestContext(t *testing.T, opts Options) *Context {
	t.Helper()
	if opts.ConfigPath == "" {
		opts.ConfigPath = writeConfig(t, "")
	}
	ctx, err := New(opts)
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx.Close()
		logging.Init(logging.DiscardConfig())
	})
	return ctx
}

// =============================================================================
// Context Tests
// =============================================================================

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.Equal(t, output.FormatCLI, opts.Format)
	assert.Equal(t, output.ColorAuto, opts.ColorMode)
	assert.NotEmpty(t, opts.LogPath)
	assert.False(t, opts.Debug)
	assert.False(t, opts.Interactive)
}

func TestNew(t *testing.T) {
	ctx := newTestContext(t, Options{})

	assert.NotNil(t, ctx.Config)
	assert.NotNil(t, ctx.DB)
	assert.NotNil(t, ctx.Formatter)
	assert.NotNil(t, ctx.Timers)
	assert.NotNil(t, ctx.Board)
	assert.NotNil(t, ctx.Logger)
	assert.Len(t, ctx.SessionID, 36)
	assert.False(t, ctx.RemovalPolicy().AllowWhileRunning)
}

func TestNewWithOptions(t *testing.T) {
	ctx := newTestContext(t, Options{
		ConfigPath: writeConfig(t, "remove_while_running: true\n"),
		Format:     output.FormatJSON,
		ColorMode:  output.ColorNever,
		Debug:      true,
	})

	assert.Equal(t, output.FormatJSON, ctx.Formatter.Format)
	assert.Equal(t, output.ColorNever, ctx.Formatter.ColorMode)
	assert.True(t, ctx.Debug)
	assert.True(t, ctx.IsJSON())
	assert.False(t, ctx.IsCLI())
	assert.True(t, ctx.RemovalPolicy().AllowWhileRunning)
}

func TestNewBadConfig(t *testing.T) {
	_, err := New(Options{ConfigPath: writeConfig(t, "tick_interval: -1s\n")})
	assert.Error(t, err)
}

func TestNewInteractiveDebugLogsToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "state", "countdown.log")
	ctx := newTestContext(t, Options{Interactive: true, Debug: true, LogPath: logPath})

	_, err := ctx.Board.Add("Call", "Meeting", "+5m")
	require.NoError(t, err)
	require.NoError(t, ctx.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "timer added")
	assert.Contains(t, string(data), ctx.SessionID)
}

func TestContextCloseTwice(t *testing.T) {
	ctx := newTestContext(t, Options{})
	assert.NoError(t, ctx.Close())
}

func TestContextFormatters(t *testing.T) {
	ctx := newTestContext(t, Options{})

	assert.NotNil(t, ctx.CLIFormatter())
	assert.NotNil(t, ctx.JSONFormatter())
}

// =============================================================================
// Error Tests
// =============================================================================

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitUserError, ExitCode(errors.NewUserError("bad", "")))
	assert.Equal(t, ExitUserError, ExitCode(fmt.Errorf("wrapped: %w", errors.NewUserError("bad", ""))))
	assert.Equal(t, ExitSystemError, ExitCode(errors.NewSystemErrorWithOp("tick", "db", fmt.Errorf("boom"))))
	assert.Equal(t, ExitSystemError, ExitCode(fmt.Errorf("plain")))

	// A storage failure underneath user input is still a system failure.
	inner := errors.NewUserError("bad", "")
	assert.Equal(t, ExitSystemError, ExitCode(errors.NewSystemErrorWithOp("add", "failed to store timer", inner)))
}

func TestFormatError(t *testing.T) {
	err := errors.NewUserError("Bad target", "Try +5m").WithCause(errors.ErrInvalidTarget)
	assert.Equal(t, "Bad target\nTry +5m", FormatError(err))
	assert.Equal(t, "Try +5m", GetSuggestion(err))

	assert.Equal(t, errors.Suggestions[errors.ErrIncompleteInput], GetSuggestion(errors.ErrIncompleteInput))
}
