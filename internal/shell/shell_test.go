package shell

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cmdly/internal/config"
	"cmdly/internal/output"
	"cmdly/pkg/shelltypes"
)

func newTestShell(t *testing.T, cfg *config.Config) (*Shell, *bytes.Buffer) {
	t.Helper()
	if cfg == nil {
		var err error
		cfg, err = config.Load("")
		require.NoError(t, err)
	}
	var buf bytes.Buffer
	sh, err := NewWithPrinter(cfg, output.NewPrinter(&buf))
	require.NoError(t, err)
	return sh, &buf
}

func TestHandle_EmptyLineIsNoOp(t *testing.T) {
	sh, buf := newTestShell(t, nil)

	code, stop := sh.Handle("")
	assert.Equal(t, shelltypes.ExitSuccess, code)
	assert.False(t, stop)
	assert.Empty(t, buf.String())

	code, stop = sh.Handle("   \t ")
	assert.Equal(t, shelltypes.ExitSuccess, code)
	assert.False(t, stop)
	assert.Empty(t, buf.String())
}

func TestHandle_EchoCommand(t *testing.T) {
	sh, buf := newTestShell(t, nil)

	code, stop := sh.Handle(`echo "hello world"`)
	assert.Equal(t, shelltypes.ExitSuccess, code)
	assert.False(t, stop)
	assert.Contains(t, buf.String(), "hello world")
}

func TestHandle_UnknownCommand(t *testing.T) {
	sh, buf := newTestShell(t, nil)

	code, stop := sh.Handle("frobnicate now")
	assert.Equal(t, shelltypes.ExitNotFound, code)
	assert.False(t, stop)
	assert.Contains(t, buf.String(), "command not found: frobnicate")
}

func TestHandle_UnknownCommandWithSuggestion(t *testing.T) {
	sh, buf := newTestShell(t, nil)

	code, _ := sh.Handle("hepl")
	assert.Equal(t, shelltypes.ExitNotFound, code)
	assert.Contains(t, buf.String(), `did you mean "help"?`)
}

func TestHandle_ExitStopsLoop(t *testing.T) {
	sh, buf := newTestShell(t, nil)

	code, stop := sh.Handle("exit")
	assert.Equal(t, shelltypes.ExitSuccess, code)
	assert.True(t, stop)
	assert.Contains(t, buf.String(), "Goodbye")
}

func TestHandle_QuitAliasStopsLoop(t *testing.T) {
	sh, _ := newTestShell(t, nil)

	_, stop := sh.Handle("QUIT")
	assert.True(t, stop)
}

func TestHandle_ConfiguredAliasResolves(t *testing.T) {
	sh, buf := newTestShell(t, nil)

	// "say" comes from the default alias configuration for echo.
	code, _ := sh.Handle("say hi")
	assert.Equal(t, shelltypes.ExitSuccess, code)
	assert.Contains(t, buf.String(), "hi")
}

func TestHandle_FunCommandGate(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Features.FunCommands = false
	sh, buf := newTestShell(t, cfg)

	code, stop := sh.Handle("flip")
	assert.Equal(t, shelltypes.ExitSuccess, code)
	assert.False(t, stop)
	assert.Contains(t, buf.String(), "fun commands are disabled")
}

func TestHandle_FlipOutcomeIsValid(t *testing.T) {
	sh, buf := newTestShell(t, nil)

	code, _ := sh.Handle("flip --seed=42")
	assert.Equal(t, shelltypes.ExitSuccess, code)
	first := buf.String()
	assert.Regexp(t, "The coin landed on: (Heads|Tails)", first)

	buf.Reset()
	code, _ = sh.Handle("flip --seed=42")
	assert.Equal(t, shelltypes.ExitSuccess, code)
	assert.Equal(t, first, buf.String(), "same seed yields the same outcome")
}

func TestHandle_CommandFailureDoesNotStopLoop(t *testing.T) {
	sh, buf := newTestShell(t, nil)

	code, stop := sh.Handle("flip --seed=notanumber")
	assert.Equal(t, shelltypes.ExitFailure, code)
	assert.False(t, stop)
	assert.Contains(t, buf.String(), "invalid seed")
}
