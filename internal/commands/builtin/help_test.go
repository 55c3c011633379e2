package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cmdly/internal/commands"
	"cmdly/pkg/shelltypes"
)

func TestHelpCommand_ListsAllCommands(t *testing.T) {
	code, err, out := run(t, &HelpCommand{}, "help")
	require.NoError(t, err)
	assert.Equal(t, shelltypes.ExitSuccess, code)

	assert.Contains(t, out, "Available commands:")
	for _, name := range []string{"chat", "clear", "echo", "exit", "flip", "help", "llm"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "[FUN]")
	assert.Contains(t, out, "Use 'help [command]' for more info.")
}

func TestHelpCommand_DetailView(t *testing.T) {
	code, err, out := run(t, &HelpCommand{}, "help echo")
	require.NoError(t, err)
	assert.Equal(t, shelltypes.ExitSuccess, code)

	assert.Contains(t, out, "echo - Echoes the provided arguments")
	assert.Contains(t, out, "Usage: echo <message> [--loud] [--verbose]")
	assert.Contains(t, out, "--loud")
	assert.Contains(t, out, "Examples:")
}

func TestHelpCommand_DetailViewByAlias(t *testing.T) {
	_, err, out := run(t, &HelpCommand{}, "help ask")
	require.NoError(t, err)
	assert.Contains(t, out, "llm -")
	assert.Contains(t, out, "Aliases: ask")
}

func TestHelpCommand_UnknownCommand(t *testing.T) {
	code, err, _ := run(t, &HelpCommand{}, "help frobnicate")
	require.Error(t, err)
	assert.Equal(t, shelltypes.ExitFailure, code)

	var notFound *commands.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "frobnicate", notFound.Name)
}

func TestHelpCommand_UnknownCommandSuggestsNearMiss(t *testing.T) {
	_, err, _ := run(t, &HelpCommand{}, "help ecoh")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "echo"?`)
}
