package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cmdly/pkg/shelltypes"
)

func TestFlipCommand_Metadata(t *testing.T) {
	cmd := &FlipCommand{}
	assert.Equal(t, "flip", cmd.Name())
	assert.True(t, cmd.Fun())
	assert.True(t, cmd.HelpInfo().Fun)
}

func TestFlipCommand_Outcome(t *testing.T) {
	code, err, out := run(t, &FlipCommand{}, "flip")
	require.NoError(t, err)
	assert.Equal(t, shelltypes.ExitSuccess, code)
	assert.Regexp(t, `^The coin landed on: (Heads|Tails)\n$`, out)
}

func TestFlipCommand_SeedIsDeterministic(t *testing.T) {
	_, err, first := run(t, &FlipCommand{}, "flip --seed=42")
	require.NoError(t, err)
	_, err, second := run(t, &FlipCommand{}, "flip --seed=42")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFlipCommand_InvalidSeed(t *testing.T) {
	code, err, _ := run(t, &FlipCommand{}, "flip --seed=notanumber")
	require.Error(t, err)
	assert.Equal(t, shelltypes.ExitFailure, code)
	assert.Contains(t, err.Error(), `invalid seed "notanumber"`)
}
