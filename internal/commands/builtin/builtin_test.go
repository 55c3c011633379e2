package builtin

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"cmdly/internal/output"
	"cmdly/internal/parser"
	"cmdly/pkg/shelltypes"
)

// run parses a command line and executes it against the given command,
// capturing everything it prints.
func run(t *testing.T, cmd shelltypes.Command, line string) (int, error, string) {
	t.Helper()
	inv, err := parser.ParseLine(line)
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	code, execErr := cmd.Execute(inv, output.NewPrinter(buf))
	return code, execErr, buf.String()
}
