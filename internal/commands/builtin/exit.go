package builtin

import (
	"fmt"

	"cmdly/internal/commands"
	"cmdly/pkg/shelltypes"
)

// ExitCommand implements the exit command for leaving the shell. The shell
// loop stops after this command resolves and succeeds; the command itself
// only says goodbye so the loop stays the one place termination happens.
type ExitCommand struct{}

// Name returns the command name "exit" for registration and lookup.
func (c *ExitCommand) Name() string {
	return "exit"
}

// Aliases returns the quit alias.
func (c *ExitCommand) Aliases() []string {
	return []string{"quit"}
}

// Description returns a brief description of what the exit command does.
func (c *ExitCommand) Description() string {
	return "Exit the shell"
}

// Usage returns the syntax for the exit command.
func (c *ExitCommand) Usage() string {
	return "exit"
}

// Fun reports that exit is a regular command.
func (c *ExitCommand) Fun() bool {
	return false
}

// HelpInfo returns structured help information for the exit command.
func (c *ExitCommand) HelpInfo() shelltypes.HelpInfo {
	return shelltypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		Notes: []string{
			"quit does the same thing",
			"Ctrl+D (end of input) also leaves the shell",
		},
	}
}

// Execute prints the goodbye message. The loop handles the actual stop.
func (c *ExitCommand) Execute(_ *shelltypes.Invocation, out shelltypes.Printer) (int, error) {
	out.Info("Goodbye!")
	return shelltypes.ExitSuccess, nil
}

func init() {
	if err := commands.GetGlobalRegistry().Register(&ExitCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register exit command: %v", err))
	}
}
