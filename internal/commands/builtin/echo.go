// Package builtin contains the built-in cmdly commands. Each command is a
// stateless struct implementing the shared Command interface, registered with
// the global registry during init.
package builtin

import (
	"fmt"
	"strings"

	"cmdly/internal/commands"
	"cmdly/pkg/shelltypes"
)

// EchoCommand implements the echo command for outputting text.
type EchoCommand struct{}

// Name returns the command name "echo" for registration and lookup.
func (c *EchoCommand) Name() string {
	return "echo"
}

// Aliases returns no built-in aliases; the config file may add some.
func (c *EchoCommand) Aliases() []string {
	return nil
}

// Description returns a brief description of what the echo command does.
func (c *EchoCommand) Description() string {
	return "Echoes the provided arguments"
}

// Usage returns the syntax for the echo command.
func (c *EchoCommand) Usage() string {
	return "echo <message> [--loud] [--verbose]"
}

// Fun reports that echo is a regular command.
func (c *EchoCommand) Fun() bool {
	return false
}

// HelpInfo returns structured help information for the echo command.
func (c *EchoCommand) HelpInfo() shelltypes.HelpInfo {
	return shelltypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		Options: []shelltypes.HelpOption{
			{Name: "loud", Description: "Print the message in upper case", Type: "bool", Default: "false"},
			{Name: "verbose", Description: "Show the raw argument list instead of joined text", Type: "bool", Default: "false"},
		},
		Examples: []shelltypes.HelpExample{
			{Command: `echo "hello world"`, Description: "Print a quoted message"},
			{Command: "echo hello --loud", Description: "Print HELLO"},
		},
	}
}

// Execute prints the positional arguments joined by spaces. Echo never
// fails; unknown options are ignored.
func (c *EchoCommand) Execute(inv *shelltypes.Invocation, out shelltypes.Printer) (int, error) {
	if inv.Flag("verbose") {
		out.Println(fmt.Sprintf("Echoing: %q", inv.Args))
		return shelltypes.ExitSuccess, nil
	}

	message := strings.Join(inv.Args, " ")
	if inv.Flag("loud") {
		message = strings.ToUpper(message)
	}
	out.Println(message)
	return shelltypes.ExitSuccess, nil
}

func init() {
	if err := commands.GetGlobalRegistry().Register(&EchoCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register echo command: %v", err))
	}
}
