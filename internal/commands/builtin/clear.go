package builtin

import (
	"fmt"

	"cmdly/internal/commands"
	"cmdly/internal/output"
	"cmdly/internal/version"
	"cmdly/pkg/shelltypes"
)

// ClearCommand implements the clear command, wiping the screen and showing
// the welcome banner again.
type ClearCommand struct{}

// Name returns the command name "clear" for registration and lookup.
func (c *ClearCommand) Name() string {
	return "clear"
}

// Aliases returns the cls alias.
func (c *ClearCommand) Aliases() []string {
	return []string{"cls"}
}

// Description returns a brief description of what the clear command does.
func (c *ClearCommand) Description() string {
	return "Clears the console screen"
}

// Usage returns the syntax for the clear command.
func (c *ClearCommand) Usage() string {
	return "clear"
}

// Fun reports that clear is a regular command.
func (c *ClearCommand) Fun() bool {
	return false
}

// HelpInfo returns structured help information for the clear command.
func (c *ClearCommand) HelpInfo() shelltypes.HelpInfo {
	return shelltypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		Notes:       []string{"Redraws the welcome banner after clearing"},
	}
}

// Execute clears the terminal with an ANSI sequence and reprints the banner.
func (c *ClearCommand) Execute(_ *shelltypes.Invocation, out shelltypes.Printer) (int, error) {
	out.Print("\033[2J\033[H")
	if p, ok := out.(*output.Printer); ok {
		p.Println(p.Banner(version.Short()))
	}
	return shelltypes.ExitSuccess, nil
}

func init() {
	if err := commands.GetGlobalRegistry().Register(&ClearCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register clear command: %v", err))
	}
}
