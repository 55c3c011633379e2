package builtin

import (
	"fmt"
	"strings"

	"cmdly/internal/commands"
	"cmdly/internal/output"
	"cmdly/pkg/shelltypes"
)

// HelpCommand implements the help command: a sorted listing of every
// registered command, or a detail view for one of them.
type HelpCommand struct{}

// Name returns the command name "help" for registration and lookup.
func (c *HelpCommand) Name() string {
	return "help"
}

// Aliases returns no built-in aliases; the config defaults add "?".
func (c *HelpCommand) Aliases() []string {
	return nil
}

// Description returns a brief description of what the help command does.
func (c *HelpCommand) Description() string {
	return "Displays help information for available commands"
}

// Usage returns the syntax for the help command.
func (c *HelpCommand) Usage() string {
	return "help [command]"
}

// Fun reports that help is a regular command.
func (c *HelpCommand) Fun() bool {
	return false
}

// HelpInfo returns structured help information for the help command itself.
func (c *HelpCommand) HelpInfo() shelltypes.HelpInfo {
	return shelltypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		Examples: []shelltypes.HelpExample{
			{Command: "help", Description: "List all commands"},
			{Command: "help chat", Description: "Show detailed help for the chat command"},
		},
	}
}

// Execute lists all commands, or shows the detail view when a command name
// is given as the first positional argument.
func (c *HelpCommand) Execute(inv *shelltypes.Invocation, out shelltypes.Printer) (int, error) {
	registry := commands.GetGlobalRegistry()

	if len(inv.Args) > 0 {
		return c.describe(registry, inv.Args[0], out)
	}

	out.Println("Available commands:")
	out.Println("")
	for _, desc := range registry.List() {
		line := fmt.Sprintf("  %-10s - %s", desc.Name, desc.Summary)
		if desc.Fun {
			line += " " + funTag(out)
		}
		out.Println(line)
	}
	out.Println("")
	out.Println("Use 'help [command]' for more info.")
	return shelltypes.ExitSuccess, nil
}

// describe renders the detail view for a single command.
func (c *HelpCommand) describe(registry *commands.Registry, name string, out shelltypes.Printer) (int, error) {
	desc, ok := registry.Resolve(name)
	if !ok {
		return shelltypes.ExitFailure, &commands.NotFoundError{
			Name:       strings.ToLower(name),
			Suggestion: registry.Suggest(name),
		}
	}

	info := desc.Help
	header := desc.Name + " - " + desc.Summary
	if desc.Fun {
		header += " " + funTag(out)
	}
	out.Println(header)
	if len(desc.Aliases) > 0 {
		out.Println("Aliases: " + strings.Join(desc.Aliases, ", "))
	}
	out.Println("Usage: " + info.Usage)

	if len(info.Options) > 0 {
		out.Println("")
		out.Println("Options:")
		for _, opt := range info.Options {
			line := fmt.Sprintf("  --%-12s %s", opt.Name, opt.Description)
			if opt.Default != "" {
				line += fmt.Sprintf(" (default: %s)", opt.Default)
			}
			out.Println(line)
		}
	}

	if len(info.Examples) > 0 {
		out.Println("")
		out.Println("Examples:")
		for _, ex := range info.Examples {
			out.Println("  " + ex.Command)
			out.Println("      " + ex.Description)
		}
	}

	for _, note := range info.Notes {
		out.Println("Note: " + note)
	}

	return shelltypes.ExitSuccess, nil
}

// funTag renders the fun-command marker, colored when the sink supports it.
func funTag(out shelltypes.Printer) string {
	if p, ok := out.(*output.Printer); ok {
		return p.Styles().Fun.Render("[FUN]")
	}
	return "[FUN]"
}

func init() {
	if err := commands.GetGlobalRegistry().Register(&HelpCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register help command: %v", err))
	}
}
