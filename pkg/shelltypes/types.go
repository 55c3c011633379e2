// Package shelltypes defines the shared contract types for cmdly.
// It contains the command capability interface, the parsed invocation
// structure, and help metadata so that internal packages can depend on a
// single dependency-free package.
package shelltypes

import "strconv"

// Exit codes returned by command execution. The shell loop keeps running
// regardless of the code; only the exit command terminates it.
const (
	ExitSuccess  = 0
	ExitFailure  = 1
	ExitNotFound = 127
)

// Invocation is the fully parsed representation of one user command line.
type Invocation struct {
	// Name is the command name, lower-cased for registry lookup.
	Name string
	// Args are the positional arguments in input order.
	Args []string
	// Options maps option names to values. Boolean flags are stored as "true".
	// When an option occurs more than once, the last occurrence wins.
	Options map[string]string
	// Raw is the original input line, retained for error reporting.
	Raw string
}

// Option returns the value of a named option and whether it was present.
func (inv *Invocation) Option(name string) (string, bool) {
	v, ok := inv.Options[name]
	return v, ok
}

// Flag reports whether a boolean option is set. Values that fail to parse
// as a bool are treated as false (tolerant default).
func (inv *Invocation) Flag(name string) bool {
	v, ok := inv.Options[name]
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

// Printer is the output sink handed to commands. The shell provides a
// colorizing implementation; tests provide a capturing one.
type Printer interface {
	Print(text string)
	Println(text string)
	Printf(format string, args ...interface{})
	Success(text string)
	Error(text string)
	Warning(text string)
	Info(text string)
}

// Command is the capability interface every cmdly command implements.
// Commands are stateless; everything they need arrives with the invocation.
type Command interface {
	// Name returns the primary command name used for registration and lookup.
	Name() string
	// Aliases returns alternate names registered alongside the primary name.
	Aliases() []string
	// Description returns a one-line summary shown in help listings.
	Description() string
	// Usage returns the syntax line shown in detailed help.
	Usage() string
	// Fun reports whether the command is gated by the fun_commands feature.
	Fun() bool
	// HelpInfo returns structured help information for the command.
	HelpInfo() HelpInfo
	// Execute runs the command and returns its exit code. A non-nil error
	// is reported to the user by the executor boundary.
	Execute(inv *Invocation, out Printer) (int, error)
}

// HelpOption describes one option accepted by a command.
type HelpOption struct {
	Name        string
	Description string
	Required    bool
	Type        string
	Default     string
}

// HelpExample shows an example usage of a command.
type HelpExample struct {
	Command     string
	Description string
}

// HelpInfo is the structured help metadata for a command.
type HelpInfo struct {
	Command     string
	Description string
	Usage       string
	Fun         bool
	Options     []HelpOption
	Examples    []HelpExample
	Notes       []string
}
