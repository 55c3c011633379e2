package commands

import "fmt"

// DuplicateCommandError reports a name or alias collision during
// registration. It is a startup-time configuration error, never a runtime
// condition, so callers treat it as fatal.
type DuplicateCommandError struct {
	Name string
}

func (e *DuplicateCommandError) Error() string {
	return fmt.Sprintf("command %q already registered", e.Name)
}

// NotFoundError reports a lookup for a command that is not registered,
// optionally carrying the closest-matching known name.
type NotFoundError struct {
	Name       string
	Suggestion string
}

func (e *NotFoundError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("command not found: %s (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("command not found: %s", e.Name)
}
