package commands

import (
	"fmt"

	"github.com/charmbracelet/log"

	"cmdly/internal/config"
	"cmdly/internal/logger"
	"cmdly/pkg/shelltypes"
)

// Executor resolves invocations against the registry and runs them. It is
// the single failure-isolation boundary: anything a command raises, panics
// included, is caught here, logged with full context, and converted into a
// bounded user-readable message. A misbehaving command can never take the
// shell loop down with it.
type Executor struct {
	registry *Registry
	cfg      *config.Config
	log      *log.Logger
}

// NewExecutor creates an executor over the given registry and configuration.
func NewExecutor(registry *Registry, cfg *config.Config) *Executor {
	return &Executor{
		registry: registry,
		cfg:      cfg,
		log:      logger.NewStyledLogger("Executor"),
	}
}

// Execute runs one parsed invocation and returns its exit code: 0 for
// success, 1 for a command failure, 127 when the command is unknown.
func (e *Executor) Execute(inv *shelltypes.Invocation, out shelltypes.Printer) int {
	desc, ok := e.registry.Resolve(inv.Name)
	if !ok {
		notFound := &NotFoundError{Name: inv.Name, Suggestion: e.registry.Suggest(inv.Name)}
		e.log.Warn("Unknown command", "command", inv.Name, "input", inv.Raw)
		out.Error(notFound.Error())
		return shelltypes.ExitNotFound
	}

	if desc.Fun && !e.cfg.Features.FunCommands {
		e.log.Warn("Fun command refused, feature disabled", "command", desc.Name)
		out.Warning(fmt.Sprintf("%s is a fun command and fun commands are disabled; enable features.fun_commands in the config to use it", desc.Name))
		return shelltypes.ExitSuccess
	}

	code, err := e.invoke(desc, inv, out)
	if err != nil {
		e.log.Error("Command failed", "command", desc.Name, "input", inv.Raw, "error", err)
		out.Error(fmt.Sprintf("%s: %s", desc.Name, err))
		if code == shelltypes.ExitSuccess {
			code = shelltypes.ExitFailure
		}
	}
	return code
}

// invoke runs the command behavior behind a recover so a panicking command
// surfaces as an ordinary failure.
func (e *Executor) invoke(desc *Descriptor, inv *shelltypes.Invocation, out shelltypes.Printer) (code int, err error) {
	defer func() {
		if r := recover(); r != nil {
			code = shelltypes.ExitFailure
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return desc.Command.Execute(inv, out)
}
