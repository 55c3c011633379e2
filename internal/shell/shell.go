// Package shell provides the interactive loop for cmdly. It reads a line,
// runs it through tokenize -> parse -> execute, prints the styled result and
// repeats until the exit command or end of input.
package shell

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/chzyer/readline"

	"cmdly/internal/commands"
	_ "cmdly/internal/commands/builtin" // command registrations (init functions)
	"cmdly/internal/config"
	"cmdly/internal/logger"
	"cmdly/internal/output"
	"cmdly/internal/parser"
	"cmdly/internal/version"
	"cmdly/pkg/shelltypes"
)

// Shell is the interactive command loop. It is single-threaded and
// synchronous: one line in, one invocation executed to completion, one
// result printed.
type Shell struct {
	cfg      *config.Config
	registry *commands.Registry
	executor *commands.Executor
	printer  *output.Printer
	log      *log.Logger
}

// New creates a shell over stdout with the given configuration.
func New(cfg *config.Config) (*Shell, error) {
	return NewWithPrinter(cfg, output.NewStdoutPrinter())
}

// NewWithPrinter creates a shell writing through the given printer. It binds
// the configured aliases onto the global registry; a collision there is a
// configuration error and fails construction.
func NewWithPrinter(cfg *config.Config, printer *output.Printer) (*Shell, error) {
	registry := commands.GetGlobalRegistry()
	if err := registry.ApplyAliases(cfg.Aliases); err != nil {
		return nil, err
	}
	return &Shell{
		cfg:      cfg,
		registry: registry,
		executor: commands.NewExecutor(registry, cfg),
		printer:  printer,
		log:      logger.NewStyledLogger("Shell"),
	}, nil
}

// Run shows the banner and loops over input lines until the exit command or
// end of input. Ctrl+C clears the current line rather than leaving.
func (s *Shell) Run() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          s.printer.Styles().Prompt.Render("cmdly> "),
		HistoryFile:     historyPath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer func() { _ = rl.Close() }()

	s.printer.Println(s.printer.Banner(version.Short()))

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			s.printer.Info("Goodbye!")
			return nil
		}
		if err != nil {
			return err
		}

		if _, stop := s.Handle(line); stop {
			return nil
		}
	}
}

// Handle processes one input line and returns the exit code plus whether the
// loop should stop. An empty line is a no-op, not an error.
func (s *Shell) Handle(line string) (int, bool) {
	inv, err := parser.ParseLine(line)
	if err != nil {
		// Only ErrEmptyInvocation can occur; it is silently ignored.
		return shelltypes.ExitSuccess, false
	}

	code := s.executor.Execute(inv, s.printer)
	s.log.Debug("Command finished", "command", inv.Name, "input", inv.Raw, "code", code)

	if desc, ok := s.registry.Resolve(inv.Name); ok && desc.Name == "exit" && code == shelltypes.ExitSuccess {
		return code, true
	}
	return code, false
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cmdly_history")
}
