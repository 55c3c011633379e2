package builtin

import (
	"fmt"
	"math/rand"
	"strconv"

	"cmdly/internal/commands"
	"cmdly/internal/logger"
	"cmdly/pkg/shelltypes"
)

// FlipCommand implements the flip command, a coin toss. It is a fun command
// and subject to the fun_commands feature gate.
type FlipCommand struct{}

// Name returns the command name "flip" for registration and lookup.
func (c *FlipCommand) Name() string {
	return "flip"
}

// Aliases returns no built-in aliases; the config defaults add coin and
// headsortails.
func (c *FlipCommand) Aliases() []string {
	return nil
}

// Description returns a brief description of what the flip command does.
func (c *FlipCommand) Description() string {
	return "Simulate a coin flip"
}

// Usage returns the syntax for the flip command.
func (c *FlipCommand) Usage() string {
	return "flip [--seed=N]"
}

// Fun reports that flip is a fun command.
func (c *FlipCommand) Fun() bool {
	return true
}

// HelpInfo returns structured help information for the flip command.
func (c *FlipCommand) HelpInfo() shelltypes.HelpInfo {
	return shelltypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		Fun:         true,
		Options: []shelltypes.HelpOption{
			{Name: "seed", Description: "Seed the flip for a reproducible outcome", Type: "int"},
		},
		Examples: []shelltypes.HelpExample{
			{Command: "flip", Description: "Flip a coin"},
			{Command: "flip --seed=42", Description: "Flip with a fixed seed"},
		},
	}
}

// Execute flips the coin. With --seed=N the outcome is deterministic for
// that seed; otherwise the shared PRNG decides.
func (c *FlipCommand) Execute(inv *shelltypes.Invocation, out shelltypes.Printer) (int, error) {
	var heads bool
	if seedStr, ok := inv.Option("seed"); ok {
		seed, err := strconv.ParseInt(seedStr, 10, 64)
		if err != nil {
			return shelltypes.ExitFailure, fmt.Errorf("invalid seed %q", seedStr)
		}
		heads = rand.New(rand.NewSource(seed)).Intn(2) == 0
	} else {
		heads = rand.Intn(2) == 0
	}

	outcome := "Tails"
	if heads {
		outcome = "Heads"
	}
	out.Println("The coin landed on: " + outcome)
	logger.Debug("Coin flip", "command", c.Name(), "outcome", outcome)
	return shelltypes.ExitSuccess, nil
}

func init() {
	if err := commands.GetGlobalRegistry().Register(&FlipCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register flip command: %v", err))
	}
}
