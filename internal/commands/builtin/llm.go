package builtin

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cmdly/internal/commands"
	"cmdly/internal/config"
	"cmdly/internal/logger"
	"cmdly/pkg/shelltypes"
)

const llmSystemPrompt = "You are a command-line assistant who lives in a terminal. " +
	"You have no message persistence, so do not ask questions and do not expect to be remembered. " +
	"Be humorous and do not take yourself too seriously."

// LLMCommand implements the llm command: a quick one-shot query against the
// configured chat-completions endpoint. The endpoint is an opaque external
// service; this command only transports a request and prints the response.
type LLMCommand struct {
	client *http.Client
}

// NewLLMCommand creates the llm command with a bounded-timeout HTTP client.
func NewLLMCommand() *LLMCommand {
	return &LLMCommand{
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// Name returns the command name "llm" for registration and lookup.
func (c *LLMCommand) Name() string {
	return "llm"
}

// Aliases returns the ask alias.
func (c *LLMCommand) Aliases() []string {
	return []string{"ask"}
}

// Description returns a brief description of what the llm command does.
func (c *LLMCommand) Description() string {
	return "Quick queries against the configured model endpoint"
}

// Usage returns the syntax for the llm command.
func (c *LLMCommand) Usage() string {
	return "llm <your prompt> | llm info"
}

// Fun reports that llm is a fun command.
func (c *LLMCommand) Fun() bool {
	return true
}

// HelpInfo returns structured help information for the llm command.
func (c *LLMCommand) HelpInfo() shelltypes.HelpInfo {
	return shelltypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		Fun:         true,
		Examples: []shelltypes.HelpExample{
			{Command: "llm info", Description: "Print the configured model"},
			{Command: "llm Explain quantum computing in a haiku", Description: "One-shot query"},
		},
		Notes: []string{
			"Endpoint, model and temperature come from the llm section of the config",
		},
	}
}

type llmRequest struct {
	Model       string       `json:"model"`
	Temperature float64      `json:"temperature"`
	Messages    []llmMessage `json:"messages"`
}

type llmMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type llmResponse struct {
	Choices []struct {
		Message llmMessage `json:"message"`
	} `json:"choices"`
}

// Execute sends the prompt to the configured endpoint and prints the reply.
func (c *LLMCommand) Execute(inv *shelltypes.Invocation, out shelltypes.Printer) (int, error) {
	cfg := config.Global().LLM

	if len(inv.Args) == 0 {
		out.Println("Usage:")
		out.Println("  llm info")
		out.Println("  llm <your prompt>")
		return shelltypes.ExitSuccess, nil
	}

	if strings.EqualFold(inv.Args[0], "info") {
		out.Println(cfg.Model)
		return shelltypes.ExitSuccess, nil
	}

	prompt := strings.Join(inv.Args, " ")
	logger.Debug("LLM query", "command", c.Name(), "prompt", prompt)
	out.Info("thinking…")

	payload, err := json.Marshal(llmRequest{
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		Messages: []llmMessage{
			{Role: "system", Content: llmSystemPrompt},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return shelltypes.ExitFailure, err
	}

	req, err := http.NewRequest(http.MethodPost, cfg.Endpoint+"/v1/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return shelltypes.ExitFailure, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer Cmdly")

	resp, err := c.client.Do(req)
	if err != nil {
		return shelltypes.ExitFailure, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return shelltypes.ExitFailure, fmt.Errorf("endpoint returned %s", resp.Status)
	}

	var parsed llmResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return shelltypes.ExitFailure, fmt.Errorf("unexpected response format: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return shelltypes.ExitFailure, fmt.Errorf("unexpected response format: no choices")
	}

	out.Println(strings.TrimSpace(parsed.Choices[0].Message.Content))
	return shelltypes.ExitSuccess, nil
}

func init() {
	if err := commands.GetGlobalRegistry().Register(NewLLMCommand()); err != nil {
		panic(fmt.Sprintf("failed to register llm command: %v", err))
	}
}
