package builtin

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"cmdly/internal/chat"
	"cmdly/internal/commands"
	"cmdly/internal/config"
	"cmdly/internal/logger"
	"cmdly/internal/output"
	"cmdly/pkg/shelltypes"
)

// ChatCommand implements the chat command. It hosts a simulated two-party
// session in-process: the Server role listens, the Client role connects, and
// every line the user types becomes a Client message which the Server
// acknowledges. The command owns its own read loop until the session ends.
type ChatCommand struct {
	// input is the user's side of the conversation. Tests inject a reader;
	// the real shell uses stdin.
	input io.Reader
}

// NewChatCommand creates the chat command reading from stdin.
func NewChatCommand() *ChatCommand {
	return &ChatCommand{input: os.Stdin}
}

// Name returns the command name "chat" for registration and lookup.
func (c *ChatCommand) Name() string {
	return "chat"
}

// Aliases returns no built-in aliases.
func (c *ChatCommand) Aliases() []string {
	return nil
}

// Description returns a brief description of what the chat command does.
func (c *ChatCommand) Description() string {
	return "Simulated client-server chat session"
}

// Usage returns the syntax for the chat command.
func (c *ChatCommand) Usage() string {
	return "chat [host|join]"
}

// Fun reports that chat is a regular command.
func (c *ChatCommand) Fun() bool {
	return false
}

// HelpInfo returns structured help information for the chat command.
func (c *ChatCommand) HelpInfo() shelltypes.HelpInfo {
	return shelltypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		Examples: []shelltypes.HelpExample{
			{Command: "chat", Description: "Host a session and connect to it"},
			{Command: "chat join", Description: "Try to join without a server (refused)"},
		},
		Notes: []string{
			"Type /quit (or press Ctrl+D) to end the session",
			"The server's auto-response is configurable via chat.auto_response",
		},
	}
}

// Execute runs the chat session. Mode host (the default) starts the Server
// role, connects the Client role and enters the interactive sub-loop. Mode
// join attempts to connect with no server listening, which is refused.
func (c *ChatCommand) Execute(inv *shelltypes.Invocation, out shelltypes.Printer) (int, error) {
	mode := "host"
	if len(inv.Args) > 0 {
		mode = inv.Args[0]
	}

	switch mode {
	case "host":
		return c.runSession(out)
	case "join":
		// Nothing is listening in this process; the connect request is
		// refused and no session log entries are produced.
		if _, err := chat.Connect(nil); err != nil {
			return shelltypes.ExitFailure, err
		}
		return shelltypes.ExitSuccess, nil
	default:
		return shelltypes.ExitFailure, fmt.Errorf("invalid mode %q, use 'host' or 'join'", mode)
	}
}

// runSession hosts the server role, connects the client role and drives the
// interactive sub-loop until /quit or end of input.
func (c *ChatCommand) runSession(out shelltypes.Printer) (int, error) {
	cfg := config.Global().Chat
	log := logger.NewStyledLogger("Chat")

	server := chat.NewServer(cfg.Buffer, cfg.AutoResponse)
	client, err := chat.Connect(server)
	if err != nil {
		return shelltypes.ExitFailure, err
	}

	session := client.Session()
	log.Info("Chat session started", "session", session.ID)
	out.Info(fmt.Sprintf("[chat] session %s connected, /quit to leave", session.ID))

	scanner := bufio.NewScanner(c.input)
	for {
		out.Print("(chat) >> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "/quit" {
			break
		}
		if line == "" {
			continue
		}

		msg, err := client.Send(line)
		if err != nil {
			if errors.Is(err, chat.ErrSessionClosed) {
				break
			}
			client.Close()
			return shelltypes.ExitFailure, err
		}
		c.printMessage(out, msg)

		if cfg.AutoResponse != "" {
			reply, err := client.Receive()
			if err != nil {
				if errors.Is(err, chat.ErrSessionClosed) {
					break
				}
				client.Close()
				return shelltypes.ExitFailure, err
			}
			c.printMessage(out, reply)
		}
	}

	client.Close()
	serverState, clientState := session.States()
	log.Info("Chat session closed",
		"session", session.ID,
		"messages", len(session.Log()),
		"server", serverState.String(),
		"client", clientState.String())
	out.Info(fmt.Sprintf("[chat] session closed, %d messages exchanged", len(session.Log())))
	return shelltypes.ExitSuccess, scanner.Err()
}

// printMessage renders one chat message with timestamp and sender role.
func (c *ChatCommand) printMessage(out shelltypes.Printer, msg chat.Message) {
	ts := msg.Timestamp.Format("15:04:05")
	if p, ok := out.(*output.Printer); ok {
		s := p.Styles()
		p.Println(s.Muted.Render("["+ts+"]") + " " + s.Accent.Render(string(msg.Sender)) + ": " + msg.Text)
		return
	}
	out.Println(fmt.Sprintf("[%s] %s: %s", ts, msg.Sender, msg.Text))
}

func init() {
	if err := commands.GetGlobalRegistry().Register(NewChatCommand()); err != nil {
		panic(fmt.Sprintf("failed to register chat command: %v", err))
	}
}
