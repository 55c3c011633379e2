package chat

import (
	"fmt"

	"github.com/charmbracelet/log"

	"cmdly/internal/logger"
)

// Server is the hosting role of a simulated chat session. It starts in the
// LISTENING state; once a client connects it runs its receive loop in a
// goroutine, acknowledging every client message with the configured
// auto-response until the session closes.
type Server struct {
	session *Session
	// autoResponse is the reply format, receiving the sequence number of the
	// incoming message and its text. Empty disables acknowledgements.
	autoResponse string
	log          *log.Logger
}

// NewServer creates a server role with a fresh session in the LISTENING
// state. buffer bounds each direction's message channel.
func NewServer(buffer int, autoResponse string) *Server {
	return &Server{
		session:      newSession(buffer),
		autoResponse: autoResponse,
		log:          logger.NewStyledLogger("Chat"),
	}
}

// Session returns the server's session.
func (s *Server) Session() *Session {
	return s.session
}

// State returns the server role's connection state.
func (s *Server) State() ServerState {
	state, _ := s.session.States()
	return state
}

// accept transitions the server to CONNECTED and starts its receive loop.
// Called by the client's connect request while the server is LISTENING.
func (s *Server) accept() {
	s.session.mu.Lock()
	s.session.serverState = ServerConnected
	s.session.mu.Unlock()
	s.log.Debug("Client accepted", "session", s.session.ID)
	go s.serve()
}

// serve consumes client messages until the session closes. Replies are
// appended to the session log before delivery so sequence numbers stay
// strictly increasing across both roles.
func (s *Server) serve() {
	for {
		select {
		case msg := <-s.session.toServer:
			if s.autoResponse == "" {
				continue
			}
			reply := s.session.append(RoleServer, fmt.Sprintf(s.autoResponse, msg.Seq, msg.Text))
			select {
			case s.session.toClient <- reply:
			case <-s.session.closed:
				return
			}
		case <-s.session.closed:
			return
		}
	}
}

// Close ends the session from the server side. Both roles transition to
// CLOSED and any blocked receive is woken with ErrSessionClosed.
func (s *Server) Close() {
	s.log.Debug("Server closing session", "session", s.session.ID)
	s.session.Close()
}
