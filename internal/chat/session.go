// Package chat implements the simulated peer-to-peer chat subsystem. A
// Server role and a Client role run in the same process and exchange
// structured messages over bounded in-memory channels, emulating a two-party
// network session. The roles never share mutable fields; everything flows
// through the channels or the session's guarded log, so the design carries
// over cleanly if the simulation is ever replaced with real sockets.
package chat

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrConnectionRefused is returned when a client attempts to connect while
// no server is listening. The session is discarded without ever reaching
// the connected state.
var ErrConnectionRefused = errors.New("connection refused: no server listening")

// ErrSessionClosed signals graceful termination to operations blocked on a
// closed session. It is not an error to surface to the user.
var ErrSessionClosed = errors.New("session closed")

// Role identifies one of the two simulated chat participants.
type Role string

// The two session roles.
const (
	RoleServer Role = "server"
	RoleClient Role = "client"
)

// ServerState is the connection state of the server role.
type ServerState int

// Server role states, in transition order.
const (
	ServerListening ServerState = iota
	ServerConnected
	ServerClosed
)

// String returns the state name.
func (s ServerState) String() string {
	switch s {
	case ServerListening:
		return "LISTENING"
	case ServerConnected:
		return "CONNECTED"
	case ServerClosed:
		return "CLOSED"
	default:
		return "UNKNOWN"
	}
}

// ClientState is the connection state of the client role.
type ClientState int

// Client role states, in transition order.
const (
	ClientConnecting ClientState = iota
	ClientConnected
	ClientClosed
)

// String returns the state name.
func (s ClientState) String() string {
	switch s {
	case ClientConnecting:
		return "CONNECTING"
	case ClientConnected:
		return "CONNECTED"
	case ClientClosed:
		return "CLOSED"
	default:
		return "UNKNOWN"
	}
}

// Message is one exchanged chat message. Immutable once sent.
type Message struct {
	Sender Role
	// Seq is strictly increasing within a session, regardless of sender.
	Seq       uint64
	Text      string
	Timestamp time.Time
}

// Session is the ephemeral state of one simulated conversation: the role
// states, the ordered message log, and the channels the roles talk over.
// Each session owns its log exclusively; nothing is shared between sessions.
type Session struct {
	ID string

	mu          sync.Mutex
	seq         uint64
	log         []Message
	serverState ServerState
	clientState ClientState

	// toServer carries client messages to the server role; toClient carries
	// server messages back. Both are bounded FIFO.
	toServer chan Message
	toClient chan Message

	closed    chan struct{}
	closeOnce sync.Once
}

func newSession(buffer int) *Session {
	if buffer <= 0 {
		buffer = 16
	}
	return &Session{
		ID:          uuid.New().String(),
		serverState: ServerListening,
		clientState: ClientConnecting,
		toServer:    make(chan Message, buffer),
		toClient:    make(chan Message, buffer),
		closed:      make(chan struct{}),
	}
}

// append records a message in the session log with the next sequence number
// and returns it.
func (s *Session) append(sender Role, text string) Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	msg := Message{
		Sender:    sender,
		Seq:       s.seq,
		Text:      text,
		Timestamp: time.Now(),
	}
	s.log = append(s.log, msg)
	return msg
}

// Log returns a copy of the ordered message log.
func (s *Session) Log() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.log))
	copy(out, s.log)
	return out
}

// States returns the current server and client role states.
func (s *Session) States() (ServerState, ClientState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.serverState, s.clientState
}

// Close transitions both roles to CLOSED and wakes anything blocked on a
// pending receive. Closing an already closed session is a no-op.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.serverState = ServerClosed
		s.clientState = ClientClosed
		s.mu.Unlock()
		close(s.closed)
	})
}

// isClosed reports whether the session has been closed.
func (s *Session) isClosed() bool {
	select {
	case <-s.closed:
		return true
	default:
		return false
	}
}
