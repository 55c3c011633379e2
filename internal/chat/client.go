package chat

// Client is the connecting role of a simulated chat session. The shell loop
// acts as the human on this side: every line the user types becomes a Send,
// and server acknowledgements arrive through Receive.
type Client struct {
	session *Session
}

// Connect attaches a client role to the given server. It succeeds only while
// the server is LISTENING; otherwise it fails with ErrConnectionRefused and
// the session is discarded without ever reaching CONNECTED.
func Connect(server *Server) (*Client, error) {
	if server == nil {
		return nil, ErrConnectionRefused
	}

	server.session.mu.Lock()
	if server.session.serverState != ServerListening {
		server.session.mu.Unlock()
		return nil, ErrConnectionRefused
	}
	server.session.clientState = ClientConnected
	server.session.mu.Unlock()

	server.accept()
	return &Client{session: server.session}, nil
}

// Session returns the client's session.
func (c *Client) Session() *Session {
	return c.session
}

// State returns the client role's connection state.
func (c *Client) State() ClientState {
	_, state := c.session.States()
	return state
}

// Send records a message in the session log and delivers it to the server
// role. It blocks only when the channel is full, and fails with
// ErrSessionClosed once either side has closed.
func (c *Client) Send(text string) (Message, error) {
	if c.session.isClosed() {
		return Message{}, ErrSessionClosed
	}
	msg := c.session.append(RoleClient, text)
	select {
	case c.session.toServer <- msg:
		return msg, nil
	case <-c.session.closed:
		return Message{}, ErrSessionClosed
	}
}

// Receive blocks until a server message arrives or the session closes, in
// which case it fails with ErrSessionClosed rather than hanging.
func (c *Client) Receive() (Message, error) {
	select {
	case msg := <-c.session.toClient:
		return msg, nil
	case <-c.session.closed:
		// Drain anything delivered before the close so no message is lost.
		select {
		case msg := <-c.session.toClient:
			return msg, nil
		default:
			return Message{}, ErrSessionClosed
		}
	}
}

// Close ends the session from the client side. Both roles transition to
// CLOSED.
func (c *Client) Close() {
	c.session.Close()
}
