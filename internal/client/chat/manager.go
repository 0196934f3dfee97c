// Package chat owns the lifecycle of the token-authenticated streaming
// connection to the chat hub: connect, read, reconnect with backoff, and
// graceful teardown on stop or logout.
package chat

import (
	"context"
	"encoding/json"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sethvargo/go-retry"

	"casefile/internal/logging"
)

// State is the connection's observable position in its lifecycle. Consumers
// get every transition through OnStateChange instead of inferring state from
// send failures.
type State int

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
	StateReconnecting
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "Connecting"
	case StateConnected:
		return "Connected"
	case StateReconnecting:
		return "Reconnecting"
	default:
		return "Disconnected"
	}
}

// Wire frames. Server to client: ReceiveMessage, UserJoined, UserLeft.
// Client to server: SendMessage. Timestamps travel as ISO 8601 strings.
const (
	frameReceiveMessage = "ReceiveMessage"
	frameUserJoined     = "UserJoined"
	frameUserLeft       = "UserLeft"
	frameSendMessage    = "SendMessage"
)

type frame struct {
	Type      string `json:"type"`
	Username  string `json:"username,omitempty"`
	Message   string `json:"message,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// Conn is the transport surface the manager needs; *websocket.Conn
// satisfies it, tests may substitute their own.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteJSON(v any) error
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Dialer opens a connection to the hub URL. The default uses
// websocket.DefaultDialer.
type Dialer func(ctx context.Context, url string) (Conn, error)

func defaultDialer(ctx context.Context, rawURL string) (Conn, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, rawURL, nil)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// Options configures the manager; zero values get sensible defaults.
type Options struct {
	// HubURL is the ws(s) base, e.g. wss://localhost:7029. The /chathub
	// path and the access_token query parameter are appended on dial.
	HubURL string

	// ReconnectBaseDelay seeds the exponential backoff (default 500ms).
	ReconnectBaseDelay time.Duration

	// ReconnectMaxAttempts caps automatic redials before giving up
	// (default 5).
	ReconnectMaxAttempts uint64
}

// Manager holds at most one logical connection per session. The credential
// is read-only here: it is passed into Start and reused on reconnect, never
// refreshed or rewritten by this layer.
type Manager struct {
	opts Options
	log  logging.Logger
	dial Dialer

	mu     sync.Mutex
	state  State
	conn   Conn
	cancel context.CancelFunc

	onMessage func(ChatMessage)
	onJoined  func(UserEvent)
	onLeft    func(UserEvent)
	onState   func(State)
}

func New(opts Options, log logging.Logger) *Manager {
	if opts.ReconnectBaseDelay <= 0 {
		opts.ReconnectBaseDelay = 500 * time.Millisecond
	}
	if opts.ReconnectMaxAttempts == 0 {
		opts.ReconnectMaxAttempts = 5
	}
	return &Manager{
		opts: opts,
		log:  log,
		dial: defaultDialer,
	}
}

// OnMessage registers the ReceiveMessage callback. Callbacks run on the
// read loop goroutine, in transport order; keep them fast.
func (m *Manager) OnMessage(fn func(ChatMessage)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onMessage = fn
}

func (m *Manager) OnUserJoined(fn func(UserEvent)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onJoined = fn
}

func (m *Manager) OnUserLeft(fn func(UserEvent)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onLeft = fn
}

// OnStateChange registers the connection-state callback. It fires on every
// transition, including intermediate Reconnecting states.
func (m *Manager) OnStateChange(fn func(State)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onState = fn
}

// State returns the current connection state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Manager) setState(s State) {
	m.mu.Lock()
	if m.state == s {
		m.mu.Unlock()
		return
	}
	m.state = s
	fn := m.onState
	m.mu.Unlock()

	if fn != nil {
		fn(s)
	}
}

func (m *Manager) hubURL(token string) string {
	return m.opts.HubURL + "/chathub?access_token=" + url.QueryEscape(token)
}

// Start opens the connection authenticated by token. A no-op when already
// connected or connecting. Dial failure is logged and surfaced through the
// state callback only; the caller may simply call Start again.
func (m *Manager) Start(ctx context.Context, token string) {
	m.mu.Lock()
	if m.state != StateDisconnected {
		m.log.Debug(ctx, "chat already connected", "state", m.state.String())
		m.mu.Unlock()
		return
	}
	m.state = StateConnecting
	stateFn := m.onState
	m.mu.Unlock()
	if stateFn != nil {
		stateFn(StateConnecting)
	}

	conn, err := m.dial(ctx, m.hubURL(token))
	if err != nil {
		m.log.Error(ctx, "chat connection failed", "error", err)
		m.setState(StateDisconnected)
		return
	}

	runCtx, cancel := context.WithCancel(context.Background())
	m.mu.Lock()
	m.conn = conn
	m.cancel = cancel
	m.mu.Unlock()
	m.setState(StateConnected)
	m.log.Info(ctx, "chat connected")

	go m.run(runCtx, token)
}

// run reads frames until the connection dies, then attempts reconnects
// until the backoff budget is spent or the manager is stopped.
func (m *Manager) run(ctx context.Context, token string) {
	for {
		m.readLoop(ctx)

		if ctx.Err() != nil {
			m.setState(StateDisconnected)
			return
		}

		if !m.reconnect(ctx, token) {
			m.setState(StateDisconnected)
			return
		}
	}
}

func (m *Manager) readLoop(ctx context.Context) {
	m.mu.Lock()
	conn := m.conn
	m.mu.Unlock()
	if conn == nil {
		return
	}

	for {
		_, data, err := conn.ReadMessage()
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			m.log.Warn(ctx, "chat connection lost", "error", err)
			return
		}
		m.dispatch(ctx, data)
	}
}

// dispatch decodes one frame and hands it to the matching callback. Frames
// are delivered in the order the transport produced them; nothing is
// buffered or reordered here.
func (m *Manager) dispatch(ctx context.Context, data []byte) {
	var f frame
	if err := json.Unmarshal(data, &f); err != nil {
		m.log.Warn(ctx, "discarding malformed chat frame", "error", err)
		return
	}

	ts, err := time.Parse(time.RFC3339, f.Timestamp)
	if err != nil {
		ts = time.Time{}
	}

	m.mu.Lock()
	onMessage, onJoined, onLeft := m.onMessage, m.onJoined, m.onLeft
	m.mu.Unlock()

	switch f.Type {
	case frameReceiveMessage:
		if onMessage != nil {
			onMessage(ChatMessage{Username: f.Username, Message: f.Message, Timestamp: ts})
		}
	case frameUserJoined:
		if onJoined != nil {
			onJoined(UserEvent{Username: f.Username, Timestamp: ts})
		}
	case frameUserLeft:
		if onLeft != nil {
			onLeft(UserEvent{Username: f.Username, Timestamp: ts})
		}
	default:
		m.log.Debug(ctx, "ignoring unknown chat frame", "type", f.Type)
	}
}

// reconnect re-dials with capped exponential backoff. Returns true once a
// new connection is installed, false when the budget is exhausted or the
// manager was stopped meanwhile.
func (m *Manager) reconnect(ctx context.Context, token string) bool {
	m.setState(StateReconnecting)

	backoff := retry.WithMaxRetries(m.opts.ReconnectMaxAttempts,
		retry.NewExponential(m.opts.ReconnectBaseDelay))

	installed := false
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		conn, err := m.dial(ctx, m.hubURL(token))
		if err != nil {
			m.log.Debug(ctx, "chat reconnect attempt failed", "error", err)
			return retry.RetryableError(err)
		}

		// Stop may have run while the dial was in flight; a stopped
		// session must not come back holding a live connection.
		m.mu.Lock()
		if ctx.Err() != nil || m.cancel == nil {
			m.mu.Unlock()
			_ = conn.Close()
			return nil
		}
		m.conn = conn
		installed = true
		m.mu.Unlock()
		return nil
	})
	if err != nil {
		m.log.Error(ctx, "chat reconnect gave up", "error", err)
		return false
	}
	if !installed {
		return false
	}

	m.mu.Lock()
	if m.cancel == nil {
		conn := m.conn
		m.conn = nil
		m.mu.Unlock()
		if conn != nil {
			_ = conn.Close()
		}
		return false
	}
	m.mu.Unlock()

	m.setState(StateConnected)
	m.log.Info(ctx, "chat reconnected")
	return true
}

// Stop closes the connection gracefully. Idempotent; safe when never
// started. Wired into the session's logout hooks so a dead session always
// tears the connection down.
func (m *Manager) Stop() {
	m.mu.Lock()
	conn := m.conn
	cancel := m.cancel
	m.conn = nil
	m.cancel = nil
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if conn != nil {
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		_ = conn.Close()
	}
	m.setState(StateDisconnected)
}

// Send delivers a chat message. Only valid while Connected; otherwise it
// warns and returns without error, since the UI is expected to gate the
// affordance on state.
func (m *Manager) Send(ctx context.Context, text string) error {
	m.mu.Lock()
	conn := m.conn
	state := m.state
	m.mu.Unlock()

	if state != StateConnected || conn == nil {
		m.log.Warn(ctx, "not connected to chat, dropping message")
		return nil
	}

	if err := conn.WriteJSON(frame{Type: frameSendMessage, Message: text}); err != nil {
		m.log.Error(ctx, "chat send failed", "error", err)
		return err
	}
	return nil
}
