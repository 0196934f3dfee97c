package chat

import (
	"sync"
	"time"
)

// EventKind tags an entry in the client-local chat log.
type EventKind int

const (
	KindMessage EventKind = iota
	KindJoined
	KindLeft
)

// ChatMessage is a ReceiveMessage event from the hub.
type ChatMessage struct {
	Username  string
	Message   string
	Timestamp time.Time
}

// UserEvent is a UserJoined or UserLeft presence event.
type UserEvent struct {
	Username  string
	Timestamp time.Time
}

// Event is one entry of the local log: either a message or a presence
// change. The log is append-only, never persisted, discarded with the view.
type Event struct {
	Kind      EventKind
	Username  string
	Message   string
	Timestamp time.Time
}

// EventLog is an ordered, append-only, client-local sequence of chat events.
// The manager delivers events in transport order; the log preserves it.
type EventLog struct {
	mu     sync.Mutex
	events []Event
}

func NewEventLog() *EventLog {
	return &EventLog{}
}

func (l *EventLog) Append(e Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, e)
}

// Events returns a copy of the log in arrival order.
func (l *EventLog) Events() []Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

func (l *EventLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.events)
}

// Attach registers the log as the consumer of all three event callbacks.
func (l *EventLog) Attach(m *Manager) {
	m.OnMessage(func(msg ChatMessage) {
		l.Append(Event{Kind: KindMessage, Username: msg.Username, Message: msg.Message, Timestamp: msg.Timestamp})
	})
	m.OnUserJoined(func(ev UserEvent) {
		l.Append(Event{Kind: KindJoined, Username: ev.Username, Timestamp: ev.Timestamp})
	})
	m.OnUserLeft(func(ev UserEvent) {
		l.Append(Event{Kind: KindLeft, Username: ev.Username, Timestamp: ev.Timestamp})
	})
}
