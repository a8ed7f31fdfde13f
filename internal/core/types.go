// Package core holds the contact registry, conversation context and the
// command engine of the terminal chat client.
package core

import (
	"time"
)

// EventType identifies the type of event.
type EventType string

const (
	EventContactsLoaded  EventType = "contacts_loaded"
	EventMessageSent     EventType = "message_sent"
	EventMessageReceived EventType = "message_received"
)

// Event represents something that happened in the session.
type Event struct {
	Type      EventType
	Message   *MessageData
	Count     int
	Timestamp time.Time
}

// MessageData describes a sent or received message.
type MessageData struct {
	Peer     string
	Text     string
	Incoming bool
}

// MessageLine is a rendered chat message.
type MessageLine struct {
	At   time.Time
	From string
	To   string
	Text string
	// Own is true when the local account wrote the message.
	Own bool
}

// Output renders results of commands and inbound events.
// Implementations must be safe for concurrent use.
type Output interface {
	// Message prints a message line in the command flow.
	Message(line MessageLine)
	// Notify prints a message line that arrived while the user may be typing,
	// followed by a fresh prompt.
	Notify(line MessageLine)
	List(names []string)
	Clock(t time.Time)
	Info(text string)
	Warn(text, hint string)
	Error(err error)
	Help()
}
