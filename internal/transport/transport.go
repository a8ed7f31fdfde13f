// Package transport defines the chat transport the terminal client talks to,
// with a JSON-RPC bridge implementation and an offline one.
package transport

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrRecipientNotFound is returned when a send names an unknown contact.
	ErrRecipientNotFound = errors.New("recipient not found")

	// ErrTransport wraps any other failure reported by the transport.
	ErrTransport = errors.New("transport error")

	// ErrNotConnected is returned when an operation needs a session first.
	ErrNotConnected = errors.New("not connected")
)

// Message is an inbound message event.
type Message struct {
	// Peer is the other side of the conversation: the author for peer
	// messages, the addressee for echoes of our own messages.
	Peer string
	Text string
	// Incoming is false when the local account wrote the message from
	// another session and the transport echoed it back.
	Incoming bool
	At       time.Time
}

// Handler receives inbound messages.
type Handler func(Message)

// Transport is a chat session.
type Transport interface {
	// Connect establishes the session and returns the local display name.
	Connect(ctx context.Context) (string, error)

	// FetchContacts returns the display names of every contact.
	FetchContacts(ctx context.Context) ([]string, error)

	// SendMessage delivers text to the named contact.
	SendMessage(ctx context.Context, recipient, text string) error

	// Listen delivers inbound messages to h until ctx is done.
	Listen(ctx context.Context, h Handler) error

	// Logout ends the session.
	Logout(ctx context.Context) error
}
