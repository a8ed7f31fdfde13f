package transport

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Offline is an in-process transport with a fixed roster. Sends to known
// contacts succeed; with echo enabled the contact answers after a delay.
type Offline struct {
	self      string
	contacts  []string
	echo      bool
	echoDelay time.Duration

	mu        sync.Mutex
	connected bool
	sent      []Message

	inbox chan Message
}

// NewOffline creates an offline transport.
func NewOffline(self string, contacts []string, echo bool, echoDelay time.Duration) *Offline {
	return &Offline{
		self:      self,
		contacts:  slices.Clone(contacts),
		echo:      echo,
		echoDelay: echoDelay,
		inbox:     make(chan Message, 64),
	}
}

// Connect returns the configured local name.
func (o *Offline) Connect(ctx context.Context) (string, error) {
	o.mu.Lock()
	o.connected = true
	o.mu.Unlock()
	return o.self, nil
}

// FetchContacts returns the roster.
func (o *Offline) FetchContacts(ctx context.Context) ([]string, error) {
	if !o.isConnected() {
		return nil, ErrNotConnected
	}
	return slices.Clone(o.contacts), nil
}

// SendMessage accepts messages for roster members only.
func (o *Offline) SendMessage(ctx context.Context, recipient, text string) error {
	if !o.isConnected() {
		return fmt.Errorf("%w: %w", ErrTransport, ErrNotConnected)
	}
	if !slices.Contains(o.contacts, recipient) {
		return fmt.Errorf("%w: %s", ErrRecipientNotFound, recipient)
	}

	o.mu.Lock()
	o.sent = append(o.sent, Message{Peer: recipient, Text: text, At: time.Now()})
	o.mu.Unlock()

	if o.echo {
		go o.echoBack(ctx, recipient, text)
	}
	return nil
}

func (o *Offline) echoBack(ctx context.Context, recipient, text string) {
	timer := time.NewTimer(o.echoDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}
	o.Inject(Message{Peer: recipient, Text: "echo: " + text, Incoming: true, At: time.Now()})
}

// Inject queues an inbound message. It drops the message when the inbox is full.
func (o *Offline) Inject(msg Message) {
	select {
	case o.inbox <- msg:
	default:
		log.Warn().Str("peer", msg.Peer).Msg("Offline inbox full, dropping message")
	}
}

// Sent returns the messages accepted so far.
func (o *Offline) Sent() []Message {
	o.mu.Lock()
	defer o.mu.Unlock()
	return slices.Clone(o.sent)
}

// Listen delivers injected messages until ctx is done.
func (o *Offline) Listen(ctx context.Context, h Handler) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg := <-o.inbox:
			h(msg)
		}
	}
}

// Logout ends the session.
func (o *Offline) Logout(ctx context.Context) error {
	o.mu.Lock()
	o.connected = false
	o.mu.Unlock()
	return nil
}

func (o *Offline) isConnected() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.connected
}
