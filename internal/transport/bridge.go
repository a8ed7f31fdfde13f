package transport

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/time/rate"
)

// BridgeOptions configures a Bridge.
type BridgeOptions struct {
	Endpoint       string
	RequestTimeout time.Duration
	PollInterval   time.Duration
	PollBurst      int
	SendRate       float64
	SendBurst      int
}

// Bridge talks to a chat bridge daemon over JSON-RPC. Inbound messages are
// polled; both polling and sending are rate limited.
type Bridge struct {
	client      *Client
	pollLimiter *rate.Limiter
	sendLimiter *rate.Limiter

	mu        sync.Mutex
	self      string
	connected bool
	cursor    int64
}

// NewBridge creates a bridge transport.
func NewBridge(opts BridgeOptions) *Bridge {
	pollBurst := max(opts.PollBurst, 1)
	sendBurst := max(opts.SendBurst, 1)

	pollLimit := rate.Inf
	if opts.PollInterval > 0 {
		pollLimit = rate.Every(opts.PollInterval)
	}
	sendLimit := rate.Inf
	if opts.SendRate > 0 {
		sendLimit = rate.Limit(opts.SendRate)
	}

	return &Bridge{
		client:      NewClient(opts.Endpoint, opts.RequestTimeout),
		pollLimiter: rate.NewLimiter(pollLimit, pollBurst),
		sendLimiter: rate.NewLimiter(sendLimit, sendBurst),
	}
}

// Connect opens the bridge session.
func (b *Bridge) Connect(ctx context.Context) (string, error) {
	var res connectResult
	if err := b.client.Call(ctx, "session/connect", nil, &res); err != nil {
		return "", mapError("connect", err)
	}

	self := res.Self.displayName()
	b.mu.Lock()
	b.self = self
	b.connected = true
	b.mu.Unlock()

	log.Info().Str("self", self).Msg("Bridge session connected")
	return self, nil
}

// FetchContacts lists the account's contacts by display name.
func (b *Bridge) FetchContacts(ctx context.Context) ([]string, error) {
	if !b.isConnected() {
		return nil, ErrNotConnected
	}

	var res contactsResult
	if err := b.client.Call(ctx, "contacts/list", nil, &res); err != nil {
		return nil, mapError("list contacts", err)
	}

	names := lo.FilterMap(res.Contacts, func(u wireUser, _ int) (string, bool) {
		name := u.displayName()
		return name, name != ""
	})
	log.Debug().Int("contacts", len(names)).Msg("Fetched contacts")
	return names, nil
}

// SendMessage sends text to the named contact.
func (b *Bridge) SendMessage(ctx context.Context, recipient, text string) error {
	if !b.isConnected() {
		return fmt.Errorf("%w: %w", ErrTransport, ErrNotConnected)
	}
	if err := b.sendLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}

	params := sendParams{To: recipient, Text: text, ClientMsgID: uuid.NewString()}
	if err := b.client.Call(ctx, "messages/send", params, nil); err != nil {
		return mapError("send", err)
	}
	log.Debug().Str("to", recipient).Str("client_msg_id", params.ClientMsgID).Msg("Message sent")
	return nil
}

// Listen polls the bridge for inbound messages until ctx is done. Poll
// failures are logged and retried at the poll rate.
func (b *Bridge) Listen(ctx context.Context, h Handler) error {
	if !b.isConnected() {
		return ErrNotConnected
	}

	for {
		if err := b.pollLimiter.Wait(ctx); err != nil {
			return nil
		}

		msgs, err := b.poll(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.Warn().Err(err).Msg("Poll failed")
			continue
		}
		for _, m := range msgs {
			h(m)
		}
	}
}

func (b *Bridge) poll(ctx context.Context) ([]Message, error) {
	b.mu.Lock()
	cursor := b.cursor
	b.mu.Unlock()

	var res pollResult
	if err := b.client.Call(ctx, "messages/poll", pollParams{Cursor: cursor}, &res); err != nil {
		return nil, mapError("poll", err)
	}

	b.mu.Lock()
	b.cursor = res.NextCursor
	b.mu.Unlock()

	now := time.Now()
	return lo.FilterMap(res.Messages, func(m wireMessage, _ int) (Message, bool) {
		peer := m.Peer.displayName()
		if peer == "" {
			log.Warn().Str("user_name", m.Peer.UserName).Msg("Dropping message without peer name")
			return Message{}, false
		}
		at := now
		if m.SentAt > 0 {
			at = time.Unix(m.SentAt, 0)
		}
		return Message{Peer: peer, Text: m.Text, Incoming: m.Incoming, At: at}, true
	}), nil
}

// Logout closes the bridge session.
func (b *Bridge) Logout(ctx context.Context) error {
	b.mu.Lock()
	b.connected = false
	b.mu.Unlock()

	if err := b.client.Call(ctx, "session/logout", nil, nil); err != nil {
		return mapError("logout", err)
	}
	return nil
}

func (b *Bridge) isConnected() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.connected
}

func mapError(op string, err error) error {
	var rpcErr *RPCError
	if errors.As(err, &rpcErr) && rpcErr.Code == CodeRecipientNotFound {
		return fmt.Errorf("%s: %w: %s", op, ErrRecipientNotFound, rpcErr.Message)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrTransport, err)
}
