package core

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/xonecas/termchat/internal/transport"
)

// InboundHandler processes messages delivered by the transport. It runs on
// the listener goroutine, concurrently with the command loop.
type InboundHandler struct {
	state *State
	out   Output
	bus   *EventBus
	self  string
	now   func() time.Time
}

// NewInboundHandler creates a handler. self is the local account's display name.
func NewInboundHandler(state *State, out Output, bus *EventBus, self string) *InboundHandler {
	return &InboundHandler{
		state: state,
		out:   out,
		bus:   bus,
		self:  self,
		now:   time.Now,
	}
}

// SetClock replaces the time source used for messages without a timestamp.
func (h *InboundHandler) SetClock(now func() time.Time) {
	h.now = now
}

// Handle renders the message, then records the peer as last sender and
// promotes it in the contact lists.
func (h *InboundHandler) Handle(msg transport.Message) {
	if msg.Peer == "" {
		log.Warn().Bool("incoming", msg.Incoming).Msg("Inbound message without peer, ignoring")
		return
	}

	at := msg.At
	if at.IsZero() {
		at = h.now()
	}

	line := MessageLine{At: at, From: msg.Peer, To: h.self, Text: msg.Text}
	if !msg.Incoming {
		line = MessageLine{At: at, From: h.self, To: msg.Peer, Text: msg.Text, Own: true}
	}
	h.out.Notify(line)

	h.state.Observe(msg.Peer)
	h.bus.Publish(Event{
		Type:      EventMessageReceived,
		Message:   &MessageData{Peer: msg.Peer, Text: msg.Text, Incoming: msg.Incoming},
		Timestamp: at,
	})
	log.Debug().Str("peer", msg.Peer).Bool("incoming", msg.Incoming).Msg("Inbound message handled")
}
