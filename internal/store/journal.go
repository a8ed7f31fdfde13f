package store

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/xonecas/termchat/internal/core"
)

// Journal appends every message event from a bus subscription to the store.
type Journal struct {
	store  *Store
	events <-chan core.Event
}

// NewJournal creates a journal reading from events.
func NewJournal(s *Store, events <-chan core.Event) *Journal {
	return &Journal{store: s, events: events}
}

// Run consumes events until the channel closes or ctx is done. Write
// failures are logged; they never stop the session.
func (j *Journal) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-j.events:
			if !ok {
				return nil
			}
			j.record(ev)
		}
	}
}

func (j *Journal) record(ev core.Event) {
	if ev.Message == nil {
		return
	}

	var direction Direction
	switch {
	case ev.Type == core.EventMessageSent:
		direction = DirectionOut
	case ev.Type == core.EventMessageReceived && ev.Message.Incoming:
		direction = DirectionIn
	case ev.Type == core.EventMessageReceived:
		direction = DirectionEcho
	default:
		return
	}

	if _, err := j.store.AppendMessage(direction, ev.Message.Peer, ev.Message.Text, ev.Timestamp); err != nil {
		log.Error().Err(err).Str("peer", ev.Message.Peer).Msg("Failed to journal message")
	}
}
