package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/xonecas/termchat/internal/constants"
	"github.com/xonecas/termchat/internal/transport"
)

// Commander executes command lines against the shared state and the transport.
type Commander struct {
	state *State
	tr    transport.Transport
	out   Output
	bus   *EventBus
	self  string

	now           func() time.Time
	retryInterval time.Duration
}

// NewCommander creates a new commander. self is the local account's display name.
func NewCommander(state *State, tr transport.Transport, out Output, bus *EventBus, self string) *Commander {
	return &Commander{
		state:         state,
		tr:            tr,
		out:           out,
		bus:           bus,
		self:          self,
		now:           time.Now,
		retryInterval: constants.StartupRetryInterval,
	}
}

// SetClock replaces the time source.
func (c *Commander) SetClock(now func() time.Time) {
	c.now = now
}

// SetRetryInterval sets the pause between failed contact list fetches.
func (c *Commander) SetRetryInterval(d time.Duration) {
	if d > 0 {
		c.retryInterval = d
	}
}

// State returns the shared state.
func (c *Commander) State() *State {
	return c.state
}

// LoadContacts fetches the contact list and initializes the registry,
// retrying until it succeeds or ctx is done. An empty list counts as a
// failure.
func (c *Commander) LoadContacts(ctx context.Context) error {
	for attempt := 1; ; attempt++ {
		names, err := c.tr.FetchContacts(ctx)
		if err == nil {
			err = c.state.Initialize(names)
		}
		if err == nil || errors.Is(err, ErrAlreadyInitialized) {
			count := c.state.ContactCount()
			log.Info().Int("contacts", count).Int("attempt", attempt).Msg("Contact list loaded")
			c.out.Info(fmt.Sprintf("Loaded %d contacts", count))
			c.bus.Publish(Event{Type: EventContactsLoaded, Count: count, Timestamp: c.now()})
			return nil
		}

		log.Warn().Err(err).Int("attempt", attempt).Dur("retry_in", c.retryInterval).Msg("Failed to load contacts")

		timer := time.NewTimer(c.retryInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// Execute runs one command line. It returns true when the session should end.
// Failures are reported through the output; none of them ends the session.
func (c *Commander) Execute(ctx context.Context, line string) bool {
	cmd := Dispatch(line)
	if cmd.Kind != CmdNoop {
		log.Debug().Str("command", cmd.Kind.String()).Msg("Executing command")
	}

	switch cmd.Kind {
	case CmdNoop:
	case CmdHelp:
		c.out.Help()
	case CmdExit:
		return true
	case CmdTime:
		c.out.Clock(c.now())
	case CmdListAll:
		c.out.List(c.state.ListAll())
	case CmdListRecent:
		c.out.List(c.state.ListRecent())
	case CmdSend:
		c.report(ModeSend, c.Send(ctx, ModeSend, cmd.Body))
	case CmdReply:
		c.report(ModeReply, c.Send(ctx, ModeReply, cmd.Body))
	default:
		c.out.Error(fmt.Errorf("%w: %q", ErrInvalidCommand, cmd.Raw))
	}
	return false
}

// Send resolves body and sends the message. The lock is never held while
// the transport is working.
func (c *Commander) Send(ctx context.Context, mode Mode, body string) error {
	route, err := Resolve(body, mode, c.state)
	if err != nil {
		return err
	}

	if err := c.tr.SendMessage(ctx, route.Recipient, route.Message); err != nil {
		log.Warn().Err(err).Str("to", route.Recipient).Msg("Send failed")
		return fmt.Errorf("message to %s not sent: %w", route.Recipient, err)
	}

	at := c.now()
	c.state.Delivered(route.Recipient)
	c.out.Message(MessageLine{At: at, From: c.self, To: route.Recipient, Text: route.Message, Own: true})
	c.bus.Publish(Event{
		Type:      EventMessageSent,
		Message:   &MessageData{Peer: route.Recipient, Text: route.Message},
		Timestamp: at,
	})
	return nil
}

func (c *Commander) report(mode Mode, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, ErrNoDefaultRecipient) {
		if mode == ModeReply {
			c.out.Warn("No one has written to you yet. Please specify a recipient",
				"e.g. > send <message> | <name>")
		} else {
			c.out.Warn("No previous recipient. Please specify one",
				"e.g. > send <message> | <name>")
		}
		return
	}
	c.out.Error(err)
}
