package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xonecas/termchat/internal/constants"
)

// Mode selects which conversation context a bare send/reply falls back on.
type Mode int

const (
	// ModeSend defaults to the last recipient.
	ModeSend Mode = iota
	// ModeReply defaults to the last sender.
	ModeReply
)

func (m Mode) String() string {
	if m == ModeReply {
		return "reply"
	}
	return "send"
}

// Route is a resolved outbound message.
type Route struct {
	Message   string
	Recipient string
}

// RecipientSource provides the context a Route is resolved against.
// State implements it.
type RecipientSource interface {
	ResolveByIndex(n int) (string, error)
	LastFrom() (string, bool)
	LastTo() (string, bool)
}

// Resolve turns a send/reply body into a Route.
//
//	<message> || <number>   recipient by 1-based position in the contact list
//	<message> | <name>      recipient by name, checked only when sending
//	<message>               last recipient (send) or last sender (reply)
func Resolve(body string, mode Mode, src RecipientSource) (Route, error) {
	if message, indexText, ok := strings.Cut(body, constants.IndexDelimiter); ok {
		n, err := strconv.Atoi(strings.TrimSpace(indexText))
		if err != nil {
			return Route{}, fmt.Errorf("%w: %q", ErrBadIndexFormat, strings.TrimSpace(indexText))
		}
		recipient, err := src.ResolveByIndex(n)
		if err != nil {
			return Route{}, err
		}
		return Route{Message: strings.TrimSpace(message), Recipient: recipient}, nil
	}

	if message, name, ok := strings.Cut(body, constants.NameDelimiter); ok {
		return Route{Message: strings.TrimSpace(message), Recipient: strings.TrimSpace(name)}, nil
	}

	var (
		recipient string
		ok        bool
	)
	if mode == ModeReply {
		recipient, ok = src.LastFrom()
	} else {
		recipient, ok = src.LastTo()
	}
	if !ok {
		return Route{}, fmt.Errorf("%w for %s", ErrNoDefaultRecipient, mode)
	}
	return Route{Message: strings.TrimSpace(body), Recipient: recipient}, nil
}
