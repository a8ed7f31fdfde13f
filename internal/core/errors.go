package core

import "errors"

var (
	// ErrEmptyContactList is returned when the startup fetch yields no contacts.
	// It is transient: the caller retries the fetch.
	ErrEmptyContactList = errors.New("empty contact list")

	// ErrAlreadyInitialized is returned when the registry is populated twice.
	ErrAlreadyInitialized = errors.New("contact registry already initialized")

	// ErrIndexOutOfRange is returned for a contact number outside [1, len(all)].
	ErrIndexOutOfRange = errors.New("contact number out of range")

	// ErrBadIndexFormat is returned when the text after "||" is not an integer.
	ErrBadIndexFormat = errors.New("contact number is not an integer")

	// ErrNoDefaultRecipient is returned when send/reply has no explicit
	// recipient and no conversation context to fall back on.
	ErrNoDefaultRecipient = errors.New("no default recipient")

	// ErrInvalidCommand is returned for input matching no command.
	ErrInvalidCommand = errors.New("invalid command")
)
