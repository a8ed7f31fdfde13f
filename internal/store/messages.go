package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/xonecas/termchat/internal/constants"
)

// Direction tells whether a journaled message was sent or received.
type Direction string

const (
	DirectionIn   Direction = "in"
	DirectionOut  Direction = "out"
	DirectionEcho Direction = "echo" // written by this account in another session
)

// JournalEntry is one journaled message.
type JournalEntry struct {
	ID        string
	Direction Direction
	Peer      string
	Body      string
	CreatedAt time.Time
}

// AppendMessage journals a message.
func (s *Store) AppendMessage(direction Direction, peer, body string, at time.Time) (*JournalEntry, error) {
	entry := &JournalEntry{
		ID:        uuid.NewString(),
		Direction: direction,
		Peer:      peer,
		Body:      body,
		CreatedAt: at.UTC(),
	}

	_, err := s.db.Exec(`
		INSERT INTO messages (id, direction, peer, body, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, entry.ID, entry.Direction, entry.Peer, entry.Body, entry.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}
	return entry, nil
}

// RecentMessages returns up to limit messages, newest first.
func (s *Store) RecentMessages(limit int) ([]*JournalEntry, error) {
	if limit <= 0 {
		limit = constants.JournalRecentLimit
	}

	rows, err := s.db.Query(`
		SELECT id, direction, peer, body, created_at
		FROM messages
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	var entries []*JournalEntry
	for rows.Next() {
		var e JournalEntry
		if err := rows.Scan(&e.ID, &e.Direction, &e.Peer, &e.Body, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

// CountMessages returns the number of journaled messages.
func (s *Store) CountMessages() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM messages").Scan(&n); err != nil {
		return 0, fmt.Errorf("count messages: %w", err)
	}
	return n, nil
}
