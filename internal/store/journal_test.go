package store

import (
	"context"
	"testing"
	"time"

	"github.com/xonecas/termchat/internal/core"
)

func TestJournalRecordsMessageEvents(t *testing.T) {
	s, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer s.Close()

	bus := core.NewEventBus(16)
	j := NewJournal(s, bus.Subscribe())

	done := make(chan error, 1)
	go func() { done <- j.Run(context.Background()) }()

	at := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	bus.Publish(core.Event{Type: core.EventContactsLoaded, Count: 3, Timestamp: at})
	bus.Publish(core.Event{
		Type:      core.EventMessageSent,
		Message:   &core.MessageData{Peer: "Bob", Text: "hi"},
		Timestamp: at,
	})
	bus.Publish(core.Event{
		Type:      core.EventMessageReceived,
		Message:   &core.MessageData{Peer: "Bob", Text: "hey", Incoming: true},
		Timestamp: at.Add(time.Second),
	})
	bus.Publish(core.Event{
		Type:      core.EventMessageReceived,
		Message:   &core.MessageData{Peer: "Carol", Text: "from phone"},
		Timestamp: at.Add(2 * time.Second),
	})
	bus.Close()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("journal did not stop after bus close")
	}

	entries, err := s.RecentMessages(10)
	if err != nil {
		t.Fatalf("RecentMessages() error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 journaled messages, got %d", len(entries))
	}

	want := []struct {
		dir  Direction
		peer string
	}{
		{DirectionEcho, "Carol"},
		{DirectionIn, "Bob"},
		{DirectionOut, "Bob"},
	}
	for i, w := range want {
		if entries[i].Direction != w.dir || entries[i].Peer != w.peer {
			t.Errorf("entry %d: expected %s/%s, got %s/%s", i, w.dir, w.peer, entries[i].Direction, entries[i].Peer)
		}
	}
}

func TestJournalStopsOnCancel(t *testing.T) {
	s, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer s.Close()

	events := make(chan core.Event)
	j := NewJournal(s, events)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- j.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("journal did not stop after cancel")
	}
}
