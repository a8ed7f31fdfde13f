package core

import "sync"

// State is the contact registry and conversation context shared by the
// command loop and the inbound listener. Every method holds the one lock
// for the whole operation and never performs I/O while holding it.
type State struct {
	mu       sync.Mutex
	registry *Registry
	conv     Conversation
}

// NewState creates an empty state.
func NewState() *State {
	return &State{registry: NewRegistry()}
}

// Initialize populates the contact registry. See Registry.Initialize.
func (s *State) Initialize(names []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.Initialize(names)
}

// Initialized reports whether the contact list has been loaded.
func (s *State) Initialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.Initialized()
}

// Touch promotes name in both contact lists.
func (s *State) Touch(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry.Touch(name)
}

// ListAll returns a consistent snapshot of all contacts.
func (s *State) ListAll() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.ListAll()
}

// ListRecent returns a consistent snapshot of the recent contacts.
func (s *State) ListRecent() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.ListRecent()
}

// Snapshot returns both lists taken under a single lock acquisition.
func (s *State) Snapshot() (all, recent []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.ListAll(), s.registry.ListRecent()
}

// ContactCount returns the number of known contacts.
func (s *State) ContactCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.Len()
}

// ResolveByIndex returns the contact at 1-based position n.
func (s *State) ResolveByIndex(n int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.ResolveByIndex(n)
}

// RecordInbound sets the last sender.
func (s *State) RecordInbound(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conv.RecordInbound(name)
}

// RecordOutbound sets the last recipient.
func (s *State) RecordOutbound(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conv.RecordOutbound(name)
}

// LastFrom returns the last sender, if any.
func (s *State) LastFrom() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conv.LastFrom()
}

// LastTo returns the last recipient, if any.
func (s *State) LastTo() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conv.LastTo()
}

// Observe records an inbound message from name and promotes it.
func (s *State) Observe(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conv.RecordInbound(name)
	s.registry.Touch(name)
}

// Delivered records an accepted outbound message to name and promotes it.
func (s *State) Delivered(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conv.RecordOutbound(name)
	s.registry.Touch(name)
}
