package chat

import "sync"

// Store is the append-only conversation log. Mutation is append-or-clear
// only; readers get copies so the internal slice never escapes.
type Store struct {
	mu       sync.RWMutex
	messages []Message
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Append(msg Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}

// List returns the conversation in insertion order.
func (s *Store) List() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}

// Clear drops the whole conversation. Appends that happen after a clear
// land in the fresh log; pre-clear messages never come back.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
}
