package store

import (
	"fmt"
	"sync"

	"github.com/hance08/teller/internal/bank"
)

// MemoryStore keeps users for the lifetime of the process. Usernames are
// matched exactly, including case.
type MemoryStore struct {
	mu     sync.RWMutex
	users  map[string]*bank.User
	order  []string
	closed bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]*bank.User)}
}

func (s *MemoryStore) CreateUser(user *bank.User) error {
	if user == nil {
		return fmt.Errorf("nil user")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	name := user.Username()
	if _, ok := s.users[name]; ok {
		return fmt.Errorf("user '%s': %w", name, ErrUserExists)
	}
	s.users[name] = user
	s.order = append(s.order, name)
	return nil
}

func (s *MemoryStore) GetUser(username string) (*bank.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[username]
	if !ok {
		return nil, fmt.Errorf("user '%s': %w", username, ErrRecordNotFound)
	}
	return user, nil
}

func (s *MemoryStore) UserExists(username string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.users[username]
	return ok
}

// Usernames returns every username in registration order.
func (s *MemoryStore) Usernames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Close stops further registrations. Existing users stay readable.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
