package user

import (
	"errors"
	"sync"
)

var ErrUsernameTaken = errors.New("username already taken")

// Store answers credential checks for HTTP handlers.
type Store interface {
	// Authenticate returns the canonical identity when the username is
	// known and the stored credential matches exactly.
	Authenticate(username, password string) (string, bool)
	// Create registers a new identity.
	Create(username, password string) error
}

// MemoryStore implements Store with an in-memory table, suitable for
// demo deployments. Credentials are compared in plaintext; a real
// store would hash them.
type MemoryStore struct {
	mu      sync.RWMutex
	secrets map[string]string
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied accounts.
func NewMemoryStore(accounts map[string]string) *MemoryStore {
	secrets := make(map[string]string, len(accounts))
	for name, secret := range accounts {
		secrets[name] = secret
	}
	return &MemoryStore{secrets: secrets}
}

// Authenticate implements Store. No normalization is applied to either field.
func (s *MemoryStore) Authenticate(username, password string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	secret, ok := s.secrets[username]
	if !ok || secret != password {
		return "", false
	}
	return username, true
}

// Create implements Store. Existing usernames are rejected.
func (s *MemoryStore) Create(username, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.secrets[username]; ok {
		return ErrUsernameTaken
	}
	s.secrets[username] = password
	return nil
}

// Seed provides the default demo accounts.
func Seed() map[string]string {
	return map[string]string{
		"admin": "secret",
		"user":  "password",
	}
}
