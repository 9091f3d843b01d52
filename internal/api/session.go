package api

import (
	"sync"

	"github.com/google/uuid"
)

// sessionStore maps bearer tokens to usernames. Sessions live for the
// process lifetime; a restart just asks players to log in again.
type sessionStore struct {
	mu     sync.RWMutex
	tokens map[string]string
}

func newSessionStore() *sessionStore {
	return &sessionStore{tokens: make(map[string]string)}
}

// create issues a fresh token for the user.
func (s *sessionStore) create(username string) string {
	token := uuid.New().String()
	s.mu.Lock()
	s.tokens[token] = username
	s.mu.Unlock()
	return token
}

// lookup resolves a token to its username.
func (s *sessionStore) lookup(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	username, ok := s.tokens[token]
	return username, ok
}

// revoke drops a token.
func (s *sessionStore) revoke(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}
