package session

import (
	"context"
	"sync"

	"chatfront/internal/model/chat"
)

// Session is the per-client state bound to one browser cookie: the
// authenticated identity (empty while anonymous) and the conversation
// transcript.
type Session struct {
	User         string
	Conversation []chat.Turn
}

// Store persists sessions keyed by an opaque token.
type Store interface {
	Get(ctx context.Context, token string) (Session, bool)
	Put(ctx context.Context, token string, sess Session)
	// Clear removes the session entirely; identity and conversation
	// disappear together.
	Clear(ctx context.Context, token string)
}

// MemoryStore keeps sessions in process memory. Entries are naturally
// partitioned per client; concurrent writes to the same session are
// last-write-wins.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewMemoryStore bootstraps the in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Session)}
}

// Get returns a copy of the stored session.
func (s *MemoryStore) Get(_ context.Context, token string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[token]
	if !ok {
		return Session{}, false
	}
	return copySession(sess), true
}

// Put stores a copy of the session under the token.
func (s *MemoryStore) Put(_ context.Context, token string, sess Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = copySession(sess)
}

// Clear implements Store.
func (s *MemoryStore) Clear(_ context.Context, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// copySession detaches the transcript slice so callers cannot mutate
// stored state through a retained reference.
func copySession(sess Session) Session {
	if sess.Conversation == nil {
		return sess
	}
	copied := make([]chat.Turn, len(sess.Conversation))
	copy(copied, sess.Conversation)
	sess.Conversation = copied
	return sess
}
