// Package chat owns the per-user session lifecycle: a registry of active
// conversations keyed by WhatsApp number, an idle reaper that bounds its
// growth, and the service that routes inbound messages to the
// conversational engine.
package chat

import (
	"context"
	"sync"
	"time"

	logx "github.com/liwaisi-tech/ai-micro-businesses-assistant/pkg/logger"
)

// Conversation is the opaque per-user handle owned by the conversational
// engine. The chat core never inspects what is behind it.
type Conversation interface {
	// Send submits one user message and returns the assistant reply.
	Send(ctx context.Context, message string) (string, error)
}

// Engine creates conversations. Implementations may restore prior context
// from their own durable store when a user id is reopened, but the chat
// core does not rely on that.
type Engine interface {
	Open(userID string) (Conversation, error)
}

// Session is the in-memory record of one user's ongoing conversation.
type Session struct {
	UserID string

	conv Conversation

	mu           sync.Mutex
	lastAccessed time.Time
}

// Touch marks the session as recently used.
func (s *Session) Touch() {
	s.mu.Lock()
	s.lastAccessed = time.Now()
	s.mu.Unlock()
}

// LastAccessed returns the time of the last successful use.
func (s *Session) LastAccessed() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAccessed
}

// Store is the session registry. It is constructed explicitly and handed
// to whoever needs it (the service and the reaper); there is no package
// level instance.
type Store struct {
	engine Engine

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewStore creates an empty registry backed by the given engine.
func NewStore(engine Engine) *Store {
	return &Store{
		engine:   engine,
		sessions: make(map[string]*Session),
	}
}

// GetOrCreate returns the session for userID, creating one on first
// contact. The second return reports whether a new session was created.
// An existing session is returned unmodified; callers update last access
// themselves via Touch.
func (s *Store) GetOrCreate(userID string) (*Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[userID]; ok {
		return sess, false, nil
	}

	conv, err := s.engine.Open(userID)
	if err != nil {
		return nil, false, err
	}

	sess := &Session{
		UserID:       userID,
		conv:         conv,
		lastAccessed: time.Now(),
	}
	s.sessions[userID] = sess
	logx.Debug().Str("user_id", userID).Msg("created new chat session")
	return sess, true, nil
}

// Touch refreshes last access for userID. Missing sessions are a no-op;
// the caller may have raced the reaper and will simply recreate on the
// next GetOrCreate.
func (s *Store) Touch(userID string) {
	s.mu.Lock()
	sess, ok := s.sessions[userID]
	s.mu.Unlock()
	if ok {
		sess.Touch()
	}
}

// Remove evicts the session for userID. Idempotent.
func (s *Store) Remove(userID string) {
	s.mu.Lock()
	_, ok := s.sessions[userID]
	delete(s.sessions, userID)
	s.mu.Unlock()
	if ok {
		logx.Debug().Str("user_id", userID).Msg("removed chat session")
	}
}

// UserIDs returns a snapshot of all tracked user ids. Mutating the
// registry afterwards does not affect the returned slice.
func (s *Store) UserIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	return ids
}

// Len returns the number of active sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// get returns the session for userID without creating one.
func (s *Store) get(userID string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	return sess, ok
}
