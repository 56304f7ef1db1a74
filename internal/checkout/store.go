package checkout

import "sync"

// SessionStore keeps in-flight checkout sessions. Sessions are ephemeral
// on purpose: abandoning a checkout must leave no trace anywhere. Save
// and Get exchange copies, so callers never share a struct with the
// store or with each other.
type SessionStore interface {
	Save(session *Session)
	Get(id string) (*Session, bool)
	Delete(id string)
}

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionStore() SessionStore {
	return &memoryStore{
		sessions: make(map[string]*Session),
	}
}

func (m *memoryStore) Save(session *Session) {
	stored := *session
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[stored.ID] = &stored
}

func (m *memoryStore) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	out := *session
	return &out, true
}

func (m *memoryStore) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}
