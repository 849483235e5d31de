package credentials

import "sync"

// MemoryStore implements Store in process memory. It is used by tests and
// by embedders that do not want state to survive a restart.
type MemoryStore struct {
	mu       sync.RWMutex
	creds    *Credentials
	identity *Identity
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Credentials returns the stored pair, or (nil, nil) when none is stored.
func (m *MemoryStore) Credentials() (*Credentials, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.creds == nil {
		return nil, nil
	}
	c := *m.creds
	return &c, nil
}

// SaveCredentials persists the pair, replacing any previous one.
func (m *MemoryStore) SaveCredentials(creds *Credentials) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := *creds
	m.creds = &c
	return nil
}

// ClearCredentials removes the stored pair.
func (m *MemoryStore) ClearCredentials() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creds = nil
	return nil
}

// Identity returns the cached profile, or (nil, nil) when none is cached.
func (m *MemoryStore) Identity() (*Identity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.identity == nil {
		return nil, nil
	}
	id := *m.identity
	return &id, nil
}

// SaveIdentity caches the profile record.
func (m *MemoryStore) SaveIdentity(identity *Identity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := *identity
	m.identity = &id
	return nil
}

// ClearIdentity removes the cached profile record.
func (m *MemoryStore) ClearIdentity() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.identity = nil
	return nil
}

// Name returns the store name
func (m *MemoryStore) Name() string {
	return "MemoryStore"
}
