package api

import (
	"github.com/linkobe24/memorycard-go/internal/credentials"
	"github.com/linkobe24/memorycard-go/internal/logger"
)

// NavigationHook moves the user to an unauthenticated entry point after the
// session has been cleared. Injected so the core stays headless; nil is a
// valid hook.
type NavigationHook func()

// SessionTerminator tears down an unsalvageable session: it clears the
// credential pair and the cached identity in one logical operation, then
// invokes the navigation hook. Terminating an already-terminated session is
// a no-op beyond re-clearing.
type SessionTerminator struct {
	store    credentials.Store
	navigate NavigationHook
}

// NewSessionTerminator creates a terminator over the given store and hook.
func NewSessionTerminator(store credentials.Store, navigate NavigationHook) *SessionTerminator {
	return &SessionTerminator{store: store, navigate: navigate}
}

// Terminate clears all persisted session state and triggers navigation.
func (t *SessionTerminator) Terminate() {
	if err := t.store.ClearCredentials(); err != nil {
		logger.Get().Error().Err(err).Str("store", t.store.Name()).Msg("Failed to clear credentials")
	}
	if err := t.store.ClearIdentity(); err != nil {
		logger.Get().Error().Err(err).Str("store", t.store.Name()).Msg("Failed to clear cached identity")
	}
	if t.navigate != nil {
		t.navigate()
	}
}
