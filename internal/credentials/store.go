package credentials

// Credentials is the access/refresh bearer pair issued by the auth endpoints.
// Both tokens are opaque strings and are always stored together.
type Credentials struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Identity is the cached profile record for the signed-in user.
type Identity struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// Store defines the interface for persisting the credential pair and the
// cached identity. Implementations must update the pair atomically so a
// reader never observes a half-written pair.
type Store interface {
	// Credentials returns the stored pair, or (nil, nil) when none is stored.
	Credentials() (*Credentials, error)

	// SaveCredentials persists the pair, replacing any previous one.
	SaveCredentials(creds *Credentials) error

	// ClearCredentials removes the stored pair.
	ClearCredentials() error

	// Identity returns the cached profile, or (nil, nil) when none is cached.
	Identity() (*Identity, error)

	// SaveIdentity caches the profile record.
	SaveIdentity(identity *Identity) error

	// ClearIdentity removes the cached profile record.
	ClearIdentity() error

	// Name returns the name of the store for logging
	Name() string
}
