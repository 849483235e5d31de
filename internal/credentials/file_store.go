package credentials

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// fileDocument is the on-disk layout: the token pair plus the optional
// cached identity in a single JSON document, so the pair can never be
// persisted half-updated.
type fileDocument struct {
	AccessToken  string    `json:"access_token,omitempty"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	Identity     *Identity `json:"identity,omitempty"`
}

// FileStore implements Store using a JSON file on disk. State survives
// process restarts. All accesses go through a mutex so concurrent requests
// see either the pre- or post-refresh pair, never a torn one.
type FileStore struct {
	filePath string
	mu       sync.Mutex
}

// NewFileStore creates a file-backed store at path. An empty path selects
// the default location, ~/.memorycard/credentials.json.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, ".memorycard", "credentials.json")
	}
	return &FileStore{filePath: path}, nil
}

// load reads the document from disk. A missing file is an empty document.
func (f *FileStore) load() (*fileDocument, error) {
	data, err := os.ReadFile(f.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &fileDocument{}, nil
		}
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	doc := &fileDocument{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to parse credentials file: %w", err)
	}
	return doc, nil
}

// save writes the document atomically via a temp file and rename.
func (f *FileStore) save(doc *fileDocument) error {
	dir := filepath.Dir(f.filePath)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}

	tmp := f.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write credentials to %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.filePath); err != nil {
		return fmt.Errorf("failed to replace credentials file: %w", err)
	}
	return nil
}

// Credentials returns the stored pair, or (nil, nil) when none is stored.
func (f *FileStore) Credentials() (*Credentials, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return nil, err
	}
	if doc.AccessToken == "" && doc.RefreshToken == "" {
		return nil, nil
	}
	return &Credentials{AccessToken: doc.AccessToken, RefreshToken: doc.RefreshToken}, nil
}

// SaveCredentials persists the pair, keeping any cached identity.
func (f *FileStore) SaveCredentials(creds *Credentials) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return err
	}
	doc.AccessToken = creds.AccessToken
	doc.RefreshToken = creds.RefreshToken
	return f.save(doc)
}

// ClearCredentials removes the stored pair, keeping any cached identity.
func (f *FileStore) ClearCredentials() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return err
	}
	doc.AccessToken = ""
	doc.RefreshToken = ""
	return f.save(doc)
}

// Identity returns the cached profile, or (nil, nil) when none is cached.
func (f *FileStore) Identity() (*Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return nil, err
	}
	return doc.Identity, nil
}

// SaveIdentity caches the profile record.
func (f *FileStore) SaveIdentity(identity *Identity) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return err
	}
	doc.Identity = identity
	return f.save(doc)
}

// ClearIdentity removes the cached profile record.
func (f *FileStore) ClearIdentity() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return err
	}
	doc.Identity = nil
	return f.save(doc)
}

// Name returns the store name
func (f *FileStore) Name() string {
	return fmt.Sprintf("FileStore(%s)", f.filePath)
}
