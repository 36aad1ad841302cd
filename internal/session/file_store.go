package session

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/spec-kit/videogames-portal/internal/domain"
)

// FileStore persists the session cell as a single file named after
// TokenKey, so the session survives a process restart. The in-memory
// copy is authoritative during the process lifetime; the file is the
// durability layer.
type FileStore struct {
	mu       sync.Mutex
	path     string
	token    domain.Token
	present  bool
	notifier *notifier
}

// NewFileStore opens (or initializes) a file-backed store under dir.
// An existing non-empty file is loaded as the current session.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	fs := &FileStore{
		path:     filepath.Join(dir, TokenKey),
		notifier: newNotifier(),
	}

	data, err := os.ReadFile(fs.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		return fs, nil
	}
	if len(data) > 0 {
		fs.token = domain.Token(data)
		fs.present = true
	}
	return fs, nil
}

// Get returns the held token, if any.
func (f *FileStore) Get() (domain.Token, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token, f.present
}

// Set replaces the held value, persists it, and notifies subscribers.
// Storage is assumed available; a write failure leaves the in-memory
// value set so the running session keeps working.
func (f *FileStore) Set(token domain.Token) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = token
	f.present = true
	_ = os.WriteFile(f.path, []byte(token), 0o600)
	f.notifier.publish(Update{Token: token, Present: true})
}

// Clear empties the cell, removes the backing file, and notifies
// subscribers.
func (f *FileStore) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = ""
	f.present = false
	_ = os.Remove(f.path)
	f.notifier.publish(Update{})
}

// Observe subscribes to the cell's value stream.
func (f *FileStore) Observe() (<-chan Update, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.notifier.subscribe(Update{Token: f.token, Present: f.present})
}
