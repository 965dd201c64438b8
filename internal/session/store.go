package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// cacheSubdir is the directory under the user cache dir that holds
	// daybook state.
	cacheSubdir = "daybook"

	// tokenFileName is the file the session token is persisted to.
	tokenFileName = "session.token"
)

// Store persists the backend session token across process restarts.
//
// The token is written by the auth gateway after a successful login or
// registration and read by the request dispatcher before every outgoing
// request. There is no expiry tracking; a token is trusted until the
// backend rejects it.
type Store struct {
	path string
}

// NewStore creates a Store backed by the default token file in the
// user's cache directory.
func NewStore() (*Store, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user cache dir: %w", err)
	}
	return NewStoreAt(filepath.Join(cacheDir, cacheSubdir, tokenFileName)), nil
}

// NewStoreAt creates a Store backed by the given file path.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Path returns the file the token is persisted to.
func (s *Store) Path() string {
	return s.path
}

// Token returns the persisted session token, if any.
func (s *Store) Token() (string, bool) {
	slurp, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	token := strings.TrimSpace(string(slurp))
	if token == "" {
		return "", false
	}
	return token, true
}

// HasToken reports whether a session token is persisted.
func (s *Store) HasToken() bool {
	_, ok := s.Token()
	return ok
}

// SetToken persists the session token. The token file is only readable
// by the current user.
func (s *Store) SetToken(token string) error {
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// Clear removes the persisted token. Clearing a store that holds no
// token is not an error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}
