package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/homecraft/homecraft-cli/internal/model"
)

// Entry names inside the state directory. Each entry is written
// independently; there is no multi-file transaction, so readers must
// treat an incomplete triple as absent.
const (
	tokenEntry      = "token"
	expirationEntry = "token_expiration"
	userEntry       = "user.json"
)

var _ model.CredentialStore = (*FileStore)(nil)

// FileStore keeps the credential triple as three files in a state
// directory, surviving process restarts the way browser local storage
// survives page reloads.
type FileStore struct {
	dir string
}

// NewFileStore creates the state directory if needed and returns a
// store rooted in it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create state dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Save persists the full triple.
func (s *FileStore) Save(token string, expiresAt int64, user *model.User) error {
	if err := s.SaveToken(token, expiresAt); err != nil {
		return err
	}
	return s.SaveUser(user)
}

// SaveToken persists the token and its expiry.
func (s *FileStore) SaveToken(token string, expiresAt int64) error {
	if err := s.write(tokenEntry, []byte(token)); err != nil {
		return err
	}
	return s.write(expirationEntry, []byte(strconv.FormatInt(expiresAt, 10)))
}

// SaveUser persists the user snapshot.
func (s *FileStore) SaveUser(user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user snapshot: %w", err)
	}
	return s.write(userEntry, data)
}

// Token returns the stored token and expiry. A missing or unparseable
// entry yields zero values, not an error.
func (s *FileStore) Token() (string, int64, error) {
	token, ok, err := s.read(tokenEntry)
	if err != nil || !ok {
		return "", 0, err
	}
	raw, ok, err := s.read(expirationEntry)
	if err != nil || !ok {
		return "", 0, err
	}
	expiresAt, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return "", 0, nil
	}
	return string(token), expiresAt, nil
}

// Load returns the stored triple, or nil if any entry is missing or
// unreadable.
func (s *FileStore) Load() (*model.StoredCredentials, error) {
	token, expiresAt, err := s.Token()
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, nil
	}

	raw, ok, err := s.read(userEntry)
	if err != nil || !ok {
		return nil, err
	}
	user := &model.User{}
	if err := json.Unmarshal(raw, user); err != nil {
		// A tampered or truncated snapshot counts as absent.
		return nil, nil
	}

	return &model.StoredCredentials{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// ClearToken removes the token and expiry entries only.
func (s *FileStore) ClearToken() error {
	if err := s.remove(tokenEntry); err != nil {
		return err
	}
	return s.remove(expirationEntry)
}

// Clear removes all three entries.
func (s *FileStore) Clear() error {
	if err := s.ClearToken(); err != nil {
		return err
	}
	return s.remove(userEntry)
}

func (s *FileStore) write(entry string, data []byte) error {
	if err := os.WriteFile(filepath.Join(s.dir, entry), data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", entry, err)
	}
	return nil
}

func (s *FileStore) read(entry string) ([]byte, bool, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, entry))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", entry, err)
	}
	if len(data) == 0 {
		return nil, false, nil
	}
	return data, true, nil
}

func (s *FileStore) remove(entry string) error {
	err := os.Remove(filepath.Join(s.dir, entry))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", entry, err)
	}
	return nil
}
