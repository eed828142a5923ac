package session

import (
	"os"
	"path/filepath"
	"strings"
)

// TokenStore persists the signed token, the only client-side artifact that
// survives a restart.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

const tokenFileName = "token"

// FileStore keeps the token in a fixed file under the user config
// directory, the CLI's equivalent of the browser's local storage key.
type FileStore struct {
	path string
}

func NewFileStore() (*FileStore, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return &FileStore{path: filepath.Join(configDir, "taskboard", tokenFileName)}, nil
}

func (s *FileStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// MemoryStore holds the token in memory, for tests and one-shot use.
type MemoryStore struct {
	token string
}

func (s *MemoryStore) Load() (string, error) {
	return s.token, nil
}

func (s *MemoryStore) Save(token string) error {
	s.token = token
	return nil
}

func (s *MemoryStore) Clear() error {
	s.token = ""
	return nil
}
