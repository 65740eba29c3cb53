package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"eventsphere/internal/domain/entities"
	"eventsphere/internal/ports/output"
)

var _ output.SessionStore = (*Store)(nil)

// Store persists the session as a YAML file with 0600 permissions,
// written atomically via a temp file + rename. This is the CLI analog of
// the web client's localStorage token.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

type sessionFile struct {
	Token    string   `yaml:"token"`
	UserID   string   `yaml:"user_id,omitempty"`
	UserName string   `yaml:"user_name,omitempty"`
	Email    string   `yaml:"email,omitempty"`
	ReturnTo []string `yaml:"return_to,omitempty"`
}

// Load reads the persisted session. A missing file means no session and is
// not an error.
func (s *Store) Load() (*entities.Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var file sessionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse session file: %w", err)
	}
	return &entities.Session{
		Token: file.Token,
		User: entities.User{
			ID:    file.UserID,
			Name:  file.UserName,
			Email: file.Email,
		},
		ReturnTo: file.ReturnTo,
	}, nil
}

func (s *Store) Save(session *entities.Session) error {
	if session == nil {
		return errors.New("session is nil")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(sessionFile{
		Token:    session.Token,
		UserID:   session.User.ID,
		UserName: session.User.Name,
		Email:    session.User.Email,
		ReturnTo: session.ReturnTo,
	})
	if err != nil {
		return err
	}

	// Atomic write: temp file in the same directory, then rename.
	tmp, err := os.CreateTemp(dir, ".eventsphere-session-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, s.path)
}

// Clear drops the persisted session. Clearing an absent session is a no-op.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
