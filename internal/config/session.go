package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Session identifies the local user. The user id is opaque and stable; it
// keys the profile row in the store.
type Session struct {
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionPath is the session file location inside the data directory.
func SessionPath(dataDir string) string {
	return filepath.Join(dataDir, "session.json")
}

// LoadSession reads the session file, creating a fresh identity on first
// use.
func LoadSession(dataDir string) (Session, error) {
	path := SessionPath(dataDir)

	data, err := os.ReadFile(path) //nolint:gosec // session path derives from the user's data dir
	if err == nil {
		var s Session
		if err := json.Unmarshal(data, &s); err != nil {
			return Session{}, fmt.Errorf("parse session: %w", err)
		}
		if s.UserID != "" {
			return s, nil
		}
	} else if !os.IsNotExist(err) {
		return Session{}, fmt.Errorf("read session: %w", err)
	}

	s := Session{UserID: uuid.NewString(), CreatedAt: time.Now().UTC()}
	if err := saveSession(dataDir, s); err != nil {
		return Session{}, err
	}
	return s, nil
}

func saveSession(dataDir string, s Session) error {
	if err := os.MkdirAll(dataDir, 0o750); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(SessionPath(dataDir), append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}
