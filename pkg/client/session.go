package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	userdto "github.com/savioruz/reserva/internal/domains/user/dto"
)

const (
	sessionDirPerm  = 0o700
	sessionFilePerm = 0o600
)

// Session is the signed in state of one user. Load it once at start up, Set it after login and
// Clear it on logout. Every change is written to the backing file so the next process picks it up.
// A Session with an empty path lives in memory only.
type Session struct {
	path string

	mu    sync.RWMutex
	state sessionState
}

type sessionState struct {
	AccessToken  string               `json:"access_token"`
	RefreshToken string               `json:"refresh_token"`
	User         userdto.UserResponse `json:"user"`
}

func NewSession(path string) *Session {
	return &Session{path: path}
}

// Load reads the session file. A missing file is a signed out session, not an error.
func (s *Session) Load() error {
	if s.path == "" {
		return nil
	}

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("client: read session: %w", err)
	}

	var state sessionState
	if err := json.Unmarshal(raw, &state); err != nil {
		return fmt.Errorf("client: decode session: %w", err)
	}

	s.mu.Lock()
	s.state = state
	s.mu.Unlock()

	return nil
}

func (s *Session) Set(login userdto.UserLoginResponse) error {
	state := sessionState{
		AccessToken:  login.AccessToken,
		RefreshToken: login.RefreshToken,
		User:         login.User,
	}

	s.mu.Lock()
	s.state = state
	s.mu.Unlock()

	if s.path == "" {
		return nil
	}

	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("client: encode session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), sessionDirPerm); err != nil {
		return fmt.Errorf("client: write session: %w", err)
	}

	if err := os.WriteFile(s.path, raw, sessionFilePerm); err != nil {
		return fmt.Errorf("client: write session: %w", err)
	}

	return nil
}

func (s *Session) Clear() error {
	s.mu.Lock()
	s.state = sessionState{}
	s.mu.Unlock()

	if s.path == "" {
		return nil
	}

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("client: remove session: %w", err)
	}

	return nil
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.AccessToken
}

func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.RefreshToken
}

// User returns the signed in user, if any.
func (s *Session) User() (userdto.UserResponse, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.User, s.state.AccessToken != ""
}
