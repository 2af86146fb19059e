package service

import (
	"errors"
	"fmt"

	"github.com/hance08/teller/internal/bank"
	"github.com/hance08/teller/internal/credential"
	"github.com/hance08/teller/internal/store"
	"github.com/hance08/teller/internal/validation"
	"github.com/sirupsen/logrus"
)

// UserHandle identifies a registered user.
type UserHandle struct {
	Username string
}

// CreateUser registers a new user. Usernames are unique and case-sensitive.
func (s *Service) CreateUser(username, password string) (UserHandle, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return UserHandle{}, fmt.Errorf("%w: %v", bank.ErrInvalidInput, err)
	}
	if err := validation.ValidatePassword(s.config.MinPasswordLength)(password); err != nil {
		return UserHandle{}, fmt.Errorf("%w: %v", bank.ErrInvalidInput, err)
	}

	if s.repo.UserExists(username) {
		s.log.WithField("user", username).Warn("Duplicate username refused")
		return UserHandle{}, fmt.Errorf("user '%s': %w", username, bank.ErrDuplicateUsername)
	}

	user, err := bank.NewUser(username, password, s.userOptions()...)
	if err != nil {
		return UserHandle{}, err
	}

	if err := s.repo.CreateUser(user); err != nil {
		if errors.Is(err, store.ErrUserExists) {
			s.log.WithField("user", username).Warn("Duplicate username refused")
			return UserHandle{}, fmt.Errorf("user '%s': %w", username, bank.ErrDuplicateUsername)
		}
		return UserHandle{}, fmt.Errorf("failed to save user: %w", err)
	}

	s.log.WithField("user", username).Info("User created")
	return UserHandle{Username: username}, nil
}

// Login verifies the password and opens a session. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func (s *Service) Login(username, password string) (*Session, error) {
	user, err := s.repo.GetUser(username)
	if err != nil {
		credential.Verify(s.dummy, password)
		s.log.WithField("user", username).Warn("Login failed")
		return nil, bank.ErrInvalidCredentials
	}

	auth, ok := user.Login(password)
	if !ok {
		s.log.WithField("user", username).Warn("Login failed")
		return nil, bank.ErrInvalidCredentials
	}

	token, expiresAt, err := s.issueToken(username, auth.Session())
	if err != nil {
		user.EndSession(auth)
		return nil, err
	}
	current := func() bool { return user.Current(auth) }
	if !s.sessions.put(auth.Session(), sessionEntry{username: username, auth: auth}, current) {
		s.log.WithField("user", username).Warn("Login superseded by a newer login")
		return nil, fmt.Errorf("login superseded by a newer login: %w", bank.ErrAccessDenied)
	}

	s.log.WithField("user", username).Info("Logged in")
	return &Session{
		token:     token,
		username:  username,
		id:        auth.Session(),
		expiresAt: expiresAt,
	}, nil
}

// Logout ends the session. Stale, expired or unknown sessions are ignored.
func (s *Service) Logout(sess *Session) {
	if sess == nil || sess.id == "" {
		return
	}

	entry, ok := s.sessions.remove(sess.id)
	if !ok {
		return
	}
	if user, err := s.repo.GetUser(entry.username); err == nil {
		user.EndSession(entry.auth)
	}

	s.log.WithFields(logrus.Fields{
		"user": entry.username,
	}).Info("Logged out")
}

// UserExists reports whether username is taken. Matching is exact.
func (s *Service) UserExists(username string) bool {
	return s.repo.UserExists(username)
}
