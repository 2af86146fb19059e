package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hance08/teller/internal/bank"
	"github.com/hance08/teller/internal/constants"
	"github.com/sirupsen/logrus"
)

// Session is the handle returned by Login. Its token is a signed JWT; the
// credential-derived authorization stays inside the service.
type Session struct {
	token     string
	username  string
	id        string
	expiresAt time.Time
}

func (s *Session) Username() string { return s.username }
func (s *Session) Token() string    { return s.token }

// ExpiresAt is zero when sessions never expire.
func (s *Session) ExpiresAt() time.Time { return s.expiresAt }

type sessionEntry struct {
	username string
	auth     bank.Authorization
}

type sessionTable struct {
	mu      sync.Mutex
	entries map[string]sessionEntry
}

func newSessionTable() *sessionTable {
	return &sessionTable{entries: make(map[string]sessionEntry)}
}

// put registers a session and drops any older one for the same user. It
// stores nothing and returns false once current reports the session has
// been replaced by a newer login.
func (t *sessionTable) put(id string, e sessionEntry, current func() bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !current() {
		return false
	}
	for sid, old := range t.entries {
		if old.username == e.username {
			delete(t.entries, sid)
		}
	}
	t.entries[id] = e
	return true
}

func (t *sessionTable) get(id string) (sessionEntry, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[id]
	return e, ok
}

func (t *sessionTable) remove(id string) (sessionEntry, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[id]
	delete(t.entries, id)
	return e, ok
}

func (t *sessionTable) len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

func (s *Service) issueToken(username, id string) (string, time.Time, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Issuer:   constants.AppName,
		Subject:  username,
		ID:       id,
		IssuedAt: jwt.NewNumericDate(now),
	}

	var expiresAt time.Time
	if s.config.SessionTTL > 0 {
		expiresAt = now.Add(s.config.SessionTTL)
		claims.ExpiresAt = jwt.NewNumericDate(expiresAt)
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, expiresAt, nil
}

func (s *Service) parseToken(token string) (*jwt.RegisteredClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(constants.AppName),
		jwt.WithTimeFunc(s.now),
	)

	claims := &jwt.RegisteredClaims{}
	if _, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.signingKey, nil
	}); err != nil {
		return claims, err
	}
	if claims.ID == "" || claims.Subject == "" {
		return claims, errors.New("session token is missing claims")
	}
	return claims, nil
}

// authorize resolves a session to its user and the authorization minted at
// login. Every failure is reported as ErrAccessDenied.
func (s *Service) authorize(sess *Session) (*bank.User, bank.Authorization, error) {
	if sess == nil {
		return nil, bank.Authorization{}, bank.ErrAccessDenied
	}
	_, user, entry, err := s.resolve(sess.token)
	if err != nil {
		return nil, bank.Authorization{}, err
	}
	return user, entry.auth, nil
}

func (s *Service) resolve(token string) (*jwt.RegisteredClaims, *bank.User, sessionEntry, error) {
	if token == "" {
		return nil, nil, sessionEntry{}, bank.ErrAccessDenied
	}

	claims, err := s.parseToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			s.expire(claims.ID)
		}
		s.log.WithFields(logrus.Fields{
			"user":  claims.Subject,
			"error": err.Error(),
		}).Warn("Session rejected")
		return nil, nil, sessionEntry{}, bank.ErrAccessDenied
	}

	entry, ok := s.sessions.get(claims.ID)
	if !ok || entry.username != claims.Subject {
		return nil, nil, sessionEntry{}, bank.ErrAccessDenied
	}

	user, err := s.repo.GetUser(entry.username)
	if err != nil {
		return nil, nil, sessionEntry{}, bank.ErrAccessDenied
	}
	return claims, user, entry, nil
}

// expire ends an expired session at both the service and the user.
func (s *Service) expire(id string) {
	if id == "" {
		return
	}
	entry, ok := s.sessions.remove(id)
	if !ok {
		return
	}
	if user, err := s.repo.GetUser(entry.username); err == nil {
		user.EndSession(entry.auth)
	}
	s.log.WithField("user", entry.username).Info("Session expired")
}

// Resume rebuilds a session handle from a token issued by this service.
func (s *Service) Resume(token string) (*Session, error) {
	claims, _, _, err := s.resolve(token)
	if err != nil {
		return nil, err
	}

	sess := &Session{token: token, username: claims.Subject, id: claims.ID}
	if claims.ExpiresAt != nil {
		sess.expiresAt = claims.ExpiresAt.Time
	}
	return sess, nil
}

// ActiveSessions reports how many sessions are currently open.
func (s *Service) ActiveSessions() int {
	return s.sessions.len()
}
