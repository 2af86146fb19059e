package service

import (
	"crypto/rand"
	"fmt"
	"io"
	"time"

	"github.com/hance08/teller/internal/bank"
	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/credential"
	"github.com/hance08/teller/internal/store"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Currency          string
	AllowOverdraft    bool
	Hasher            credential.Hasher
	SaltBytes         int
	MinPasswordLength int
	SessionTTL        time.Duration
}

// Service is the only entry point the shell uses to reach users and their
// accounts. It is safe for concurrent use.
type Service struct {
	repo       store.Repository
	config     Config
	log        logrus.FieldLogger
	now        func() time.Time
	signingKey []byte
	sessions   *sessionTable

	// dummy is verified against when a username is unknown so that login
	// takes the same time whether or not the user exists.
	dummy credential.Credential
}

type Option func(*Service)

func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Service) { s.log = log }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithSigningKey fixes the session token key. By default a random key is
// generated per process, which invalidates every token on restart.
func WithSigningKey(key []byte) Option {
	return func(s *Service) { s.signingKey = key }
}

func New(repo store.Repository, cfg Config, opts ...Option) (*Service, error) {
	if cfg.Currency == "" {
		cfg.Currency = constants.DefaultCurrency
	}
	if cfg.Hasher == nil {
		cfg.Hasher = credential.Argon2id{}
	}
	if cfg.SaltBytes == 0 {
		cfg.SaltBytes = credential.DefaultSaltBytes
	}

	s := &Service{
		repo:     repo,
		config:   cfg,
		now:      time.Now,
		sessions: newSessionTable(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		s.log = l
	}

	if len(s.signingKey) == 0 {
		s.signingKey = make([]byte, 32)
		if _, err := rand.Read(s.signingKey); err != nil {
			return nil, fmt.Errorf("failed to generate signing key: %w", err)
		}
	}

	dummy, err := credential.New(constants.AppName, cfg.Hasher, cfg.SaltBytes)
	if err != nil {
		return nil, fmt.Errorf("invalid security settings: %w", err)
	}
	s.dummy = dummy

	return s, nil
}

func (s *Service) Currency() string {
	return s.config.Currency
}

// UserCount reports how many users are registered.
func (s *Service) UserCount() int {
	return s.repo.Count()
}

func (s *Service) userOptions() []bank.UserOption {
	return []bank.UserOption{
		bank.WithHasher(s.config.Hasher),
		bank.WithSaltBytes(s.config.SaltBytes),
		bank.WithPolicy(bank.Policy{AllowOverdraft: s.config.AllowOverdraft}),
		bank.WithClock(s.now),
	}
}
