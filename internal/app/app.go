package app

import (
	"fmt"
	"os"

	"github.com/hance08/teller/internal/config"
	"github.com/hance08/teller/internal/credential"
	"github.com/hance08/teller/internal/logging"
	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/store"
	"github.com/sirupsen/logrus"
)

type App struct {
	Service *service.Service
	Store   store.Repository
	Logger  *logrus.Logger
	Config  *config.Config
}

// NewApp initialize logging, the user store and the service, then return App entity
func NewApp(cfg *config.Config, opts ...service.Option) (*App, func(), error) {
	logger, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	sec := cfg.Security
	hasher, err := credential.NewHasher(sec.Hash, credential.Argon2id{
		Time:    sec.Argon2.Time,
		Memory:  sec.Argon2.Memory,
		Threads: sec.Argon2.Threads,
		KeyLen:  sec.Argon2.KeyLen,
	})
	if err != nil {
		closeLog()
		return nil, nil, err
	}

	memStore := store.NewMemoryStore()

	svcCfg := service.Config{
		Currency:          cfg.Bank.Currency,
		AllowOverdraft:    cfg.Bank.AllowOverdraft,
		Hasher:            hasher,
		SaltBytes:         sec.SaltBytes,
		MinPasswordLength: sec.MinPasswordLength,
		SessionTTL:        sec.SessionTTL,
	}

	svc, err := service.New(memStore, svcCfg, append([]service.Option{service.WithLogger(logger)}, opts...)...)
	if err != nil {
		closeLog()
		return nil, nil, fmt.Errorf("failed to initialize service: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"hash":            hasher.Scheme(),
		"allow_overdraft": cfg.Bank.AllowOverdraft,
	}).Debug("Service ready")

	cleanup := func() {
		if err := memStore.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing store: %v\n", err)
		}
		if err := closeLog(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing log file: %v\n", err)
		}
	}

	return &App{
		Service: svc,
		Store:   memStore,
		Logger:  logger,
		Config:  cfg,
	}, cleanup, nil
}
