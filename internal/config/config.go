package config

import (
	"fmt"
	"time"

	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/validation"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Bank       BankConfig     `mapstructure:"bank"`
	Security   SecurityConfig `mapstructure:"security"`
	Log        LogConfig      `mapstructure:"log"`
	ConfigPath string         `mapstructure:"-"`
}

type BankConfig struct {
	Currency       string `mapstructure:"currency"`
	AllowOverdraft bool   `mapstructure:"allow_overdraft"`
}

type SecurityConfig struct {
	Hash              string        `mapstructure:"hash"`
	SaltBytes         int           `mapstructure:"salt_bytes"`
	MinPasswordLength int           `mapstructure:"min_password_length"`
	SessionTTL        time.Duration `mapstructure:"session_ttl"`
	Argon2            Argon2Config  `mapstructure:"argon2"`
}

type Argon2Config struct {
	Time    uint32 `mapstructure:"time"`
	Memory  uint32 `mapstructure:"memory"`
	Threads uint8  `mapstructure:"threads"`
	KeyLen  uint32 `mapstructure:"key_len"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

func NewDefault() *Config {
	return &Config{
		Bank: BankConfig{
			Currency:       constants.DefaultCurrency,
			AllowOverdraft: false,
		},
		Security: SecurityConfig{
			Hash:              constants.HashArgon2id,
			SaltBytes:         32,
			MinPasswordLength: 1,
			SessionTTL:        0,
			Argon2: Argon2Config{
				Time:    1,
				Memory:  64 * 1024,
				Threads: 4,
				KeyLen:  32,
			},
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
			File:   "",
		},
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.Bank.Currency == "" {
		return fmt.Errorf("bank.currency can't be empty")
	}
	if err := validation.ValidateCurrency(c.Bank.Currency); err != nil {
		return fmt.Errorf("bank.currency: %w", err)
	}

	switch c.Security.Hash {
	case constants.HashArgon2id, constants.HashSHA256:
	default:
		return fmt.Errorf("security.hash must be %q or %q, got %q", constants.HashArgon2id, constants.HashSHA256, c.Security.Hash)
	}
	if c.Security.SaltBytes < constants.MinSaltBytes {
		return fmt.Errorf("security.salt_bytes must be at least %d", constants.MinSaltBytes)
	}
	if c.Security.MinPasswordLength < 1 {
		return fmt.Errorf("security.min_password_length must be at least 1")
	}
	if c.Security.SessionTTL < 0 {
		return fmt.Errorf("security.session_ttl can't be negative")
	}
	if c.Security.Hash == constants.HashArgon2id {
		a := c.Security.Argon2
		if a.Time == 0 || a.Memory < 8*uint32(a.Threads) || a.Threads == 0 || a.KeyLen < 16 {
			return fmt.Errorf("security.argon2 parameters are out of range")
		}
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be \"text\" or \"json\", got %q", c.Log.Format)
	}

	return nil
}
