package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/teller/internal/constants"
	"github.com/spf13/viper"
)

const envPrefix = "TELLER"

// Load reads defaults, then the config file, then TELLER_* environment
// variables. An explicit cfgFile must exist; the default location is
// created with default values on first run.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v, NewDefault())

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		appDir, err := AppDataDir()
		if err != nil {
			return nil, fmt.Errorf("error getting app dir: %w", err)
		}

		v.AddConfigPath(appDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		if err := createDefaultConfig(v, appDir); err != nil {
			return nil, fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv() // allow using environment variables to override

	if err := v.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("config file error: %w", err)
		}
	}

	cfg := NewDefault()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	cfg.Bank.Currency = strings.ToUpper(strings.TrimSpace(cfg.Bank.Currency))
	cfg.ConfigPath = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override keys that
// are absent from the file.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("bank.currency", d.Bank.Currency)
	v.SetDefault("bank.allow_overdraft", d.Bank.AllowOverdraft)
	v.SetDefault("security.hash", d.Security.Hash)
	v.SetDefault("security.salt_bytes", d.Security.SaltBytes)
	v.SetDefault("security.min_password_length", d.Security.MinPasswordLength)
	v.SetDefault("security.session_ttl", d.Security.SessionTTL)
	v.SetDefault("security.argon2.time", d.Security.Argon2.Time)
	v.SetDefault("security.argon2.memory", d.Security.Argon2.Memory)
	v.SetDefault("security.argon2.threads", d.Security.Argon2.Threads)
	v.SetDefault("security.argon2.key_len", d.Security.Argon2.KeyLen)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.file", d.Log.File)
}

func createDefaultConfig(v *viper.Viper, appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := v.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// AppDataDir is the directory holding config.yaml.
func AppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+constants.AppName), nil
	}

	return filepath.Join(configDir, constants.AppName), nil
}

// ExpandPath resolves a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}
