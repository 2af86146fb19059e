package app

import (
	"path/filepath"
	"testing"

	"github.com/hance08/teller/internal/bank"
	"github.com/hance08/teller/internal/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Security.Hash = "sha256"
	cfg.Bank.Currency = "EUR"
	cfg.Log.File = filepath.Join(t.TempDir(), "teller.log")

	a, cleanup, err := NewApp(cfg)
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, "EUR", a.Service.Currency())

	_, err = a.Service.CreateUser("alice", "pw")
	require.NoError(t, err)
	assert.True(t, a.Store.UserExists("alice"))

	sess, err := a.Service.Login("alice", "pw")
	require.NoError(t, err)
	_, err = a.Service.CreateAccount(sess, "main", bank.Checking)
	require.NoError(t, err)

	_, err = a.Service.Withdraw(sess, 0, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, bank.ErrInsufficientFunds, "overdraft is denied by default")
}

func TestNewAppOverdraft(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Security.Hash = "sha256"
	cfg.Bank.AllowOverdraft = true
	cfg.Log.File = filepath.Join(t.TempDir(), "teller.log")

	a, cleanup, err := NewApp(cfg)
	require.NoError(t, err)
	defer cleanup()

	_, err = a.Service.CreateUser("bob", "pw")
	require.NoError(t, err)
	sess, err := a.Service.Login("bob", "pw")
	require.NoError(t, err)
	_, err = a.Service.CreateAccount(sess, "main", bank.Checking)
	require.NoError(t, err)

	posted, err := a.Service.Withdraw(sess, 0, decimal.NewFromInt(5))
	require.NoError(t, err)
	assert.Equal(t, "-5.00", posted.String())
}

func TestNewAppRejectsUnknownHash(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Security.Hash = "md5"
	cfg.Log.File = filepath.Join(t.TempDir(), "teller.log")

	_, _, err := NewApp(cfg)
	assert.Error(t, err)
}
