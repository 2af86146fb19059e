package bank

import (
	"errors"

	"github.com/hance08/teller/internal/money"
)

var (
	ErrInvalidAmount      = money.ErrInvalidAmount
	ErrAccessDenied       = errors.New("access denied")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidInput       = errors.New("invalid input")
)
