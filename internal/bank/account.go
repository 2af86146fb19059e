package bank

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hance08/teller/internal/credential"
	"github.com/hance08/teller/internal/ledger"
	"github.com/hance08/teller/internal/money"
)

type AccountType int

const (
	Savings AccountType = iota
	Checking
)

func (t AccountType) String() string {
	switch t {
	case Savings:
		return "Savings"
	case Checking:
		return "Checking"
	default:
		return fmt.Sprintf("AccountType(%d)", int(t))
	}
}

func (t AccountType) Valid() bool {
	return t == Savings || t == Checking
}

// ParseAccountType accepts the type name in any case.
func ParseAccountType(s string) (AccountType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "savings":
		return Savings, nil
	case "checking":
		return Checking, nil
	default:
		return 0, fmt.Errorf("unknown account type %q: %w", s, ErrInvalidInput)
	}
}

// AccountTypes lists the supported types in display order.
func AccountTypes() []AccountType {
	return []AccountType{Checking, Savings}
}

// Policy holds the rules an account enforces on withdrawals.
type Policy struct {
	AllowOverdraft bool
}

// Account keeps balance and ledger in lockstep under mu. Every operation
// requires an Authorization carrying the key the account was opened with.
type Account struct {
	mu      sync.Mutex
	name    string
	typ     AccountType
	key     []byte
	policy  Policy
	balance money.Money
	ledger  *ledger.Ledger
	now     func() time.Time
}

func newAccount(name string, typ AccountType, key []byte, policy Policy, now func() time.Time) *Account {
	if now == nil {
		now = time.Now
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &Account{
		name:   name,
		typ:    typ,
		key:    k,
		policy: policy,
		ledger: ledger.New(),
		now:    now,
	}
}

func (a *Account) Name() string      { return a.name }
func (a *Account) Type() AccountType { return a.typ }

func (a *Account) authorized(auth Authorization) bool {
	return credential.Equal(a.key, auth.key)
}

// Deposit credits amount and records it. Nothing changes on error.
func (a *Account) Deposit(amount money.Money, auth Authorization) (ledger.Transaction, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.authorized(auth) {
		return ledger.Transaction{}, ErrAccessDenied
	}
	if !amount.IsPositive() {
		return ledger.Transaction{}, fmt.Errorf("deposit of %s: %w", amount, ErrInvalidAmount)
	}

	return a.post(amount)
}

// Withdraw debits amount. Unless the policy allows overdraft, the balance
// may not drop below zero.
func (a *Account) Withdraw(amount money.Money, auth Authorization) (ledger.Transaction, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.authorized(auth) {
		return ledger.Transaction{}, ErrAccessDenied
	}
	if !amount.IsPositive() {
		return ledger.Transaction{}, fmt.Errorf("withdrawal of %s: %w", amount, ErrInvalidAmount)
	}

	next, err := a.balance.Sub(amount)
	if err != nil {
		return ledger.Transaction{}, err
	}
	if next.IsNegative() && !a.policy.AllowOverdraft {
		return ledger.Transaction{}, fmt.Errorf("withdrawal of %s exceeds balance %s: %w", amount, a.balance, ErrInsufficientFunds)
	}

	return a.post(amount.Neg())
}

// post must be called with mu held.
func (a *Account) post(delta money.Money) (ledger.Transaction, error) {
	next, err := a.balance.Add(delta)
	if err != nil {
		return ledger.Transaction{}, err
	}
	tx, err := a.ledger.Append(delta, a.now())
	if err != nil {
		return ledger.Transaction{}, err
	}
	a.balance = next
	return tx, nil
}

func (a *Account) Balance(auth Authorization) (money.Money, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.authorized(auth) {
		return 0, ErrAccessDenied
	}
	return a.balance, nil
}

// History returns a snapshot of the ledger in chronological order.
func (a *Account) History(auth Authorization) ([]ledger.Transaction, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.authorized(auth) {
		return nil, ErrAccessDenied
	}
	return a.ledger.Entries(), nil
}

// FormatHistory renders the ledger as a fixed-width table followed by the
// current balance.
func (a *Account) FormatHistory(auth Authorization) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.authorized(auth) {
		return "", ErrAccessDenied
	}
	return formatHistory(a.ledger.Entries(), a.balance), nil
}

// snapshot reads balance and ledger length together. Used by tests and the
// account listing.
func (a *Account) snapshot() (money.Money, int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance, a.ledger.Len()
}
