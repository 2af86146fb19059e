package bank

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hance08/teller/internal/credential"
	"github.com/hance08/teller/internal/ledger"
	"github.com/hance08/teller/internal/money"
)

// Authorization is the capability returned by a successful login. It is
// opaque outside this package and cannot be forged by callers.
type Authorization struct {
	key     []byte
	session string
}

// Session returns the id of the login that minted the authorization.
func (a Authorization) Session() string {
	return a.session
}

func (a Authorization) IsZero() bool {
	return a.session == "" || len(a.key) == 0
}

type UserOption func(*userOptions)

type userOptions struct {
	hasher    credential.Hasher
	saltBytes int
	policy    Policy
	now       func() time.Time
}

func WithHasher(h credential.Hasher) UserOption {
	return func(o *userOptions) { o.hasher = h }
}

func WithSaltBytes(n int) UserOption {
	return func(o *userOptions) { o.saltBytes = n }
}

// WithPolicy sets the policy applied to every account the user opens.
func WithPolicy(p Policy) UserOption {
	return func(o *userOptions) { o.policy = p }
}

func WithClock(now func() time.Time) UserOption {
	return func(o *userOptions) { o.now = now }
}

// User owns an ordered list of accounts. Lock order is User then Account.
type User struct {
	mu       sync.Mutex
	username string
	cred     credential.Credential
	accounts []*Account
	session  string
	policy   Policy
	now      func() time.Time
}

func NewUser(username, password string, opts ...UserOption) (*User, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required: %w", ErrInvalidInput)
	}

	o := userOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	cred, err := credential.New(password, o.hasher, o.saltBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to create credential: %w", err)
	}

	return &User{
		username: username,
		cred:     cred,
		policy:   o.policy,
		now:      o.now,
	}, nil
}

func (u *User) Username() string {
	return u.username
}

// Login opens a new session on success, superseding any previous one. A wrong
// password leaves the session as it was.
func (u *User) Login(password string) (Authorization, bool) {
	if !credential.Verify(u.cred, password) {
		return Authorization{}, false
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	u.session = uuid.NewString()
	return Authorization{key: u.cred.Key(), session: u.session}, true
}

// Logout ends whatever session is open. Calling it twice is harmless.
func (u *User) Logout() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.session = ""
}

// EndSession logs out only if auth belongs to the current session, so a stale
// handle cannot end a newer login.
func (u *User) EndSession(auth Authorization) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	if !u.sessionValid(auth) {
		return false
	}
	u.session = ""
	return true
}

// Current reports whether auth is the session currently open.
func (u *User) Current(auth Authorization) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.sessionValid(auth)
}

func (u *User) LoggedIn() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.session != ""
}

// sessionValid must be called with mu held.
func (u *User) sessionValid(auth Authorization) bool {
	if u.session == "" || auth.session == "" {
		return false
	}
	return credential.Equal([]byte(u.session), []byte(auth.session))
}

func (u *User) CreateAccount(auth Authorization, name string, typ AccountType) (*Account, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if !u.sessionValid(auth) {
		return nil, ErrAccessDenied
	}
	if name == "" {
		return nil, fmt.Errorf("account name is required: %w", ErrInvalidInput)
	}
	if !typ.Valid() {
		return nil, fmt.Errorf("%s: %w", typ, ErrInvalidInput)
	}

	acc := newAccount(name, typ, u.cred.Key(), u.policy, u.now)
	u.accounts = append(u.accounts, acc)
	return acc, nil
}

// IndexOf returns the position of acc in the user's list, or -1.
func (u *User) IndexOf(acc *Account) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	for i, a := range u.accounts {
		if a == acc {
			return i
		}
	}
	return -1
}

// withAccount resolves index for an authorized session. The user lock is held
// for the whole call so a logout cannot interleave with the account operation.
func (u *User) withAccount(auth Authorization, index int, fn func(*Account) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if !u.sessionValid(auth) {
		return ErrAccessDenied
	}
	if index < 0 || index >= len(u.accounts) {
		return fmt.Errorf("account %d: %w", index+1, ErrAccountNotFound)
	}
	return fn(u.accounts[index])
}

func (u *User) Deposit(auth Authorization, index int, amount money.Money) (ledger.Transaction, error) {
	var tx ledger.Transaction
	err := u.withAccount(auth, index, func(a *Account) error {
		var err error
		tx, err = a.Deposit(amount, auth)
		return err
	})
	return tx, err
}

func (u *User) Withdraw(auth Authorization, index int, amount money.Money) (ledger.Transaction, error) {
	var tx ledger.Transaction
	err := u.withAccount(auth, index, func(a *Account) error {
		var err error
		tx, err = a.Withdraw(amount, auth)
		return err
	})
	return tx, err
}

func (u *User) Balance(auth Authorization, index int) (money.Money, error) {
	var bal money.Money
	err := u.withAccount(auth, index, func(a *Account) error {
		var err error
		bal, err = a.Balance(auth)
		return err
	})
	return bal, err
}

func (u *User) History(auth Authorization, index int) ([]ledger.Transaction, error) {
	var txs []ledger.Transaction
	err := u.withAccount(auth, index, func(a *Account) error {
		var err error
		txs, err = a.History(auth)
		return err
	})
	return txs, err
}

func (u *User) FormatHistory(auth Authorization, index int) (string, error) {
	var out string
	err := u.withAccount(auth, index, func(a *Account) error {
		var err error
		out, err = a.FormatHistory(auth)
		return err
	})
	return out, err
}

// Accounts lists the user's accounts in creation order.
func (u *User) Accounts(auth Authorization) ([]AccountInfo, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if !u.sessionValid(auth) {
		return nil, ErrAccessDenied
	}

	infos := make([]AccountInfo, 0, len(u.accounts))
	for i, a := range u.accounts {
		bal, n := a.snapshot()
		infos = append(infos, AccountInfo{
			Index:        i,
			Name:         a.name,
			Type:         a.typ,
			Balance:      bal,
			Transactions: n,
		})
	}
	return infos, nil
}

func (u *User) FormatAccounts(auth Authorization) (string, error) {
	infos, err := u.Accounts(auth)
	if err != nil {
		return "", err
	}
	return formatAccounts(infos), nil
}
