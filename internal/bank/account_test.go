package bank

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/hance08/teller/internal/credential"
	"github.com/hance08/teller/internal/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func clock() func() time.Time {
	return func() time.Time { return fixedNow }
}

func testAccount(t *testing.T, policy Policy) (*Account, Authorization) {
	t.Helper()
	key := []byte("0123456789abcdef0123456789abcdef")
	acc := newAccount("main", Checking, key, policy, clock())
	return acc, Authorization{key: key, session: "s1"}
}

func requireInvariant(t *testing.T, acc *Account, auth Authorization) {
	t.Helper()
	bal, err := acc.Balance(auth)
	require.NoError(t, err)
	txs, err := acc.History(auth)
	require.NoError(t, err)

	var sum money.Money
	for _, tx := range txs {
		sum += tx.Amount
	}
	assert.Equal(t, bal, sum, "balance must equal the sum of the ledger")
}

func TestDepositWithdraw(t *testing.T) {
	acc, auth := testAccount(t, Policy{})

	tx, err := acc.Deposit(10000, auth)
	require.NoError(t, err)
	assert.Equal(t, money.Money(10000), tx.Amount)
	assert.Equal(t, fixedNow, tx.Time)
	requireInvariant(t, acc, auth)

	tx, err = acc.Withdraw(3000, auth)
	require.NoError(t, err)
	assert.Equal(t, money.Money(-3000), tx.Amount)
	requireInvariant(t, acc, auth)

	bal, err := acc.Balance(auth)
	require.NoError(t, err)
	assert.Equal(t, money.Money(7000), bal)
}

func TestDepositThenWithdrawSameAmountRestoresBalance(t *testing.T) {
	acc, auth := testAccount(t, Policy{})
	_, err := acc.Deposit(5000, auth)
	require.NoError(t, err)

	before, err := acc.Balance(auth)
	require.NoError(t, err)

	_, err = acc.Deposit(1234, auth)
	require.NoError(t, err)
	_, err = acc.Withdraw(1234, auth)
	require.NoError(t, err)

	after, err := acc.Balance(auth)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	txs, err := acc.History(auth)
	require.NoError(t, err)
	require.Len(t, txs, 3)
	assert.Equal(t, money.Money(1234), txs[1].Amount)
	assert.Equal(t, money.Money(-1234), txs[2].Amount)
}

func TestWithdrawInsufficientFunds(t *testing.T) {
	acc, auth := testAccount(t, Policy{})
	_, err := acc.Deposit(7000, auth)
	require.NoError(t, err)

	_, err = acc.Withdraw(100000, auth)
	require.ErrorIs(t, err, ErrInsufficientFunds)

	bal, _ := acc.Balance(auth)
	txs, _ := acc.History(auth)
	assert.Equal(t, money.Money(7000), bal)
	assert.Len(t, txs, 1)

	_, err = acc.Withdraw(7000, auth)
	require.NoError(t, err, "withdrawing the exact balance is allowed")
}

func TestWithdrawOverdraftPolicy(t *testing.T) {
	acc, auth := testAccount(t, Policy{AllowOverdraft: true})

	tx, err := acc.Withdraw(2500, auth)
	require.NoError(t, err)
	assert.Equal(t, money.Money(-2500), tx.Amount)

	bal, err := acc.Balance(auth)
	require.NoError(t, err)
	assert.Equal(t, money.Money(-2500), bal)
	requireInvariant(t, acc, auth)
}

func TestNonPositiveAmounts(t *testing.T) {
	acc, auth := testAccount(t, Policy{AllowOverdraft: true})
	_, err := acc.Deposit(100, auth)
	require.NoError(t, err)

	for _, amt := range []money.Money{0, -1, -10000} {
		_, err := acc.Deposit(amt, auth)
		assert.ErrorIs(t, err, ErrInvalidAmount)
		_, err = acc.Withdraw(amt, auth)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}

	bal, _ := acc.Balance(auth)
	txs, _ := acc.History(auth)
	assert.Equal(t, money.Money(100), bal)
	assert.Len(t, txs, 1)
}

func TestAccountRejectsForeignAuthorization(t *testing.T) {
	acc, auth := testAccount(t, Policy{})
	_, err := acc.Deposit(100, auth)
	require.NoError(t, err)

	forged := []Authorization{
		{},
		{key: []byte("not-the-key"), session: auth.session},
		{key: append([]byte{}, auth.key[:len(auth.key)-1]...), session: auth.session},
	}
	for _, bad := range forged {
		_, err := acc.Deposit(100, bad)
		assert.ErrorIs(t, err, ErrAccessDenied)
		_, err = acc.Withdraw(50, bad)
		assert.ErrorIs(t, err, ErrAccessDenied)
		_, err = acc.Balance(bad)
		assert.ErrorIs(t, err, ErrAccessDenied)
		_, err = acc.History(bad)
		assert.ErrorIs(t, err, ErrAccessDenied)
		_, err = acc.FormatHistory(bad)
		assert.ErrorIs(t, err, ErrAccessDenied)
	}

	bal, n := acc.snapshot()
	assert.Equal(t, money.Money(100), bal)
	assert.Equal(t, 1, n)
}

func TestAccessDeniedBeforeAmountValidation(t *testing.T) {
	acc, _ := testAccount(t, Policy{})
	_, err := acc.Deposit(0, Authorization{})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestHistoryIsASnapshot(t *testing.T) {
	acc, auth := testAccount(t, Policy{})
	_, err := acc.Deposit(100, auth)
	require.NoError(t, err)

	txs, err := acc.History(auth)
	require.NoError(t, err)
	txs[0].Amount = 1

	txs, _ = acc.History(auth)
	assert.Equal(t, money.Money(100), txs[0].Amount)
}

func TestFormatHistory(t *testing.T) {
	acc, auth := testAccount(t, Policy{})
	_, err := acc.Deposit(10000, auth)
	require.NoError(t, err)
	_, err = acc.Withdraw(3000, auth)
	require.NoError(t, err)

	out, err := acc.FormatHistory(auth)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Deposits        Withdrawals     Date", strings.TrimRight(lines[0], " "))
	assert.Equal(t, "100.00          -----------     2025-06-01 12:00:00", strings.TrimRight(lines[1], " "))
	assert.Equal(t, "-----------     -30.00          2025-06-01 12:00:00", strings.TrimRight(lines[2], " "))
	assert.Equal(t, "Current Balance: 70.00", lines[3])
}

func TestConcurrentPostingKeepsInvariant(t *testing.T) {
	acc, auth := testAccount(t, Policy{})
	_, err := acc.Deposit(100000, auth)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = acc.Deposit(300, auth)
		}()
		go func() {
			defer wg.Done()
			_, _ = acc.Withdraw(500, auth)
		}()
	}
	wg.Wait()

	requireInvariant(t, acc, auth)
	bal, n := acc.snapshot()
	assert.Equal(t, money.Money(100000+50*300-50*500), bal)
	assert.Equal(t, 101, n)
}

func TestAccountType(t *testing.T) {
	assert.Equal(t, "Savings", Savings.String())
	assert.Equal(t, "Checking", Checking.String())
	assert.False(t, AccountType(7).Valid())

	typ, err := ParseAccountType(" checking ")
	require.NoError(t, err)
	assert.Equal(t, Checking, typ)

	_, err = ParseAccountType("brokerage")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAccountKeyIsCopied(t *testing.T) {
	c, err := credential.New("pw", credential.SHA256{}, 0)
	require.NoError(t, err)
	key := c.Key()
	acc := newAccount("a", Savings, key, Policy{}, nil)

	auth := Authorization{key: append([]byte{}, key...), session: "s"}
	key[0] ^= 0xff

	_, err = acc.Deposit(1, auth)
	assert.NoError(t, err)
}
