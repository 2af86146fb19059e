package ledger

import (
	"testing"
	"time"

	"github.com/hance08/teller/internal/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

func TestAppend(t *testing.T) {
	l := New()

	first, err := l.Append(10000, t0)
	require.NoError(t, err)
	second, err := l.Append(-3000, t0.Add(time.Minute))
	require.NoError(t, err)

	assert.Equal(t, 1, first.Seq)
	assert.Equal(t, 2, second.Seq)
	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.True(t, first.IsDeposit())
	assert.True(t, second.IsWithdrawal())

	assert.Equal(t, 2, l.Len())
	assert.Equal(t, money.Money(7000), l.Sum())

	last, ok := l.Last()
	require.True(t, ok)
	assert.Equal(t, second, last)
}

func TestAppendRejectsZero(t *testing.T) {
	l := New()
	_, err := l.Append(0, t0)
	assert.ErrorIs(t, err, money.ErrInvalidAmount)
	assert.Equal(t, 0, l.Len())

	_, ok := l.Last()
	assert.False(t, ok)
}

func TestAppendClampsTime(t *testing.T) {
	l := New()
	_, err := l.Append(500, t0)
	require.NoError(t, err)

	tx, err := l.Append(500, t0.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, t0, tx.Time)
}

func TestAppendOverflowLeavesLedgerUnchanged(t *testing.T) {
	l := New()
	_, err := l.Append(money.Money(1<<62), t0)
	require.NoError(t, err)
	_, err = l.Append(money.Money(1<<62), t0)
	require.NoError(t, err)

	_, err = l.Append(money.Money(1<<62), t0)
	assert.ErrorIs(t, err, money.ErrOutOfRange)
	assert.Equal(t, 2, l.Len())
}

func TestEntriesIsACopy(t *testing.T) {
	l := New()
	_, err := l.Append(100, t0)
	require.NoError(t, err)

	entries := l.Entries()
	entries[0].Amount = 999

	assert.Equal(t, money.Money(100), l.Entries()[0].Amount)
}

func TestRunningBalancesAndTotals(t *testing.T) {
	l := New()
	for _, amt := range []money.Money{10000, -3000, 2550, -550} {
		_, err := l.Append(amt, t0)
		require.NoError(t, err)
	}

	rows := RunningBalances(l.Entries())
	require.Len(t, rows, 4)
	assert.Equal(t, money.Money(10000), rows[0].Balance)
	assert.Equal(t, money.Money(7000), rows[1].Balance)
	assert.Equal(t, money.Money(9550), rows[2].Balance)
	assert.Equal(t, money.Money(9000), rows[3].Balance)
	assert.Equal(t, l.Sum(), rows[3].Balance)

	dep, wd := Totals(l.Entries())
	assert.Equal(t, money.Money(12550), dep)
	assert.Equal(t, money.Money(3550), wd)
}
