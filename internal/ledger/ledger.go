// Package ledger is the append-only record of balance changes for one account.
package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hance08/teller/internal/money"
)

// Transaction is a single posted balance change. Positive amounts are
// deposits, negative amounts withdrawals.
type Transaction struct {
	ID     string
	Seq    int
	Amount money.Money
	Time   time.Time
}

func (t Transaction) IsDeposit() bool    { return t.Amount.IsPositive() }
func (t Transaction) IsWithdrawal() bool { return t.Amount.IsNegative() }

// Ledger is not safe for concurrent use; the owning account serializes access.
type Ledger struct {
	entries []Transaction
	sum     money.Money
}

func New() *Ledger {
	return &Ledger{}
}

// Append records amount at the given time. A time earlier than the last entry
// is clamped to it so that insertion order stays chronological.
func (l *Ledger) Append(amount money.Money, at time.Time) (Transaction, error) {
	if amount.IsZero() {
		return Transaction{}, fmt.Errorf("zero amount: %w", money.ErrInvalidAmount)
	}

	sum, err := l.sum.Add(amount)
	if err != nil {
		return Transaction{}, err
	}

	if n := len(l.entries); n > 0 && at.Before(l.entries[n-1].Time) {
		at = l.entries[n-1].Time
	}

	tx := Transaction{
		ID:     uuid.NewString(),
		Seq:    len(l.entries) + 1,
		Amount: amount,
		Time:   at,
	}
	l.entries = append(l.entries, tx)
	l.sum = sum
	return tx, nil
}

func (l *Ledger) Len() int {
	return len(l.entries)
}

// Sum is the net of every recorded amount.
func (l *Ledger) Sum() money.Money {
	return l.sum
}

// Entries returns a copy in insertion order.
func (l *Ledger) Entries() []Transaction {
	out := make([]Transaction, len(l.entries))
	copy(out, l.entries)
	return out
}

// Last returns the most recent entry, if any.
func (l *Ledger) Last() (Transaction, bool) {
	if len(l.entries) == 0 {
		return Transaction{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// Row pairs an entry with the balance right after it was posted.
type Row struct {
	Transaction
	Balance money.Money
}

// RunningBalances walks txs in order starting from zero.
func RunningBalances(txs []Transaction) []Row {
	rows := make([]Row, len(txs))
	var bal money.Money
	for i, tx := range txs {
		bal += tx.Amount
		rows[i] = Row{Transaction: tx, Balance: bal}
	}
	return rows
}

// Totals returns the sum of deposits and the sum of withdrawals (as a
// positive amount).
func Totals(txs []Transaction) (deposits, withdrawals money.Money) {
	for _, tx := range txs {
		if tx.IsDeposit() {
			deposits += tx.Amount
		} else {
			withdrawals -= tx.Amount
		}
	}
	return deposits, withdrawals
}
