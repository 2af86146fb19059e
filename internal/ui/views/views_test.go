package views

import (
	"testing"
	"time"

	"github.com/hance08/teller/internal/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionRows(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	txs := []ledger.Transaction{
		{Seq: 1, Amount: 10000, Time: at},
		{Seq: 2, Amount: -3000, Time: at.Add(time.Minute)},
	}

	rows := NewTransactionListView().Rows(txs)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"1", "2025-06-01 12:00:00", "100.00", "-", "100.00"}, rows[0])
	assert.Equal(t, []string{"2", "2025-06-01 12:01:00", "-", "30.00", "70.00"}, rows[1])
}
