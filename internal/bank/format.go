package bank

import (
	"fmt"
	"strings"

	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/ledger"
	"github.com/hance08/teller/internal/money"
)

const emptyCell = "-----------"

func formatHistory(txs []ledger.Transaction, balance money.Money) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-15s %-15s %-30s\n", "Deposits", "Withdrawals", "Date")
	for _, tx := range txs {
		when := tx.Time.Format(constants.DateTimeFormat)
		if tx.IsDeposit() {
			fmt.Fprintf(&sb, "%-15s %-15s %-30s\n", tx.Amount, emptyCell, when)
		} else {
			fmt.Fprintf(&sb, "%-15s %-15s %-30s\n", emptyCell, tx.Amount, when)
		}
	}
	fmt.Fprintf(&sb, "Current Balance: %s", balance)
	return sb.String()
}

// AccountInfo is the public summary of an account.
type AccountInfo struct {
	Index        int
	Name         string
	Type         AccountType
	Balance      money.Money
	Transactions int
}

func formatAccounts(infos []AccountInfo) string {
	var sb strings.Builder
	sb.WriteString("Accounts\n")
	for _, info := range infos {
		fmt.Fprintf(&sb, "%d - %s --- Type:%s\n", info.Index+1, info.Name, info.Type)
	}
	return sb.String()
}
