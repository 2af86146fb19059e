package views

import (
	"fmt"

	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/ledger"
	"github.com/hance08/teller/internal/money"
	"github.com/pterm/pterm"
)

const emptyCell = "-"

type TransactionListView struct{}

func NewTransactionListView() *TransactionListView {
	return &TransactionListView{}
}

// Rows lays the ledger out as Deposits | Withdrawals columns with the
// running balance after each entry.
func (v *TransactionListView) Rows(txs []ledger.Transaction) [][]string {
	rows := make([][]string, 0, len(txs))
	for _, r := range ledger.RunningBalances(txs) {
		deposit, withdrawal := emptyCell, emptyCell
		if r.IsDeposit() {
			deposit = r.Amount.String()
		} else {
			withdrawal = r.Amount.Abs().String()
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", r.Seq),
			r.Time.Format(constants.DateTimeFormat),
			deposit,
			withdrawal,
			r.Balance.String(),
		})
	}
	return rows
}

func (v *TransactionListView) Render(account string, txs []ledger.Transaction, balance money.Money, currency string) error {
	pterm.DefaultSection.Printf("Transaction Record: %s", account)

	if len(txs) == 0 {
		pterm.Warning.Println("No transactions found")
	} else {
		tableData := pterm.TableData{
			{"#", "Date", "Deposits", "Withdrawals", "Balance"},
		}
		for _, row := range v.Rows(txs) {
			row[2] = pterm.Green(row[2])
			row[3] = pterm.Red(row[3])
			tableData = append(tableData, row)
		}

		if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
			return err
		}

		deposits, withdrawals := ledger.Totals(txs)
		pterm.Info.Printf("Total: %d transactions, %s in, %s out\n",
			len(txs), deposits.Format(currency), withdrawals.Format(currency))
	}

	pterm.Printf("Current Balance: %s\n", balance.Format(currency))
	return nil
}
