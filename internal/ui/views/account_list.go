package views

import (
	"fmt"

	"github.com/hance08/teller/internal/bank"
	"github.com/pterm/pterm"
)

type AccountListView struct{}

func NewAccountListView() *AccountListView {
	return &AccountListView{}
}

func (v *AccountListView) Render(accounts []bank.AccountInfo, currency string) error {
	if len(accounts) == 0 {
		pterm.Warning.Println("You do not have any accounts. Create an account to continue.")
		return nil
	}

	headers := []string{"#", "Name", "Type", "Balance", "Transactions"}
	tableData := pterm.TableData{headers}

	for _, acc := range accounts {
		balance := acc.Balance.Format(currency)

		var coloredBalance string
		switch {
		case acc.Balance.IsNegative():
			coloredBalance = pterm.Red(balance)
		case acc.Balance.IsZero():
			coloredBalance = pterm.Gray(balance)
		default:
			coloredBalance = pterm.Green(balance)
		}

		coloredType := acc.Type.String()
		if acc.Type == bank.Savings {
			coloredType = pterm.Cyan(coloredType)
		}

		tableData = append(tableData, []string{
			fmt.Sprintf("%d", acc.Index+1),
			acc.Name,
			coloredType,
			coloredBalance,
			fmt.Sprintf("%d", acc.Transactions),
		})
	}

	pterm.DefaultSection.Printf("Account List")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", len(accounts))

	return nil
}
