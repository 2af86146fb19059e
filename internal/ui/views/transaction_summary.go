package views

import (
	"github.com/hance08/teller/internal/money"
	"github.com/hance08/teller/internal/ui"
	"github.com/pterm/pterm"
)

type PostedItem struct {
	Kind     string
	Account  string
	Amount   money.Money
	Balance  money.Money
	Currency string
}

// RenderPosted confirms a deposit or withdrawal and shows the new balance.
func RenderPosted(item PostedItem) error {
	ui.Separator()

	amount := item.Amount.Format(item.Currency)
	if item.Amount.IsNegative() {
		amount = pterm.Red(amount)
	} else {
		amount = pterm.Green(amount)
	}

	tableData := pterm.TableData{
		{pterm.Blue("Account"), item.Account},
		{pterm.Blue("Amount"), amount},
		{pterm.Blue("Current Balance"), item.Balance.Format(item.Currency)},
	}

	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Success.Printf("%s recorded\n", item.Kind)
	return nil
}

func RenderBalance(account string, balance money.Money, currency string) {
	ui.PrintL2Title("%s", account)
	pterm.Printf("Current Balance: %s\n", balance.Format(currency))
}
