package views

import (
	"fmt"

	"github.com/hance08/teller/internal/bank"
	"github.com/hance08/teller/internal/ui"
	"github.com/pterm/pterm"
)

func RenderAccountSuccess(index int, name string, typ bank.AccountType) error {
	ui.Separator()

	tableData := pterm.TableData{
		{pterm.Blue("Account #"), fmt.Sprintf("%d", index+1)},
		{pterm.Blue("Name"), name},
		{pterm.Blue("Type"), typ.String()},
	}

	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Success.Print("Account created successfully!\n")

	return nil
}

func RenderUserSuccess(username string) {
	pterm.Success.Printf("User '%s' created. Log in to continue.\n", username)
}
