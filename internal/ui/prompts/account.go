package prompts

import (
	"fmt"

	"github.com/hance08/teller/internal/bank"
)

// PromptAccountType prompts for account type selection
func PromptAccountType() (bank.AccountType, error) {
	var options []string
	for _, t := range bank.AccountTypes() {
		options = append(options, t.String())
	}

	selected, err := PromptSelect("Account Type:", options, bank.Checking.String())
	if err != nil {
		return 0, fmt.Errorf("input cancelled: %w", err)
	}

	return bank.ParseAccountType(selected)
}

// PromptAccountName prompts for account name with validation
func PromptAccountName(validator func(string) error) (string, error) {
	return PromptInput("Account Name:", "", validator)
}

// AccountOptions builds the labels used to pick an account, in list order.
func AccountOptions(accounts []bank.AccountInfo) []string {
	options := make([]string, len(accounts))
	for i, acc := range accounts {
		options[i] = AccountLabel(acc)
	}
	return options
}

func AccountLabel(acc bank.AccountInfo) string {
	return fmt.Sprintf("%d - %s (%s)", acc.Index+1, acc.Name, acc.Type)
}
