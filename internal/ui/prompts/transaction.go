package prompts

import "fmt"

// PromptTransactionAmount prompts for a dollar amount for a deposit or withdrawal.
func PromptTransactionAmount(kind, currency string, validator func(string) error) (string, error) {
	return PromptAmount(
		fmt.Sprintf("%s amount (%s):", kind, currency),
		"Amounts are rounded to the nearest cent",
		validator,
	)
}
