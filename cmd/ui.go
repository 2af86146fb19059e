package cmd

import (
	"github.com/hance08/teller/internal/bank"
	"github.com/hance08/teller/internal/ui/prompts"
	"github.com/hance08/teller/internal/validation"
)

// Prompter is everything the shell asks of the user.
type Prompter interface {
	Menu(options []string) (string, error)
	Username() (string, error)
	Password(message string) (string, error)
	AccountName() (string, error)
	AccountType() (bank.AccountType, error)
	Account(options []string) (string, error)
	Amount(kind, currency string) (string, error)
	Confirm(message string, defaultValue bool) (bool, error)
}

// terminalPrompter asks through huh and survey prompts.
type terminalPrompter struct {
	minPasswordLength int
}

func (p terminalPrompter) Menu(options []string) (string, error) {
	return prompts.PromptSelect("What would you like to do?", options, "")
}

func (p terminalPrompter) Username() (string, error) {
	return prompts.PromptUsername(stringValidator(validation.ValidateUsername))
}

func (p terminalPrompter) Password(message string) (string, error) {
	return prompts.PromptPassword(message, stringValidator(validation.ValidatePassword(p.minPasswordLength)))
}

func (p terminalPrompter) AccountName() (string, error) {
	return prompts.PromptAccountName(stringValidator(validation.ValidateAccountName))
}

func (p terminalPrompter) AccountType() (bank.AccountType, error) {
	return prompts.PromptAccountType()
}

func (p terminalPrompter) Account(options []string) (string, error) {
	return prompts.PromptSelect("Select account:", options, "")
}

func (p terminalPrompter) Amount(kind, currency string) (string, error) {
	return prompts.PromptTransactionAmount(kind, currency, stringValidator(validation.ValidateAmount))
}

func (p terminalPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	return prompts.PromptConfirm(message, defaultValue)
}

// stringValidator adapts the survey-style validators to huh's signature.
func stringValidator(fn func(any) error) func(string) error {
	return func(s string) error {
		return fn(s)
	}
}
