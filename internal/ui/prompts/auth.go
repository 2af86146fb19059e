package prompts

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/hance08/teller/internal/ui"
)

// PromptPassword reads a password without echoing it.
func PromptPassword(message string, validator func(string) error) (string, error) {
	var password string
	err := survey.AskOne(&survey.Password{Message: message}, &password, ui.AskOptions(validator)...)
	return password, err
}

// PromptUsername prompts for a username with validation
func PromptUsername(validator func(string) error) (string, error) {
	return PromptInput("Username:", "", validator)
}
