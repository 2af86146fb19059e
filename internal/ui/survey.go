package ui

import "github.com/AlecAivazis/survey/v2"

// AskOptions returns the survey options shared by every survey prompt: a "-"
// question icon, a "!" error icon and, when given, a string validator.
func AskOptions(validator func(string) error) []survey.AskOpt {
	opts := []survey.AskOpt{
		survey.WithIcons(func(icons *survey.IconSet) {
			icons.Question.Text = "-"
			icons.Error.Text = "!"
		}),
	}
	if validator != nil {
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return validator(s)
		}))
	}
	return opts
}
