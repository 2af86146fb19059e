package validation

import (
	"errors"
	"fmt"

	"github.com/hance08/teller/internal/money"
)

// ValidateAmount checks that the input parses to a positive number of cents.
func ValidateAmount(val any) error {
	input, ok := val.(string)
	if !ok {
		return fmt.Errorf("amount must be a string")
	}

	_, err := money.ParsePositive(input)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, money.ErrOutOfRange):
		return fmt.Errorf("amount too large")
	default:
		return fmt.Errorf("amount must be a number greater than zero (e.g. 25.50)")
	}
}
