package validation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/hance08/teller/internal/constants"
)

// ValidateUsername rejects empty names, surrounding or inner whitespace and
// names longer than MaxUsernameLen.
func ValidateUsername(val any) error {
	name, ok := val.(string)
	if !ok {
		return fmt.Errorf("username must be a string")
	}

	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("username can't be empty")
	}

	if len(name) > constants.MaxUsernameLen {
		return fmt.Errorf("username too long (max %d characters)", constants.MaxUsernameLen)
	}

	for _, r := range name {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return fmt.Errorf("username can't contain spaces")
		}
	}
	return nil
}

// ValidatePassword returns a validator enforcing a minimum length in runes.
// Password contents are never echoed back in the error.
func ValidatePassword(minLen int) func(any) error {
	if minLen < 1 {
		minLen = 1
	}
	return func(val any) error {
		pw, ok := val.(string)
		if !ok {
			return fmt.Errorf("password must be a string")
		}
		if pw == "" {
			return fmt.Errorf("password can't be empty")
		}
		if n := len([]rune(pw)); n < minLen {
			return fmt.Errorf("password too short (min %d characters)", minLen)
		}
		return nil
	}
}
