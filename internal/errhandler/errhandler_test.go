package errhandler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
)

func TestIsInterrupt(t *testing.T) {
	assert.True(t, IsInterrupt(terminal.InterruptErr))
	assert.True(t, IsInterrupt(huh.ErrUserAborted))
	assert.True(t, IsInterrupt(fmt.Errorf("prompt failed: %w", huh.ErrUserAborted)))
	assert.False(t, IsInterrupt(errors.New("access denied")))
	assert.False(t, IsInterrupt(nil))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Access denied", Message(errors.New("access denied")))
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "Élan", Capitalize("élan"))
}
