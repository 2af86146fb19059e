package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAccountName(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		wantErr bool
	}{
		{name: "simple", input: "main"},
		{name: "with spaces", input: "rainy day"},
		{name: "empty", input: "", wantErr: true},
		{name: "blank", input: "   ", wantErr: true},
		{name: "too long", input: strings.Repeat("a", 101), wantErr: true},
		{name: "control char", input: "ma\tin", wantErr: true},
		{name: "not a string", input: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAccountName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, ValidateUsername("alice"))
	assert.NoError(t, ValidateUsername("Alice_99"))
	assert.Error(t, ValidateUsername(""))
	assert.Error(t, ValidateUsername("al ice"))
	assert.Error(t, ValidateUsername(" alice"))
	assert.Error(t, ValidateUsername(strings.Repeat("x", 65)))
	assert.Error(t, ValidateUsername(nil))
}

func TestValidatePassword(t *testing.T) {
	v := ValidatePassword(4)
	assert.NoError(t, v("pw12"))
	assert.Error(t, v("pw1"))
	assert.Error(t, v(""))

	err := v("abc")
	if assert.Error(t, err) {
		assert.NotContains(t, err.Error(), "abc")
	}

	assert.NoError(t, ValidatePassword(0)("x"))
}

func TestValidateCurrency(t *testing.T) {
	assert.NoError(t, ValidateCurrency("USD"))
	assert.NoError(t, ValidateCurrency("eur"))
	assert.NoError(t, ValidateCurrency(""))
	assert.Error(t, ValidateCurrency("US"))
	assert.Error(t, ValidateCurrency("U5D"))
	assert.Error(t, ValidateCurrency(3))
}

func TestValidateAmount(t *testing.T) {
	for _, ok := range []string{"1", "0.01", "25.50", " 100 "} {
		assert.NoError(t, ValidateAmount(ok), ok)
	}
	for _, bad := range []string{"", "0", "-5", "abc", "0.001", "99999999999999999999"} {
		assert.Error(t, ValidateAmount(bad), bad)
	}
}
