package prompts

import (
	"testing"

	"github.com/hance08/teller/internal/bank"
	"github.com/stretchr/testify/assert"
)

func TestAccountOptions(t *testing.T) {
	infos := []bank.AccountInfo{
		{Index: 0, Name: "main", Type: bank.Checking},
		{Index: 1, Name: "rainy day", Type: bank.Savings},
	}

	assert.Equal(t, []string{
		"1 - main (Checking)",
		"2 - rainy day (Savings)",
	}, AccountOptions(infos))
	assert.Empty(t, AccountOptions(nil))
}
