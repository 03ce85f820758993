package utils

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateResetCode(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := GenerateResetCode()
		require.NoError(t, err)
		assert.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}

func TestGenerateCustomerID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := GenerateCustomerID()
		require.NoError(t, err)
		assert.Len(t, id, CustomerIDLength)

		for _, r := range id {
			assert.True(t, strings.ContainsRune(customerIDAlphabet, r), "unexpected character %q in %s", r, id)
		}

		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
