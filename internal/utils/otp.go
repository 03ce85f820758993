package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const customerIDAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CustomerIDLength gives ~71 bits of randomness over the alphanumeric alphabet,
// enough to make collisions negligible without coordination.
const CustomerIDLength = 12

// GenerateCustomerID generates an opaque alphanumeric customer identifier
func GenerateCustomerID() (string, error) {
	alphabet := big.NewInt(int64(len(customerIDAlphabet)))
	id := make([]byte, CustomerIDLength)
	for i := range id {
		n, err := rand.Int(rand.Reader, alphabet)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		id[i] = customerIDAlphabet[n.Int64()]
	}
	return string(id), nil
}

// GenerateResetCode generates a cryptographically secure 6-digit reset code.
// The code is uniform over [100000, 999999] so it never needs zero padding.
func GenerateResetCode() (string, error) {
	span := big.NewInt(900000)
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return "", fmt.Errorf("failed to generate random number: %w", err)
	}
	return fmt.Sprintf("%d", n.Int64()+100000), nil
}
