package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const recoveryCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateRecoveryCode generates a random account-recovery code of the given
// length from an uppercase alphanumeric alphabet.
func GenerateRecoveryCode(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("length must be positive")
	}
	code := make([]byte, length)
	max := big.NewInt(int64(len(recoveryCodeAlphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to read random index: %w", err)
		}
		code[i] = recoveryCodeAlphabet[n.Int64()]
	}
	return string(code), nil
}
