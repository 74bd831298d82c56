package util

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const resetCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateResetCode produces a short random code over an upper/lower/digit
// alphabet. Uniqueness is not enforced; the collision risk at this length is
// accepted.
func GenerateResetCode(length int) (string, error) {
	if length <= 0 {
		length = 6
	}
	var builder strings.Builder
	builder.Grow(length)
	max := big.NewInt(int64(len(resetCodeAlphabet)))
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		builder.WriteByte(resetCodeAlphabet[n.Int64()])
	}
	return builder.String(), nil
}
