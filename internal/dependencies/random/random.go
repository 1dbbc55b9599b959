package random

import (
	"crypto/rand"
	"math/big"
)

// requestIDAlphabet is used for request ids
const requestIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Random generates random strings and can be mocked for testing
type Random interface {
	// String generates a random string of the given length from the given alphabet
	String(length int, alphabet string) string
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// String generates a random string of the given length from the given alphabet
func (r *CryptoRandom) String(length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	max := big.NewInt(int64(len(alphabet)))
	result := make([]byte, length)
	for i := range result {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			n = big.NewInt(0)
		}
		result[i] = alphabet[n.Int64()]
	}
	return string(result)
}

// RequestID returns a short id used to correlate requests in logs
func RequestID(r Random) string {
	return r.String(12, requestIDAlphabet)
}
