package solana

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const nonceAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// nonceSuffixLen matches the length of the historical client nonce suffix
const nonceSuffixLen = 7

// GenerateNonce produces a challenge string of the form
// "<unix-millis>-<random base36 suffix>". It is pure apart from randomness:
// nothing is persisted and uniqueness is only probabilistic.
func GenerateNonce() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), randomSuffix(nonceSuffixLen))
}

// LegacyNonce returns the full human-readable message template used by
// older clients instead of a bare nonce.
func LegacyNonce() string {
	return fmt.Sprintf("Sign this message to authenticate with Quest Ring: %d", time.Now().UnixMilli())
}

func randomSuffix(n int) string {
	max := big.NewInt(int64(len(nonceAlphabet)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the platform source is broken
			panic(err)
		}
		b[i] = nonceAlphabet[idx.Int64()]
	}
	return string(b)
}
