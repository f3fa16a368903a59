package helpers

import (
	"crypto/sha256"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

// Anki expects deck and model IDs to fit comfortably in a signed 64-bit integer.
var idModulus = big.NewInt(10_000_000_000)

// Hash returns the hexadecimal SHA-256 digest of the given bytes.
func Hash(bytes []byte) string {
	h := sha256.Sum256(bytes)
	return fmt.Sprintf("%x", h)
}

// HashString is a shortcut for Hash([]byte(s)).
func HashString(s string) string {
	return Hash([]byte(s))
}

// NumericID derives a stable positive integer from a string.
// The same string always generates the same ID.
func NumericID(s string) int64 {
	digest := sha256.Sum256([]byte(s))
	n := new(big.Int).SetBytes(digest[:])
	return n.Mod(n, idModulus).Int64()
}

// InputSeed returns an 8-digit identifier for a fill-in-the-blank input.
//
// The occurrence distinguishes repeated inputs having the same value
// so that each one receives a different but reproducible identifier.
func InputSeed(value string, occurrence int) string {
	digest := HashString(value + strconv.Itoa(occurrence))
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, digest)
	if len(digits) > 8 {
		digits = digits[:8]
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		// Only possible when the digest contains no digit at all
		n = 0
	}
	return fmt.Sprintf("%08d", n)
}
