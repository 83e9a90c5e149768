package random

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/bits"
)

// Alphabet is the 62-character set tokens are drawn from.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// DefaultLength is the token length used by Token.
const DefaultLength = 30

// ErrInvalidLength indicates a non-positive requested length.
var ErrInvalidLength = errors.New("random: length must be positive")

// alphabetBits is the minimal bit width covering the alphabet size;
// alphabetMask extracts that many bits from a random byte.
var (
	alphabetBits = bits.Len(uint(len(Alphabet) - 1))
	alphabetMask = byte(1<<alphabetBits - 1)
)

// String generates a cryptographically random string of the given
// length drawn uniformly from Alphabet.
//
// Uniformity comes from rejection sampling: each draw takes the minimal
// number of random bits covering the alphabet size and is discarded
// when it falls outside the alphabet range, which avoids modulo bias.
func String(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}

	out := make([]byte, 0, length)
	buf := make([]byte, length)
	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("random: read entropy: %w", err)
		}
		for _, b := range buf {
			idx := b & alphabetMask
			if int(idx) >= len(Alphabet) {
				continue
			}
			out = append(out, Alphabet[idx])
			if len(out) == length {
				break
			}
		}
	}
	return string(out), nil
}

// MustString is like String but panics on entropy failure.
// Invalid lengths still return an error path via panic.
func MustString(length int) string {
	s, err := String(length)
	if err != nil {
		panic(err)
	}
	return s
}

// Token generates a token of DefaultLength characters.
func Token() (string, error) {
	return String(DefaultLength)
}

// ID is an alias for String, kept for callers minting correlation
// identifiers rather than secrets.
func ID(length int) (string, error) {
	return String(length)
}
