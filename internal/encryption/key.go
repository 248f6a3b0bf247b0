package encryption

import (
	"crypto/rand"
)

const (
	// KeyLength is the number of characters in a generated key.
	KeyLength = 32
	// Alphabet is the set of symbols generated keys are drawn from.
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// KeyGenerator produces random keys of a fixed length over an alphabet.
type KeyGenerator struct {
	// Length is the number of symbols per key.
	Length int
	// Alphabet holds the candidate symbols, at most 256 single-byte characters.
	Alphabet string
}

// NewKeyGenerator returns a generator with the default length and alphabet.
func NewKeyGenerator() KeyGenerator {
	return KeyGenerator{Length: KeyLength, Alphabet: Alphabet}
}

// Generate returns a new key. Symbols are drawn uniformly: random bytes that
// would bias the modulo are discarded.
// A non-positive Length or an empty or oversized Alphabet falls back to the default.
func (g KeyGenerator) Generate() string {
	const maxSymbols = 256

	if g.Length <= 0 {
		g.Length = KeyLength
	}

	if g.Alphabet == "" || len(g.Alphabet) > maxSymbols {
		g.Alphabet = Alphabet
	}

	size := len(g.Alphabet)
	limit := maxSymbols - maxSymbols%size

	key := make([]byte, 0, g.Length)
	buf := make([]byte, g.Length)

	for len(key) < g.Length {
		// crypto/rand.Read never returns an error as of Go 1.24.
		_, _ = rand.Read(buf)

		for _, b := range buf {
			if int(b) >= limit {
				continue
			}

			key = append(key, g.Alphabet[int(b)%size])

			if len(key) == g.Length {
				break
			}
		}
	}

	return string(key)
}

// GenerateKey returns a new key using the default generator.
func GenerateKey() string {
	return NewKeyGenerator().Generate()
}
