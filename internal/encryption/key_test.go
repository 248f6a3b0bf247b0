package encryption_test

import (
	"strings"
	"testing"

	"github.com/idelchi/packcrypt/internal/encryption"
)

func TestGenerateKey(t *testing.T) {
	t.Parallel()

	key := encryption.GenerateKey()

	if len(key) != encryption.KeyLength {
		t.Fatalf("len(key) = %d, want %d", len(key), encryption.KeyLength)
	}

	for _, r := range key {
		if !strings.ContainsRune(encryption.Alphabet, r) {
			t.Fatalf("key %q contains %q outside the alphabet", key, r)
		}
	}
}

func TestGenerateKeyUnique(t *testing.T) {
	t.Parallel()

	const n = 1000

	seen := make(map[string]struct{}, n)

	for range n {
		key := encryption.GenerateKey()
		if _, ok := seen[key]; ok {
			t.Fatalf("duplicate key %q", key)
		}

		seen[key] = struct{}{}
	}
}

func TestKeyGeneratorCustom(t *testing.T) {
	t.Parallel()

	gen := encryption.KeyGenerator{Length: 64, Alphabet: "ab"}
	key := gen.Generate()

	if len(key) != 64 {
		t.Fatalf("len(key) = %d, want 64", len(key))
	}

	if strings.Trim(key, "ab") != "" {
		t.Fatalf("key %q contains symbols outside %q", key, gen.Alphabet)
	}
}

func TestAlphabetSize(t *testing.T) {
	t.Parallel()

	if len(encryption.Alphabet) != 62 {
		t.Fatalf("len(Alphabet) = %d, want 62", len(encryption.Alphabet))
	}
}

func TestKeyGeneratorZeroValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		gen  encryption.KeyGenerator
	}{
		{name: "zero value", gen: encryption.KeyGenerator{}},
		{name: "empty alphabet", gen: encryption.KeyGenerator{Length: 8}},
		{name: "oversized alphabet", gen: encryption.KeyGenerator{Length: 8, Alphabet: strings.Repeat("a", 300)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			key := tt.gen.Generate()

			want := tt.gen.Length
			if want == 0 {
				want = encryption.KeyLength
			}

			if len(key) != want {
				t.Fatalf("len(key) = %d, want %d", len(key), want)
			}

			for _, r := range key {
				if !strings.ContainsRune(encryption.Alphabet, r) {
					t.Fatalf("key %q contains %q outside the default alphabet", key, r)
				}
			}
		})
	}
}
