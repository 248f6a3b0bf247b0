package pack

import (
	"crypto/aes"
	"errors"
	"fmt"
	"runtime"

	"github.com/idelchi/packcrypt/internal/encryption"
)

const (
	// ContentsPath is the archive entry holding the header and the encrypted contents list.
	ContentsPath = "contents.json"
	// ManifestPath is the pack manifest the content identifier is read from.
	ManifestPath = "manifest.json"
	// Version is the container format version written by this package.
	Version uint32 = 0
)

// Signature is the magic value at offset 4 of the contents header.
//
//nolint:gochecknoglobals
var Signature = [4]byte{0xFC, 0xB9, 0xCF, 0x9B}

// DefaultExclusions returns the paths that are never encrypted so that tools
// can read them without the key.
func DefaultExclusions() []string {
	return []string{ManifestPath, "pack_icon.png", "bug_pack_icon.png"}
}

// Params holds the format constants a Processor works with.
type Params struct {
	// KeyLength is the required length in bytes of the master key and of generated entry keys.
	KeyLength int
	// Alphabet is the symbol set entry keys are generated from.
	Alphabet string
	// Version is written to new headers and is the only version accepted on read.
	Version uint32
	// Signature is written to new headers and must match on read.
	Signature [4]byte
	// Exclusions are path patterns whose files are stored unencrypted.
	Exclusions []string
	// Parallel bounds the number of entries processed concurrently.
	Parallel int
}

// DefaultParams returns the parameters of the published format.
func DefaultParams() Params {
	return Params{
		KeyLength:  encryption.KeyLength,
		Alphabet:   encryption.Alphabet,
		Version:    Version,
		Signature:  Signature,
		Exclusions: DefaultExclusions(),
		Parallel:   runtime.NumCPU(),
	}
}

// Validate checks that the parameters can drive the cipher.
func (p Params) Validate() error {
	const maxAlphabet = 256

	if p.KeyLength < aes.BlockSize {
		return fmt.Errorf("%w: key length %d is shorter than the %d-byte IV",
			ErrKeyLengthInvalid, p.KeyLength, aes.BlockSize)
	}

	if p.Alphabet == "" || len(p.Alphabet) > maxAlphabet {
		return fmt.Errorf("alphabet must hold between 1 and %d symbols, got %d", maxAlphabet, len(p.Alphabet))
	}

	if p.Parallel < 1 {
		return errors.New("parallel must be at least 1")
	}

	return nil
}
