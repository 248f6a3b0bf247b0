package pack

import (
	"errors"

	"github.com/idelchi/packcrypt/internal/encryption"
)

var (
	// ErrMalformedArchive is returned when the input is not a readable zip archive
	// or lacks an entry the operation depends on.
	ErrMalformedArchive = errors.New("malformed archive")
	// ErrHeaderMismatch is returned when the contents header has the wrong
	// signature, an unsupported version, or cannot be read.
	ErrHeaderMismatch = errors.New("header mismatch")
	// ErrManifestCorrupt is returned when the contents list cannot be parsed
	// after decryption, usually because the master key is wrong.
	ErrManifestCorrupt = errors.New("contents manifest corrupt")
	// ErrKeyLengthInvalid is returned when a key does not have the configured length.
	ErrKeyLengthInvalid = encryption.ErrKeyLengthInvalid
	// ErrCipherFailure is returned when the block cipher rejects its key material.
	ErrCipherFailure = encryption.ErrCipherFailure
)
