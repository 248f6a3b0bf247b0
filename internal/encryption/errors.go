package encryption

import "errors"

var (
	// ErrKeyLengthInvalid is returned when a key is too short to supply the IV
	// or does not have the length a caller requires.
	ErrKeyLengthInvalid = errors.New("invalid key length")
	// ErrCipherFailure is returned when the block cipher rejects its key material.
	ErrCipherFailure = errors.New("cipher failure")
)
